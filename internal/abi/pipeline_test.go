package abi

import (
	"runtime"
	"testing"
)

func trianglePipeline() *RenderPipelineDescriptor {
	return &RenderPipelineDescriptor{
		Label:  "triangle",
		Layout: 0x4C,
		Vertex: VertexState{
			Module:     0x5A,
			EntryPoint: "vs_main",
			Buffers: []VertexBufferLayout{
				{
					ArrayStride: 20,
					Attributes: []VertexAttribute{
						{Format: "float32x2", Offset: 0, ShaderLocation: 0},
						{Format: "unorm8x4", Offset: 8, ShaderLocation: 1},
					},
				},
				{
					StepMode:    "instance",
					ArrayStride: 16,
					Attributes: []VertexAttribute{
						{Format: "float32x4", Offset: 0, ShaderLocation: 2},
					},
				},
			},
		},
		Primitive: PrimitiveState{Topology: "triangle-list", CullMode: "back"},
		Fragment: &FragmentState{
			Module:     0x5B,
			EntryPoint: "fs_main",
			Targets: []ColorTargetState{
				{
					Format: "bgra8unorm",
					Blend: &BlendState{
						Color: BlendComponent{SrcFactor: "src-alpha", DstFactor: "one-minus-src-alpha"},
						Alpha: BlendComponent{},
					},
				},
			},
		},
	}
}

func checkTrianglePipeline(t *testing.T, addr uintptr) {
	t.Helper()
	s := segAt(addr, sizeofRenderPipelineDescriptor)
	if got := viewString(t, s, rpDescLabel); got != "triangle" {
		t.Errorf("label = %q, want triangle", got)
	}
	if got := s.Ptr(rpDescLayout); got != 0x4C {
		t.Errorf("layout = %#x, want 0x4C", got)
	}

	if got := s.Ptr(rpDescVertex + vsModule); got != 0x5A {
		t.Errorf("vertex.module = %#x, want 0x5A", got)
	}
	if got := viewString(t, s, rpDescVertex+vsEntryPoint); got != "vs_main" {
		t.Errorf("vertex.entryPoint = %q, want vs_main", got)
	}
	if got := s.U64(rpDescVertex + vsBufferCount); got != 2 {
		t.Fatalf("vertex.bufferCount = %d, want 2", got)
	}
	bufs := segAt(s.Ptr(rpDescVertex+vsBuffers), 2*sizeofVertexBufferLayout)
	if got := bufs.U64(vblArrayStride); got != 20 {
		t.Errorf("buffers[0].arrayStride = %d, want 20", got)
	}
	if got := bufs.U32(vblStepMode); got != 1 {
		t.Errorf("buffers[0].stepMode = %d, want vertex (1)", got)
	}
	if got := bufs.U64(vblAttributeCount); got != 2 {
		t.Fatalf("buffers[0].attributeCount = %d, want 2", got)
	}
	attrs := segAt(bufs.Ptr(vblAttributes), 2*sizeofVertexAttribute)
	if got := attrs.U32(vaFormat); got != 0x1D {
		t.Errorf("attr[0].format = %#x, want float32x2 (0x1D)", got)
	}
	if got := attrs.U32(sizeofVertexAttribute + vaFormat); got != 0x09 {
		t.Errorf("attr[1].format = %#x, want unorm8x4 (0x09)", got)
	}
	if got := attrs.U64(sizeofVertexAttribute + vaOffset); got != 8 {
		t.Errorf("attr[1].offset = %d, want 8", got)
	}
	if got := attrs.U32(sizeofVertexAttribute + vaShaderLocation); got != 1 {
		t.Errorf("attr[1].shaderLocation = %d, want 1", got)
	}
	b1 := sizeofVertexBufferLayout
	if got := bufs.U32(b1 + vblStepMode); got != 2 {
		t.Errorf("buffers[1].stepMode = %d, want instance (2)", got)
	}
	attrs1 := segAt(bufs.Ptr(b1+vblAttributes), sizeofVertexAttribute)
	if got := attrs1.U32(vaFormat); got != 0x1F {
		t.Errorf("buffers[1] attr format = %#x, want float32x4 (0x1F)", got)
	}

	if got := s.U32(rpDescPrimitive + primTopology); got != 4 {
		t.Errorf("primitive.topology = %d, want triangle-list (4)", got)
	}
	if got := s.U32(rpDescPrimitive + primCullMode); got != 3 {
		t.Errorf("primitive.cullMode = %d, want back (3)", got)
	}
	if got := s.Ptr(rpDescDepthStencil); got != 0 {
		t.Errorf("depthStencil = %#x, want null", got)
	}
	if got := s.U32(rpDescMultisample + msCount); got != 1 {
		t.Errorf("multisample.count = %d, want 1", got)
	}
	if got := s.U32(rpDescMultisample + msMask); got != 0xFFFFFFFF {
		t.Errorf("multisample.mask = %#x, want all-ones", got)
	}

	fragPtr := s.Ptr(rpDescFragment)
	if fragPtr == 0 {
		t.Fatal("fragment is null")
	}
	frag := segAt(fragPtr, sizeofFragmentState)
	if got := viewString(t, frag, fsEntryPoint); got != "fs_main" {
		t.Errorf("fragment.entryPoint = %q, want fs_main", got)
	}
	if got := frag.U64(fsTargetCount); got != 1 {
		t.Fatalf("fragment.targetCount = %d, want 1", got)
	}
	target := segAt(frag.Ptr(fsTargets), sizeofColorTargetState)
	if got := target.U32(ctsFormat); got != 0x1B {
		t.Errorf("target.format = %#x, want bgra8unorm (0x1B)", got)
	}
	if got := target.U64(ctsWriteMask); got != 0xF {
		t.Errorf("target.writeMask = %#x, want all channels", got)
	}
	blendPtr := target.Ptr(ctsBlend)
	if blendPtr == 0 {
		t.Fatal("target.blend is null")
	}
	blend := segAt(blendPtr, sizeofBlendState)
	if got := blend.U32(blendColor + bcSrcFactor); got != 5 {
		t.Errorf("blend.color.srcFactor = %d, want src-alpha (5)", got)
	}
	if got := blend.U32(blendColor + bcDstFactor); got != 6 {
		t.Errorf("blend.color.dstFactor = %d, want one-minus-src-alpha (6)", got)
	}
	if got := blend.U32(blendAlpha + bcOperation); got != 1 {
		t.Errorf("blend.alpha.operation = %d, want add (1)", got)
	}
	if got := blend.U32(blendAlpha + bcDstFactor); got != 1 {
		t.Errorf("blend.alpha.dstFactor = %d, want zero (1)", got)
	}
}

func TestEncodeRenderPipelineDescriptor(t *testing.T) {
	a := NewArena()
	checkTrianglePipeline(t, EncodeRenderPipelineDescriptor(a, trianglePipeline()))
	runtime.KeepAlive(a)
}

// hopMem relocates a segment's backing on every write, modeling an allocator
// whose memory moves until the address is captured. If an encoder took an
// address before a segment's final write, the captured pointer would name an
// abandoned backing and the decode below would read stale bytes.
type hopMem struct {
	segs []*Seg
}

func (h *hopMem) Alloc(size, align int) *Seg {
	s := &Seg{buf: make([]byte, size)}
	s.reloc = func(b []byte) []byte {
		fresh := make([]byte, len(b))
		copy(fresh, b)
		return fresh
	}
	h.segs = append(h.segs, s)
	return s
}

func TestEncodeUnderRelocatingAllocator(t *testing.T) {
	m := &hopMem{}
	checkTrianglePipeline(t, EncodeRenderPipelineDescriptor(m, trianglePipeline()))
	runtime.KeepAlive(m)
}

func TestEncodeDepthStencilState(t *testing.T) {
	a := NewArena()
	addr := encodeDepthStencil(a, &DepthStencilState{
		Format:            "depth24plus-stencil8",
		DepthWriteEnabled: true,
		DepthCompare:      "less",
		StencilFront:      StencilFaceState{PassOp: "replace"},
		DepthBias:         -2,
	})
	s := segAt(addr, sizeofDepthStencilState)
	if got := s.U32(dssFormat); got != 0x2F {
		t.Errorf("format = %#x, want depth24plus-stencil8 (0x2F)", got)
	}
	if got := s.U32(dssDepthWriteEnabled); got != optionalTrue {
		t.Errorf("depthWriteEnabled = %d, want true (1)", got)
	}
	if got := s.U32(dssDepthCompare); got != 2 {
		t.Errorf("depthCompare = %d, want less (2)", got)
	}
	if got := s.U32(dssStencilFront + sfsPassOp); got != 3 {
		t.Errorf("stencilFront.passOp = %d, want replace (3)", got)
	}
	if got := s.U32(dssStencilFront + sfsCompare); got != 8 {
		t.Errorf("stencilFront.compare = %d, want always (8)", got)
	}
	if got := s.U32(dssStencilReadMask); got != 0xFFFFFFFF {
		t.Errorf("stencilReadMask = %#x, want all-ones", got)
	}
	if got := int32(s.U32(dssDepthBias)); got != -2 {
		t.Errorf("depthBias = %d, want -2", got)
	}
	runtime.KeepAlive(a)
}

func TestEncodeComputePipelineDescriptor(t *testing.T) {
	a := NewArena()
	addr := EncodeComputePipelineDescriptor(a, &ComputePipelineDescriptor{
		Label:  "double",
		Layout: 0x77,
		Compute: ProgrammableStage{
			Module:     0x88,
			EntryPoint: "main",
			Constants:  []ConstantEntry{{Key: "scale", Value: 2.5}},
		},
	})
	s := segAt(addr, sizeofComputePipelineDescriptor)
	if got := s.Ptr(cpDescLayout); got != 0x77 {
		t.Errorf("layout = %#x, want 0x77", got)
	}
	if got := s.Ptr(cpDescCompute + psModule); got != 0x88 {
		t.Errorf("compute.module = %#x, want 0x88", got)
	}
	if got := viewString(t, s, cpDescCompute+psEntryPoint); got != "main" {
		t.Errorf("compute.entryPoint = %q, want main", got)
	}
	if got := s.U64(cpDescCompute + psConstantCount); got != 1 {
		t.Fatalf("constantCount = %d, want 1", got)
	}
	c := segAt(s.Ptr(cpDescCompute+psConstants), sizeofConstantEntry)
	if got := viewString(t, c, constEntryKey); got != "scale" {
		t.Errorf("constant key = %q, want scale", got)
	}
	if got := c.F64(constEntryValue); got != 2.5 {
		t.Errorf("constant value = %v, want 2.5", got)
	}
	runtime.KeepAlive(a)
}

func TestEncodeRenderPassDescriptor(t *testing.T) {
	a := NewArena()
	addr := EncodeRenderPassDescriptor(a, &RenderPassDescriptor{
		Label: "frame",
		ColorAttachments: []RenderPassColorAttachment{
			{
				View:       0xF1,
				LoadOp:     "clear",
				StoreOp:    "store",
				ClearValue: Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
			},
		},
		DepthStencil: &RenderPassDepthStencilAttachment{
			View:            0xF2,
			DepthLoadOp:     "clear",
			DepthStoreOp:    "discard",
			DepthClearValue: 1,
		},
	})
	s := segAt(addr, sizeofRenderPassDescriptor)
	if got := viewString(t, s, rpassDescLabel); got != "frame" {
		t.Errorf("label = %q, want frame", got)
	}
	if got := s.U64(rpassDescColorCount); got != 1 {
		t.Fatalf("colorAttachmentCount = %d, want 1", got)
	}
	ca := segAt(s.Ptr(rpassDescColors), sizeofRenderPassColorAttachment)
	if got := ca.Ptr(rpcaView); got != 0xF1 {
		t.Errorf("color.view = %#x, want 0xF1", got)
	}
	if got := ca.U32(rpcaDepthSlice); got != DepthSliceUndefined {
		t.Errorf("color.depthSlice = %#x, want undefined sentinel", got)
	}
	if got := ca.U32(rpcaLoadOp); got != 2 {
		t.Errorf("color.loadOp = %d, want clear (2)", got)
	}
	if got := ca.U32(rpcaStoreOp); got != 1 {
		t.Errorf("color.storeOp = %d, want store (1)", got)
	}
	if got := ca.F64(rpcaClearValue + colorG); got != 0.2 {
		t.Errorf("clearValue.g = %v, want 0.2", got)
	}
	if got := ca.F64(rpcaClearValue + colorA); got != 1.0 {
		t.Errorf("clearValue.a = %v, want 1", got)
	}
	dsPtr := s.Ptr(rpassDescDepthStencil)
	if dsPtr == 0 {
		t.Fatal("depthStencilAttachment is null")
	}
	ds := segAt(dsPtr, sizeofRenderPassDepthStencilAttachment)
	if got := ds.Ptr(rpdsaView); got != 0xF2 {
		t.Errorf("depth.view = %#x, want 0xF2", got)
	}
	if got := ds.U32(rpdsaDepthStoreOp); got != 2 {
		t.Errorf("depth.storeOp = %d, want discard (2)", got)
	}
	if got := ds.F32(rpdsaDepthClearValue); got != 1.0 {
		t.Errorf("depth.clearValue = %v, want 1", got)
	}
	runtime.KeepAlive(a)
}

func TestEncodeRenderPassExplicitDepthSlice(t *testing.T) {
	a := NewArena()
	addr := EncodeRenderPassDescriptor(a, &RenderPassDescriptor{
		ColorAttachments: []RenderPassColorAttachment{
			{View: 0xF1, DepthSlice: 3, HasDepthSlice: true, LoadOp: "load", StoreOp: "store"},
		},
	})
	s := segAt(addr, sizeofRenderPassDescriptor)
	ca := segAt(s.Ptr(rpassDescColors), sizeofRenderPassColorAttachment)
	if got := ca.U32(rpcaDepthSlice); got != 3 {
		t.Errorf("depthSlice = %d, want 3", got)
	}
	runtime.KeepAlive(a)
}
