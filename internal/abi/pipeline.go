package abi

// Pipeline and pass descriptors carry the deepest nesting in the ABI:
// attribute arrays inside vertex buffer arrays inside vertex state, color
// targets with optional blend pointers, nullable depth-stencil blocks. The
// innermost segments are packed and sealed first, then each parent records
// the child addresses, so every pointer the native side follows lands in
// memory that is already final.

type ConstantEntry struct {
	Key   string
	Value float64
}

func encodeConstants(m Mem, entries []ConstantEntry) uintptr {
	if len(entries) == 0 {
		return 0
	}
	arr := m.Alloc(len(entries)*sizeofConstantEntry, 8)
	for i := range entries {
		off := i * sizeofConstantEntry
		putStringView(m, arr, off+constEntryKey, entries[i].Key)
		arr.PutF64(off+constEntryValue, entries[i].Value)
	}
	return arr.Addr()
}

type VertexAttribute struct {
	Format         string
	Offset         uint64
	ShaderLocation uint32
}

type VertexBufferLayout struct {
	StepMode    string
	ArrayStride uint64
	Attributes  []VertexAttribute
}

func encodeVertexBuffers(m Mem, layouts []VertexBufferLayout) uintptr {
	if len(layouts) == 0 {
		return 0
	}
	arr := m.Alloc(len(layouts)*sizeofVertexBufferLayout, 8)
	for i := range layouts {
		l := &layouts[i]
		var attrs uintptr
		if len(l.Attributes) > 0 {
			attrArr := m.Alloc(len(l.Attributes)*sizeofVertexAttribute, 8)
			for j := range l.Attributes {
				a := &l.Attributes[j]
				ao := j * sizeofVertexAttribute
				attrArr.PutU32(ao+vaFormat, vertexFormats.code(a.Format))
				attrArr.PutU64(ao+vaOffset, a.Offset)
				attrArr.PutU32(ao+vaShaderLocation, a.ShaderLocation)
			}
			attrs = attrArr.Addr()
		}
		off := i * sizeofVertexBufferLayout
		arr.PutU32(off+vblStepMode, vertexStepModes.code(orDefault(l.StepMode, "vertex")))
		arr.PutU64(off+vblArrayStride, l.ArrayStride)
		arr.PutUsize(off+vblAttributeCount, len(l.Attributes))
		arr.PutPtr(off+vblAttributes, attrs)
	}
	return arr.Addr()
}

type VertexState struct {
	Module     uintptr
	EntryPoint string
	Constants  []ConstantEntry
	Buffers    []VertexBufferLayout
}

func putVertexState(m Mem, s *Seg, off int, v *VertexState) {
	constants := encodeConstants(m, v.Constants)
	buffers := encodeVertexBuffers(m, v.Buffers)
	s.PutPtr(off+vsModule, v.Module)
	putStringView(m, s, off+vsEntryPoint, v.EntryPoint)
	s.PutUsize(off+vsConstantCount, len(v.Constants))
	s.PutPtr(off+vsConstants, constants)
	s.PutUsize(off+vsBufferCount, len(v.Buffers))
	s.PutPtr(off+vsBuffers, buffers)
}

type PrimitiveState struct {
	Topology         string
	StripIndexFormat string
	FrontFace        string
	CullMode         string
	UnclippedDepth   bool
}

func putPrimitiveState(s *Seg, off int, p *PrimitiveState) {
	s.PutU32(off+primTopology, primitiveTopologies.code(orDefault(p.Topology, "triangle-list")))
	if p.StripIndexFormat != "" {
		s.PutU32(off+primStripIndex, indexFormats.code(p.StripIndexFormat))
	}
	s.PutU32(off+primFrontFace, frontFaces.code(orDefault(p.FrontFace, "ccw")))
	s.PutU32(off+primCullMode, cullModes.code(orDefault(p.CullMode, "none")))
	s.PutBool(off+primUnclippedDepth, p.UnclippedDepth)
}

type StencilFaceState struct {
	Compare     string
	FailOp      string
	DepthFailOp string
	PassOp      string
}

func putStencilFace(s *Seg, off int, f *StencilFaceState) {
	s.PutU32(off+sfsCompare, compareFunctions.code(orDefault(f.Compare, "always")))
	s.PutU32(off+sfsFailOp, stencilOperations.code(orDefault(f.FailOp, "keep")))
	s.PutU32(off+sfsDepthFailOp, stencilOperations.code(orDefault(f.DepthFailOp, "keep")))
	s.PutU32(off+sfsPassOp, stencilOperations.code(orDefault(f.PassOp, "keep")))
}

// DepthStencilState zero stencil masks encode as all-ones, matching the
// WebGPU defaults. An empty DepthCompare stays the "undefined" code for
// stencil-only formats.
type DepthStencilState struct {
	Format              string
	DepthWriteEnabled   bool
	DepthCompare        string
	StencilFront        StencilFaceState
	StencilBack         StencilFaceState
	StencilReadMask     uint32
	StencilWriteMask    uint32
	DepthBias           int32
	DepthBiasSlopeScale float32
	DepthBiasClamp      float32
}

func encodeDepthStencil(m Mem, d *DepthStencilState) uintptr {
	s := m.Alloc(sizeofDepthStencilState, 8)
	s.PutU32(dssFormat, textureFormats.code(d.Format))
	if d.DepthWriteEnabled {
		s.PutU32(dssDepthWriteEnabled, optionalTrue)
	} else {
		s.PutU32(dssDepthWriteEnabled, optionalFalse)
	}
	if d.DepthCompare != "" {
		s.PutU32(dssDepthCompare, compareFunctions.code(d.DepthCompare))
	}
	putStencilFace(s, dssStencilFront, &d.StencilFront)
	putStencilFace(s, dssStencilBack, &d.StencilBack)
	readMask := d.StencilReadMask
	if readMask == 0 {
		readMask = 0xFFFFFFFF
	}
	s.PutU32(dssStencilReadMask, readMask)
	writeMask := d.StencilWriteMask
	if writeMask == 0 {
		writeMask = 0xFFFFFFFF
	}
	s.PutU32(dssStencilWriteMask, writeMask)
	s.PutI32(dssDepthBias, d.DepthBias)
	s.PutF32(dssDepthBiasSlopeScale, d.DepthBiasSlopeScale)
	s.PutF32(dssDepthBiasClamp, d.DepthBiasClamp)
	return s.Addr()
}

type MultisampleState struct {
	Count                  uint32
	Mask                   uint32
	AlphaToCoverageEnabled bool
}

func putMultisampleState(s *Seg, off int, ms *MultisampleState) {
	s.PutU32(off+msCount, max(ms.Count, 1))
	mask := ms.Mask
	if mask == 0 {
		mask = 0xFFFFFFFF
	}
	s.PutU32(off+msMask, mask)
	s.PutBool(off+msAlphaToCoverage, ms.AlphaToCoverageEnabled)
}

type BlendComponent struct {
	Operation string
	SrcFactor string
	DstFactor string
}

type BlendState struct {
	Color BlendComponent
	Alpha BlendComponent
}

func putBlendComponent(s *Seg, off int, c *BlendComponent) {
	s.PutU32(off+bcOperation, blendOperations.code(orDefault(c.Operation, "add")))
	s.PutU32(off+bcSrcFactor, blendFactors.code(orDefault(c.SrcFactor, "one")))
	s.PutU32(off+bcDstFactor, blendFactors.code(orDefault(c.DstFactor, "zero")))
}

// ColorTargetState zero WriteMask encodes as all channels.
type ColorTargetState struct {
	Format    string
	Blend     *BlendState
	WriteMask uint64
}

func encodeColorTargets(m Mem, targets []ColorTargetState) uintptr {
	if len(targets) == 0 {
		return 0
	}
	arr := m.Alloc(len(targets)*sizeofColorTargetState, 8)
	for i := range targets {
		t := &targets[i]
		var blend uintptr
		if t.Blend != nil {
			b := m.Alloc(sizeofBlendState, 4)
			putBlendComponent(b, blendColor, &t.Blend.Color)
			putBlendComponent(b, blendAlpha, &t.Blend.Alpha)
			blend = b.Addr()
		}
		off := i * sizeofColorTargetState
		arr.PutU32(off+ctsFormat, textureFormats.code(t.Format))
		arr.PutPtr(off+ctsBlend, blend)
		mask := t.WriteMask
		if mask == 0 {
			mask = 0xF
		}
		arr.PutU64(off+ctsWriteMask, mask)
	}
	return arr.Addr()
}

type FragmentState struct {
	Module     uintptr
	EntryPoint string
	Constants  []ConstantEntry
	Targets    []ColorTargetState
}

func encodeFragmentState(m Mem, f *FragmentState) uintptr {
	constants := encodeConstants(m, f.Constants)
	targets := encodeColorTargets(m, f.Targets)
	s := m.Alloc(sizeofFragmentState, 8)
	s.PutPtr(fsModule, f.Module)
	putStringView(m, s, fsEntryPoint, f.EntryPoint)
	s.PutUsize(fsConstantCount, len(f.Constants))
	s.PutPtr(fsConstants, constants)
	s.PutUsize(fsTargetCount, len(f.Targets))
	s.PutPtr(fsTargets, targets)
	return s.Addr()
}

// RenderPipelineDescriptor optional DepthStencil and Fragment encode as null
// pointers when nil.
type RenderPipelineDescriptor struct {
	Label        string
	Layout       uintptr
	Vertex       VertexState
	Primitive    PrimitiveState
	DepthStencil *DepthStencilState
	Multisample  MultisampleState
	Fragment     *FragmentState
}

func EncodeRenderPipelineDescriptor(m Mem, d *RenderPipelineDescriptor) uintptr {
	var depthStencil, fragment uintptr
	if d.DepthStencil != nil {
		depthStencil = encodeDepthStencil(m, d.DepthStencil)
	}
	if d.Fragment != nil {
		fragment = encodeFragmentState(m, d.Fragment)
	}
	s := m.Alloc(sizeofRenderPipelineDescriptor, 8)
	putStringView(m, s, rpDescLabel, d.Label)
	s.PutPtr(rpDescLayout, d.Layout)
	putVertexState(m, s, rpDescVertex, &d.Vertex)
	putPrimitiveState(s, rpDescPrimitive, &d.Primitive)
	s.PutPtr(rpDescDepthStencil, depthStencil)
	putMultisampleState(s, rpDescMultisample, &d.Multisample)
	s.PutPtr(rpDescFragment, fragment)
	return s.Addr()
}

type ProgrammableStage struct {
	Module     uintptr
	EntryPoint string
	Constants  []ConstantEntry
}

type ComputePipelineDescriptor struct {
	Label   string
	Layout  uintptr
	Compute ProgrammableStage
}

func EncodeComputePipelineDescriptor(m Mem, d *ComputePipelineDescriptor) uintptr {
	constants := encodeConstants(m, d.Compute.Constants)
	s := m.Alloc(sizeofComputePipelineDescriptor, 8)
	putStringView(m, s, cpDescLabel, d.Label)
	s.PutPtr(cpDescLayout, d.Layout)
	s.PutPtr(cpDescCompute+psModule, d.Compute.Module)
	putStringView(m, s, cpDescCompute+psEntryPoint, d.Compute.EntryPoint)
	s.PutUsize(cpDescCompute+psConstantCount, len(d.Compute.Constants))
	s.PutPtr(cpDescCompute+psConstants, constants)
	return s.Addr()
}

type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// RenderPassColorAttachment zero DepthSlice encodes as the "undefined"
// sentinel; rendering into a 3D texture slice sets it explicitly.
type RenderPassColorAttachment struct {
	View          uintptr
	DepthSlice    uint32
	HasDepthSlice bool
	ResolveTarget uintptr
	LoadOp        string
	StoreOp       string
	ClearValue    Color
}

type RenderPassDepthStencilAttachment struct {
	View              uintptr
	DepthLoadOp       string
	DepthStoreOp      string
	DepthClearValue   float32
	DepthReadOnly     bool
	StencilLoadOp     string
	StencilStoreOp    string
	StencilClearValue uint32
	StencilReadOnly   bool
}

type RenderPassDescriptor struct {
	Label            string
	ColorAttachments []RenderPassColorAttachment
	DepthStencil     *RenderPassDepthStencilAttachment
}

func EncodeRenderPassDescriptor(m Mem, d *RenderPassDescriptor) uintptr {
	var colors uintptr
	if len(d.ColorAttachments) > 0 {
		arr := m.Alloc(len(d.ColorAttachments)*sizeofRenderPassColorAttachment, 8)
		for i := range d.ColorAttachments {
			a := &d.ColorAttachments[i]
			off := i * sizeofRenderPassColorAttachment
			arr.PutPtr(off+rpcaView, a.View)
			slice := DepthSliceUndefined
			if a.HasDepthSlice {
				slice = a.DepthSlice
			}
			arr.PutU32(off+rpcaDepthSlice, slice)
			arr.PutPtr(off+rpcaResolveTarget, a.ResolveTarget)
			arr.PutU32(off+rpcaLoadOp, loadOps.code(orDefault(a.LoadOp, "clear")))
			arr.PutU32(off+rpcaStoreOp, storeOps.code(orDefault(a.StoreOp, "store")))
			arr.PutF64(off+rpcaClearValue+colorR, a.ClearValue.R)
			arr.PutF64(off+rpcaClearValue+colorG, a.ClearValue.G)
			arr.PutF64(off+rpcaClearValue+colorB, a.ClearValue.B)
			arr.PutF64(off+rpcaClearValue+colorA, a.ClearValue.A)
		}
		colors = arr.Addr()
	}
	var depthStencil uintptr
	if ds := d.DepthStencil; ds != nil {
		a := m.Alloc(sizeofRenderPassDepthStencilAttachment, 8)
		a.PutPtr(rpdsaView, ds.View)
		if ds.DepthLoadOp != "" {
			a.PutU32(rpdsaDepthLoadOp, loadOps.code(ds.DepthLoadOp))
		}
		if ds.DepthStoreOp != "" {
			a.PutU32(rpdsaDepthStoreOp, storeOps.code(ds.DepthStoreOp))
		}
		a.PutF32(rpdsaDepthClearValue, ds.DepthClearValue)
		a.PutBool(rpdsaDepthReadOnly, ds.DepthReadOnly)
		if ds.StencilLoadOp != "" {
			a.PutU32(rpdsaStencilLoadOp, loadOps.code(ds.StencilLoadOp))
		}
		if ds.StencilStoreOp != "" {
			a.PutU32(rpdsaStencilStoreOp, storeOps.code(ds.StencilStoreOp))
		}
		a.PutU32(rpdsaStencilClearValue, ds.StencilClearValue)
		a.PutBool(rpdsaStencilReadOnly, ds.StencilReadOnly)
		depthStencil = a.Addr()
	}
	s := m.Alloc(sizeofRenderPassDescriptor, 8)
	putStringView(m, s, rpassDescLabel, d.Label)
	s.PutUsize(rpassDescColorCount, len(d.ColorAttachments))
	s.PutPtr(rpassDescColors, colors)
	s.PutPtr(rpassDescDepthStencil, depthStencil)
	return s.Addr()
}

func EncodeComputePassDescriptor(m Mem, label string) uintptr {
	s := m.Alloc(sizeofComputePassDescriptor, 8)
	putStringView(m, s, cpassDescLabel, label)
	return s.Addr()
}
