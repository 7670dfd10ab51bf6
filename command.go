package wgpu

import (
	"runtime"
	"unsafe"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// CommandEncoder records GPU work into a command buffer. Single-use: after
// Finish the encoder only accepts Release.
type CommandEncoder struct {
	handle   uintptr
	device   *Device
	finished bool
	released bool
}

// CreateCommandEncoder starts recording a new command buffer.
func (d *Device) CreateCommandEncoder(label string) (*CommandEncoder, error) {
	const op = "create command encoder"
	handle, err := d.createObject(op, ffi.P().DeviceCreateCommandEncoder, func(m abi.Mem) uintptr {
		return abi.EncodeLabelDescriptor(m, label)
	})
	if err != nil {
		return nil, err
	}
	return &CommandEncoder{handle: handle, device: d}, nil
}

func (e *CommandEncoder) use(op string) error {
	if e.released {
		return errf(op, KindContract, "command encoder already released")
	}
	if e.finished {
		return errf(op, KindContract, "command encoder already finished")
	}
	return nil
}

// RenderPassColorAttachment binds one texture view as a pass color target.
// LoadOp defaults to "clear" and StoreOp to "store".
type RenderPassColorAttachment struct {
	View          *TextureView
	DepthSlice    uint32
	HasDepthSlice bool
	ResolveTarget *TextureView
	LoadOp        string
	StoreOp       string
	ClearValue    Color
}

// RenderPassDepthStencilAttachment binds a depth/stencil view.
type RenderPassDepthStencilAttachment struct {
	View              *TextureView
	DepthLoadOp       string
	DepthStoreOp      string
	DepthClearValue   float32
	DepthReadOnly     bool
	StencilLoadOp     string
	StencilStoreOp    string
	StencilClearValue uint32
	StencilReadOnly   bool
}

// RenderPassDescriptor describes one render pass.
type RenderPassDescriptor struct {
	Label            string
	ColorAttachments []RenderPassColorAttachment
	DepthStencil     *RenderPassDepthStencilAttachment
}

func (d *RenderPassDescriptor) validate(op string) error {
	if d == nil {
		return errf(op, KindValidation, "nil descriptor")
	}
	if len(d.ColorAttachments) == 0 && d.DepthStencil == nil {
		return errf(op, KindValidation, "pass has no attachments")
	}
	for i := range d.ColorAttachments {
		a := &d.ColorAttachments[i]
		if a.View == nil {
			return errf(op, KindValidation, "color attachment %d missing view", i)
		}
		if err := a.View.use(op); err != nil {
			return err
		}
		if a.ResolveTarget != nil {
			if err := a.ResolveTarget.use(op); err != nil {
				return err
			}
		}
		if err := checkEnum(op, "load-op", a.LoadOp); err != nil {
			return err
		}
		if err := checkEnum(op, "store-op", a.StoreOp); err != nil {
			return err
		}
	}
	if ds := d.DepthStencil; ds != nil {
		if ds.View == nil {
			return errf(op, KindValidation, "depth-stencil attachment missing view")
		}
		if err := ds.View.use(op); err != nil {
			return err
		}
		for _, o := range []string{ds.DepthLoadOp, ds.StencilLoadOp} {
			if err := checkEnum(op, "load-op", o); err != nil {
				return err
			}
		}
		for _, o := range []string{ds.DepthStoreOp, ds.StencilStoreOp} {
			if err := checkEnum(op, "store-op", o); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderPass records draw commands between BeginRenderPass and End.
type RenderPass struct {
	handle   uintptr
	encoder  *CommandEncoder
	ended    bool
	released bool
}

// BeginRenderPass opens a render pass on the encoder. A null native pass is
// a fatal creation error: the command sequence cannot proceed.
func (e *CommandEncoder) BeginRenderPass(desc *RenderPassDescriptor) (*RenderPass, error) {
	const op = "begin render pass"
	if err := e.use(op); err != nil {
		return nil, err
	}
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	colors := make([]abi.RenderPassColorAttachment, len(desc.ColorAttachments))
	for i := range desc.ColorAttachments {
		a := &desc.ColorAttachments[i]
		colors[i] = abi.RenderPassColorAttachment{
			View:          a.View.handle,
			DepthSlice:    a.DepthSlice,
			HasDepthSlice: a.HasDepthSlice,
			LoadOp:        a.LoadOp,
			StoreOp:       a.StoreOp,
			ClearValue:    a.ClearValue,
		}
		if a.ResolveTarget != nil {
			colors[i].ResolveTarget = a.ResolveTarget.handle
		}
	}
	lowered := abi.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: colors,
	}
	if ds := desc.DepthStencil; ds != nil {
		lowered.DepthStencil = &abi.RenderPassDepthStencilAttachment{
			View:              ds.View.handle,
			DepthLoadOp:       ds.DepthLoadOp,
			DepthStoreOp:      ds.DepthStoreOp,
			DepthClearValue:   ds.DepthClearValue,
			DepthReadOnly:     ds.DepthReadOnly,
			StencilLoadOp:     ds.StencilLoadOp,
			StencilStoreOp:    ds.StencilStoreOp,
			StencilClearValue: ds.StencilClearValue,
			StencilReadOnly:   ds.StencilReadOnly,
		}
	}
	m := abi.NewArena()
	ptr := abi.EncodeRenderPassDescriptor(m, &lowered)
	handle := ffi.P().CommandEncoderBeginRenderPass(e.handle, ptr)
	runtime.KeepAlive(m)
	if handle == 0 {
		return nil, errf(op, KindCreation, "native returned null render pass")
	}
	return &RenderPass{handle: handle, encoder: e}, nil
}

func (p *RenderPass) use(op string) error {
	if p.released {
		return errf(op, KindContract, "render pass already released")
	}
	if p.ended {
		return errf(op, KindContract, "render pass already ended")
	}
	return nil
}

// SetPipeline binds the render pipeline for subsequent draws.
func (p *RenderPass) SetPipeline(pipeline *RenderPipeline) error {
	const op = "set render pipeline"
	if err := p.use(op); err != nil {
		return err
	}
	if pipeline == nil {
		return errf(op, KindValidation, "nil pipeline")
	}
	if err := pipeline.use(op); err != nil {
		return err
	}
	ffi.P().RenderPassEncoderSetPipeline(p.handle, pipeline.handle)
	return nil
}

// setBindGroup is shared by the render and compute pass paths.
func setBindGroup(op string, call func(pass uintptr, index uint32, group uintptr, offsetCount uint64, offsets uintptr), pass uintptr, index uint32, group *BindGroup, dynamicOffsets []uint32) error {
	if group == nil {
		return errf(op, KindValidation, "nil bind group")
	}
	if err := group.use(op); err != nil {
		return err
	}
	var offsets uintptr
	if len(dynamicOffsets) > 0 {
		offsets = uintptr(unsafe.Pointer(&dynamicOffsets[0]))
	}
	call(pass, index, group.handle, uint64(len(dynamicOffsets)), offsets)
	runtime.KeepAlive(dynamicOffsets)
	return nil
}

// SetBindGroup binds a bind group at the given index.
func (p *RenderPass) SetBindGroup(index uint32, group *BindGroup, dynamicOffsets []uint32) error {
	const op = "set bind group"
	if err := p.use(op); err != nil {
		return err
	}
	return setBindGroup(op, ffi.P().RenderPassEncoderSetBindGroup, p.handle, index, group, dynamicOffsets)
}

// SetVertexBuffer binds a vertex buffer to a slot from offset to its end.
func (p *RenderPass) SetVertexBuffer(slot uint32, buf *Buffer, offset uint64) error {
	const op = "set vertex buffer"
	if err := p.use(op); err != nil {
		return err
	}
	if buf == nil {
		return errf(op, KindValidation, "nil buffer")
	}
	if err := buf.use(op); err != nil {
		return err
	}
	if err := buf.checkRange(op, offset, 0); err != nil {
		return err
	}
	ffi.P().RenderPassEncoderSetVertexBuffer(p.handle, slot, buf.handle, offset, buf.size-offset)
	return nil
}

// SetIndexBuffer binds the index buffer. Format is "uint16" or "uint32".
func (p *RenderPass) SetIndexBuffer(buf *Buffer, format string, offset uint64) error {
	const op = "set index buffer"
	if err := p.use(op); err != nil {
		return err
	}
	if buf == nil {
		return errf(op, KindValidation, "nil buffer")
	}
	if err := buf.use(op); err != nil {
		return err
	}
	if format != "uint16" && format != "uint32" {
		return errf(op, KindValidation, "unknown index-format %q", format)
	}
	if err := buf.checkRange(op, offset, 0); err != nil {
		return err
	}
	ffi.P().RenderPassEncoderSetIndexBuffer(p.handle, buf.handle, abi.EnumCode("index-format", format), offset, buf.size-offset)
	return nil
}

// SetViewport sets the viewport transform.
func (p *RenderPass) SetViewport(x, y, w, h, minDepth, maxDepth float32) error {
	const op = "set viewport"
	if err := p.use(op); err != nil {
		return err
	}
	ffi.P().RenderPassEncoderSetViewport(p.handle, x, y, w, h, minDepth, maxDepth)
	return nil
}

// SetScissorRect clips rendering to the given rectangle.
func (p *RenderPass) SetScissorRect(x, y, w, h uint32) error {
	const op = "set scissor rect"
	if err := p.use(op); err != nil {
		return err
	}
	ffi.P().RenderPassEncoderSetScissorRect(p.handle, x, y, w, h)
	return nil
}

// Draw issues a non-indexed draw.
func (p *RenderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) error {
	const op = "draw"
	if err := p.use(op); err != nil {
		return err
	}
	ffi.P().RenderPassEncoderDraw(p.handle, vertexCount, instanceCount, firstVertex, firstInstance)
	return nil
}

// DrawIndexed issues an indexed draw.
func (p *RenderPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) error {
	const op = "draw indexed"
	if err := p.use(op); err != nil {
		return err
	}
	ffi.P().RenderPassEncoderDrawIndexed(p.handle, indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
	return nil
}

// End closes the pass. Recording continues on the encoder.
func (p *RenderPass) End() error {
	const op = "end render pass"
	if err := p.use(op); err != nil {
		return err
	}
	p.ended = true
	ffi.P().RenderPassEncoderEnd(p.handle)
	return nil
}

// Release frees the pass handle.
func (p *RenderPass) Release() error {
	const op = "release render pass"
	if p.released {
		return errf(op, KindContract, "render pass already released")
	}
	p.released = true
	ffi.P().RenderPassEncoderRelease(p.handle)
	return nil
}

// ComputePass records dispatches between BeginComputePass and End.
type ComputePass struct {
	handle   uintptr
	encoder  *CommandEncoder
	ended    bool
	released bool
}

// BeginComputePass opens a compute pass on the encoder.
func (e *CommandEncoder) BeginComputePass(label string) (*ComputePass, error) {
	const op = "begin compute pass"
	if err := e.use(op); err != nil {
		return nil, err
	}
	m := abi.NewArena()
	ptr := abi.EncodeComputePassDescriptor(m, label)
	handle := ffi.P().CommandEncoderBeginComputePass(e.handle, ptr)
	runtime.KeepAlive(m)
	if handle == 0 {
		return nil, errf(op, KindCreation, "native returned null compute pass")
	}
	return &ComputePass{handle: handle, encoder: e}, nil
}

func (p *ComputePass) use(op string) error {
	if p.released {
		return errf(op, KindContract, "compute pass already released")
	}
	if p.ended {
		return errf(op, KindContract, "compute pass already ended")
	}
	return nil
}

// SetPipeline binds the compute pipeline for subsequent dispatches.
func (p *ComputePass) SetPipeline(pipeline *ComputePipeline) error {
	const op = "set compute pipeline"
	if err := p.use(op); err != nil {
		return err
	}
	if pipeline == nil {
		return errf(op, KindValidation, "nil pipeline")
	}
	if err := pipeline.use(op); err != nil {
		return err
	}
	ffi.P().ComputePassEncoderSetPipeline(p.handle, pipeline.handle)
	return nil
}

// SetBindGroup binds a bind group at the given index.
func (p *ComputePass) SetBindGroup(index uint32, group *BindGroup, dynamicOffsets []uint32) error {
	const op = "set bind group"
	if err := p.use(op); err != nil {
		return err
	}
	return setBindGroup(op, ffi.P().ComputePassEncoderSetBindGroup, p.handle, index, group, dynamicOffsets)
}

// DispatchWorkgroups launches the bound pipeline.
func (p *ComputePass) DispatchWorkgroups(x, y, z uint32) error {
	const op = "dispatch workgroups"
	if err := p.use(op); err != nil {
		return err
	}
	if x == 0 || y == 0 || z == 0 {
		return errf(op, KindValidation, "zero workgroup count %dx%dx%d", x, y, z)
	}
	ffi.P().ComputePassEncoderDispatchWorkgroups(p.handle, x, y, z)
	return nil
}

// End closes the pass.
func (p *ComputePass) End() error {
	const op = "end compute pass"
	if err := p.use(op); err != nil {
		return err
	}
	p.ended = true
	ffi.P().ComputePassEncoderEnd(p.handle)
	return nil
}

// Release frees the pass handle.
func (p *ComputePass) Release() error {
	const op = "release compute pass"
	if p.released {
		return errf(op, KindContract, "compute pass already released")
	}
	p.released = true
	ffi.P().ComputePassEncoderRelease(p.handle)
	return nil
}

// CopyBufferToBuffer records a buffer copy. Both ranges are checked against
// the cached sizes.
func (e *CommandEncoder) CopyBufferToBuffer(src *Buffer, srcOffset uint64, dst *Buffer, dstOffset, size uint64) error {
	const op = "copy buffer to buffer"
	if err := e.use(op); err != nil {
		return err
	}
	if src == nil || dst == nil {
		return errf(op, KindValidation, "nil buffer")
	}
	if err := src.use(op); err != nil {
		return err
	}
	if err := dst.use(op); err != nil {
		return err
	}
	if err := src.checkRange(op, srcOffset, size); err != nil {
		return err
	}
	if err := dst.checkRange(op, dstOffset, size); err != nil {
		return err
	}
	ffi.P().CommandEncoderCopyBufferToBuffer(e.handle, src.handle, srcOffset, dst.handle, dstOffset, size)
	return nil
}

// TexelCopyBuffer addresses a buffer as one side of a buffer-texture copy.
type TexelCopyBuffer struct {
	Buffer *Buffer
	Layout TexelCopyLayout
}

func (b *TexelCopyBuffer) validate(op string) error {
	if b == nil || b.Buffer == nil {
		return errf(op, KindValidation, "missing buffer")
	}
	return b.Buffer.use(op)
}

// CopyBufferToTexture records a linear-to-texture copy.
func (e *CommandEncoder) CopyBufferToTexture(src *TexelCopyBuffer, dst *TexelCopyTexture, width, height, depth uint32) error {
	const op = "copy buffer to texture"
	if err := e.use(op); err != nil {
		return err
	}
	if err := src.validate(op); err != nil {
		return err
	}
	if err := dst.validate(op); err != nil {
		return err
	}
	m := abi.NewArena()
	srcPtr := abi.EncodeTexelCopyBuffer(m, src.Buffer.handle, &src.Layout)
	dstPtr := abi.EncodeTexelCopyTexture(m, dst.lower())
	extent := abi.EncodeExtent3D(m, width, height, depth)
	ffi.P().CommandEncoderCopyBufferToTexture(e.handle, srcPtr, dstPtr, extent)
	runtime.KeepAlive(m)
	return nil
}

// CopyTextureToBuffer records a texture-to-linear copy.
func (e *CommandEncoder) CopyTextureToBuffer(src *TexelCopyTexture, dst *TexelCopyBuffer, width, height, depth uint32) error {
	const op = "copy texture to buffer"
	if err := e.use(op); err != nil {
		return err
	}
	if err := src.validate(op); err != nil {
		return err
	}
	if err := dst.validate(op); err != nil {
		return err
	}
	m := abi.NewArena()
	srcPtr := abi.EncodeTexelCopyTexture(m, src.lower())
	dstPtr := abi.EncodeTexelCopyBuffer(m, dst.Buffer.handle, &dst.Layout)
	extent := abi.EncodeExtent3D(m, width, height, depth)
	ffi.P().CommandEncoderCopyTextureToBuffer(e.handle, srcPtr, dstPtr, extent)
	runtime.KeepAlive(m)
	return nil
}

// CommandBuffer is a finished, submittable command sequence.
type CommandBuffer struct {
	handle   uintptr
	device   *Device
	released bool
}

func (b *CommandBuffer) use(op string) error {
	if b.released {
		return errf(op, KindContract, "command buffer already released")
	}
	return nil
}

// Finish seals the encoder into a command buffer. The encoder accepts no
// further recording.
func (e *CommandEncoder) Finish(label string) (*CommandBuffer, error) {
	const op = "finish command encoder"
	if err := e.use(op); err != nil {
		return nil, err
	}
	m := abi.NewArena()
	ptr := abi.EncodeLabelDescriptor(m, label)
	handle := ffi.P().CommandEncoderFinish(e.handle, ptr)
	runtime.KeepAlive(m)
	e.finished = true
	if handle == 0 {
		return nil, errf(op, KindCreation, "native returned null command buffer")
	}
	return &CommandBuffer{handle: handle, device: e.device}, nil
}

// Release frees the encoder handle.
func (e *CommandEncoder) Release() error {
	const op = "release command encoder"
	if e.released {
		return errf(op, KindContract, "command encoder already released")
	}
	e.released = true
	ffi.P().CommandEncoderRelease(e.handle)
	return nil
}

// Release frees the command buffer handle.
func (b *CommandBuffer) Release() error {
	const op = "release command buffer"
	if err := b.use(op); err != nil {
		return err
	}
	b.released = true
	ffi.P().CommandBufferRelease(b.handle)
	return nil
}
