package wgpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderTarget creates an offscreen color attachment view.
func renderTarget(t *testing.T, device *Device) *TextureView {
	t.Helper()
	tex, err := device.CreateTexture(&TextureDescriptor{
		Width: 256, Height: 256,
		Usage:  TextureUsageRenderAttachment,
		Format: "bgra8unorm",
	})
	require.NoError(t, err)
	view, err := tex.CreateView(nil)
	require.NoError(t, err)
	return view
}

func TestRenderPassRecording(t *testing.T) {
	f, _, device := newTestDevice(t)
	mod, err := device.CreateShaderModuleWGSL("triangle", testWGSL)
	require.NoError(t, err)
	pipeline, err := device.CreateRenderPipeline(triangleDescriptor(mod))
	require.NoError(t, err)
	vertices, err := device.CreateBuffer(&BufferDescriptor{Size: 48, Usage: BufferUsageVertex | BufferUsageCopyDst})
	require.NoError(t, err)

	enc, err := device.CreateCommandEncoder("frame")
	require.NoError(t, err)
	pass, err := enc.BeginRenderPass(&RenderPassDescriptor{
		ColorAttachments: []RenderPassColorAttachment{{
			View:       renderTarget(t, device),
			LoadOp:     "clear",
			StoreOp:    "store",
			ClearValue: Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		}},
	})
	require.NoError(t, err)

	require.NoError(t, pass.SetPipeline(pipeline))
	require.NoError(t, pass.SetVertexBuffer(0, vertices, 0))
	require.NoError(t, pass.SetViewport(0, 0, 256, 256, 0, 1))
	require.NoError(t, pass.SetScissorRect(0, 0, 256, 256))
	require.NoError(t, pass.Draw(3, 1, 0, 0))
	require.NoError(t, pass.End())

	cb, err := enc.Finish("frame")
	require.NoError(t, err)
	require.NoError(t, device.Queue().Submit(cb))

	require.Len(t, f.draws, 1)
	assert.Equal(t, [4]uint32{3, 1, 0, 0}, f.draws[0])
	require.Len(t, f.submits, 1)
	assert.Equal(t, []uintptr{cb.handle}, f.submits[0])
}

func TestRenderPassEndedRejectsRecording(t *testing.T) {
	_, _, device := newTestDevice(t)
	enc, err := device.CreateCommandEncoder("")
	require.NoError(t, err)
	pass, err := enc.BeginRenderPass(&RenderPassDescriptor{
		ColorAttachments: []RenderPassColorAttachment{{View: renderTarget(t, device)}},
	})
	require.NoError(t, err)
	require.NoError(t, pass.End())

	err = pass.Draw(3, 1, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContract))
	assert.True(t, errors.Is(pass.End(), ErrContract))

	require.NoError(t, pass.Release())
	assert.True(t, errors.Is(pass.Release(), ErrContract))
}

func TestRenderPassDescriptorValidation(t *testing.T) {
	_, _, device := newTestDevice(t)
	enc, err := device.CreateCommandEncoder("")
	require.NoError(t, err)

	_, err = enc.BeginRenderPass(&RenderPassDescriptor{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation), "a pass needs at least one attachment")

	_, err = enc.BeginRenderPass(&RenderPassDescriptor{
		ColorAttachments: []RenderPassColorAttachment{{View: renderTarget(t, device), LoadOp: "maybe"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestSetIndexBufferFormat(t *testing.T) {
	_, _, device := newTestDevice(t)
	enc, err := device.CreateCommandEncoder("")
	require.NoError(t, err)
	pass, err := enc.BeginRenderPass(&RenderPassDescriptor{
		ColorAttachments: []RenderPassColorAttachment{{View: renderTarget(t, device)}},
	})
	require.NoError(t, err)
	indices, err := device.CreateBuffer(&BufferDescriptor{Size: 64, Usage: BufferUsageIndex})
	require.NoError(t, err)

	require.NoError(t, pass.SetIndexBuffer(indices, "uint16", 0))
	require.NoError(t, pass.SetIndexBuffer(indices, "uint32", 32))

	err = pass.SetIndexBuffer(indices, "uint64", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	err = pass.SetIndexBuffer(indices, "uint16", 128)
	assert.True(t, errors.Is(err, ErrValidation), "offset past buffer end")
	require.NoError(t, pass.DrawIndexed(6, 1, 0, 0, 0))
}

func TestFinishSealsEncoder(t *testing.T) {
	_, _, device := newTestDevice(t)
	enc, err := device.CreateCommandEncoder("once")
	require.NoError(t, err)
	_, err = enc.Finish("once")
	require.NoError(t, err)

	_, err = enc.Finish("twice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContract))
	_, err = enc.BeginComputePass("late")
	assert.True(t, errors.Is(err, ErrContract))

	require.NoError(t, enc.Release())
}

func TestComputePassRecording(t *testing.T) {
	f, _, device := newTestDevice(t)
	mod, err := device.CreateShaderModuleWGSL("doubler", "@compute @workgroup_size(64) fn main() {}")
	require.NoError(t, err)
	pipeline, err := device.CreateComputePipeline(&ComputePipelineDescriptor{
		Compute: ProgrammableStage{Module: mod, EntryPoint: "main"},
	})
	require.NoError(t, err)

	bgl, err := device.CreateBindGroupLayout(&BindGroupLayoutDescriptor{
		Entries: []BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: ShaderStageCompute,
			Buffer:     &BufferBindingLayout{Type: "storage"},
		}},
	})
	require.NoError(t, err)
	buf, err := device.CreateBuffer(&BufferDescriptor{Size: 4096, Usage: BufferUsageStorage})
	require.NoError(t, err)
	group, err := device.CreateBindGroup(&BindGroupDescriptor{
		Layout:  bgl,
		Entries: []BindGroupEntry{{Binding: 0, Buffer: buf}},
	})
	require.NoError(t, err)

	enc, err := device.CreateCommandEncoder("compute")
	require.NoError(t, err)
	pass, err := enc.BeginComputePass("doubling")
	require.NoError(t, err)
	require.NoError(t, pass.SetPipeline(pipeline))
	require.NoError(t, pass.SetBindGroup(0, group, nil))
	require.NoError(t, pass.DispatchWorkgroups(16, 1, 1))

	err = pass.DispatchWorkgroups(0, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	require.NoError(t, pass.End())
	cb, err := enc.Finish("compute")
	require.NoError(t, err)
	require.NoError(t, device.Queue().Submit(cb))

	require.Len(t, f.dispatches, 1)
	assert.Equal(t, [3]uint32{16, 1, 1}, f.dispatches[0])
}

func TestCopyBufferToBufferBounds(t *testing.T) {
	_, _, device := newTestDevice(t)
	src, err := device.CreateBuffer(&BufferDescriptor{Size: 64, Usage: BufferUsageCopySrc})
	require.NoError(t, err)
	dst, err := device.CreateBuffer(&BufferDescriptor{Size: 32, Usage: BufferUsageCopyDst})
	require.NoError(t, err)
	enc, err := device.CreateCommandEncoder("")
	require.NoError(t, err)

	require.NoError(t, enc.CopyBufferToBuffer(src, 0, dst, 0, 32))

	err = enc.CopyBufferToBuffer(src, 0, dst, 0, 64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation), "copy larger than destination")
	err = enc.CopyBufferToBuffer(src, 48, dst, 0, 32)
	assert.True(t, errors.Is(err, ErrValidation), "source range past end")
}

func TestCopyBufferTexture(t *testing.T) {
	_, _, device := newTestDevice(t)
	tex, err := device.CreateTexture(&TextureDescriptor{
		Width: 16, Height: 16,
		Usage:  TextureUsageCopyDst | TextureUsageCopySrc,
		Format: "rgba8unorm",
	})
	require.NoError(t, err)
	buf, err := device.CreateBuffer(&BufferDescriptor{Size: 1024, Usage: BufferUsageCopySrc | BufferUsageCopyDst})
	require.NoError(t, err)
	enc, err := device.CreateCommandEncoder("")
	require.NoError(t, err)

	src := &TexelCopyBuffer{Buffer: buf, Layout: TexelCopyLayout{BytesPerRow: 64, RowsPerImage: 16}}
	dst := &TexelCopyTexture{Texture: tex}
	require.NoError(t, enc.CopyBufferToTexture(src, dst, 16, 16, 1))
	require.NoError(t, enc.CopyTextureToBuffer(dst, src, 16, 16, 1))

	require.NoError(t, tex.Release())
	err = enc.CopyBufferToTexture(src, dst, 16, 16, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContract))
}

func TestQueueWriteTexture(t *testing.T) {
	_, _, device := newTestDevice(t)
	tex, err := device.CreateTexture(&TextureDescriptor{
		Width: 4, Height: 4,
		Usage:  TextureUsageCopyDst | TextureUsageTextureBinding,
		Format: "rgba8unorm",
	})
	require.NoError(t, err)
	q := device.Queue()
	data := make([]byte, 4*4*4)

	require.NoError(t, q.WriteTexture(&TexelCopyTexture{Texture: tex}, data,
		&TexelCopyLayout{BytesPerRow: 16, RowsPerImage: 4}, 4, 4, 1))

	err = q.WriteTexture(&TexelCopyTexture{Texture: tex}, nil, nil, 4, 4, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	err = q.WriteTexture(&TexelCopyTexture{Texture: tex}, data, nil, 0, 4, 1)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestSubmitRejectsReleasedBuffers(t *testing.T) {
	_, _, device := newTestDevice(t)
	enc, err := device.CreateCommandEncoder("")
	require.NoError(t, err)
	cb, err := enc.Finish("")
	require.NoError(t, err)
	require.NoError(t, cb.Release())

	err = device.Queue().Submit(cb)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContract))

	err = device.Queue().Submit((*CommandBuffer)(nil))
	assert.True(t, errors.Is(err, ErrValidation))
}
