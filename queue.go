package wgpu

import (
	"runtime"
	"unsafe"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// Queue is the device's submission point. It is owned by its Device and is
// not independently released; Device.Release reclaims it.
type Queue struct {
	handle   uintptr
	device   *Device
	released bool
}

func (q *Queue) use(op string) error {
	if q.released {
		return errf(op, KindContract, "queue's device already released")
	}
	return nil
}

// Submit hands finished command buffers to the GPU. Buffers in one call
// execute in slice order; ordering across separate calls is whatever the
// native library provides.
func (q *Queue) Submit(buffers ...*CommandBuffer) error {
	const op = "submit"
	if err := q.use(op); err != nil {
		return err
	}
	handles := make([]uintptr, len(buffers))
	for i, b := range buffers {
		if b == nil {
			return errf(op, KindValidation, "nil command buffer at %d", i)
		}
		if err := b.use(op); err != nil {
			return err
		}
		handles[i] = b.handle
	}
	m := abi.NewArena()
	arr := abi.EncodeHandleArray(m, handles)
	ffi.P().QueueSubmit(q.handle, uint64(len(handles)), arr)
	runtime.KeepAlive(m)
	return nil
}

// WriteBuffer copies data into a buffer at offset. The range is checked
// against the buffer's cached size before anything crosses the gateway.
func (q *Queue) WriteBuffer(buf *Buffer, offset uint64, data []byte) error {
	const op = "write buffer"
	if err := q.use(op); err != nil {
		return err
	}
	if buf == nil {
		return errf(op, KindValidation, "nil buffer")
	}
	if err := buf.use(op); err != nil {
		return err
	}
	if err := buf.checkRange(op, offset, uint64(len(data))); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	ffi.P().QueueWriteBuffer(q.handle, buf.handle, offset, uintptr(unsafe.Pointer(&data[0])), uint64(len(data)))
	runtime.KeepAlive(data)
	return nil
}

// TexelCopyTexture addresses one mip level and origin of a texture as a
// copy destination or source.
type TexelCopyTexture struct {
	Texture  *Texture
	MipLevel uint32
	OriginX  uint32
	OriginY  uint32
	OriginZ  uint32
	Aspect   string
}

func (t *TexelCopyTexture) validate(op string) error {
	if t == nil || t.Texture == nil {
		return errf(op, KindValidation, "missing texture")
	}
	if err := t.Texture.use(op); err != nil {
		return err
	}
	return checkEnum(op, "texture-aspect", t.Aspect)
}

func (t *TexelCopyTexture) lower() *abi.TexelCopyTexture {
	return &abi.TexelCopyTexture{
		Texture:  t.Texture.handle,
		MipLevel: t.MipLevel,
		OriginX:  t.OriginX,
		OriginY:  t.OriginY,
		OriginZ:  t.OriginZ,
		Aspect:   t.Aspect,
	}
}

// TexelCopyLayout describes how texel rows and images are laid out in a
// linear data block. Zero strides mean "single row / single image".
type TexelCopyLayout = abi.TexelCopyLayout

// WriteTexture copies linear texel data into a texture region of the given
// extent.
func (q *Queue) WriteTexture(dst *TexelCopyTexture, data []byte, layout *TexelCopyLayout, width, height, depth uint32) error {
	const op = "write texture"
	if err := q.use(op); err != nil {
		return err
	}
	if err := dst.validate(op); err != nil {
		return err
	}
	if len(data) == 0 {
		return errf(op, KindValidation, "empty texel data")
	}
	if width == 0 || height == 0 {
		return errf(op, KindValidation, "zero copy extent %dx%d", width, height)
	}
	if layout == nil {
		layout = &TexelCopyLayout{}
	}
	m := abi.NewArena()
	dstPtr := abi.EncodeTexelCopyTexture(m, dst.lower())
	layoutPtr := abi.EncodeTexelCopyLayout(m, layout)
	extentPtr := abi.EncodeExtent3D(m, width, height, depth)
	ffi.P().QueueWriteTexture(q.handle, dstPtr, uintptr(unsafe.Pointer(&data[0])), uint64(len(data)), layoutPtr, extentPtr)
	runtime.KeepAlive(m)
	runtime.KeepAlive(data)
	return nil
}
