package wgpu

import (
	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// BufferDescriptor describes a GPU buffer allocation.
type BufferDescriptor struct {
	Label            string
	Usage            uint64
	Size             uint64
	MappedAtCreation bool
}

func (d *BufferDescriptor) validate(op string) error {
	if d == nil {
		return errf(op, KindValidation, "nil descriptor")
	}
	if d.Size == 0 {
		return errf(op, KindValidation, "zero-size buffer")
	}
	if d.Usage == 0 {
		return errf(op, KindValidation, "empty usage flags")
	}
	return nil
}

// Buffer wraps one native buffer handle. Size and usage are cached at
// creation so writes can be bounds-checked without a native round trip.
type Buffer struct {
	handle   uintptr
	device   *Device
	label    string
	size     uint64
	usage    uint64
	released bool
}

// CreateBuffer allocates a GPU buffer.
func (d *Device) CreateBuffer(desc *BufferDescriptor) (*Buffer, error) {
	const op = "create buffer"
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateBuffer, func(m abi.Mem) uintptr {
		return abi.EncodeBufferDescriptor(m, &abi.BufferDescriptor{
			Label:            desc.Label,
			Usage:            desc.Usage,
			Size:             desc.Size,
			MappedAtCreation: desc.MappedAtCreation,
		})
	})
	if err != nil {
		return nil, err
	}
	return &Buffer{
		handle: handle,
		device: d,
		label:  desc.Label,
		size:   desc.Size,
		usage:  desc.Usage,
	}, nil
}

// Size returns the byte size the buffer was created with.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the usage flags the buffer was created with.
func (b *Buffer) Usage() uint64 { return b.usage }

func (b *Buffer) use(op string) error {
	if b.released {
		return errf(op, KindContract, "buffer already released")
	}
	return nil
}

// checkRange validates a byte range against the cached size before it
// reaches the native library.
func (b *Buffer) checkRange(op string, offset, n uint64) error {
	if offset > b.size || n > b.size-offset {
		return errf(op, KindValidation, "range [%d,%d) outside %d-byte buffer", offset, offset+n, b.size)
	}
	return nil
}

// Destroy frees the buffer's GPU memory eagerly while keeping the handle
// alive. Release must still be called.
func (b *Buffer) Destroy() error {
	const op = "destroy buffer"
	if err := b.use(op); err != nil {
		return err
	}
	ffi.P().BufferDestroy(b.handle)
	return nil
}

// Release frees the native handle. Exactly once; a second call errors
// instead of reaching the native library.
func (b *Buffer) Release() error {
	const op = "release buffer"
	if err := b.use(op); err != nil {
		return err
	}
	b.released = true
	ffi.P().BufferRelease(b.handle)
	return nil
}
