package wgpu

import (
	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// Per-binding layout blocks. Exactly one of the four is set per entry.
type (
	BufferBindingLayout         = abi.BufferBindingLayout
	SamplerBindingLayout        = abi.SamplerBindingLayout
	TextureBindingLayout        = abi.TextureBindingLayout
	StorageTextureBindingLayout = abi.StorageTextureBindingLayout
)

// BindGroupLayoutEntry declares one binding slot and the shader stages that
// see it.
type BindGroupLayoutEntry = abi.BindGroupLayoutEntry

// BindGroupLayoutDescriptor describes the shape of a bind group.
type BindGroupLayoutDescriptor struct {
	Label   string
	Entries []BindGroupLayoutEntry
}

func (d *BindGroupLayoutDescriptor) validate(op string) error {
	if d == nil {
		return errf(op, KindValidation, "nil descriptor")
	}
	for i := range d.Entries {
		e := &d.Entries[i]
		set := 0
		for _, present := range []bool{e.Buffer != nil, e.Sampler != nil, e.Texture != nil, e.StorageTexture != nil} {
			if present {
				set++
			}
		}
		if set != 1 {
			return errf(op, KindValidation, "entry %d must set exactly one binding layout, has %d", i, set)
		}
		if e.Visibility == 0 {
			return errf(op, KindValidation, "entry %d has empty stage visibility", i)
		}
		if e.Buffer != nil {
			if err := checkEnum(op, "buffer-binding-type", e.Buffer.Type); err != nil {
				return err
			}
		}
		if e.Sampler != nil {
			if err := checkEnum(op, "sampler-binding-type", e.Sampler.Type); err != nil {
				return err
			}
		}
		if e.Texture != nil {
			if err := checkEnum(op, "texture-sample-type", e.Texture.SampleType); err != nil {
				return err
			}
			if err := checkEnum(op, "texture-view-dimension", e.Texture.ViewDimension); err != nil {
				return err
			}
		}
		if e.StorageTexture != nil {
			if err := checkEnum(op, "storage-texture-access", e.StorageTexture.Access); err != nil {
				return err
			}
			if e.StorageTexture.Format == "" {
				return errf(op, KindValidation, "entry %d storage texture missing format", i)
			}
			if err := checkEnum(op, "texture-format", e.StorageTexture.Format); err != nil {
				return err
			}
			if err := checkEnum(op, "texture-view-dimension", e.StorageTexture.ViewDimension); err != nil {
				return err
			}
		}
	}
	return nil
}

// BindGroupLayout wraps one native bind group layout handle.
type BindGroupLayout struct {
	handle   uintptr
	device   *Device
	released bool
}

// CreateBindGroupLayout creates a bind group layout.
func (d *Device) CreateBindGroupLayout(desc *BindGroupLayoutDescriptor) (*BindGroupLayout, error) {
	const op = "create bind group layout"
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateBindGroupLayout, func(m abi.Mem) uintptr {
		return abi.EncodeBindGroupLayoutDescriptor(m, &abi.BindGroupLayoutDescriptor{
			Label:   desc.Label,
			Entries: desc.Entries,
		})
	})
	if err != nil {
		return nil, err
	}
	return &BindGroupLayout{handle: handle, device: d}, nil
}

func (l *BindGroupLayout) use(op string) error {
	if l.released {
		return errf(op, KindContract, "bind group layout already released")
	}
	return nil
}

// Release frees the layout handle.
func (l *BindGroupLayout) Release() error {
	const op = "release bind group layout"
	if err := l.use(op); err != nil {
		return err
	}
	l.released = true
	ffi.P().BindGroupLayoutRelease(l.handle)
	return nil
}

// BindGroupEntry binds one resource into a slot. Exactly one of Buffer,
// Sampler and TextureView is set. A zero Size on a buffer binding means
// WholeSize.
type BindGroupEntry struct {
	Binding     uint32
	Buffer      *Buffer
	Offset      uint64
	Size        uint64
	Sampler     *Sampler
	TextureView *TextureView
}

// BindGroupDescriptor pairs a layout with concrete resources.
type BindGroupDescriptor struct {
	Label   string
	Layout  *BindGroupLayout
	Entries []BindGroupEntry
}

func (d *BindGroupDescriptor) validate(op string) error {
	if d == nil {
		return errf(op, KindValidation, "nil descriptor")
	}
	if d.Layout == nil {
		return errf(op, KindValidation, "missing layout")
	}
	if err := d.Layout.use(op); err != nil {
		return err
	}
	for i := range d.Entries {
		e := &d.Entries[i]
		set := 0
		for _, present := range []bool{e.Buffer != nil, e.Sampler != nil, e.TextureView != nil} {
			if present {
				set++
			}
		}
		if set != 1 {
			return errf(op, KindValidation, "entry %d must bind exactly one resource, binds %d", i, set)
		}
		switch {
		case e.Buffer != nil:
			if err := e.Buffer.use(op); err != nil {
				return err
			}
			size := e.Size
			if size == 0 || size == WholeSize {
				size = e.Buffer.size - min(e.Offset, e.Buffer.size)
			}
			if err := e.Buffer.checkRange(op, e.Offset, size); err != nil {
				return err
			}
		case e.Sampler != nil:
			if err := e.Sampler.use(op); err != nil {
				return err
			}
		case e.TextureView != nil:
			if err := e.TextureView.use(op); err != nil {
				return err
			}
		}
	}
	return nil
}

// BindGroup wraps one native bind group handle.
type BindGroup struct {
	handle   uintptr
	device   *Device
	released bool
}

// CreateBindGroup creates a bind group.
func (d *Device) CreateBindGroup(desc *BindGroupDescriptor) (*BindGroup, error) {
	const op = "create bind group"
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	entries := make([]abi.BindGroupEntry, len(desc.Entries))
	for i := range desc.Entries {
		e := &desc.Entries[i]
		entries[i] = abi.BindGroupEntry{
			Binding: e.Binding,
			Offset:  e.Offset,
			Size:    e.Size,
		}
		if e.Buffer != nil {
			entries[i].Buffer = e.Buffer.handle
		}
		if e.Sampler != nil {
			entries[i].Sampler = e.Sampler.handle
		}
		if e.TextureView != nil {
			entries[i].TextureView = e.TextureView.handle
		}
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateBindGroup, func(m abi.Mem) uintptr {
		return abi.EncodeBindGroupDescriptor(m, &abi.BindGroupDescriptor{
			Label:   desc.Label,
			Layout:  desc.Layout.handle,
			Entries: entries,
		})
	})
	if err != nil {
		return nil, err
	}
	return &BindGroup{handle: handle, device: d}, nil
}

func (g *BindGroup) use(op string) error {
	if g.released {
		return errf(op, KindContract, "bind group already released")
	}
	return nil
}

// Release frees the bind group handle.
func (g *BindGroup) Release() error {
	const op = "release bind group"
	if err := g.use(op); err != nil {
		return err
	}
	g.released = true
	ffi.P().BindGroupRelease(g.handle)
	return nil
}

// PipelineLayoutDescriptor orders the bind group layouts a pipeline sees.
type PipelineLayoutDescriptor struct {
	Label            string
	BindGroupLayouts []*BindGroupLayout
}

// PipelineLayout wraps one native pipeline layout handle.
type PipelineLayout struct {
	handle   uintptr
	device   *Device
	released bool
}

// CreatePipelineLayout creates a pipeline layout.
func (d *Device) CreatePipelineLayout(desc *PipelineLayoutDescriptor) (*PipelineLayout, error) {
	const op = "create pipeline layout"
	if desc == nil {
		desc = &PipelineLayoutDescriptor{}
	}
	layouts := make([]uintptr, len(desc.BindGroupLayouts))
	for i, l := range desc.BindGroupLayouts {
		if l == nil {
			return nil, errf(op, KindValidation, "nil bind group layout at %d", i)
		}
		if err := l.use(op); err != nil {
			return nil, err
		}
		layouts[i] = l.handle
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreatePipelineLayout, func(m abi.Mem) uintptr {
		return abi.EncodePipelineLayoutDescriptor(m, &abi.PipelineLayoutDescriptor{
			Label:            desc.Label,
			BindGroupLayouts: layouts,
		})
	})
	if err != nil {
		return nil, err
	}
	return &PipelineLayout{handle: handle, device: d}, nil
}

func (l *PipelineLayout) use(op string) error {
	if l.released {
		return errf(op, KindContract, "pipeline layout already released")
	}
	return nil
}

// Release frees the pipeline layout handle.
func (l *PipelineLayout) Release() error {
	const op = "release pipeline layout"
	if err := l.use(op); err != nil {
		return err
	}
	l.released = true
	ffi.P().PipelineLayoutRelease(l.handle)
	return nil
}
