package wgpu

import (
	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// SamplerDescriptor describes a sampler. Address modes default to
// "clamp-to-edge" and filters to "nearest".
type SamplerDescriptor struct {
	Label         string
	AddressModeU  string
	AddressModeV  string
	AddressModeW  string
	MagFilter     string
	MinFilter     string
	MipmapFilter  string
	LodMinClamp   float32
	LodMaxClamp   float32
	Compare       string
	MaxAnisotropy uint16
}

func (d *SamplerDescriptor) validate(op string) error {
	if d == nil {
		return nil
	}
	for _, mode := range []string{d.AddressModeU, d.AddressModeV, d.AddressModeW} {
		if err := checkEnum(op, "address-mode", mode); err != nil {
			return err
		}
	}
	for _, f := range []string{d.MagFilter, d.MinFilter, d.MipmapFilter} {
		if err := checkEnum(op, "filter-mode", f); err != nil {
			return err
		}
	}
	return checkEnum(op, "compare-function", d.Compare)
}

// Sampler wraps one native sampler handle.
type Sampler struct {
	handle   uintptr
	device   *Device
	released bool
}

// CreateSampler creates a sampler. A nil descriptor takes the defaults.
func (d *Device) CreateSampler(desc *SamplerDescriptor) (*Sampler, error) {
	const op = "create sampler"
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	if desc == nil {
		desc = &SamplerDescriptor{}
	}
	lodMax := desc.LodMaxClamp
	if lodMax == 0 {
		lodMax = 32
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateSampler, func(m abi.Mem) uintptr {
		return abi.EncodeSamplerDescriptor(m, &abi.SamplerDescriptor{
			Label:         desc.Label,
			AddressModeU:  desc.AddressModeU,
			AddressModeV:  desc.AddressModeV,
			AddressModeW:  desc.AddressModeW,
			MagFilter:     desc.MagFilter,
			MinFilter:     desc.MinFilter,
			MipmapFilter:  desc.MipmapFilter,
			LodMinClamp:   desc.LodMinClamp,
			LodMaxClamp:   lodMax,
			Compare:       desc.Compare,
			MaxAnisotropy: desc.MaxAnisotropy,
		})
	})
	if err != nil {
		return nil, err
	}
	return &Sampler{handle: handle, device: d}, nil
}

func (s *Sampler) use(op string) error {
	if s.released {
		return errf(op, KindContract, "sampler already released")
	}
	return nil
}

// Release frees the sampler handle.
func (s *Sampler) Release() error {
	const op = "release sampler"
	if err := s.use(op); err != nil {
		return err
	}
	s.released = true
	ffi.P().SamplerRelease(s.handle)
	return nil
}
