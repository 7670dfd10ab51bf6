package wgpu

import (
	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// ShaderModule wraps one compiled shader module handle.
type ShaderModule struct {
	handle   uintptr
	device   *Device
	label    string
	released bool
}

// CreateShaderModuleWGSL compiles WGSL source into a shader module. The
// source rides a chained extension struct behind the plain descriptor.
func (d *Device) CreateShaderModuleWGSL(label, code string) (*ShaderModule, error) {
	const op = "create shader module"
	if code == "" {
		return nil, errf(op, KindValidation, "empty WGSL source")
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateShaderModule, func(m abi.Mem) uintptr {
		return abi.EncodeShaderModuleWGSL(m, label, code)
	})
	if err != nil {
		return nil, err
	}
	return &ShaderModule{handle: handle, device: d, label: label}, nil
}

func (s *ShaderModule) use(op string) error {
	if s.released {
		return errf(op, KindContract, "shader module already released")
	}
	return nil
}

// Release frees the module handle. Pipelines created from it stay valid.
func (s *ShaderModule) Release() error {
	const op = "release shader module"
	if err := s.use(op); err != nil {
		return err
	}
	s.released = true
	ffi.P().ShaderModuleRelease(s.handle)
	return nil
}
