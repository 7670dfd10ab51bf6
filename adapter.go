package wgpu

import (
	"runtime"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// Adapter represents one physical or software GPU offered by the native
// library. Immutable once obtained; released by the caller.
type Adapter struct {
	handle   uintptr
	inst     *Instance
	released bool
}

func (a *Adapter) use(op string) error {
	if a.released {
		return errf(op, KindContract, "adapter already released")
	}
	return nil
}

// Limits reports the adapter's supported limits.
func (a *Adapter) Limits() (Limits, error) {
	const op = "query adapter limits"
	if err := a.use(op); err != nil {
		return Limits{}, err
	}
	m := abi.NewArena()
	out := abi.AllocLimits(m)
	status := ffi.P().AdapterGetLimits(a.handle, out.Addr())
	if status != abi.StatusSuccess {
		runtime.KeepAlive(m)
		return Limits{}, errf(op, KindNative, "native returned status %d", status)
	}
	limits := abi.DecodeSupportedLimits(out)
	runtime.KeepAlive(m)
	return limits, nil
}

// DeviceDescriptor configures device negotiation. A nil RequiredLimits asks
// for the native defaults.
type DeviceDescriptor struct {
	Label             string
	RequiredLimits    *Limits
	DefaultQueueLabel string
}

// RequestDevice negotiates a logical device from the adapter and waits for
// the result. The device descriptor carries the process-wide uncaptured
// error and device lost callbacks, which stay registered for the device's
// whole lifetime.
func (a *Adapter) RequestDevice(desc *DeviceDescriptor) (*Device, error) {
	const op = "request device"
	if err := a.use(op); err != nil {
		return nil, err
	}
	if err := a.inst.use(op); err != nil {
		return nil, err
	}
	if desc == nil {
		desc = &DeviceDescriptor{}
	}

	id, req := newRequest()
	m := abi.NewArena()
	ptr := abi.EncodeDeviceDescriptor(m, &abi.DeviceDescriptor{
		Label:             desc.Label,
		RequiredLimits:    desc.RequiredLimits,
		DefaultQueueLabel: desc.DefaultQueueLabel,
		DeviceLost: abi.CallbackInfo{
			Mode:     ffi.CallbackModeAllowSpontaneous,
			Callback: ffi.DeviceLostTrampoline(),
		},
		UncapturedError: abi.CallbackInfo{
			Mode:     ffi.CallbackModeAllowSpontaneous,
			Callback: ffi.UncapturedErrorTrampoline(),
		},
	})
	ffi.P().AdapterRequestDevice(a.handle, ptr, ffi.CallbackInfo{
		Mode:      ffi.CallbackModeAllowSpontaneous,
		Callback:  ffi.RequestDeviceTrampoline(),
		Userdata1: id,
	})
	runtime.KeepAlive(m)

	handle, err := a.inst.await(op, id, req)
	if err != nil {
		return nil, err
	}

	queueHandle := ffi.P().DeviceGetQueue(handle)
	if queueHandle == 0 {
		ffi.P().DeviceRelease(handle)
		return nil, errf(op, KindCreation, "native returned null queue")
	}

	d := &Device{
		handle: handle,
		inst:   a.inst,
		log:    a.inst.log,
	}
	d.queue = &Queue{handle: queueHandle, device: d}
	registerDevice(d)
	return d, nil
}

// Release frees the adapter handle.
func (a *Adapter) Release() error {
	const op = "release adapter"
	if err := a.use(op); err != nil {
		return err
	}
	a.released = true
	ffi.P().AdapterRelease(a.handle)
	return nil
}
