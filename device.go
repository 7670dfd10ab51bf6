package wgpu

import (
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// Device is a logical GPU context. All resource creation happens through it,
// and it owns exactly one Queue. The only mutable state after negotiation is
// the error callback registration.
type Device struct {
	handle   uintptr
	inst     *Instance
	log      *zap.Logger
	queue    *Queue
	released bool

	cbMu    sync.Mutex
	onError func(errType, message string)
	onLost  func(reason, message string)
}

// Devices by native handle, so the asynchronous error callbacks can find
// their way back from a raw handle to the wrapper.
var devices = struct {
	mu sync.RWMutex
	m  map[uintptr]*Device
}{m: make(map[uintptr]*Device)}

func registerDevice(d *Device) {
	devices.mu.Lock()
	devices.m[d.handle] = d
	devices.mu.Unlock()
}

func unregisterDevice(d *Device) {
	devices.mu.Lock()
	delete(devices.m, d.handle)
	devices.mu.Unlock()
}

func lookupDevice(handle uintptr) *Device {
	devices.mu.RLock()
	defer devices.mu.RUnlock()
	return devices.m[handle]
}

// Uncaptured errors arrive on the native library's schedule and cannot be
// attributed to a call site, so they are only ever reported: to the
// registered callback if any, otherwise to the device's logger.

func dispatchUncapturedError(handle uintptr, errType uint32, message string) {
	d := lookupDevice(handle)
	if d == nil {
		return
	}
	d.cbMu.Lock()
	fn := d.onError
	d.cbMu.Unlock()
	if fn != nil {
		fn(abi.ErrorTypeName(errType), message)
		return
	}
	d.log.Error("uncaptured device error",
		zap.String("type", abi.ErrorTypeName(errType)),
		zap.String("message", message))
}

func dispatchDeviceLost(handle uintptr, reason uint32, message string) {
	d := lookupDevice(handle)
	if d == nil {
		return
	}
	d.cbMu.Lock()
	fn := d.onLost
	d.cbMu.Unlock()
	if fn != nil {
		fn(abi.DeviceLostReasonName(reason), message)
		return
	}
	d.log.Warn("device lost",
		zap.String("reason", abi.DeviceLostReasonName(reason)),
		zap.String("message", message))
}

// OnUncapturedError registers the sink for errors the native library reports
// outside any call. A nil fn reverts to logging.
func (d *Device) OnUncapturedError(fn func(errType, message string)) {
	d.cbMu.Lock()
	d.onError = fn
	d.cbMu.Unlock()
}

// OnDeviceLost registers the sink for device loss notifications.
func (d *Device) OnDeviceLost(fn func(reason, message string)) {
	d.cbMu.Lock()
	d.onLost = fn
	d.cbMu.Unlock()
}

func (d *Device) use(op string) error {
	if d.released {
		return errf(op, KindContract, "device already released")
	}
	return nil
}

// Queue returns the device's submission queue. The queue lives and dies with
// the device and has no release of its own.
func (d *Device) Queue() *Queue { return d.queue }

// Limits reports the limits the device was actually created with.
func (d *Device) Limits() (Limits, error) {
	const op = "query device limits"
	if err := d.use(op); err != nil {
		return Limits{}, err
	}
	m := abi.NewArena()
	out := abi.AllocLimits(m)
	status := ffi.P().DeviceGetLimits(d.handle, out.Addr())
	if status != abi.StatusSuccess {
		runtime.KeepAlive(m)
		return Limits{}, errf(op, KindNative, "native returned status %d", status)
	}
	limits := abi.DecodeSupportedLimits(out)
	runtime.KeepAlive(m)
	return limits, nil
}

// createObject runs one encode-call-check cycle: encode the descriptor into
// an arena, cross the gateway, and translate a null handle into a typed
// creation error.
func (d *Device) createObject(op string, call func(device, desc uintptr) uintptr, encode func(m abi.Mem) uintptr) (uintptr, error) {
	if err := d.use(op); err != nil {
		return 0, err
	}
	m := abi.NewArena()
	desc := encode(m)
	handle := call(d.handle, desc)
	runtime.KeepAlive(m)
	if handle == 0 {
		return 0, errf(op, KindCreation, "native returned null handle")
	}
	return handle, nil
}

// Release frees the queue and device handles and detaches the error
// callbacks. Resources created from the device must be released first.
func (d *Device) Release() error {
	const op = "release device"
	if err := d.use(op); err != nil {
		return err
	}
	d.released = true
	d.queue.released = true
	unregisterDevice(d)
	ffi.P().QueueRelease(d.queue.handle)
	ffi.P().DeviceRelease(d.handle)
	return nil
}
