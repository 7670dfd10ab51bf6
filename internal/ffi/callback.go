//go:build !js

package ffi

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Handlers installed by the binding layer. Trampolines forward native
// callback invocations through these; with no handler installed the event
// is dropped, which makes a callback that fires after its request was
// abandoned a no-op.
var (
	handlerMu          sync.RWMutex
	negotiationHandler func(id uintptr, status uint32, handle uintptr, message string)
	uncapturedHandler  func(device uintptr, errType uint32, message string)
	deviceLostHandler  func(device uintptr, reason uint32, message string)
)

// SetNegotiationHandler routes adapter and device request completions. The
// id is the Userdata1 value the requester placed in its CallbackInfo.
func SetNegotiationHandler(h func(id uintptr, status uint32, handle uintptr, message string)) {
	handlerMu.Lock()
	negotiationHandler = h
	handlerMu.Unlock()
}

// SetUncapturedErrorHandler routes errors the native library reports outside
// any error scope.
func SetUncapturedErrorHandler(h func(device uintptr, errType uint32, message string)) {
	handlerMu.Lock()
	uncapturedHandler = h
	handlerMu.Unlock()
}

// SetDeviceLostHandler routes device loss notifications.
func SetDeviceLostHandler(h func(device uintptr, reason uint32, message string)) {
	handlerMu.Lock()
	deviceLostHandler = h
	handlerMu.Unlock()
}

// The trampolines below are the only C-callable Go functions in the
// binding. purego.NewCallback pins each one for the process lifetime, so
// every trampoline is created exactly once and shared by all requests.
//
// A WGPUStringView argument is 16 bytes and both supported ABIs pass it
// split across two integer registers, so the Go signatures flatten each
// view into a (data, length) pair.

var (
	requestAdapterOnce sync.Once
	requestAdapterPtr  uintptr

	requestDeviceOnce sync.Once
	requestDevicePtr  uintptr

	deviceLostOnce sync.Once
	deviceLostPtr  uintptr

	uncapturedOnce sync.Once
	uncapturedPtr  uintptr
)

func requestAdapterCallback(status, adapter, msgData, msgLen, userdata1, userdata2 uintptr) {
	handlerMu.RLock()
	h := negotiationHandler
	handlerMu.RUnlock()
	if h != nil {
		h(userdata1, uint32(status), adapter, goStringView(msgData, msgLen))
	}
}

func requestDeviceCallback(status, device, msgData, msgLen, userdata1, userdata2 uintptr) {
	handlerMu.RLock()
	h := negotiationHandler
	handlerMu.RUnlock()
	if h != nil {
		h(userdata1, uint32(status), device, goStringView(msgData, msgLen))
	}
}

// The device lost and uncaptured error callbacks receive a pointer to the
// device handle rather than the handle itself.
func deviceLostCallback(devicePtr, reason, msgData, msgLen, userdata1, userdata2 uintptr) {
	handlerMu.RLock()
	h := deviceLostHandler
	handlerMu.RUnlock()
	if h != nil {
		h(derefHandle(devicePtr), uint32(reason), goStringView(msgData, msgLen))
	}
}

func uncapturedErrorCallback(devicePtr, errType, msgData, msgLen, userdata1, userdata2 uintptr) {
	handlerMu.RLock()
	h := uncapturedHandler
	handlerMu.RUnlock()
	if h != nil {
		h(derefHandle(devicePtr), uint32(errType), goStringView(msgData, msgLen))
	}
}

// RequestAdapterTrampoline returns the C function pointer for adapter
// request completion callbacks.
func RequestAdapterTrampoline() uintptr {
	requestAdapterOnce.Do(func() {
		requestAdapterPtr = purego.NewCallback(requestAdapterCallback)
	})
	return requestAdapterPtr
}

// RequestDeviceTrampoline returns the C function pointer for device request
// completion callbacks.
func RequestDeviceTrampoline() uintptr {
	requestDeviceOnce.Do(func() {
		requestDevicePtr = purego.NewCallback(requestDeviceCallback)
	})
	return requestDevicePtr
}

// DeviceLostTrampoline returns the C function pointer embedded in device
// descriptors for loss notification.
func DeviceLostTrampoline() uintptr {
	deviceLostOnce.Do(func() {
		deviceLostPtr = purego.NewCallback(deviceLostCallback)
	})
	return deviceLostPtr
}

// UncapturedErrorTrampoline returns the C function pointer embedded in
// device descriptors for uncaptured error reporting.
func UncapturedErrorTrampoline() uintptr {
	uncapturedOnce.Do(func() {
		uncapturedPtr = purego.NewCallback(uncapturedErrorCallback)
	})
	return uncapturedPtr
}

func derefHandle(p uintptr) uintptr {
	if p == 0 {
		return 0
	}
	return *(*uintptr)(unsafe.Pointer(p))
}

// maxMessageLen caps how far goStringView reads into native memory.
const maxMessageLen = 1 << 20

// strlenSentinel marks a NUL-terminated view with no explicit length.
const strlenSentinel = ^uintptr(0)

// goStringView copies a native WGPUStringView into a Go string.
func goStringView(data, length uintptr) string {
	if data == 0 {
		return ""
	}
	if length == strlenSentinel {
		length = 0
		for length < maxMessageLen {
			if *(*byte)(unsafe.Pointer(data + length)) == 0 {
				break
			}
			length++
		}
	}
	if length == 0 {
		return ""
	}
	if length > maxMessageLen {
		length = maxMessageLen
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(data)), length))
}
