package wgpu

import (
	"sync"
	"time"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// An adapter or device request is a single-shot cell: empty until the native
// callback resolves it, terminal after. The native library may fire the
// callback synchronously inside the request call, from one of its own
// threads, or only once the event queue is pumped; resolve tolerates all
// three, and a callback landing after the request was dropped (timeout) or
// already resolved is a no-op.

type pendingRequest struct {
	mu      sync.Mutex
	done    bool
	status  uint32
	handle  uintptr
	message string
}

func (r *pendingRequest) resolve(status uint32, handle uintptr, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	r.done = true
	r.status = status
	r.handle = handle
	r.message = message
}

func (r *pendingRequest) state() (done bool, status uint32, handle uintptr, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done, r.status, r.handle, r.message
}

// Request registry. The id travels through the native call as the
// callback's userdata1 and comes back in the trampoline, which is the only
// correlation the protocol offers.
var pending = struct {
	mu   sync.Mutex
	m    map[uintptr]*pendingRequest
	next uintptr
}{m: make(map[uintptr]*pendingRequest)}

func newRequest() (uintptr, *pendingRequest) {
	pending.mu.Lock()
	defer pending.mu.Unlock()
	pending.next++
	id := pending.next
	r := &pendingRequest{}
	pending.m[id] = r
	return id, r
}

func dropRequest(id uintptr) {
	pending.mu.Lock()
	delete(pending.m, id)
	pending.mu.Unlock()
}

// completeRequest is where the gateway trampolines land. Unknown ids are
// late callbacks for dropped requests and are ignored.
func completeRequest(id uintptr, status uint32, handle uintptr, message string) {
	pending.mu.Lock()
	r := pending.m[id]
	delete(pending.m, id)
	pending.mu.Unlock()
	if r == nil {
		return
	}
	r.resolve(status, handle, message)
}

var handlersOnce sync.Once

// installHandlers routes the gateway's native callbacks into this package.
// Installed once per process, on first instance creation.
func installHandlers() {
	handlersOnce.Do(func() {
		ffi.SetNegotiationHandler(completeRequest)
		ffi.SetUncapturedErrorHandler(dispatchUncapturedError)
		ffi.SetDeviceLostHandler(dispatchDeviceLost)
	})
}

// await pumps the native event queue until the request resolves or the
// configured timeout passes. The 1ms default poll interval matches how fast
// Dawn surfaces request completions through ProcessEvents.
func (in *Instance) await(op string, id uintptr, req *pendingRequest) (uintptr, error) {
	deadline := time.Now().Add(in.cfg.requestTimeout())
	interval := in.cfg.pollInterval()
	for {
		ffi.P().InstanceProcessEvents(in.handle)
		if done, status, handle, message := req.state(); done {
			if status != abi.RequestStatusSuccess || handle == 0 {
				return 0, errf(op, KindNegotiation, "native rejected request (status %d): %s", status, message)
			}
			return handle, nil
		}
		if time.Now().After(deadline) {
			dropRequest(id)
			return 0, errf(op, KindTimeout, "no callback within %s", in.cfg.requestTimeout())
		}
		time.Sleep(interval)
	}
}
