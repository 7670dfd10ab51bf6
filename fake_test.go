package wgpu

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// fakeNative stands in for the shared library behind the gateway's Procs
// table. It hands out monotonically increasing handles, records every call
// the binding issues, and simulates the request callback protocol by
// feeding completions into the same handler the real trampolines use.
type fakeNative struct {
	procs *ffi.Procs
	next  uintptr

	// Event pump and request simulation.
	pumps             int
	adapterFireOnPump int // 0 fires synchronously inside the request call
	adapterNeverFire  bool
	adapterStatus     uint32
	adapterMessage    string
	pendingAdapter    *ffi.CallbackInfo
	deviceNeverFire   bool
	deviceStatus      uint32
	deviceMessage     string
	pendingDevice     *ffi.CallbackInfo

	// Surface behavior.
	formats       []string
	presentModes  []string
	alphaModes    []string
	capsBacking   [][]uint32
	capsFreed     int
	surfaceStatus uint32
	configures    []fakeSurfaceConfig
	unconfigures  int
	presents      int

	// Creation overrides: entries here make the named create call return a
	// null handle.
	nullReturns map[string]bool

	// Recorded traffic.
	released     map[string]int
	bufferWrites []fakeBufferWrite
	submits      [][]uintptr
	draws        [][4]uint32
	dispatches   [][3]uint32
	limits2D     uint32
}

type fakeSurfaceConfig struct {
	device        uintptr
	format        uint32
	width, height uint32
	presentMode   uint32
	alphaMode     uint32
}

type fakeBufferWrite struct {
	buffer uintptr
	offset uint64
	data   []byte
}

// Raw little-endian accessors over native-call argument memory, mirroring
// how the library itself would read the encoded structs.

func peekU32(ptr uintptr, off int) uint32 {
	return binary.LittleEndian.Uint32(unsafe.Slice((*byte)(unsafe.Pointer(ptr+uintptr(off))), 4))
}

func peekU64(ptr uintptr, off int) uint64 {
	return binary.LittleEndian.Uint64(unsafe.Slice((*byte)(unsafe.Pointer(ptr+uintptr(off))), 8))
}

func pokeU32(ptr uintptr, off int, v uint32) {
	binary.LittleEndian.PutUint32(unsafe.Slice((*byte)(unsafe.Pointer(ptr+uintptr(off))), 4), v)
}

func pokeU64(ptr uintptr, off int, v uint64) {
	binary.LittleEndian.PutUint64(unsafe.Slice((*byte)(unsafe.Pointer(ptr+uintptr(off))), 8), v)
}

func (f *fakeNative) handle() uintptr {
	f.next++
	return f.next
}

func (f *fakeNative) create(kind string) uintptr {
	if f.nullReturns[kind] {
		return 0
	}
	return f.handle()
}

func (f *fakeNative) release(kind string) {
	f.released[kind]++
}

func (f *fakeNative) fireAdapter() {
	info := f.pendingAdapter
	f.pendingAdapter = nil
	var h uintptr
	if f.adapterStatus == abi.RequestStatusSuccess {
		h = f.handle()
	}
	completeRequest(info.Userdata1, f.adapterStatus, h, f.adapterMessage)
}

func (f *fakeNative) fireDevice() {
	info := f.pendingDevice
	f.pendingDevice = nil
	var h uintptr
	if f.deviceStatus == abi.RequestStatusSuccess {
		h = f.handle()
	}
	completeRequest(info.Userdata1, f.deviceStatus, h, f.deviceMessage)
}

// writeCaps fills a WGPUSurfaceCapabilities out-param the way the native
// library does, with pointers into fake-owned arrays.
func (f *fakeNative) writeCaps(caps uintptr) {
	writeList := func(ptrOff, countOff int, table string, symbols []string) {
		if len(symbols) == 0 {
			return
		}
		codes := make([]uint32, len(symbols))
		for i, s := range symbols {
			codes[i] = abi.EnumCode(table, s)
		}
		f.capsBacking = append(f.capsBacking, codes)
		pokeU64(caps, countOff, uint64(len(codes)))
		pokeU64(caps, ptrOff, uint64(uintptr(unsafe.Pointer(&codes[0]))))
	}
	pokeU64(caps, 8, uint64(TextureUsageRenderAttachment|TextureUsageCopySrc))
	writeList(24, 16, "texture-format", f.formats)
	writeList(40, 32, "present-mode", f.presentModes)
	writeList(56, 48, "alpha-mode", f.alphaModes)
}

func newFakeNative() *fakeNative {
	f := &fakeNative{
		adapterStatus: abi.RequestStatusSuccess,
		deviceStatus:  abi.RequestStatusSuccess,
		formats:       []string{"bgra8unorm", "rgba8unorm"},
		presentModes:  []string{"fifo", "mailbox"},
		alphaModes:    []string{"opaque"},
		surfaceStatus: abi.SurfaceStatusOptimal,
		nullReturns:   map[string]bool{},
		released:      map[string]int{},
		limits2D:      8192,
	}
	f.procs = &ffi.Procs{
		CreateInstance: func(desc uintptr) uintptr { return f.create("instance") },
		InstanceProcessEvents: func(instance uintptr) {
			f.pumps++
			if f.pendingAdapter != nil && !f.adapterNeverFire && f.pumps >= f.adapterFireOnPump {
				f.fireAdapter()
			}
			if f.pendingDevice != nil && !f.deviceNeverFire {
				f.fireDevice()
			}
		},
		InstanceRequestAdapter: func(instance, options uintptr, info ffi.CallbackInfo) uint64 {
			f.pendingAdapter = &info
			if f.adapterFireOnPump == 0 && !f.adapterNeverFire {
				f.fireAdapter()
			}
			return 0
		},
		InstanceCreateSurface: func(instance, desc uintptr) uintptr { return f.create("surface") },
		InstanceRelease:       func(instance uintptr) { f.release("instance") },
		AdapterRequestDevice: func(adapter, desc uintptr, info ffi.CallbackInfo) uint64 {
			f.pendingDevice = &info
			if !f.deviceNeverFire {
				f.fireDevice()
			}
			return 0
		},
		AdapterGetLimits: func(adapter, limits uintptr) uint32 {
			pokeU32(limits, 8+4, f.limits2D)
			return abi.StatusSuccess
		},
		AdapterRelease: func(adapter uintptr) { f.release("adapter") },

		DeviceCreateBuffer:          func(device, desc uintptr) uintptr { return f.create("buffer") },
		DeviceCreateTexture:         func(device, desc uintptr) uintptr { return f.create("texture") },
		DeviceCreateSampler:         func(device, desc uintptr) uintptr { return f.create("sampler") },
		DeviceCreateShaderModule:    func(device, desc uintptr) uintptr { return f.create("shader-module") },
		DeviceCreateBindGroupLayout: func(device, desc uintptr) uintptr { return f.create("bind-group-layout") },
		DeviceCreateBindGroup:       func(device, desc uintptr) uintptr { return f.create("bind-group") },
		DeviceCreatePipelineLayout:  func(device, desc uintptr) uintptr { return f.create("pipeline-layout") },
		DeviceCreateRenderPipeline:  func(device, desc uintptr) uintptr { return f.create("render-pipeline") },
		DeviceCreateComputePipeline: func(device, desc uintptr) uintptr { return f.create("compute-pipeline") },
		DeviceCreateCommandEncoder:  func(device, desc uintptr) uintptr { return f.create("command-encoder") },
		DeviceGetQueue:              func(device uintptr) uintptr { return f.create("queue") },
		DeviceGetLimits: func(device, limits uintptr) uint32 {
			pokeU32(limits, 8+4, f.limits2D)
			return abi.StatusSuccess
		},
		DeviceRelease: func(device uintptr) { f.release("device") },
		QueueSubmit: func(queue uintptr, count uint64, commands uintptr) {
			handles := make([]uintptr, count)
			for i := range handles {
				handles[i] = uintptr(peekU64(commands, i*8))
			}
			f.submits = append(f.submits, handles)
		},
		QueueWriteBuffer: func(queue, buffer uintptr, offset uint64, data uintptr, size uint64) {
			copied := make([]byte, size)
			copy(copied, unsafe.Slice((*byte)(unsafe.Pointer(data)), size))
			f.bufferWrites = append(f.bufferWrites, fakeBufferWrite{buffer: buffer, offset: offset, data: copied})
		},
		QueueWriteTexture: func(queue, dst, data uintptr, dataSize uint64, layout, extent uintptr) {},
		QueueRelease:      func(queue uintptr) { f.release("queue") },

		BufferDestroy:          func(buffer uintptr) { f.release("buffer-destroy") },
		BufferRelease:          func(buffer uintptr) { f.release("buffer") },
		TextureCreateView:      func(texture, desc uintptr) uintptr { return f.create("texture-view") },
		TextureDestroy:         func(texture uintptr) { f.release("texture-destroy") },
		TextureRelease:         func(texture uintptr) { f.release("texture") },
		TextureViewRelease:     func(view uintptr) { f.release("texture-view") },
		SamplerRelease:         func(sampler uintptr) { f.release("sampler") },
		ShaderModuleRelease:    func(module uintptr) { f.release("shader-module") },
		BindGroupRelease:       func(group uintptr) { f.release("bind-group") },
		BindGroupLayoutRelease: func(layout uintptr) { f.release("bind-group-layout") },
		PipelineLayoutRelease:  func(layout uintptr) { f.release("pipeline-layout") },
		RenderPipelineRelease:  func(pipeline uintptr) { f.release("render-pipeline") },
		ComputePipelineRelease: func(pipeline uintptr) { f.release("compute-pipeline") },

		CommandEncoderBeginRenderPass:     func(encoder, desc uintptr) uintptr { return f.create("render-pass") },
		CommandEncoderBeginComputePass:    func(encoder, desc uintptr) uintptr { return f.create("compute-pass") },
		CommandEncoderCopyBufferToBuffer:  func(encoder, src uintptr, srcOffset uint64, dst uintptr, dstOffset, size uint64) {},
		CommandEncoderCopyBufferToTexture: func(encoder, src, dst, extent uintptr) {},
		CommandEncoderCopyTextureToBuffer: func(encoder, src, dst, extent uintptr) {},
		CommandEncoderFinish:              func(encoder, desc uintptr) uintptr { return f.create("command-buffer") },
		CommandEncoderRelease:             func(encoder uintptr) { f.release("command-encoder") },
		CommandBufferRelease:              func(buffer uintptr) { f.release("command-buffer") },

		RenderPassEncoderSetPipeline:     func(pass, pipeline uintptr) {},
		RenderPassEncoderSetBindGroup:    func(pass uintptr, index uint32, group uintptr, offsetCount uint64, offsets uintptr) {},
		RenderPassEncoderSetVertexBuffer: func(pass uintptr, slot uint32, buffer uintptr, offset, size uint64) {},
		RenderPassEncoderSetIndexBuffer:  func(pass, buffer uintptr, format uint32, offset, size uint64) {},
		RenderPassEncoderSetViewport:     func(pass uintptr, x, y, w, h, minDepth, maxDepth float32) {},
		RenderPassEncoderSetScissorRect:  func(pass uintptr, x, y, w, h uint32) {},
		RenderPassEncoderDraw: func(pass uintptr, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
			f.draws = append(f.draws, [4]uint32{vertexCount, instanceCount, firstVertex, firstInstance})
		},
		RenderPassEncoderDrawIndexed: func(pass uintptr, indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
			f.draws = append(f.draws, [4]uint32{indexCount, instanceCount, firstIndex, firstInstance})
		},
		RenderPassEncoderEnd:     func(pass uintptr) {},
		RenderPassEncoderRelease: func(pass uintptr) { f.release("render-pass") },

		ComputePassEncoderSetPipeline:  func(pass, pipeline uintptr) {},
		ComputePassEncoderSetBindGroup: func(pass uintptr, index uint32, group uintptr, offsetCount uint64, offsets uintptr) {},
		ComputePassEncoderDispatchWorkgroups: func(pass uintptr, x, y, z uint32) {
			f.dispatches = append(f.dispatches, [3]uint32{x, y, z})
		},
		ComputePassEncoderEnd:     func(pass uintptr) {},
		ComputePassEncoderRelease: func(pass uintptr) { f.release("compute-pass") },

		SurfaceGetCapabilities: func(surface, adapter, caps uintptr) uint32 {
			f.writeCaps(caps)
			return abi.StatusSuccess
		},
		SurfaceConfigure: func(surface, config uintptr) {
			f.configures = append(f.configures, fakeSurfaceConfig{
				device:      uintptr(peekU64(config, 8)),
				format:      peekU32(config, 16),
				width:       peekU32(config, 32),
				height:      peekU32(config, 36),
				alphaMode:   peekU32(config, 56),
				presentMode: peekU32(config, 60),
			})
		},
		SurfaceUnconfigure: func(surface uintptr) { f.unconfigures++ },
		SurfaceGetCurrentTexture: func(surface, surfaceTexture uintptr) {
			if f.surfaceStatus == abi.SurfaceStatusOptimal || f.surfaceStatus == abi.SurfaceStatusSuboptimal {
				pokeU64(surfaceTexture, 8, uint64(f.handle()))
			}
			pokeU32(surfaceTexture, 16, f.surfaceStatus)
		},
		SurfacePresent: func(surface uintptr) uint32 {
			f.presents++
			return abi.StatusSuccess
		},
		SurfaceRelease:                 func(surface uintptr) { f.release("surface") },
		SurfaceCapabilitiesFreeMembers: func(caps ffi.SurfaceCapabilities) { f.capsFreed++ },
	}
	return f
}

// installFake swaps the fake in as the active entry-point table for the test
// and restores the previous one afterward.
func installFake(t *testing.T) *fakeNative {
	t.Helper()
	f := newFakeNative()
	prev := ffi.SetProcs(f.procs)
	t.Cleanup(func() { ffi.SetProcs(prev) })
	return f
}

// testConfig shrinks the negotiation window so timeout tests finish fast.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Negotiation.TimeoutMS = 250
	cfg.Negotiation.PollIntervalUS = 200
	return cfg
}

func newTestInstance(t *testing.T) (*fakeNative, *Instance) {
	t.Helper()
	f := installFake(t)
	cfg := testConfig()
	inst, err := CreateInstance(&InstanceOptions{Config: &cfg})
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	return f, inst
}

func newTestDevice(t *testing.T) (*fakeNative, *Instance, *Device) {
	t.Helper()
	f, inst := newTestInstance(t)
	adapter, err := inst.RequestAdapter(nil)
	if err != nil {
		t.Fatalf("RequestAdapter: %v", err)
	}
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		t.Fatalf("RequestDevice: %v", err)
	}
	return f, inst, device
}
