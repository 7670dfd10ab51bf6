//go:build !js

// Package ffi is the single crossing point between Go and the native WebGPU
// library. It loads the shared library with purego, resolves every entry
// point into a Procs table, and owns the C-to-Go callback trampolines. No
// other package issues native calls; everything above hands encoded
// descriptor addresses to the funcs exposed here.
//
// The active Procs table is swappable, so tests drive the full binding
// against an in-process fake without a GPU or a shared library on disk.
package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

// CallbackMode values for CallbackInfo.Mode.
const (
	CallbackModeWaitAnyOnly        = uint32(1)
	CallbackModeAllowProcessEvents = uint32(2)
	CallbackModeAllowSpontaneous   = uint32(3)
)

// CallbackInfo mirrors WGPUCallbackInfo for the by-value callback-info
// arguments of the request calls. The Go field layout matches the C layout
// (Mode is padded to put Callback at byte 16).
type CallbackInfo struct {
	NextInChain uintptr
	Mode        uint32
	Callback    uintptr
	Userdata1   uintptr
	Userdata2   uintptr
}

// SurfaceCapabilities mirrors WGPUSurfaceCapabilities for the by-value
// FreeMembers call that releases the native-owned arrays.
type SurfaceCapabilities struct {
	NextInChain      uintptr
	Usages           uint64
	FormatCount      uint64
	Formats          uintptr
	PresentModeCount uint64
	PresentModes     uintptr
	AlphaModeCount   uint64
	AlphaModes       uintptr
}

// Procs is the resolved native entry-point table. Load fills it from the
// shared library; tests install their own with SetProcs.
type Procs struct {
	// Instance and adapter
	CreateInstance         func(desc uintptr) uintptr
	InstanceProcessEvents  func(instance uintptr)
	InstanceRequestAdapter func(instance, options uintptr, info CallbackInfo) uint64
	InstanceCreateSurface  func(instance, desc uintptr) uintptr
	InstanceRelease        func(instance uintptr)
	AdapterRequestDevice   func(adapter, desc uintptr, info CallbackInfo) uint64
	AdapterGetLimits       func(adapter, limits uintptr) uint32
	AdapterRelease         func(adapter uintptr)

	// Device and queue
	DeviceCreateBuffer          func(device, desc uintptr) uintptr
	DeviceCreateTexture         func(device, desc uintptr) uintptr
	DeviceCreateSampler         func(device, desc uintptr) uintptr
	DeviceCreateShaderModule    func(device, desc uintptr) uintptr
	DeviceCreateBindGroupLayout func(device, desc uintptr) uintptr
	DeviceCreateBindGroup       func(device, desc uintptr) uintptr
	DeviceCreatePipelineLayout  func(device, desc uintptr) uintptr
	DeviceCreateRenderPipeline  func(device, desc uintptr) uintptr
	DeviceCreateComputePipeline func(device, desc uintptr) uintptr
	DeviceCreateCommandEncoder  func(device, desc uintptr) uintptr
	DeviceGetQueue              func(device uintptr) uintptr
	DeviceGetLimits             func(device, limits uintptr) uint32
	DeviceRelease               func(device uintptr)
	QueueSubmit                 func(queue uintptr, count uint64, commands uintptr)
	QueueWriteBuffer            func(queue, buffer uintptr, offset uint64, data uintptr, size uint64)
	QueueWriteTexture           func(queue, dst, data uintptr, dataSize uint64, layout, extent uintptr)
	QueueRelease                func(queue uintptr)

	// Resources
	BufferDestroy          func(buffer uintptr)
	BufferRelease          func(buffer uintptr)
	TextureCreateView      func(texture, desc uintptr) uintptr
	TextureDestroy         func(texture uintptr)
	TextureRelease         func(texture uintptr)
	TextureViewRelease     func(view uintptr)
	SamplerRelease         func(sampler uintptr)
	ShaderModuleRelease    func(module uintptr)
	BindGroupRelease       func(group uintptr)
	BindGroupLayoutRelease func(layout uintptr)
	PipelineLayoutRelease  func(layout uintptr)
	RenderPipelineRelease  func(pipeline uintptr)
	ComputePipelineRelease func(pipeline uintptr)

	// Command recording
	CommandEncoderBeginRenderPass     func(encoder, desc uintptr) uintptr
	CommandEncoderBeginComputePass    func(encoder, desc uintptr) uintptr
	CommandEncoderCopyBufferToBuffer  func(encoder, src uintptr, srcOffset uint64, dst uintptr, dstOffset, size uint64)
	CommandEncoderCopyBufferToTexture func(encoder, src, dst, extent uintptr)
	CommandEncoderCopyTextureToBuffer func(encoder, src, dst, extent uintptr)
	CommandEncoderFinish              func(encoder, desc uintptr) uintptr
	CommandEncoderRelease             func(encoder uintptr)
	CommandBufferRelease              func(buffer uintptr)

	RenderPassEncoderSetPipeline     func(pass, pipeline uintptr)
	RenderPassEncoderSetBindGroup    func(pass uintptr, index uint32, group uintptr, offsetCount uint64, offsets uintptr)
	RenderPassEncoderSetVertexBuffer func(pass uintptr, slot uint32, buffer uintptr, offset, size uint64)
	RenderPassEncoderSetIndexBuffer  func(pass, buffer uintptr, format uint32, offset, size uint64)
	RenderPassEncoderSetViewport     func(pass uintptr, x, y, w, h, minDepth, maxDepth float32)
	RenderPassEncoderSetScissorRect  func(pass uintptr, x, y, w, h uint32)
	RenderPassEncoderDraw            func(pass uintptr, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	RenderPassEncoderDrawIndexed     func(pass uintptr, indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
	RenderPassEncoderEnd             func(pass uintptr)
	RenderPassEncoderRelease         func(pass uintptr)

	ComputePassEncoderSetPipeline        func(pass, pipeline uintptr)
	ComputePassEncoderSetBindGroup       func(pass uintptr, index uint32, group uintptr, offsetCount uint64, offsets uintptr)
	ComputePassEncoderDispatchWorkgroups func(pass uintptr, x, y, z uint32)
	ComputePassEncoderEnd                func(pass uintptr)
	ComputePassEncoderRelease            func(pass uintptr)

	// Surface
	SurfaceGetCapabilities         func(surface, adapter, caps uintptr) uint32
	SurfaceConfigure               func(surface, config uintptr)
	SurfaceUnconfigure             func(surface uintptr)
	SurfaceGetCurrentTexture       func(surface, surfaceTexture uintptr)
	SurfacePresent                 func(surface uintptr) uint32
	SurfaceRelease                 func(surface uintptr)
	SurfaceCapabilitiesFreeMembers func(caps SurfaceCapabilities)
}

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error

	procsMu sync.RWMutex
	procs   *Procs
)

// P returns the active entry-point table. Calling it before Load succeeds
// (or before a test installs a fake) is an ordering bug in the layer above,
// so it panics rather than returning an error.
func P() *Procs {
	procsMu.RLock()
	defer procsMu.RUnlock()
	if procs == nil {
		panic("ffi: native library not loaded")
	}
	return procs
}

// Loaded reports whether an entry-point table is installed.
func Loaded() bool {
	procsMu.RLock()
	defer procsMu.RUnlock()
	return procs != nil
}

// SetProcs installs a replacement table and returns the previous one.
// Tests use it to run the binding against a fake native layer.
func SetProcs(p *Procs) *Procs {
	procsMu.Lock()
	defer procsMu.Unlock()
	prev := procs
	procs = p
	return prev
}

// LibraryFileName returns the platform file name of the native library.
func LibraryFileName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libwebgpu_dawn.dylib"
	case "windows":
		return "webgpu_dawn.dll"
	default:
		return "libwebgpu_dawn.so"
	}
}

// libraryPath resolves the shared library location. WGPU_DAWN_LIB_PATH
// wins; otherwise the platform library name is searched in the working
// directory, the usual Dawn build output directories, and next to the
// executable, falling back to the bare name for the system loader.
func libraryPath() string {
	if path := os.Getenv("WGPU_DAWN_LIB_PATH"); path != "" {
		return path
	}

	libName := LibraryFileName()

	searchPaths := []string{
		libName,
		filepath.Join("lib", libName),
		filepath.Join("dawn", "out", "Release", libName),
		filepath.Join("dawn", "out", "Debug", libName),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
		if runtime.GOOS == "darwin" {
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "..", "Frameworks", libName),
			)
		}
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return libName
}

// Load opens the shared library and resolves every entry point. The first
// call decides the outcome; later calls return the same result. An empty
// path uses libraryPath.
func Load(path string) error {
	libOnce.Do(func() {
		if path == "" {
			path = libraryPath()
		}
		libHandle, libErr = openLibrary(path)
		if libErr != nil {
			libErr = fmt.Errorf("failed to load webgpu library from %s: %w", path, libErr)
			return
		}
		p := &Procs{}
		registerInstanceProcs(p)
		registerDeviceProcs(p)
		registerResourceProcs(p)
		registerEncoderProcs(p)
		registerSurfaceProcs(p)
		SetProcs(p)
	})
	return libErr
}

func registerInstanceProcs(p *Procs) {
	purego.RegisterLibFunc(&p.CreateInstance, libHandle, "wgpuCreateInstance")
	purego.RegisterLibFunc(&p.InstanceProcessEvents, libHandle, "wgpuInstanceProcessEvents")
	purego.RegisterLibFunc(&p.InstanceRequestAdapter, libHandle, "wgpuInstanceRequestAdapter")
	purego.RegisterLibFunc(&p.InstanceCreateSurface, libHandle, "wgpuInstanceCreateSurface")
	purego.RegisterLibFunc(&p.InstanceRelease, libHandle, "wgpuInstanceRelease")
	purego.RegisterLibFunc(&p.AdapterRequestDevice, libHandle, "wgpuAdapterRequestDevice")
	purego.RegisterLibFunc(&p.AdapterGetLimits, libHandle, "wgpuAdapterGetLimits")
	purego.RegisterLibFunc(&p.AdapterRelease, libHandle, "wgpuAdapterRelease")
}

func registerDeviceProcs(p *Procs) {
	purego.RegisterLibFunc(&p.DeviceCreateBuffer, libHandle, "wgpuDeviceCreateBuffer")
	purego.RegisterLibFunc(&p.DeviceCreateTexture, libHandle, "wgpuDeviceCreateTexture")
	purego.RegisterLibFunc(&p.DeviceCreateSampler, libHandle, "wgpuDeviceCreateSampler")
	purego.RegisterLibFunc(&p.DeviceCreateShaderModule, libHandle, "wgpuDeviceCreateShaderModule")
	purego.RegisterLibFunc(&p.DeviceCreateBindGroupLayout, libHandle, "wgpuDeviceCreateBindGroupLayout")
	purego.RegisterLibFunc(&p.DeviceCreateBindGroup, libHandle, "wgpuDeviceCreateBindGroup")
	purego.RegisterLibFunc(&p.DeviceCreatePipelineLayout, libHandle, "wgpuDeviceCreatePipelineLayout")
	purego.RegisterLibFunc(&p.DeviceCreateRenderPipeline, libHandle, "wgpuDeviceCreateRenderPipeline")
	purego.RegisterLibFunc(&p.DeviceCreateComputePipeline, libHandle, "wgpuDeviceCreateComputePipeline")
	purego.RegisterLibFunc(&p.DeviceCreateCommandEncoder, libHandle, "wgpuDeviceCreateCommandEncoder")
	purego.RegisterLibFunc(&p.DeviceGetQueue, libHandle, "wgpuDeviceGetQueue")
	purego.RegisterLibFunc(&p.DeviceGetLimits, libHandle, "wgpuDeviceGetLimits")
	purego.RegisterLibFunc(&p.DeviceRelease, libHandle, "wgpuDeviceRelease")
	purego.RegisterLibFunc(&p.QueueSubmit, libHandle, "wgpuQueueSubmit")
	purego.RegisterLibFunc(&p.QueueWriteBuffer, libHandle, "wgpuQueueWriteBuffer")
	purego.RegisterLibFunc(&p.QueueWriteTexture, libHandle, "wgpuQueueWriteTexture")
	purego.RegisterLibFunc(&p.QueueRelease, libHandle, "wgpuQueueRelease")
}

func registerResourceProcs(p *Procs) {
	purego.RegisterLibFunc(&p.BufferDestroy, libHandle, "wgpuBufferDestroy")
	purego.RegisterLibFunc(&p.BufferRelease, libHandle, "wgpuBufferRelease")
	purego.RegisterLibFunc(&p.TextureCreateView, libHandle, "wgpuTextureCreateView")
	purego.RegisterLibFunc(&p.TextureDestroy, libHandle, "wgpuTextureDestroy")
	purego.RegisterLibFunc(&p.TextureRelease, libHandle, "wgpuTextureRelease")
	purego.RegisterLibFunc(&p.TextureViewRelease, libHandle, "wgpuTextureViewRelease")
	purego.RegisterLibFunc(&p.SamplerRelease, libHandle, "wgpuSamplerRelease")
	purego.RegisterLibFunc(&p.ShaderModuleRelease, libHandle, "wgpuShaderModuleRelease")
	purego.RegisterLibFunc(&p.BindGroupRelease, libHandle, "wgpuBindGroupRelease")
	purego.RegisterLibFunc(&p.BindGroupLayoutRelease, libHandle, "wgpuBindGroupLayoutRelease")
	purego.RegisterLibFunc(&p.PipelineLayoutRelease, libHandle, "wgpuPipelineLayoutRelease")
	purego.RegisterLibFunc(&p.RenderPipelineRelease, libHandle, "wgpuRenderPipelineRelease")
	purego.RegisterLibFunc(&p.ComputePipelineRelease, libHandle, "wgpuComputePipelineRelease")
}

func registerEncoderProcs(p *Procs) {
	purego.RegisterLibFunc(&p.CommandEncoderBeginRenderPass, libHandle, "wgpuCommandEncoderBeginRenderPass")
	purego.RegisterLibFunc(&p.CommandEncoderBeginComputePass, libHandle, "wgpuCommandEncoderBeginComputePass")
	purego.RegisterLibFunc(&p.CommandEncoderCopyBufferToBuffer, libHandle, "wgpuCommandEncoderCopyBufferToBuffer")
	purego.RegisterLibFunc(&p.CommandEncoderCopyBufferToTexture, libHandle, "wgpuCommandEncoderCopyBufferToTexture")
	purego.RegisterLibFunc(&p.CommandEncoderCopyTextureToBuffer, libHandle, "wgpuCommandEncoderCopyTextureToBuffer")
	purego.RegisterLibFunc(&p.CommandEncoderFinish, libHandle, "wgpuCommandEncoderFinish")
	purego.RegisterLibFunc(&p.CommandEncoderRelease, libHandle, "wgpuCommandEncoderRelease")
	purego.RegisterLibFunc(&p.CommandBufferRelease, libHandle, "wgpuCommandBufferRelease")
	purego.RegisterLibFunc(&p.RenderPassEncoderSetPipeline, libHandle, "wgpuRenderPassEncoderSetPipeline")
	purego.RegisterLibFunc(&p.RenderPassEncoderSetBindGroup, libHandle, "wgpuRenderPassEncoderSetBindGroup")
	purego.RegisterLibFunc(&p.RenderPassEncoderSetVertexBuffer, libHandle, "wgpuRenderPassEncoderSetVertexBuffer")
	purego.RegisterLibFunc(&p.RenderPassEncoderSetIndexBuffer, libHandle, "wgpuRenderPassEncoderSetIndexBuffer")
	purego.RegisterLibFunc(&p.RenderPassEncoderSetViewport, libHandle, "wgpuRenderPassEncoderSetViewport")
	purego.RegisterLibFunc(&p.RenderPassEncoderSetScissorRect, libHandle, "wgpuRenderPassEncoderSetScissorRect")
	purego.RegisterLibFunc(&p.RenderPassEncoderDraw, libHandle, "wgpuRenderPassEncoderDraw")
	purego.RegisterLibFunc(&p.RenderPassEncoderDrawIndexed, libHandle, "wgpuRenderPassEncoderDrawIndexed")
	purego.RegisterLibFunc(&p.RenderPassEncoderEnd, libHandle, "wgpuRenderPassEncoderEnd")
	purego.RegisterLibFunc(&p.RenderPassEncoderRelease, libHandle, "wgpuRenderPassEncoderRelease")
	purego.RegisterLibFunc(&p.ComputePassEncoderSetPipeline, libHandle, "wgpuComputePassEncoderSetPipeline")
	purego.RegisterLibFunc(&p.ComputePassEncoderSetBindGroup, libHandle, "wgpuComputePassEncoderSetBindGroup")
	purego.RegisterLibFunc(&p.ComputePassEncoderDispatchWorkgroups, libHandle, "wgpuComputePassEncoderDispatchWorkgroups")
	purego.RegisterLibFunc(&p.ComputePassEncoderEnd, libHandle, "wgpuComputePassEncoderEnd")
	purego.RegisterLibFunc(&p.ComputePassEncoderRelease, libHandle, "wgpuComputePassEncoderRelease")
}

func registerSurfaceProcs(p *Procs) {
	purego.RegisterLibFunc(&p.SurfaceGetCapabilities, libHandle, "wgpuSurfaceGetCapabilities")
	purego.RegisterLibFunc(&p.SurfaceConfigure, libHandle, "wgpuSurfaceConfigure")
	purego.RegisterLibFunc(&p.SurfaceUnconfigure, libHandle, "wgpuSurfaceUnconfigure")
	purego.RegisterLibFunc(&p.SurfaceGetCurrentTexture, libHandle, "wgpuSurfaceGetCurrentTexture")
	purego.RegisterLibFunc(&p.SurfacePresent, libHandle, "wgpuSurfacePresent")
	purego.RegisterLibFunc(&p.SurfaceRelease, libHandle, "wgpuSurfaceRelease")
	purego.RegisterLibFunc(&p.SurfaceCapabilitiesFreeMembers, libHandle, "wgpuSurfaceCapabilitiesFreeMembers")
}
