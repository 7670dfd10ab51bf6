// Package wgpu binds a prebuilt native WebGPU implementation (Dawn) into Go
// without cgo. The public surface mirrors the standard WebGPU object shape:
// an Instance yields Adapters, an Adapter yields a Device, and the Device
// creates buffers, textures, pipelines and command encoders whose work is
// submitted through its Queue and presented through a configured Surface.
//
// Every object wraps exactly one opaque native handle. Nothing is reclaimed
// automatically: each wrapper's Release must be called exactly once, and any
// use after release fails with ErrContract instead of reaching the native
// library. Descriptors are plain values consumed by the call that encodes
// them.
//
// Adapter and device requests are the only asynchronous operations; their
// native callbacks are bridged into synchronous calls by pumping the
// instance event queue until the callback fires or the configured timeout
// passes.
package wgpu

import "github.com/agiangrant/wgpu/internal/abi"

// BufferUsage flags, combined with |.
const (
	BufferUsageMapRead      uint64 = 1 << 0
	BufferUsageMapWrite     uint64 = 1 << 1
	BufferUsageCopySrc      uint64 = 1 << 2
	BufferUsageCopyDst      uint64 = 1 << 3
	BufferUsageIndex        uint64 = 1 << 4
	BufferUsageVertex       uint64 = 1 << 5
	BufferUsageUniform      uint64 = 1 << 6
	BufferUsageStorage      uint64 = 1 << 7
	BufferUsageIndirect     uint64 = 1 << 8
	BufferUsageQueryResolve uint64 = 1 << 9
)

// TextureUsage flags.
const (
	TextureUsageCopySrc          uint64 = 1 << 0
	TextureUsageCopyDst          uint64 = 1 << 1
	TextureUsageTextureBinding   uint64 = 1 << 2
	TextureUsageStorageBinding   uint64 = 1 << 3
	TextureUsageRenderAttachment uint64 = 1 << 4
)

// ShaderStage visibility flags for bind group layout entries.
const (
	ShaderStageVertex   uint64 = 1 << 0
	ShaderStageFragment uint64 = 1 << 1
	ShaderStageCompute  uint64 = 1 << 2
)

// ColorWriteMask flags for color target states.
const (
	ColorWriteMaskRed   uint64 = 1 << 0
	ColorWriteMaskGreen uint64 = 1 << 1
	ColorWriteMaskBlue  uint64 = 1 << 2
	ColorWriteMaskAlpha uint64 = 1 << 3
	ColorWriteMaskAll   uint64 = 0xF
)

// WholeSize in a bind group entry or vertex buffer binding means "from
// offset to the end of the buffer".
const WholeSize = abi.WholeSize

// Limits mirrors the native limit set used in device negotiation and
// reported by Adapter.Limits.
type Limits = abi.Limits

// checkEnum validates a symbolic enum value against the named native table.
func checkEnum(op, table, value string) error {
	if value == "" || abi.KnownEnum(table, value) {
		return nil
	}
	return errf(op, KindValidation, "unknown %s %q", table, value)
}
