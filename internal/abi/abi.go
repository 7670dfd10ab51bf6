// Package abi encodes caller-facing descriptor values into the exact C
// structure layouts of the Dawn webgpu.h ABI (2024+ header revision, 64-bit
// targets only).
//
// Every native structure the binding touches has an explicit layout block in
// layout.go giving its total size and per-field byte offsets. Encoders write
// fields through Seg, a fixed-size segment handed out by a Mem allocator, and
// capture a segment's native address only after its final write; Seg enforces
// that order by sealing itself on Addr. The production allocator is Arena,
// whose backing chunks never move once handed out, so captured addresses stay
// valid until the arena is released.
//
// This package issues no native calls.
package abi

// Mem hands out fixed-address memory segments for encoded structures.
// Segments start zeroed.
type Mem interface {
	Alloc(size, align int) *Seg
}

// Sentinel values defined by the native header.
const (
	// StrlenSentinel marks a string view as NUL-terminated instead of
	// carrying an explicit length. Encoders always emit explicit lengths;
	// the sentinel only shows up when decoding native-owned views.
	StrlenSentinel = ^uint64(0)

	// WholeSize in a bind group entry binds from offset to the end of the
	// buffer.
	WholeSize = ^uint64(0)

	DepthSliceUndefined      = uint32(0xFFFFFFFF)
	MipLevelCountUndefined   = uint32(0xFFFFFFFF)
	ArrayLayerCountUndefined = uint32(0xFFFFFFFF)
	CopyStrideUndefined      = uint32(0xFFFFFFFF)
)

// Native status codes (decode direction).
const (
	// WGPUStatus, returned by capability and limit queries.
	StatusSuccess = uint32(1)

	// WGPURequestAdapterStatus / WGPURequestDeviceStatus share the success
	// code; the non-success codes differ per enum and are only ever shown
	// to callers through the native message string.
	RequestStatusSuccess = uint32(1)

	// WGPUSurfaceGetCurrentTextureStatus. Only the first two are success.
	SurfaceStatusOptimal     = uint32(1)
	SurfaceStatusSuboptimal  = uint32(2)
	SurfaceStatusTimeout     = uint32(3)
	SurfaceStatusOutdated    = uint32(4)
	SurfaceStatusLost        = uint32(5)
	SurfaceStatusOutOfMemory = uint32(6)
	SurfaceStatusDeviceLost  = uint32(7)
	SurfaceStatusError       = uint32(8)

	// WGPUErrorType, delivered through the uncaptured error callback.
	ErrorTypeNoError     = uint32(1)
	ErrorTypeValidation  = uint32(2)
	ErrorTypeOutOfMemory = uint32(3)
	ErrorTypeInternal    = uint32(4)
	ErrorTypeUnknown     = uint32(5)

	// WGPUDeviceLostReason.
	DeviceLostUnknown         = uint32(1)
	DeviceLostDestroyed       = uint32(2)
	DeviceLostInstanceDropped = uint32(3)
	DeviceLostFailedCreation  = uint32(4)
)

// WGPUOptionalBool.
const (
	optionalFalse     = uint32(0)
	optionalTrue      = uint32(1)
	optionalUndefined = uint32(2)
)

// ReportFallback, when non-nil, is invoked each time a symbolic enum value
// misses its lookup table and the encoder substitutes the table default.
// The binding layer points this at its diagnostics sink.
var ReportFallback func(table, value string)

func alignTo(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
