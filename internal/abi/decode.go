package abi

import (
	"fmt"
	"unsafe"
)

// Decoders read native-written structures back out of out-parameter
// segments. Passing a segment to a native call seals it through the Addr
// capture, and the backing memory never moves, so reads after the call see
// exactly what the library wrote.

// SurfaceCapabilities lists what a surface supports on the selected
// adapter. Native codes missing from the lookup tables are dropped rather
// than surfaced as empty strings.
type SurfaceCapabilities struct {
	Usages       uint64
	Formats      []string
	PresentModes []string
	AlphaModes   []string
}

// maxCapsEntries bounds array reads from a native capability struct so a
// corrupt count cannot drive a huge allocation.
const maxCapsEntries = 256

func decodeEnumArray(t *enumTable, ptr uintptr, count uint64) []string {
	if ptr == 0 || count == 0 {
		return nil
	}
	if count > maxCapsEntries {
		count = maxCapsEntries
	}
	codes := unsafe.Slice((*uint32)(unsafe.Pointer(ptr)), count)
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if sym, ok := t.symbol(c); ok {
			out = append(out, sym)
		}
	}
	return out
}

// AllocSurfaceCapabilities hands out a zeroed out-param segment for
// wgpuSurfaceGetCapabilities.
func AllocSurfaceCapabilities(m Mem) *Seg {
	return m.Alloc(sizeofSurfaceCapabilities, 8)
}

// AllocSurfaceTexture hands out a zeroed out-param segment for
// wgpuSurfaceGetCurrentTexture.
func AllocSurfaceTexture(m Mem) *Seg {
	return m.Alloc(sizeofSurfaceTexture, 8)
}

// AllocLimits hands out a zeroed out-param segment for the adapter and
// device GetLimits calls.
func AllocLimits(m Mem) *Seg {
	return m.Alloc(sizeofLimitsWrapper, 8)
}

// SurfaceCapsRaw carries the native-owned array pointers out of a
// capabilities segment so the gateway's FreeMembers call can release them
// after the symbolic copy is taken.
type SurfaceCapsRaw struct {
	Usages           uint64
	FormatCount      uint64
	Formats          uintptr
	PresentModeCount uint64
	PresentModes     uintptr
	AlphaModeCount   uint64
	AlphaModes       uintptr
}

func DecodeSurfaceCapsRaw(s *Seg) SurfaceCapsRaw {
	return SurfaceCapsRaw{
		Usages:           s.U64(surfCapsUsages),
		FormatCount:      s.U64(surfCapsFormatCount),
		Formats:          s.Ptr(surfCapsFormats),
		PresentModeCount: s.U64(surfCapsPresentModeCount),
		PresentModes:     s.Ptr(surfCapsPresentModes),
		AlphaModeCount:   s.U64(surfCapsAlphaModeCount),
		AlphaModes:       s.Ptr(surfCapsAlphaModes),
	}
}

// DecodeSurfaceCapabilities reads the struct filled by
// wgpuSurfaceGetCapabilities. The enum arrays are copied out; the caller
// still releases the native-owned backing through the gateway's
// FreeMembers call.
func DecodeSurfaceCapabilities(s *Seg) SurfaceCapabilities {
	return SurfaceCapabilities{
		Usages:       s.U64(surfCapsUsages),
		Formats:      decodeEnumArray(textureFormats, s.Ptr(surfCapsFormats), s.U64(surfCapsFormatCount)),
		PresentModes: decodeEnumArray(presentModes, s.Ptr(surfCapsPresentModes), s.U64(surfCapsPresentModeCount)),
		AlphaModes:   decodeEnumArray(alphaModes, s.Ptr(surfCapsAlphaModes), s.U64(surfCapsAlphaModeCount)),
	}
}

// DecodeSurfaceTexture splits the wgpuSurfaceGetCurrentTexture out-param
// into the frame texture handle and its status code.
func DecodeSurfaceTexture(s *Seg) (texture uintptr, status uint32) {
	return s.Ptr(surfTexTexture), s.U32(surfTexStatus)
}

// DecodeSupportedLimits reads the wrapper struct filled by the adapter and
// device GetLimits calls.
func DecodeSupportedLimits(s *Seg) Limits {
	return readLimits(s, limWrapLimits)
}

func readLimits(s *Seg, off int) Limits {
	return Limits{
		MaxTextureDimension1D:                     s.U32(off + limMaxTextureDimension1D),
		MaxTextureDimension2D:                     s.U32(off + limMaxTextureDimension2D),
		MaxTextureDimension3D:                     s.U32(off + limMaxTextureDimension3D),
		MaxTextureArrayLayers:                     s.U32(off + limMaxTextureArrayLayers),
		MaxBindGroups:                             s.U32(off + limMaxBindGroups),
		MaxBindGroupsPlusVertexBuffers:            s.U32(off + limMaxBindGroupsPlusVB),
		MaxBindingsPerBindGroup:                   s.U32(off + limMaxBindingsPerBindGroup),
		MaxDynamicUniformBuffersPerPipelineLayout: s.U32(off + limMaxDynamicUniformBuffers),
		MaxDynamicStorageBuffersPerPipelineLayout: s.U32(off + limMaxDynamicStorageBuffers),
		MaxSampledTexturesPerShaderStage:          s.U32(off + limMaxSampledTextures),
		MaxSamplersPerShaderStage:                 s.U32(off + limMaxSamplers),
		MaxStorageBuffersPerShaderStage:           s.U32(off + limMaxStorageBuffers),
		MaxStorageTexturesPerShaderStage:          s.U32(off + limMaxStorageTextures),
		MaxUniformBuffersPerShaderStage:           s.U32(off + limMaxUniformBuffers),
		MaxUniformBufferBindingSize:               s.U64(off + limMaxUniformBufferBinding),
		MaxStorageBufferBindingSize:               s.U64(off + limMaxStorageBufferBinding),
		MinUniformBufferOffsetAlignment:           s.U32(off + limMinUniformOffsetAlignment),
		MinStorageBufferOffsetAlignment:           s.U32(off + limMinStorageOffsetAlignment),
		MaxVertexBuffers:                          s.U32(off + limMaxVertexBuffers),
		MaxBufferSize:                             s.U64(off + limMaxBufferSize),
		MaxVertexAttributes:                       s.U32(off + limMaxVertexAttributes),
		MaxVertexBufferArrayStride:                s.U32(off + limMaxVertexArrayStride),
		MaxInterStageShaderVariables:              s.U32(off + limMaxInterStageVariables),
		MaxColorAttachments:                       s.U32(off + limMaxColorAttachments),
		MaxColorAttachmentBytesPerSample:          s.U32(off + limMaxColorAttachmentBytes),
		MaxComputeWorkgroupStorageSize:            s.U32(off + limMaxWorkgroupStorage),
		MaxComputeInvocationsPerWorkgroup:         s.U32(off + limMaxInvocationsPerGroup),
		MaxComputeWorkgroupSizeX:                  s.U32(off + limMaxWorkgroupSizeX),
		MaxComputeWorkgroupSizeY:                  s.U32(off + limMaxWorkgroupSizeY),
		MaxComputeWorkgroupSizeZ:                  s.U32(off + limMaxWorkgroupSizeZ),
		MaxComputeWorkgroupsPerDimension:          s.U32(off + limMaxWorkgroupsPerDimension),
	}
}

// SurfaceStatusName names a surface acquisition status code for
// diagnostics.
func SurfaceStatusName(status uint32) string {
	switch status {
	case SurfaceStatusOptimal:
		return "optimal"
	case SurfaceStatusSuboptimal:
		return "suboptimal"
	case SurfaceStatusTimeout:
		return "timeout"
	case SurfaceStatusOutdated:
		return "outdated"
	case SurfaceStatusLost:
		return "lost"
	case SurfaceStatusOutOfMemory:
		return "out-of-memory"
	case SurfaceStatusDeviceLost:
		return "device-lost"
	case SurfaceStatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", status)
	}
}

// ErrorTypeName names an uncaptured error type code.
func ErrorTypeName(t uint32) string {
	switch t {
	case ErrorTypeNoError:
		return "no-error"
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeOutOfMemory:
		return "out-of-memory"
	case ErrorTypeInternal:
		return "internal"
	default:
		return fmt.Sprintf("error-type(%d)", t)
	}
}

// DeviceLostReasonName names a device lost reason code.
func DeviceLostReasonName(r uint32) string {
	switch r {
	case DeviceLostUnknown:
		return "unknown"
	case DeviceLostDestroyed:
		return "destroyed"
	case DeviceLostInstanceDropped:
		return "instance-dropped"
	case DeviceLostFailedCreation:
		return "failed-creation"
	default:
		return fmt.Sprintf("reason(%d)", r)
	}
}
