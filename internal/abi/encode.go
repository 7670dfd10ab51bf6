package abi

// Mirror structs are the lowered form of the binding's public descriptors:
// handles as uintptr, enums as their symbolic names, flags as raw words.
// Each Encode function allocates from m, writes every field at its layout
// offset, and returns the sealed segment's native address. Pointee segments
// are always completed and sealed before their address is written into a
// parent, so encoding stays correct even under a relocating allocator.

// putStringView writes a WGPUStringView at off. Empty strings stay the zero
// view {NULL, 0}.
func putStringView(m Mem, s *Seg, off int, v string) {
	if v == "" {
		return
	}
	data := m.Alloc(len(v), 1)
	data.PutBytes(0, []byte(v))
	s.PutPtr(off+svData, data.Addr())
	s.PutU64(off+svLength, uint64(len(v)))
}

// CallbackInfo carries the trampoline registration values supplied by the
// gateway for embedding into descriptor callback-info fields.
type CallbackInfo struct {
	Mode      uint32
	Callback  uintptr
	Userdata1 uintptr
	Userdata2 uintptr
}

func putCallbackInfo(s *Seg, off int, ci CallbackInfo) {
	s.PutU32(off+cbMode, ci.Mode)
	s.PutPtr(off+cbCallback, ci.Callback)
	s.PutPtr(off+cbUserdata1, ci.Userdata1)
	s.PutPtr(off+cbUserdata2, ci.Userdata2)
}

// EncodeInstanceDescriptor writes the instance descriptor with its inlined
// capability block. Timed waits stay disabled; the binding pumps
// ProcessEvents instead of blocking in WaitAny.
func EncodeInstanceDescriptor(m Mem) uintptr {
	s := m.Alloc(sizeofInstanceDescriptor, 8)
	s.PutBool(instDescTimedWaitEnable, false)
	s.PutU64(instDescTimedWaitMax, 0)
	return s.Addr()
}

type RequestAdapterOptions struct {
	FeatureLevel      string
	PowerPreference   string
	ForceFallback     bool
	BackendType       string
	CompatibleSurface uintptr
}

func EncodeRequestAdapterOptions(m Mem, o *RequestAdapterOptions) uintptr {
	s := m.Alloc(sizeofRequestAdapterOptions, 8)
	s.PutU32(raoFeatureLevel, featureLevels.code(orDefault(o.FeatureLevel, "core")))
	s.PutU32(raoPowerPreference, powerPreferences.code(orDefault(o.PowerPreference, "undefined")))
	s.PutBool(raoForceFallback, o.ForceFallback)
	s.PutU32(raoBackendType, backendTypes.code(orDefault(o.BackendType, "undefined")))
	s.PutPtr(raoCompatibleSurface, o.CompatibleSurface)
	return s.Addr()
}

// Limits mirrors WGPULimits. Zero means "use the native default" only when
// the caller leaves the whole struct nil; an explicit struct is encoded
// verbatim.
type Limits struct {
	MaxTextureDimension1D                     uint32
	MaxTextureDimension2D                     uint32
	MaxTextureDimension3D                     uint32
	MaxTextureArrayLayers                     uint32
	MaxBindGroups                             uint32
	MaxBindGroupsPlusVertexBuffers            uint32
	MaxBindingsPerBindGroup                   uint32
	MaxDynamicUniformBuffersPerPipelineLayout uint32
	MaxDynamicStorageBuffersPerPipelineLayout uint32
	MaxSampledTexturesPerShaderStage          uint32
	MaxSamplersPerShaderStage                 uint32
	MaxStorageBuffersPerShaderStage           uint32
	MaxStorageTexturesPerShaderStage          uint32
	MaxUniformBuffersPerShaderStage           uint32
	MaxUniformBufferBindingSize               uint64
	MaxStorageBufferBindingSize               uint64
	MinUniformBufferOffsetAlignment           uint32
	MinStorageBufferOffsetAlignment           uint32
	MaxVertexBuffers                          uint32
	MaxBufferSize                             uint64
	MaxVertexAttributes                       uint32
	MaxVertexBufferArrayStride                uint32
	MaxInterStageShaderVariables              uint32
	MaxColorAttachments                       uint32
	MaxColorAttachmentBytesPerSample          uint32
	MaxComputeWorkgroupStorageSize            uint32
	MaxComputeInvocationsPerWorkgroup         uint32
	MaxComputeWorkgroupSizeX                  uint32
	MaxComputeWorkgroupSizeY                  uint32
	MaxComputeWorkgroupSizeZ                  uint32
	MaxComputeWorkgroupsPerDimension          uint32
}

func putLimits(s *Seg, off int, l *Limits) {
	s.PutU32(off+limMaxTextureDimension1D, l.MaxTextureDimension1D)
	s.PutU32(off+limMaxTextureDimension2D, l.MaxTextureDimension2D)
	s.PutU32(off+limMaxTextureDimension3D, l.MaxTextureDimension3D)
	s.PutU32(off+limMaxTextureArrayLayers, l.MaxTextureArrayLayers)
	s.PutU32(off+limMaxBindGroups, l.MaxBindGroups)
	s.PutU32(off+limMaxBindGroupsPlusVB, l.MaxBindGroupsPlusVertexBuffers)
	s.PutU32(off+limMaxBindingsPerBindGroup, l.MaxBindingsPerBindGroup)
	s.PutU32(off+limMaxDynamicUniformBuffers, l.MaxDynamicUniformBuffersPerPipelineLayout)
	s.PutU32(off+limMaxDynamicStorageBuffers, l.MaxDynamicStorageBuffersPerPipelineLayout)
	s.PutU32(off+limMaxSampledTextures, l.MaxSampledTexturesPerShaderStage)
	s.PutU32(off+limMaxSamplers, l.MaxSamplersPerShaderStage)
	s.PutU32(off+limMaxStorageBuffers, l.MaxStorageBuffersPerShaderStage)
	s.PutU32(off+limMaxStorageTextures, l.MaxStorageTexturesPerShaderStage)
	s.PutU32(off+limMaxUniformBuffers, l.MaxUniformBuffersPerShaderStage)
	s.PutU64(off+limMaxUniformBufferBinding, l.MaxUniformBufferBindingSize)
	s.PutU64(off+limMaxStorageBufferBinding, l.MaxStorageBufferBindingSize)
	s.PutU32(off+limMinUniformOffsetAlignment, l.MinUniformBufferOffsetAlignment)
	s.PutU32(off+limMinStorageOffsetAlignment, l.MinStorageBufferOffsetAlignment)
	s.PutU32(off+limMaxVertexBuffers, l.MaxVertexBuffers)
	s.PutU64(off+limMaxBufferSize, l.MaxBufferSize)
	s.PutU32(off+limMaxVertexAttributes, l.MaxVertexAttributes)
	s.PutU32(off+limMaxVertexArrayStride, l.MaxVertexBufferArrayStride)
	s.PutU32(off+limMaxInterStageVariables, l.MaxInterStageShaderVariables)
	s.PutU32(off+limMaxColorAttachments, l.MaxColorAttachments)
	s.PutU32(off+limMaxColorAttachmentBytes, l.MaxColorAttachmentBytesPerSample)
	s.PutU32(off+limMaxWorkgroupStorage, l.MaxComputeWorkgroupStorageSize)
	s.PutU32(off+limMaxInvocationsPerGroup, l.MaxComputeInvocationsPerWorkgroup)
	s.PutU32(off+limMaxWorkgroupSizeX, l.MaxComputeWorkgroupSizeX)
	s.PutU32(off+limMaxWorkgroupSizeY, l.MaxComputeWorkgroupSizeY)
	s.PutU32(off+limMaxWorkgroupSizeZ, l.MaxComputeWorkgroupSizeZ)
	s.PutU32(off+limMaxWorkgroupsPerDimension, l.MaxComputeWorkgroupsPerDimension)
}

func encodeRequiredLimits(m Mem, l *Limits) uintptr {
	s := m.Alloc(sizeofLimitsWrapper, 8)
	putLimits(s, limWrapLimits, l)
	return s.Addr()
}

type DeviceDescriptor struct {
	Label             string
	RequiredLimits    *Limits
	DefaultQueueLabel string
	DeviceLost        CallbackInfo
	UncapturedError   CallbackInfo
}

func EncodeDeviceDescriptor(m Mem, d *DeviceDescriptor) uintptr {
	s := m.Alloc(sizeofDeviceDescriptor, 8)
	putStringView(m, s, devDescLabel, d.Label)
	if d.RequiredLimits != nil {
		s.PutPtr(devDescRequiredLimits, encodeRequiredLimits(m, d.RequiredLimits))
	}
	putStringView(m, s, devDescDefaultQueue+queueDescLabel, d.DefaultQueueLabel)
	putCallbackInfo(s, devDescDeviceLostCB, d.DeviceLost)
	putCallbackInfo(s, devDescUncapturedCB, d.UncapturedError)
	return s.Addr()
}

// EncodeSurfaceDescriptor hooks a platform source extension struct into the
// descriptor chain. The source address comes from one of the
// Encode*Source helpers below.
func EncodeSurfaceDescriptor(m Mem, label string, source uintptr) uintptr {
	s := m.Alloc(sizeofSurfaceDescriptor, 8)
	s.PutPtr(chainNext, source)
	putStringView(m, s, surfDescLabel, label)
	return s.Addr()
}

func EncodeMetalLayerSource(m Mem, layer uintptr) uintptr {
	s := m.Alloc(sizeofSurfaceSourceMetal, 8)
	s.PutU32(chainSType, stypeSurfaceSourceMetalLayer)
	s.PutPtr(ssMetalLayer, layer)
	return s.Addr()
}

func EncodeWindowsHWNDSource(m Mem, hinstance, hwnd uintptr) uintptr {
	s := m.Alloc(sizeofSurfaceSourceHWND, 8)
	s.PutU32(chainSType, stypeSurfaceSourceWindowsHWND)
	s.PutPtr(ssHWNDHinstance, hinstance)
	s.PutPtr(ssHWNDHwnd, hwnd)
	return s.Addr()
}

func EncodeXlibWindowSource(m Mem, display uintptr, window uint64) uintptr {
	s := m.Alloc(sizeofSurfaceSourceXlib, 8)
	s.PutU32(chainSType, stypeSurfaceSourceXlibWindow)
	s.PutPtr(ssXlibDisplay, display)
	s.PutU64(ssXlibWindow, window)
	return s.Addr()
}

func EncodeWaylandSurfaceSource(m Mem, display, surface uintptr) uintptr {
	s := m.Alloc(sizeofSurfaceSourceWayland, 8)
	s.PutU32(chainSType, stypeSurfaceSourceWaylandSurface)
	s.PutPtr(ssWaylandDisplay, display)
	s.PutPtr(ssWaylandSurface, surface)
	return s.Addr()
}

type SurfaceConfiguration struct {
	Device      uintptr
	Format      string
	Usage       uint64
	Width       uint32
	Height      uint32
	ViewFormats []string
	AlphaMode   string
	PresentMode string
}

func EncodeSurfaceConfiguration(m Mem, c *SurfaceConfiguration) uintptr {
	s := m.Alloc(sizeofSurfaceConfiguration, 8)
	s.PutPtr(surfCfgDevice, c.Device)
	s.PutU32(surfCfgFormat, textureFormats.code(c.Format))
	s.PutU64(surfCfgUsage, c.Usage)
	s.PutU32(surfCfgWidth, c.Width)
	s.PutU32(surfCfgHeight, c.Height)
	if len(c.ViewFormats) > 0 {
		arr := m.Alloc(len(c.ViewFormats)*4, 4)
		for i, f := range c.ViewFormats {
			arr.PutU32(i*4, textureFormats.code(f))
		}
		s.PutUsize(surfCfgViewFormatCount, len(c.ViewFormats))
		s.PutPtr(surfCfgViewFormats, arr.Addr())
	}
	s.PutU32(surfCfgAlphaMode, alphaModes.code(orDefault(c.AlphaMode, "auto")))
	s.PutU32(surfCfgPresentMode, presentModes.code(orDefault(c.PresentMode, "fifo")))
	return s.Addr()
}

type BufferDescriptor struct {
	Label            string
	Usage            uint64
	Size             uint64
	MappedAtCreation bool
}

func EncodeBufferDescriptor(m Mem, d *BufferDescriptor) uintptr {
	s := m.Alloc(sizeofBufferDescriptor, 8)
	putStringView(m, s, bufDescLabel, d.Label)
	s.PutU64(bufDescUsage, d.Usage)
	s.PutU64(bufDescSize, d.Size)
	s.PutBool(bufDescMapped, d.MappedAtCreation)
	return s.Addr()
}

type TextureDescriptor struct {
	Label         string
	Usage         uint64
	Dimension     string
	Width         uint32
	Height        uint32
	DepthOrLayers uint32
	Format        string
	MipLevelCount uint32
	SampleCount   uint32
	ViewFormats   []string
}

func EncodeTextureDescriptor(m Mem, d *TextureDescriptor) uintptr {
	s := m.Alloc(sizeofTextureDescriptor, 8)
	putStringView(m, s, texDescLabel, d.Label)
	s.PutU64(texDescUsage, d.Usage)
	s.PutU32(texDescDimension, textureDimensions.code(orDefault(d.Dimension, "2d")))
	s.PutU32(texDescSize+extWidth, d.Width)
	s.PutU32(texDescSize+extHeight, d.Height)
	s.PutU32(texDescSize+extDepth, max(d.DepthOrLayers, 1))
	s.PutU32(texDescFormat, textureFormats.code(d.Format))
	s.PutU32(texDescMipLevelCount, max(d.MipLevelCount, 1))
	s.PutU32(texDescSampleCount, max(d.SampleCount, 1))
	if len(d.ViewFormats) > 0 {
		arr := m.Alloc(len(d.ViewFormats)*4, 4)
		for i, f := range d.ViewFormats {
			arr.PutU32(i*4, textureFormats.code(f))
		}
		s.PutUsize(texDescViewFormatCount, len(d.ViewFormats))
		s.PutPtr(texDescViewFormats, arr.Addr())
	}
	return s.Addr()
}

// TextureViewDescriptor leaves unset enums at the native "undefined" code so
// the library infers them from the texture.
type TextureViewDescriptor struct {
	Label           string
	Format          string
	Dimension       string
	BaseMipLevel    uint32
	MipLevelCount   uint32
	BaseArrayLayer  uint32
	ArrayLayerCount uint32
	Aspect          string
	Usage           uint64
}

func EncodeTextureViewDescriptor(m Mem, d *TextureViewDescriptor) uintptr {
	s := m.Alloc(sizeofTextureViewDescriptor, 8)
	putStringView(m, s, tvDescLabel, d.Label)
	if d.Format != "" {
		s.PutU32(tvDescFormat, textureFormats.code(d.Format))
	}
	if d.Dimension != "" {
		s.PutU32(tvDescDimension, textureViewDimensions.code(d.Dimension))
	}
	s.PutU32(tvDescBaseMipLevel, d.BaseMipLevel)
	mips := d.MipLevelCount
	if mips == 0 {
		mips = MipLevelCountUndefined
	}
	s.PutU32(tvDescMipLevelCount, mips)
	s.PutU32(tvDescBaseArrayLayer, d.BaseArrayLayer)
	layers := d.ArrayLayerCount
	if layers == 0 {
		layers = ArrayLayerCountUndefined
	}
	s.PutU32(tvDescArrayLayerCount, layers)
	s.PutU32(tvDescAspect, textureAspects.code(orDefault(d.Aspect, "all")))
	s.PutU64(tvDescUsage, d.Usage)
	return s.Addr()
}

type SamplerDescriptor struct {
	Label         string
	AddressModeU  string
	AddressModeV  string
	AddressModeW  string
	MagFilter     string
	MinFilter     string
	MipmapFilter  string
	LodMinClamp   float32
	LodMaxClamp   float32
	Compare       string
	MaxAnisotropy uint16
}

func EncodeSamplerDescriptor(m Mem, d *SamplerDescriptor) uintptr {
	s := m.Alloc(sizeofSamplerDescriptor, 8)
	putStringView(m, s, sampDescLabel, d.Label)
	s.PutU32(sampDescAddressU, addressModes.code(orDefault(d.AddressModeU, "clamp-to-edge")))
	s.PutU32(sampDescAddressV, addressModes.code(orDefault(d.AddressModeV, "clamp-to-edge")))
	s.PutU32(sampDescAddressW, addressModes.code(orDefault(d.AddressModeW, "clamp-to-edge")))
	s.PutU32(sampDescMagFilter, filterModes.code(orDefault(d.MagFilter, "nearest")))
	s.PutU32(sampDescMinFilter, filterModes.code(orDefault(d.MinFilter, "nearest")))
	s.PutU32(sampDescMipmapFilter, filterModes.code(orDefault(d.MipmapFilter, "nearest")))
	s.PutF32(sampDescLodMin, d.LodMinClamp)
	s.PutF32(sampDescLodMax, d.LodMaxClamp)
	if d.Compare != "" {
		s.PutU32(sampDescCompare, compareFunctions.code(d.Compare))
	}
	s.PutU16(sampDescMaxAnisotropy, max(d.MaxAnisotropy, 1))
	return s.Addr()
}

// EncodeShaderModuleWGSL chains a WGPUShaderSourceWGSL extension carrying the
// module source.
func EncodeShaderModuleWGSL(m Mem, label, code string) uintptr {
	src := m.Alloc(sizeofShaderSourceWGSL, 8)
	src.PutU32(chainSType, stypeShaderSourceWGSL)
	putStringView(m, src, wgslCode, code)
	s := m.Alloc(sizeofShaderModuleDescriptor, 8)
	s.PutPtr(chainNext, src.Addr())
	putStringView(m, s, shadDescLabel, label)
	return s.Addr()
}

type BufferBindingLayout struct {
	Type             string
	HasDynamicOffset bool
	MinBindingSize   uint64
}

type SamplerBindingLayout struct {
	Type string
}

type TextureBindingLayout struct {
	SampleType    string
	ViewDimension string
	Multisampled  bool
}

type StorageTextureBindingLayout struct {
	Access        string
	Format        string
	ViewDimension string
}

// BindGroupLayoutEntry populates exactly one of the four binding layouts;
// the rest stay zeroed, which the native layer reads as "binding not used".
type BindGroupLayoutEntry struct {
	Binding        uint32
	Visibility     uint64
	Buffer         *BufferBindingLayout
	Sampler        *SamplerBindingLayout
	Texture        *TextureBindingLayout
	StorageTexture *StorageTextureBindingLayout
}

func putBindGroupLayoutEntry(s *Seg, off int, e *BindGroupLayoutEntry) {
	s.PutU32(off+bglEntryBinding, e.Binding)
	s.PutU64(off+bglEntryVisibility, e.Visibility)
	if e.Buffer != nil {
		s.PutU32(off+bglEntryBuffer+bblType, bufferBindingTypes.code(orDefault(e.Buffer.Type, "uniform")))
		s.PutBool(off+bglEntryBuffer+bblHasDynamicOffset, e.Buffer.HasDynamicOffset)
		s.PutU64(off+bglEntryBuffer+bblMinBindingSize, e.Buffer.MinBindingSize)
	}
	if e.Sampler != nil {
		s.PutU32(off+bglEntrySampler+sblType, samplerBindingTypes.code(orDefault(e.Sampler.Type, "filtering")))
	}
	if e.Texture != nil {
		s.PutU32(off+bglEntryTexture+tblSampleType, textureSampleTypes.code(orDefault(e.Texture.SampleType, "float")))
		s.PutU32(off+bglEntryTexture+tblViewDimension, textureViewDimensions.code(orDefault(e.Texture.ViewDimension, "2d")))
		s.PutBool(off+bglEntryTexture+tblMultisampled, e.Texture.Multisampled)
	}
	if e.StorageTexture != nil {
		s.PutU32(off+bglEntryStorageTexture+stblAccess, storageTextureAccesses.code(orDefault(e.StorageTexture.Access, "write-only")))
		s.PutU32(off+bglEntryStorageTexture+stblFormat, textureFormats.code(e.StorageTexture.Format))
		s.PutU32(off+bglEntryStorageTexture+stblViewDimension, textureViewDimensions.code(orDefault(e.StorageTexture.ViewDimension, "2d")))
	}
}

type BindGroupLayoutDescriptor struct {
	Label   string
	Entries []BindGroupLayoutEntry
}

func EncodeBindGroupLayoutDescriptor(m Mem, d *BindGroupLayoutDescriptor) uintptr {
	var entries uintptr
	if len(d.Entries) > 0 {
		arr := m.Alloc(len(d.Entries)*sizeofBindGroupLayoutEntry, 8)
		for i := range d.Entries {
			putBindGroupLayoutEntry(arr, i*sizeofBindGroupLayoutEntry, &d.Entries[i])
		}
		entries = arr.Addr()
	}
	s := m.Alloc(sizeofBindGroupLayoutDescriptor, 8)
	putStringView(m, s, bglDescLabel, d.Label)
	s.PutUsize(bglDescEntryCount, len(d.Entries))
	s.PutPtr(bglDescEntries, entries)
	return s.Addr()
}

// BindGroupEntry binds exactly one resource; Size zero means WholeSize for
// buffer bindings.
type BindGroupEntry struct {
	Binding     uint32
	Buffer      uintptr
	Offset      uint64
	Size        uint64
	Sampler     uintptr
	TextureView uintptr
}

type BindGroupDescriptor struct {
	Label   string
	Layout  uintptr
	Entries []BindGroupEntry
}

func EncodeBindGroupDescriptor(m Mem, d *BindGroupDescriptor) uintptr {
	var entries uintptr
	if len(d.Entries) > 0 {
		arr := m.Alloc(len(d.Entries)*sizeofBindGroupEntry, 8)
		for i := range d.Entries {
			e := &d.Entries[i]
			off := i * sizeofBindGroupEntry
			arr.PutU32(off+bgEntryBinding, e.Binding)
			arr.PutPtr(off+bgEntryBuffer, e.Buffer)
			arr.PutU64(off+bgEntryOffset, e.Offset)
			size := e.Size
			if e.Buffer != 0 && size == 0 {
				size = WholeSize
			}
			arr.PutU64(off+bgEntrySize, size)
			arr.PutPtr(off+bgEntrySampler, e.Sampler)
			arr.PutPtr(off+bgEntryTextureView, e.TextureView)
		}
		entries = arr.Addr()
	}
	s := m.Alloc(sizeofBindGroupDescriptor, 8)
	putStringView(m, s, bgDescLabel, d.Label)
	s.PutPtr(bgDescLayout, d.Layout)
	s.PutUsize(bgDescEntryCount, len(d.Entries))
	s.PutPtr(bgDescEntries, entries)
	return s.Addr()
}

type PipelineLayoutDescriptor struct {
	Label            string
	BindGroupLayouts []uintptr
}

func EncodePipelineLayoutDescriptor(m Mem, d *PipelineLayoutDescriptor) uintptr {
	layouts := EncodeHandleArray(m, d.BindGroupLayouts)
	s := m.Alloc(sizeofPipelineLayoutDescriptor, 8)
	putStringView(m, s, plDescLabel, d.Label)
	s.PutUsize(plDescLayoutCount, len(d.BindGroupLayouts))
	s.PutPtr(plDescLayouts, layouts)
	return s.Addr()
}

// EncodeHandleArray packs opaque handles contiguously, as queue submission
// and pipeline layout lists require. Empty slices encode as a null pointer.
func EncodeHandleArray(m Mem, handles []uintptr) uintptr {
	if len(handles) == 0 {
		return 0
	}
	s := m.Alloc(len(handles)*8, 8)
	for i, h := range handles {
		s.PutPtr(i*8, h)
	}
	return s.Addr()
}

// EncodeLabelDescriptor covers the descriptors that carry nothing but a
// label (command encoders and command buffers).
func EncodeLabelDescriptor(m Mem, label string) uintptr {
	s := m.Alloc(sizeofCommandEncoderDescriptor, 8)
	putStringView(m, s, ceDescLabel, label)
	return s.Addr()
}

type TexelCopyTexture struct {
	Texture  uintptr
	MipLevel uint32
	OriginX  uint32
	OriginY  uint32
	OriginZ  uint32
	Aspect   string
}

func EncodeTexelCopyTexture(m Mem, t *TexelCopyTexture) uintptr {
	s := m.Alloc(sizeofTexelCopyTextureInfo, 8)
	s.PutPtr(tctTexture, t.Texture)
	s.PutU32(tctMipLevel, t.MipLevel)
	s.PutU32(tctOrigin+originX, t.OriginX)
	s.PutU32(tctOrigin+originY, t.OriginY)
	s.PutU32(tctOrigin+originZ, t.OriginZ)
	s.PutU32(tctAspect, textureAspects.code(orDefault(t.Aspect, "all")))
	return s.Addr()
}

// TexelCopyLayout zero strides encode as the native "undefined" sentinel,
// which the library accepts for single-row and single-image copies.
type TexelCopyLayout struct {
	Offset       uint64
	BytesPerRow  uint32
	RowsPerImage uint32
}

func EncodeTexelCopyLayout(m Mem, l *TexelCopyLayout) uintptr {
	s := m.Alloc(sizeofTexelCopyBufferLayout, 8)
	putTexelCopyLayout(s, 0, l)
	return s.Addr()
}

func putTexelCopyLayout(s *Seg, off int, l *TexelCopyLayout) {
	s.PutU64(off+tcbOffset, l.Offset)
	bpr := l.BytesPerRow
	if bpr == 0 {
		bpr = CopyStrideUndefined
	}
	s.PutU32(off+tcbBytesPerRow, bpr)
	rpi := l.RowsPerImage
	if rpi == 0 {
		rpi = CopyStrideUndefined
	}
	s.PutU32(off+tcbRowsPerImage, rpi)
}

// EncodeTexelCopyBuffer pairs a buffer handle with its texel layout for the
// buffer-texture copy commands.
func EncodeTexelCopyBuffer(m Mem, buffer uintptr, l *TexelCopyLayout) uintptr {
	s := m.Alloc(sizeofTexelCopyBufferInfo, 8)
	putTexelCopyLayout(s, tcbiLayout, l)
	s.PutPtr(tcbiBuffer, buffer)
	return s.Addr()
}

func EncodeExtent3D(m Mem, width, height, depth uint32) uintptr {
	s := m.Alloc(sizeofExtent3D, 4)
	s.PutU32(extWidth, width)
	s.PutU32(extHeight, height)
	s.PutU32(extDepth, max(depth, 1))
	return s.Addr()
}
