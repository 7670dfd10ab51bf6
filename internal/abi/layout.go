package abi

// Structure layouts for the Dawn webgpu.h ABI, 64-bit targets. One const
// block per native structure: total size plus the byte offset of every field
// written or read by this binding. nextInChain always sits at offset 0 of
// chainable structures and is left zero unless an extension struct is hooked
// in, so most blocks omit it.
//
// These numbers are the versioned contract with the native library. A Dawn
// upgrade that reshapes a structure means updating the matching block here
// and nothing else.

// WGPUStringView
const (
	sizeofStringView = 16
	svData           = 0
	svLength         = 8
)

// WGPUChainedStruct
const (
	sizeofChainedStruct = 16
	chainNext           = 0
	chainSType          = 8
)

// Extension struct sType codes.
const (
	stypeShaderSourceWGSL            = 2
	stypeSurfaceSourceMetalLayer     = 4
	stypeSurfaceSourceWindowsHWND    = 5
	stypeSurfaceSourceXlibWindow     = 6
	stypeSurfaceSourceWaylandSurface = 7
)

// WGPUInstanceDescriptor, with WGPUInstanceCapabilities inlined.
const (
	sizeofInstanceDescriptor = 32
	instDescTimedWaitEnable  = 16
	instDescTimedWaitMax     = 24
)

// WGPURequestAdapterOptions
const (
	sizeofRequestAdapterOptions = 32
	raoFeatureLevel             = 8
	raoPowerPreference          = 12
	raoForceFallback            = 16
	raoBackendType              = 20
	raoCompatibleSurface        = 24
)

// WGPU*CallbackInfo: all callback info structs share one shape.
const (
	sizeofCallbackInfo = 40
	cbMode             = 8
	cbCallback         = 16
	cbUserdata1        = 24
	cbUserdata2        = 32
)

// WGPUQueueDescriptor
const (
	sizeofQueueDescriptor = 24
	queueDescLabel        = 8
)

// WGPUDeviceDescriptor
const (
	sizeofDeviceDescriptor = 152
	devDescLabel           = 8
	devDescFeatureCount    = 24
	devDescFeatures        = 32
	devDescRequiredLimits  = 40
	devDescDefaultQueue    = 48
	devDescDeviceLostCB    = 72
	devDescUncapturedCB    = 112
)

// WGPULimits
const (
	sizeofLimits                 = 144
	limMaxTextureDimension1D     = 0
	limMaxTextureDimension2D     = 4
	limMaxTextureDimension3D     = 8
	limMaxTextureArrayLayers     = 12
	limMaxBindGroups             = 16
	limMaxBindGroupsPlusVB       = 20
	limMaxBindingsPerBindGroup   = 24
	limMaxDynamicUniformBuffers  = 28
	limMaxDynamicStorageBuffers  = 32
	limMaxSampledTextures        = 36
	limMaxSamplers               = 40
	limMaxStorageBuffers         = 44
	limMaxStorageTextures        = 48
	limMaxUniformBuffers         = 52
	limMaxUniformBufferBinding   = 56
	limMaxStorageBufferBinding   = 64
	limMinUniformOffsetAlignment = 72
	limMinStorageOffsetAlignment = 76
	limMaxVertexBuffers          = 80
	limMaxBufferSize             = 88
	limMaxVertexAttributes       = 96
	limMaxVertexArrayStride      = 100
	limMaxInterStageVariables    = 104
	limMaxColorAttachments       = 108
	limMaxColorAttachmentBytes   = 112
	limMaxWorkgroupStorage       = 116
	limMaxInvocationsPerGroup    = 120
	limMaxWorkgroupSizeX         = 124
	limMaxWorkgroupSizeY         = 128
	limMaxWorkgroupSizeZ         = 132
	limMaxWorkgroupsPerDimension = 136
)

// WGPURequiredLimits / WGPUSupportedLimits: chain pointer, then the limits.
const (
	sizeofLimitsWrapper = 152
	limWrapLimits       = 8
)

// WGPUSurfaceDescriptor
const (
	sizeofSurfaceDescriptor = 24
	surfDescLabel           = 8
)

// WGPUSurfaceSource* extension structs.
const (
	sizeofSurfaceSourceMetal   = 24
	ssMetalLayer               = 16
	sizeofSurfaceSourceHWND    = 32
	ssHWNDHinstance            = 16
	ssHWNDHwnd                 = 24
	sizeofSurfaceSourceXlib    = 32
	ssXlibDisplay              = 16
	ssXlibWindow               = 24
	sizeofSurfaceSourceWayland = 32
	ssWaylandDisplay           = 16
	ssWaylandSurface           = 24
)

// WGPUSurfaceConfiguration
const (
	sizeofSurfaceConfiguration = 64
	surfCfgDevice              = 8
	surfCfgFormat              = 16
	surfCfgUsage               = 24
	surfCfgWidth               = 32
	surfCfgHeight              = 36
	surfCfgViewFormatCount     = 40
	surfCfgViewFormats         = 48
	surfCfgAlphaMode           = 56
	surfCfgPresentMode         = 60
)

// WGPUSurfaceCapabilities
const (
	sizeofSurfaceCapabilities = 64
	surfCapsUsages            = 8
	surfCapsFormatCount       = 16
	surfCapsFormats           = 24
	surfCapsPresentModeCount  = 32
	surfCapsPresentModes      = 40
	surfCapsAlphaModeCount    = 48
	surfCapsAlphaModes        = 56
)

// WGPUSurfaceTexture
const (
	sizeofSurfaceTexture = 24
	surfTexTexture       = 8
	surfTexStatus        = 16
)

// WGPUBufferDescriptor
const (
	sizeofBufferDescriptor = 48
	bufDescLabel           = 8
	bufDescUsage           = 24
	bufDescSize            = 32
	bufDescMapped          = 40
)

// WGPUExtent3D
const (
	sizeofExtent3D = 12
	extWidth       = 0
	extHeight      = 4
	extDepth       = 8
)

// WGPUOrigin3D
const (
	sizeofOrigin3D = 12
	originX        = 0
	originY        = 4
	originZ        = 8
)

// WGPUTextureDescriptor
const (
	sizeofTextureDescriptor = 80
	texDescLabel            = 8
	texDescUsage            = 24
	texDescDimension        = 32
	texDescSize             = 36
	texDescFormat           = 48
	texDescMipLevelCount    = 52
	texDescSampleCount      = 56
	texDescViewFormatCount  = 64
	texDescViewFormats      = 72
)

// WGPUTextureViewDescriptor
const (
	sizeofTextureViewDescriptor = 64
	tvDescLabel                 = 8
	tvDescFormat                = 24
	tvDescDimension             = 28
	tvDescBaseMipLevel          = 32
	tvDescMipLevelCount         = 36
	tvDescBaseArrayLayer        = 40
	tvDescArrayLayerCount       = 44
	tvDescAspect                = 48
	tvDescUsage                 = 56
)

// WGPUSamplerDescriptor
const (
	sizeofSamplerDescriptor = 64
	sampDescLabel           = 8
	sampDescAddressU        = 24
	sampDescAddressV        = 28
	sampDescAddressW        = 32
	sampDescMagFilter       = 36
	sampDescMinFilter       = 40
	sampDescMipmapFilter    = 44
	sampDescLodMin          = 48
	sampDescLodMax          = 52
	sampDescCompare         = 56
	sampDescMaxAnisotropy   = 60
)

// WGPUShaderModuleDescriptor and the WGSL source extension.
const (
	sizeofShaderModuleDescriptor = 24
	shadDescLabel                = 8
	sizeofShaderSourceWGSL       = 32
	wgslCode                     = 16
)

// WGPUBufferBindingLayout
const (
	sizeofBufferBindingLayout = 24
	bblType                   = 8
	bblHasDynamicOffset       = 12
	bblMinBindingSize         = 16
)

// WGPUSamplerBindingLayout
const (
	sizeofSamplerBindingLayout = 16
	sblType                    = 8
)

// WGPUTextureBindingLayout
const (
	sizeofTextureBindingLayout = 24
	tblSampleType              = 8
	tblViewDimension           = 12
	tblMultisampled            = 16
)

// WGPUStorageTextureBindingLayout
const (
	sizeofStorageTextureBindingLayout = 24
	stblAccess                        = 8
	stblFormat                        = 12
	stblViewDimension                 = 16
)

// WGPUBindGroupLayoutEntry: the four binding layouts sit inline; exactly one
// is populated per entry.
const (
	sizeofBindGroupLayoutEntry = 112
	bglEntryBinding            = 8
	bglEntryVisibility         = 16
	bglEntryBuffer             = 24
	bglEntrySampler            = 48
	bglEntryTexture            = 64
	bglEntryStorageTexture     = 88
)

// WGPUBindGroupLayoutDescriptor
const (
	sizeofBindGroupLayoutDescriptor = 40
	bglDescLabel                    = 8
	bglDescEntryCount               = 24
	bglDescEntries                  = 32
)

// WGPUBindGroupEntry
const (
	sizeofBindGroupEntry = 56
	bgEntryBinding       = 8
	bgEntryBuffer        = 16
	bgEntryOffset        = 24
	bgEntrySize          = 32
	bgEntrySampler       = 40
	bgEntryTextureView   = 48
)

// WGPUBindGroupDescriptor
const (
	sizeofBindGroupDescriptor = 48
	bgDescLabel               = 8
	bgDescLayout              = 24
	bgDescEntryCount          = 32
	bgDescEntries             = 40
)

// WGPUPipelineLayoutDescriptor
const (
	sizeofPipelineLayoutDescriptor = 40
	plDescLabel                    = 8
	plDescLayoutCount              = 24
	plDescLayouts                  = 32
)

// WGPUConstantEntry
const (
	sizeofConstantEntry = 32
	constEntryKey       = 8
	constEntryValue     = 24
)

// WGPUVertexAttribute
const (
	sizeofVertexAttribute = 24
	vaFormat              = 0
	vaOffset              = 8
	vaShaderLocation      = 16
)

// WGPUVertexBufferLayout
const (
	sizeofVertexBufferLayout = 32
	vblStepMode              = 0
	vblArrayStride           = 8
	vblAttributeCount        = 16
	vblAttributes            = 24
)

// WGPUVertexState
const (
	sizeofVertexState = 64
	vsModule          = 8
	vsEntryPoint      = 16
	vsConstantCount   = 32
	vsConstants       = 40
	vsBufferCount     = 48
	vsBuffers         = 56
)

// WGPUPrimitiveState
const (
	sizeofPrimitiveState = 32
	primTopology         = 8
	primStripIndex       = 12
	primFrontFace        = 16
	primCullMode         = 20
	primUnclippedDepth   = 24
)

// WGPUStencilFaceState
const (
	sizeofStencilFaceState = 16
	sfsCompare             = 0
	sfsFailOp              = 4
	sfsDepthFailOp         = 8
	sfsPassOp              = 12
)

// WGPUDepthStencilState
const (
	sizeofDepthStencilState = 72
	dssFormat               = 8
	dssDepthWriteEnabled    = 12
	dssDepthCompare         = 16
	dssStencilFront         = 20
	dssStencilBack          = 36
	dssStencilReadMask      = 52
	dssStencilWriteMask     = 56
	dssDepthBias            = 60
	dssDepthBiasSlopeScale  = 64
	dssDepthBiasClamp       = 68
)

// WGPUMultisampleState
const (
	sizeofMultisampleState = 24
	msCount                = 8
	msMask                 = 12
	msAlphaToCoverage      = 16
)

// WGPUBlendComponent / WGPUBlendState
const (
	sizeofBlendComponent = 12
	bcOperation          = 0
	bcSrcFactor          = 4
	bcDstFactor          = 8
	sizeofBlendState     = 24
	blendColor           = 0
	blendAlpha           = 12
)

// WGPUColorTargetState
const (
	sizeofColorTargetState = 32
	ctsFormat              = 8
	ctsBlend               = 16
	ctsWriteMask           = 24
)

// WGPUFragmentState
const (
	sizeofFragmentState = 64
	fsModule            = 8
	fsEntryPoint        = 16
	fsConstantCount     = 32
	fsConstants         = 40
	fsTargetCount       = 48
	fsTargets           = 56
)

// WGPURenderPipelineDescriptor
const (
	sizeofRenderPipelineDescriptor = 168
	rpDescLabel                    = 8
	rpDescLayout                   = 24
	rpDescVertex                   = 32
	rpDescPrimitive                = 96
	rpDescDepthStencil             = 128
	rpDescMultisample              = 136
	rpDescFragment                 = 160
)

// WGPUProgrammableStageDescriptor (compute stage).
const (
	sizeofProgrammableStage = 48
	psModule                = 8
	psEntryPoint            = 16
	psConstantCount         = 32
	psConstants             = 40
)

// WGPUComputePipelineDescriptor
const (
	sizeofComputePipelineDescriptor = 80
	cpDescLabel                     = 8
	cpDescLayout                    = 24
	cpDescCompute                   = 32
)

// WGPUCommandEncoderDescriptor / WGPUCommandBufferDescriptor
const (
	sizeofCommandEncoderDescriptor = 24
	ceDescLabel                    = 8
	sizeofCommandBufferDescriptor  = 24
	cbDescLabel                    = 8
)

// WGPUColor
const (
	sizeofColor = 32
	colorR      = 0
	colorG      = 8
	colorB      = 16
	colorA      = 24
)

// WGPURenderPassColorAttachment
const (
	sizeofRenderPassColorAttachment = 72
	rpcaView                        = 8
	rpcaDepthSlice                  = 16
	rpcaResolveTarget               = 24
	rpcaLoadOp                      = 32
	rpcaStoreOp                     = 36
	rpcaClearValue                  = 40
)

// WGPURenderPassDepthStencilAttachment
const (
	sizeofRenderPassDepthStencilAttachment = 40
	rpdsaView                              = 0
	rpdsaDepthLoadOp                       = 8
	rpdsaDepthStoreOp                      = 12
	rpdsaDepthClearValue                   = 16
	rpdsaDepthReadOnly                     = 20
	rpdsaStencilLoadOp                     = 24
	rpdsaStencilStoreOp                    = 28
	rpdsaStencilClearValue                 = 32
	rpdsaStencilReadOnly                   = 36
)

// WGPURenderPassDescriptor
const (
	sizeofRenderPassDescriptor = 64
	rpassDescLabel             = 8
	rpassDescColorCount        = 24
	rpassDescColors            = 32
	rpassDescDepthStencil      = 40
	rpassDescOcclusion         = 48
	rpassDescTimestamps        = 56
)

// WGPUComputePassDescriptor
const (
	sizeofComputePassDescriptor = 32
	cpassDescLabel              = 8
	cpassDescTimestamps         = 24
)

// WGPUTexelCopyTextureInfo
const (
	sizeofTexelCopyTextureInfo = 32
	tctTexture                 = 0
	tctMipLevel                = 8
	tctOrigin                  = 12
	tctAspect                  = 24
)

// WGPUTexelCopyBufferLayout
const (
	sizeofTexelCopyBufferLayout = 16
	tcbOffset                   = 0
	tcbBytesPerRow              = 8
	tcbRowsPerImage             = 12
)

// WGPUTexelCopyBufferInfo
const (
	sizeofTexelCopyBufferInfo = 24
	tcbiLayout                = 0
	tcbiBuffer                = 16
)

// Field describes one field of a native structure layout.
type Field struct {
	Name  string
	Off   int
	Width int
}

// StructLayout is the published layout of one native structure.
type StructLayout struct {
	Name   string
	Size   int
	Fields []Field
}

// Layouts returns every structure layout this package encodes or decodes,
// for verification against the native header (see tools/layoutdump).
func Layouts() []StructLayout {
	return layoutTable
}

var layoutTable = []StructLayout{
	{"WGPUStringView", sizeofStringView, []Field{
		{"data", svData, 8}, {"length", svLength, 8}}},
	{"WGPUChainedStruct", sizeofChainedStruct, []Field{
		{"next", chainNext, 8}, {"sType", chainSType, 4}}},
	{"WGPUInstanceDescriptor", sizeofInstanceDescriptor, []Field{
		{"features.timedWaitAnyEnable", instDescTimedWaitEnable, 4},
		{"features.timedWaitAnyMaxCount", instDescTimedWaitMax, 8}}},
	{"WGPURequestAdapterOptions", sizeofRequestAdapterOptions, []Field{
		{"featureLevel", raoFeatureLevel, 4}, {"powerPreference", raoPowerPreference, 4},
		{"forceFallbackAdapter", raoForceFallback, 4}, {"backendType", raoBackendType, 4},
		{"compatibleSurface", raoCompatibleSurface, 8}}},
	{"WGPUCallbackInfo", sizeofCallbackInfo, []Field{
		{"mode", cbMode, 4}, {"callback", cbCallback, 8},
		{"userdata1", cbUserdata1, 8}, {"userdata2", cbUserdata2, 8}}},
	{"WGPUQueueDescriptor", sizeofQueueDescriptor, []Field{
		{"label", queueDescLabel, sizeofStringView}}},
	{"WGPUDeviceDescriptor", sizeofDeviceDescriptor, []Field{
		{"label", devDescLabel, sizeofStringView},
		{"requiredFeatureCount", devDescFeatureCount, 8},
		{"requiredFeatures", devDescFeatures, 8},
		{"requiredLimits", devDescRequiredLimits, 8},
		{"defaultQueue", devDescDefaultQueue, sizeofQueueDescriptor},
		{"deviceLostCallbackInfo", devDescDeviceLostCB, sizeofCallbackInfo},
		{"uncapturedErrorCallbackInfo", devDescUncapturedCB, sizeofCallbackInfo}}},
	{"WGPULimits", sizeofLimits, []Field{
		{"maxTextureDimension1D", limMaxTextureDimension1D, 4},
		{"maxTextureDimension2D", limMaxTextureDimension2D, 4},
		{"maxTextureDimension3D", limMaxTextureDimension3D, 4},
		{"maxTextureArrayLayers", limMaxTextureArrayLayers, 4},
		{"maxBindGroups", limMaxBindGroups, 4},
		{"maxBindGroupsPlusVertexBuffers", limMaxBindGroupsPlusVB, 4},
		{"maxBindingsPerBindGroup", limMaxBindingsPerBindGroup, 4},
		{"maxDynamicUniformBuffersPerPipelineLayout", limMaxDynamicUniformBuffers, 4},
		{"maxDynamicStorageBuffersPerPipelineLayout", limMaxDynamicStorageBuffers, 4},
		{"maxSampledTexturesPerShaderStage", limMaxSampledTextures, 4},
		{"maxSamplersPerShaderStage", limMaxSamplers, 4},
		{"maxStorageBuffersPerShaderStage", limMaxStorageBuffers, 4},
		{"maxStorageTexturesPerShaderStage", limMaxStorageTextures, 4},
		{"maxUniformBuffersPerShaderStage", limMaxUniformBuffers, 4},
		{"maxUniformBufferBindingSize", limMaxUniformBufferBinding, 8},
		{"maxStorageBufferBindingSize", limMaxStorageBufferBinding, 8},
		{"minUniformBufferOffsetAlignment", limMinUniformOffsetAlignment, 4},
		{"minStorageBufferOffsetAlignment", limMinStorageOffsetAlignment, 4},
		{"maxVertexBuffers", limMaxVertexBuffers, 4},
		{"maxBufferSize", limMaxBufferSize, 8},
		{"maxVertexAttributes", limMaxVertexAttributes, 4},
		{"maxVertexBufferArrayStride", limMaxVertexArrayStride, 4},
		{"maxInterStageShaderVariables", limMaxInterStageVariables, 4},
		{"maxColorAttachments", limMaxColorAttachments, 4},
		{"maxColorAttachmentBytesPerSample", limMaxColorAttachmentBytes, 4},
		{"maxComputeWorkgroupStorageSize", limMaxWorkgroupStorage, 4},
		{"maxComputeInvocationsPerWorkgroup", limMaxInvocationsPerGroup, 4},
		{"maxComputeWorkgroupSizeX", limMaxWorkgroupSizeX, 4},
		{"maxComputeWorkgroupSizeY", limMaxWorkgroupSizeY, 4},
		{"maxComputeWorkgroupSizeZ", limMaxWorkgroupSizeZ, 4},
		{"maxComputeWorkgroupsPerDimension", limMaxWorkgroupsPerDimension, 4}}},
	{"WGPURequiredLimits", sizeofLimitsWrapper, []Field{
		{"limits", limWrapLimits, sizeofLimits}}},
	{"WGPUSurfaceDescriptor", sizeofSurfaceDescriptor, []Field{
		{"label", surfDescLabel, sizeofStringView}}},
	{"WGPUSurfaceSourceMetalLayer", sizeofSurfaceSourceMetal, []Field{
		{"chain", 0, sizeofChainedStruct}, {"layer", ssMetalLayer, 8}}},
	{"WGPUSurfaceSourceWindowsHWND", sizeofSurfaceSourceHWND, []Field{
		{"chain", 0, sizeofChainedStruct}, {"hinstance", ssHWNDHinstance, 8}, {"hwnd", ssHWNDHwnd, 8}}},
	{"WGPUSurfaceSourceXlibWindow", sizeofSurfaceSourceXlib, []Field{
		{"chain", 0, sizeofChainedStruct}, {"display", ssXlibDisplay, 8}, {"window", ssXlibWindow, 8}}},
	{"WGPUSurfaceSourceWaylandSurface", sizeofSurfaceSourceWayland, []Field{
		{"chain", 0, sizeofChainedStruct}, {"display", ssWaylandDisplay, 8}, {"surface", ssWaylandSurface, 8}}},
	{"WGPUSurfaceConfiguration", sizeofSurfaceConfiguration, []Field{
		{"device", surfCfgDevice, 8}, {"format", surfCfgFormat, 4},
		{"usage", surfCfgUsage, 8}, {"width", surfCfgWidth, 4}, {"height", surfCfgHeight, 4},
		{"viewFormatCount", surfCfgViewFormatCount, 8}, {"viewFormats", surfCfgViewFormats, 8},
		{"alphaMode", surfCfgAlphaMode, 4}, {"presentMode", surfCfgPresentMode, 4}}},
	{"WGPUSurfaceCapabilities", sizeofSurfaceCapabilities, []Field{
		{"usages", surfCapsUsages, 8},
		{"formatCount", surfCapsFormatCount, 8}, {"formats", surfCapsFormats, 8},
		{"presentModeCount", surfCapsPresentModeCount, 8}, {"presentModes", surfCapsPresentModes, 8},
		{"alphaModeCount", surfCapsAlphaModeCount, 8}, {"alphaModes", surfCapsAlphaModes, 8}}},
	{"WGPUSurfaceTexture", sizeofSurfaceTexture, []Field{
		{"texture", surfTexTexture, 8}, {"status", surfTexStatus, 4}}},
	{"WGPUBufferDescriptor", sizeofBufferDescriptor, []Field{
		{"label", bufDescLabel, sizeofStringView}, {"usage", bufDescUsage, 8},
		{"size", bufDescSize, 8}, {"mappedAtCreation", bufDescMapped, 4}}},
	{"WGPUExtent3D", sizeofExtent3D, []Field{
		{"width", extWidth, 4}, {"height", extHeight, 4}, {"depthOrArrayLayers", extDepth, 4}}},
	{"WGPUOrigin3D", sizeofOrigin3D, []Field{
		{"x", originX, 4}, {"y", originY, 4}, {"z", originZ, 4}}},
	{"WGPUTextureDescriptor", sizeofTextureDescriptor, []Field{
		{"label", texDescLabel, sizeofStringView}, {"usage", texDescUsage, 8},
		{"dimension", texDescDimension, 4}, {"size", texDescSize, sizeofExtent3D},
		{"format", texDescFormat, 4}, {"mipLevelCount", texDescMipLevelCount, 4},
		{"sampleCount", texDescSampleCount, 4},
		{"viewFormatCount", texDescViewFormatCount, 8}, {"viewFormats", texDescViewFormats, 8}}},
	{"WGPUTextureViewDescriptor", sizeofTextureViewDescriptor, []Field{
		{"label", tvDescLabel, sizeofStringView}, {"format", tvDescFormat, 4},
		{"dimension", tvDescDimension, 4}, {"baseMipLevel", tvDescBaseMipLevel, 4},
		{"mipLevelCount", tvDescMipLevelCount, 4}, {"baseArrayLayer", tvDescBaseArrayLayer, 4},
		{"arrayLayerCount", tvDescArrayLayerCount, 4}, {"aspect", tvDescAspect, 4},
		{"usage", tvDescUsage, 8}}},
	{"WGPUSamplerDescriptor", sizeofSamplerDescriptor, []Field{
		{"label", sampDescLabel, sizeofStringView},
		{"addressModeU", sampDescAddressU, 4}, {"addressModeV", sampDescAddressV, 4},
		{"addressModeW", sampDescAddressW, 4}, {"magFilter", sampDescMagFilter, 4},
		{"minFilter", sampDescMinFilter, 4}, {"mipmapFilter", sampDescMipmapFilter, 4},
		{"lodMinClamp", sampDescLodMin, 4}, {"lodMaxClamp", sampDescLodMax, 4},
		{"compare", sampDescCompare, 4}, {"maxAnisotropy", sampDescMaxAnisotropy, 2}}},
	{"WGPUShaderModuleDescriptor", sizeofShaderModuleDescriptor, []Field{
		{"label", shadDescLabel, sizeofStringView}}},
	{"WGPUShaderSourceWGSL", sizeofShaderSourceWGSL, []Field{
		{"chain", 0, sizeofChainedStruct}, {"code", wgslCode, sizeofStringView}}},
	{"WGPUBufferBindingLayout", sizeofBufferBindingLayout, []Field{
		{"type", bblType, 4}, {"hasDynamicOffset", bblHasDynamicOffset, 4},
		{"minBindingSize", bblMinBindingSize, 8}}},
	{"WGPUSamplerBindingLayout", sizeofSamplerBindingLayout, []Field{
		{"type", sblType, 4}}},
	{"WGPUTextureBindingLayout", sizeofTextureBindingLayout, []Field{
		{"sampleType", tblSampleType, 4}, {"viewDimension", tblViewDimension, 4},
		{"multisampled", tblMultisampled, 4}}},
	{"WGPUStorageTextureBindingLayout", sizeofStorageTextureBindingLayout, []Field{
		{"access", stblAccess, 4}, {"format", stblFormat, 4},
		{"viewDimension", stblViewDimension, 4}}},
	{"WGPUBindGroupLayoutEntry", sizeofBindGroupLayoutEntry, []Field{
		{"binding", bglEntryBinding, 4}, {"visibility", bglEntryVisibility, 8},
		{"buffer", bglEntryBuffer, sizeofBufferBindingLayout},
		{"sampler", bglEntrySampler, sizeofSamplerBindingLayout},
		{"texture", bglEntryTexture, sizeofTextureBindingLayout},
		{"storageTexture", bglEntryStorageTexture, sizeofStorageTextureBindingLayout}}},
	{"WGPUBindGroupLayoutDescriptor", sizeofBindGroupLayoutDescriptor, []Field{
		{"label", bglDescLabel, sizeofStringView},
		{"entryCount", bglDescEntryCount, 8}, {"entries", bglDescEntries, 8}}},
	{"WGPUBindGroupEntry", sizeofBindGroupEntry, []Field{
		{"binding", bgEntryBinding, 4}, {"buffer", bgEntryBuffer, 8},
		{"offset", bgEntryOffset, 8}, {"size", bgEntrySize, 8},
		{"sampler", bgEntrySampler, 8}, {"textureView", bgEntryTextureView, 8}}},
	{"WGPUBindGroupDescriptor", sizeofBindGroupDescriptor, []Field{
		{"label", bgDescLabel, sizeofStringView}, {"layout", bgDescLayout, 8},
		{"entryCount", bgDescEntryCount, 8}, {"entries", bgDescEntries, 8}}},
	{"WGPUPipelineLayoutDescriptor", sizeofPipelineLayoutDescriptor, []Field{
		{"label", plDescLabel, sizeofStringView},
		{"bindGroupLayoutCount", plDescLayoutCount, 8}, {"bindGroupLayouts", plDescLayouts, 8}}},
	{"WGPUConstantEntry", sizeofConstantEntry, []Field{
		{"key", constEntryKey, sizeofStringView}, {"value", constEntryValue, 8}}},
	{"WGPUVertexAttribute", sizeofVertexAttribute, []Field{
		{"format", vaFormat, 4}, {"offset", vaOffset, 8}, {"shaderLocation", vaShaderLocation, 4}}},
	{"WGPUVertexBufferLayout", sizeofVertexBufferLayout, []Field{
		{"stepMode", vblStepMode, 4}, {"arrayStride", vblArrayStride, 8},
		{"attributeCount", vblAttributeCount, 8}, {"attributes", vblAttributes, 8}}},
	{"WGPUVertexState", sizeofVertexState, []Field{
		{"module", vsModule, 8}, {"entryPoint", vsEntryPoint, sizeofStringView},
		{"constantCount", vsConstantCount, 8}, {"constants", vsConstants, 8},
		{"bufferCount", vsBufferCount, 8}, {"buffers", vsBuffers, 8}}},
	{"WGPUPrimitiveState", sizeofPrimitiveState, []Field{
		{"topology", primTopology, 4}, {"stripIndexFormat", primStripIndex, 4},
		{"frontFace", primFrontFace, 4}, {"cullMode", primCullMode, 4},
		{"unclippedDepth", primUnclippedDepth, 4}}},
	{"WGPUStencilFaceState", sizeofStencilFaceState, []Field{
		{"compare", sfsCompare, 4}, {"failOp", sfsFailOp, 4},
		{"depthFailOp", sfsDepthFailOp, 4}, {"passOp", sfsPassOp, 4}}},
	{"WGPUDepthStencilState", sizeofDepthStencilState, []Field{
		{"format", dssFormat, 4}, {"depthWriteEnabled", dssDepthWriteEnabled, 4},
		{"depthCompare", dssDepthCompare, 4},
		{"stencilFront", dssStencilFront, sizeofStencilFaceState},
		{"stencilBack", dssStencilBack, sizeofStencilFaceState},
		{"stencilReadMask", dssStencilReadMask, 4}, {"stencilWriteMask", dssStencilWriteMask, 4},
		{"depthBias", dssDepthBias, 4}, {"depthBiasSlopeScale", dssDepthBiasSlopeScale, 4},
		{"depthBiasClamp", dssDepthBiasClamp, 4}}},
	{"WGPUMultisampleState", sizeofMultisampleState, []Field{
		{"count", msCount, 4}, {"mask", msMask, 4}, {"alphaToCoverageEnabled", msAlphaToCoverage, 4}}},
	{"WGPUBlendState", sizeofBlendState, []Field{
		{"color", blendColor, sizeofBlendComponent}, {"alpha", blendAlpha, sizeofBlendComponent}}},
	{"WGPUColorTargetState", sizeofColorTargetState, []Field{
		{"format", ctsFormat, 4}, {"blend", ctsBlend, 8}, {"writeMask", ctsWriteMask, 8}}},
	{"WGPUFragmentState", sizeofFragmentState, []Field{
		{"module", fsModule, 8}, {"entryPoint", fsEntryPoint, sizeofStringView},
		{"constantCount", fsConstantCount, 8}, {"constants", fsConstants, 8},
		{"targetCount", fsTargetCount, 8}, {"targets", fsTargets, 8}}},
	{"WGPURenderPipelineDescriptor", sizeofRenderPipelineDescriptor, []Field{
		{"label", rpDescLabel, sizeofStringView}, {"layout", rpDescLayout, 8},
		{"vertex", rpDescVertex, sizeofVertexState},
		{"primitive", rpDescPrimitive, sizeofPrimitiveState},
		{"depthStencil", rpDescDepthStencil, 8},
		{"multisample", rpDescMultisample, sizeofMultisampleState},
		{"fragment", rpDescFragment, 8}}},
	{"WGPUProgrammableStageDescriptor", sizeofProgrammableStage, []Field{
		{"module", psModule, 8}, {"entryPoint", psEntryPoint, sizeofStringView},
		{"constantCount", psConstantCount, 8}, {"constants", psConstants, 8}}},
	{"WGPUComputePipelineDescriptor", sizeofComputePipelineDescriptor, []Field{
		{"label", cpDescLabel, sizeofStringView}, {"layout", cpDescLayout, 8},
		{"compute", cpDescCompute, sizeofProgrammableStage}}},
	{"WGPUCommandEncoderDescriptor", sizeofCommandEncoderDescriptor, []Field{
		{"label", ceDescLabel, sizeofStringView}}},
	{"WGPUCommandBufferDescriptor", sizeofCommandBufferDescriptor, []Field{
		{"label", cbDescLabel, sizeofStringView}}},
	{"WGPUColor", sizeofColor, []Field{
		{"r", colorR, 8}, {"g", colorG, 8}, {"b", colorB, 8}, {"a", colorA, 8}}},
	{"WGPURenderPassColorAttachment", sizeofRenderPassColorAttachment, []Field{
		{"view", rpcaView, 8}, {"depthSlice", rpcaDepthSlice, 4},
		{"resolveTarget", rpcaResolveTarget, 8}, {"loadOp", rpcaLoadOp, 4},
		{"storeOp", rpcaStoreOp, 4}, {"clearValue", rpcaClearValue, sizeofColor}}},
	{"WGPURenderPassDepthStencilAttachment", sizeofRenderPassDepthStencilAttachment, []Field{
		{"view", rpdsaView, 8}, {"depthLoadOp", rpdsaDepthLoadOp, 4},
		{"depthStoreOp", rpdsaDepthStoreOp, 4}, {"depthClearValue", rpdsaDepthClearValue, 4},
		{"depthReadOnly", rpdsaDepthReadOnly, 4}, {"stencilLoadOp", rpdsaStencilLoadOp, 4},
		{"stencilStoreOp", rpdsaStencilStoreOp, 4}, {"stencilClearValue", rpdsaStencilClearValue, 4},
		{"stencilReadOnly", rpdsaStencilReadOnly, 4}}},
	{"WGPURenderPassDescriptor", sizeofRenderPassDescriptor, []Field{
		{"label", rpassDescLabel, sizeofStringView},
		{"colorAttachmentCount", rpassDescColorCount, 8}, {"colorAttachments", rpassDescColors, 8},
		{"depthStencilAttachment", rpassDescDepthStencil, 8},
		{"occlusionQuerySet", rpassDescOcclusion, 8}, {"timestampWrites", rpassDescTimestamps, 8}}},
	{"WGPUComputePassDescriptor", sizeofComputePassDescriptor, []Field{
		{"label", cpassDescLabel, sizeofStringView}, {"timestampWrites", cpassDescTimestamps, 8}}},
	{"WGPUTexelCopyTextureInfo", sizeofTexelCopyTextureInfo, []Field{
		{"texture", tctTexture, 8}, {"mipLevel", tctMipLevel, 4},
		{"origin", tctOrigin, sizeofOrigin3D}, {"aspect", tctAspect, 4}}},
	{"WGPUTexelCopyBufferLayout", sizeofTexelCopyBufferLayout, []Field{
		{"offset", tcbOffset, 8}, {"bytesPerRow", tcbBytesPerRow, 4},
		{"rowsPerImage", tcbRowsPerImage, 4}}},
	{"WGPUTexelCopyBufferInfo", sizeofTexelCopyBufferInfo, []Field{
		{"layout", tcbiLayout, sizeofTexelCopyBufferLayout}, {"buffer", tcbiBuffer, 8}}},
}
