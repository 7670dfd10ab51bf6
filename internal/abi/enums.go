package abi

// Enum lookup tables: caller-facing symbolic names (the portable WebGPU
// spellings) to native integer codes for the targeted Dawn header. Unknown
// symbols fall back to the table default and are reported through
// ReportFallback; the binding layer is expected to reject unknown symbols
// before encoding, so a fallback firing means a caller bypassed validation.
//
// Code values follow Dawn's numbering, which interleaves its norm16 texture
// formats into the upstream list. Four codes were verified against the
// shipped library with offset/size probe programs: bgra8unorm=0x1B,
// float32x2=0x1D, triangle-list=4, vertex=1.

type enumTable struct {
	name  string
	def   string
	codes map[string]uint32
	names map[uint32]string
}

func newEnumTable(name, def string, codes map[string]uint32) *enumTable {
	if _, ok := codes[def]; !ok {
		panic("abi: enum table " + name + " default " + def + " not in table")
	}
	names := make(map[uint32]string, len(codes))
	for s, c := range codes {
		names[c] = s
	}
	t := &enumTable{name: name, def: def, codes: codes, names: names}
	tableIndex[name] = t
	return t
}

var tableIndex = map[string]*enumTable{}

func (t *enumTable) code(s string) uint32 {
	if c, ok := t.codes[s]; ok {
		return c
	}
	if ReportFallback != nil {
		ReportFallback(t.name, s)
	}
	return t.codes[t.def]
}

func (t *enumTable) has(s string) bool {
	_, ok := t.codes[s]
	return ok
}

func (t *enumTable) symbol(c uint32) (string, bool) {
	s, ok := t.names[c]
	return s, ok
}

// KnownEnum reports whether symbol is a member of the named table.
func KnownEnum(table, symbol string) bool {
	t, ok := tableIndex[table]
	return ok && t.has(symbol)
}

// EnumSymbol maps a native code back to its symbolic name.
func EnumSymbol(table string, code uint32) (string, bool) {
	t, ok := tableIndex[table]
	if !ok {
		return "", false
	}
	return t.symbol(code)
}

// EnumCode maps a symbol to its native code with the table's fallback rule.
func EnumCode(table, symbol string) uint32 {
	return tableIndex[table].code(symbol)
}

// orDefault substitutes the field default for an absent optional enum.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

var textureFormats = newEnumTable("texture-format", "bgra8unorm", map[string]uint32{
	"r8unorm": 0x01, "r8snorm": 0x02, "r8uint": 0x03, "r8sint": 0x04,
	"r16uint": 0x05, "r16sint": 0x06, "r16unorm": 0x07, "r16snorm": 0x08,
	"r16float": 0x09, "rg8unorm": 0x0A, "rg8snorm": 0x0B, "rg8uint": 0x0C,
	"rg8sint": 0x0D, "r32float": 0x0E, "r32uint": 0x0F, "r32sint": 0x10,
	"rg16uint": 0x11, "rg16sint": 0x12, "rg16unorm": 0x13, "rg16snorm": 0x14,
	"rg16float": 0x15, "rgba8unorm": 0x16, "rgba8unorm-srgb": 0x17,
	"rgba8snorm": 0x18, "rgba8uint": 0x19, "rgba8sint": 0x1A,
	"bgra8unorm": 0x1B, "bgra8unorm-srgb": 0x1C,
	"rgb10a2uint": 0x1D, "rgb10a2unorm": 0x1E, "rg11b10ufloat": 0x1F,
	"rgb9e5ufloat": 0x20, "rg32float": 0x21, "rg32uint": 0x22, "rg32sint": 0x23,
	"rgba16uint": 0x24, "rgba16sint": 0x25, "rgba16unorm": 0x26,
	"rgba16snorm": 0x27, "rgba16float": 0x28, "rgba32float": 0x29,
	"rgba32uint": 0x2A, "rgba32sint": 0x2B, "stencil8": 0x2C,
	"depth16unorm": 0x2D, "depth24plus": 0x2E, "depth24plus-stencil8": 0x2F,
	"depth32float": 0x30, "depth32float-stencil8": 0x31,
})

var vertexFormats = newEnumTable("vertex-format", "float32x2", map[string]uint32{
	"uint8": 0x01, "uint8x2": 0x02, "uint8x4": 0x03,
	"sint8": 0x04, "sint8x2": 0x05, "sint8x4": 0x06,
	"unorm8": 0x07, "unorm8x2": 0x08, "unorm8x4": 0x09,
	"snorm8": 0x0A, "snorm8x2": 0x0B, "snorm8x4": 0x0C,
	"uint16": 0x0D, "uint16x2": 0x0E, "uint16x4": 0x0F,
	"sint16": 0x10, "sint16x2": 0x11, "sint16x4": 0x12,
	"unorm16": 0x13, "unorm16x2": 0x14, "unorm16x4": 0x15,
	"snorm16": 0x16, "snorm16x2": 0x17, "snorm16x4": 0x18,
	"float16": 0x19, "float16x2": 0x1A, "float16x4": 0x1B,
	"float32": 0x1C, "float32x2": 0x1D, "float32x3": 0x1E, "float32x4": 0x1F,
	"uint32": 0x20, "uint32x2": 0x21, "uint32x3": 0x22, "uint32x4": 0x23,
	"sint32": 0x24, "sint32x2": 0x25, "sint32x3": 0x26, "sint32x4": 0x27,
	"unorm10-10-10-2": 0x28, "unorm8x4-bgra": 0x29,
})

var primitiveTopologies = newEnumTable("primitive-topology", "triangle-list", map[string]uint32{
	"point-list": 1, "line-list": 2, "line-strip": 3,
	"triangle-list": 4, "triangle-strip": 5,
})

var indexFormats = newEnumTable("index-format", "undefined", map[string]uint32{
	"undefined": 0, "uint16": 1, "uint32": 2,
})

var frontFaces = newEnumTable("front-face", "ccw", map[string]uint32{
	"ccw": 1, "cw": 2,
})

var cullModes = newEnumTable("cull-mode", "none", map[string]uint32{
	"none": 1, "front": 2, "back": 3,
})

var vertexStepModes = newEnumTable("vertex-step-mode", "vertex", map[string]uint32{
	"vertex": 1, "instance": 2,
})

var loadOps = newEnumTable("load-op", "clear", map[string]uint32{
	"load": 1, "clear": 2,
})

var storeOps = newEnumTable("store-op", "store", map[string]uint32{
	"store": 1, "discard": 2,
})

var presentModes = newEnumTable("present-mode", "fifo", map[string]uint32{
	"fifo": 1, "fifo-relaxed": 2, "immediate": 3, "mailbox": 4,
})

var alphaModes = newEnumTable("alpha-mode", "auto", map[string]uint32{
	"auto": 0, "opaque": 1, "premultiplied": 2, "unpremultiplied": 3, "inherit": 4,
})

var textureDimensions = newEnumTable("texture-dimension", "2d", map[string]uint32{
	"1d": 1, "2d": 2, "3d": 3,
})

var textureViewDimensions = newEnumTable("texture-view-dimension", "2d", map[string]uint32{
	"1d": 1, "2d": 2, "2d-array": 3, "cube": 4, "cube-array": 5, "3d": 6,
})

var textureAspects = newEnumTable("texture-aspect", "all", map[string]uint32{
	"all": 1, "stencil-only": 2, "depth-only": 3,
})

var addressModes = newEnumTable("address-mode", "clamp-to-edge", map[string]uint32{
	"clamp-to-edge": 1, "repeat": 2, "mirror-repeat": 3,
})

var filterModes = newEnumTable("filter-mode", "nearest", map[string]uint32{
	"nearest": 1, "linear": 2,
})

var compareFunctions = newEnumTable("compare-function", "always", map[string]uint32{
	"never": 1, "less": 2, "equal": 3, "less-equal": 4,
	"greater": 5, "not-equal": 6, "greater-equal": 7, "always": 8,
})

var stencilOperations = newEnumTable("stencil-operation", "keep", map[string]uint32{
	"keep": 1, "zero": 2, "replace": 3, "invert": 4,
	"increment-clamp": 5, "decrement-clamp": 6, "increment-wrap": 7, "decrement-wrap": 8,
})

var blendFactors = newEnumTable("blend-factor", "one", map[string]uint32{
	"zero": 1, "one": 2, "src": 3, "one-minus-src": 4,
	"src-alpha": 5, "one-minus-src-alpha": 6, "dst": 7, "one-minus-dst": 8,
	"dst-alpha": 9, "one-minus-dst-alpha": 0x0A, "src-alpha-saturated": 0x0B,
	"constant": 0x0C, "one-minus-constant": 0x0D,
})

var blendOperations = newEnumTable("blend-operation", "add", map[string]uint32{
	"add": 1, "subtract": 2, "reverse-subtract": 3, "min": 4, "max": 5,
})

var bufferBindingTypes = newEnumTable("buffer-binding-type", "uniform", map[string]uint32{
	"uniform": 1, "storage": 2, "read-only-storage": 3,
})

var samplerBindingTypes = newEnumTable("sampler-binding-type", "filtering", map[string]uint32{
	"filtering": 1, "non-filtering": 2, "comparison": 3,
})

var textureSampleTypes = newEnumTable("texture-sample-type", "float", map[string]uint32{
	"float": 1, "unfilterable-float": 2, "depth": 3, "sint": 4, "uint": 5,
})

var storageTextureAccesses = newEnumTable("storage-texture-access", "write-only", map[string]uint32{
	"write-only": 1, "read-only": 2, "read-write": 3,
})

var powerPreferences = newEnumTable("power-preference", "undefined", map[string]uint32{
	"undefined": 0, "low-power": 1, "high-performance": 2,
})

var featureLevels = newEnumTable("feature-level", "core", map[string]uint32{
	"compatibility": 1, "core": 2,
})

var backendTypes = newEnumTable("backend-type", "undefined", map[string]uint32{
	"undefined": 0, "null": 1, "webgpu": 2, "d3d11": 3, "d3d12": 4,
	"metal": 5, "vulkan": 6, "opengl": 7, "opengles": 8,
})
