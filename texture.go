package wgpu

import (
	"runtime"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// TextureDescriptor describes a texture allocation. Dimension defaults to
// "2d", mip and sample counts to 1.
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

func (d *TextureDescriptor) validate(op string) error {
	if d == nil {
		return errf(op, KindValidation, "nil descriptor")
	}
	if d.Width == 0 || d.Height == 0 {
		return errf(op, KindValidation, "zero texture dimensions %dx%d", d.Width, d.Height)
	}
	if d.Usage == 0 {
		return errf(op, KindValidation, "empty usage flags")
	}
	if d.Format == "" {
		return errf(op, KindValidation, "missing texture format")
	}
	if err := checkEnum(op, "texture-format", d.Format); err != nil {
		return err
	}
	if err := checkEnum(op, "texture-dimension", d.Dimension); err != nil {
		return err
	}
	for _, f := range d.ViewFormats {
		if err := checkEnum(op, "texture-format", f); err != nil {
			return err
		}
	}
	return nil
}

// Texture wraps one native texture handle. Frame textures handed out by a
// Surface are owned by the surface lifecycle: their Release is a no-op and
// Present invalidates them.
type Texture struct {
	handle       uintptr
	device       *Device
	label        string
	format       string
	width        uint32
	height       uint32
	usage        uint64
	surfaceOwned bool
	released     bool
}

// CreateTexture allocates a texture.
func (d *Device) CreateTexture(desc *TextureDescriptor) (*Texture, error) {
	const op = "create texture"
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	handle, err := d.createObject(op, ffi.P().DeviceCreateTexture, func(m abi.Mem) uintptr {
		return abi.EncodeTextureDescriptor(m, &abi.TextureDescriptor{
			Label:         desc.Label,
			Usage:         desc.Usage,
			Dimension:     desc.Dimension,
			Width:         desc.Width,
			Height:        desc.Height,
			DepthOrLayers: desc.DepthOrLayers,
			Format:        desc.Format,
			MipLevelCount: desc.MipLevelCount,
			SampleCount:   desc.SampleCount,
			ViewFormats:   desc.ViewFormats,
		})
	})
	if err != nil {
		return nil, err
	}
	return &Texture{
		handle: handle,
		device: d,
		label:  desc.Label,
		format: desc.Format,
		width:  desc.Width,
		height: desc.Height,
		usage:  desc.Usage,
	}, nil
}

// Format returns the texture's pixel format.
func (t *Texture) Format() string { return t.format }

// Dimensions returns the texture's width and height in texels.
func (t *Texture) Dimensions() (width, height uint32) { return t.width, t.height }

func (t *Texture) use(op string) error {
	if t.released {
		return errf(op, KindContract, "texture no longer valid")
	}
	return nil
}

// TextureViewDescriptor describes a view over a texture. Empty enum fields
// stay "undefined" and the native library infers them from the texture.
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

func (d *TextureViewDescriptor) validate(op string) error {
	if d == nil {
		return nil
	}
	if err := checkEnum(op, "texture-format", d.Format); err != nil {
		return err
	}
	if err := checkEnum(op, "texture-view-dimension", d.Dimension); err != nil {
		return err
	}
	return checkEnum(op, "texture-aspect", d.Aspect)
}

// TextureView wraps one native texture view handle.
type TextureView struct {
	handle   uintptr
	texture  *Texture
	released bool
}

// CreateView creates a view over the texture. A nil descriptor takes every
// default from the texture itself.
func (t *Texture) CreateView(desc *TextureViewDescriptor) (*TextureView, error) {
	const op = "create texture view"
	if err := t.use(op); err != nil {
		return nil, err
	}
	if err := desc.validate(op); err != nil {
		return nil, err
	}
	if desc == nil {
		desc = &TextureViewDescriptor{}
	}
	m := abi.NewArena()
	ptr := abi.EncodeTextureViewDescriptor(m, &abi.TextureViewDescriptor{
		Label:           desc.Label,
		Format:          desc.Format,
		Dimension:       desc.Dimension,
		BaseMipLevel:    desc.BaseMipLevel,
		MipLevelCount:   desc.MipLevelCount,
		BaseArrayLayer:  desc.BaseArrayLayer,
		ArrayLayerCount: desc.ArrayLayerCount,
		Aspect:          desc.Aspect,
		Usage:           desc.Usage,
	})
	handle := ffi.P().TextureCreateView(t.handle, ptr)
	runtime.KeepAlive(m)
	if handle == 0 {
		return nil, errf(op, KindCreation, "native returned null view")
	}
	return &TextureView{handle: handle, texture: t}, nil
}

func (v *TextureView) use(op string) error {
	if v.released {
		return errf(op, KindContract, "texture view already released")
	}
	if v.texture != nil && v.texture.released {
		return errf(op, KindContract, "view's texture no longer valid")
	}
	return nil
}

// Release frees the view handle.
func (v *TextureView) Release() error {
	const op = "release texture view"
	if v.released {
		return errf(op, KindContract, "texture view already released")
	}
	v.released = true
	ffi.P().TextureViewRelease(v.handle)
	return nil
}

// Destroy eagerly frees the texture's GPU memory. Disallowed on
// surface-owned frame textures; the surface lifecycle reclaims those.
func (t *Texture) Destroy() error {
	const op = "destroy texture"
	if err := t.use(op); err != nil {
		return err
	}
	if t.surfaceOwned {
		return errf(op, KindContract, "frame textures are reclaimed by the surface")
	}
	ffi.P().TextureDestroy(t.handle)
	return nil
}

// Release frees the texture handle. On surface-owned frame textures this is
// a no-op: the surface owns their lifetime and Present invalidates them.
func (t *Texture) Release() error {
	const op = "release texture"
	if t.surfaceOwned {
		return nil
	}
	if err := t.use(op); err != nil {
		return err
	}
	t.released = true
	ffi.P().TextureRelease(t.handle)
	return nil
}
