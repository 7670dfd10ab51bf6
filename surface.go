package wgpu

import (
	"runtime"
	"slices"

	"go.uber.org/zap"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// SurfaceState tracks where a surface sits in its configure/acquire/present
// cycle.
type SurfaceState int

const (
	SurfaceUnconfigured SurfaceState = iota
	SurfaceConfigured
	SurfaceFrameAcquired
	SurfaceDestroyed
)

func (s SurfaceState) String() string {
	switch s {
	case SurfaceUnconfigured:
		return "unconfigured"
	case SurfaceConfigured:
		return "configured"
	case SurfaceFrameAcquired:
		return "frame-acquired"
	case SurfaceDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// SurfaceSource is the platform drawable a surface binds to. The concrete
// types wrap the opaque native handles the windowing layer provides; this
// package never creates them.
type SurfaceSource interface {
	encode(m abi.Mem) uintptr
}

// MetalLayerSource binds to a CAMetalLayer on macOS.
type MetalLayerSource struct {
	Layer uintptr
}

func (s MetalLayerSource) encode(m abi.Mem) uintptr {
	return abi.EncodeMetalLayerSource(m, s.Layer)
}

// WindowsHWNDSource binds to a Win32 window.
type WindowsHWNDSource struct {
	Hinstance uintptr
	Hwnd      uintptr
}

func (s WindowsHWNDSource) encode(m abi.Mem) uintptr {
	return abi.EncodeWindowsHWNDSource(m, s.Hinstance, s.Hwnd)
}

// XlibWindowSource binds to an X11 window.
type XlibWindowSource struct {
	Display uintptr
	Window  uint64
}

func (s XlibWindowSource) encode(m abi.Mem) uintptr {
	return abi.EncodeXlibWindowSource(m, s.Display, s.Window)
}

// WaylandSurfaceSource binds to a Wayland surface.
type WaylandSurfaceSource struct {
	Display uintptr
	Surface uintptr
}

func (s WaylandSurfaceSource) encode(m abi.Mem) uintptr {
	return abi.EncodeWaylandSurfaceSource(m, s.Display, s.Surface)
}

// SurfaceDescriptor names a surface and carries its platform source.
type SurfaceDescriptor struct {
	Label  string
	Source SurfaceSource
}

// SurfaceCapabilities lists the formats, present modes and alpha modes a
// surface supports on a given adapter. Configure values must come from
// these lists.
type SurfaceCapabilities = abi.SurfaceCapabilities

// SurfaceConfig selects the active format, size and presentation behavior
// of a surface. Usage defaults to TextureUsageRenderAttachment, PresentMode
// to "fifo" and AlphaMode to the first supported mode.
type SurfaceConfig struct {
	Format      string
	Usage       uint64
	Width       uint32
	Height      uint32
	PresentMode string
	AlphaMode   string
	ViewFormats []string
}

// Surface is a drawable target bound to a platform window. It must have its
// capabilities queried and be configured before the first frame, and it
// owns the lifetime of the frame textures it hands out.
type Surface struct {
	handle uintptr
	inst   *Instance
	state  SurfaceState
	caps   *SurfaceCapabilities
	cfg    SurfaceConfig
	device *Device
	frame  *Texture

	// Dimensions reported by the windowing layer, compared against the
	// configured ones every acquire so a resize forces a reconfigure
	// before the next frame.
	pendingWidth  uint32
	pendingHeight uint32
}

// State reports the surface's lifecycle state.
func (s *Surface) State() SurfaceState { return s.state }

func (s *Surface) use(op string) error {
	if s.state == SurfaceDestroyed {
		return errf(op, KindContract, "surface already released")
	}
	return nil
}

// Capabilities queries and caches what the surface supports on the given
// adapter. Must be called before the first Configure.
func (s *Surface) Capabilities(a *Adapter) (SurfaceCapabilities, error) {
	const op = "query surface capabilities"
	if err := s.use(op); err != nil {
		return SurfaceCapabilities{}, err
	}
	if err := a.use(op); err != nil {
		return SurfaceCapabilities{}, err
	}
	m := abi.NewArena()
	out := abi.AllocSurfaceCapabilities(m)
	status := ffi.P().SurfaceGetCapabilities(s.handle, a.handle, out.Addr())
	if status != abi.StatusSuccess {
		runtime.KeepAlive(m)
		return SurfaceCapabilities{}, errf(op, KindNative, "native returned status %d", status)
	}
	caps := abi.DecodeSurfaceCapabilities(out)

	// The arrays in the out-struct are native-owned; hand them back now
	// that the symbolic copy is taken.
	raw := abi.DecodeSurfaceCapsRaw(out)
	ffi.P().SurfaceCapabilitiesFreeMembers(ffi.SurfaceCapabilities{
		Usages:           raw.Usages,
		FormatCount:      raw.FormatCount,
		Formats:          raw.Formats,
		PresentModeCount: raw.PresentModeCount,
		PresentModes:     raw.PresentModes,
		AlphaModeCount:   raw.AlphaModeCount,
		AlphaModes:       raw.AlphaModes,
	})
	runtime.KeepAlive(m)

	s.caps = &caps
	return caps, nil
}

func (s *Surface) validateConfig(op string, cfg *SurfaceConfig) error {
	if s.caps == nil {
		return errf(op, KindContract, "capabilities not queried before configure")
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return errf(op, KindValidation, "zero surface dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if !slices.Contains(s.caps.Formats, cfg.Format) {
		return errf(op, KindValidation, "format %q not in supported set %v", cfg.Format, s.caps.Formats)
	}
	if !slices.Contains(s.caps.PresentModes, cfg.PresentMode) {
		return errf(op, KindValidation, "present mode %q not in supported set %v", cfg.PresentMode, s.caps.PresentModes)
	}
	if !slices.Contains(s.caps.AlphaModes, cfg.AlphaMode) {
		return errf(op, KindValidation, "alpha mode %q not in supported set %v", cfg.AlphaMode, s.caps.AlphaModes)
	}
	for _, f := range cfg.ViewFormats {
		if err := checkEnum(op, "texture-format", f); err != nil {
			return err
		}
	}
	return nil
}

// Configure binds the surface to a device with the given format, size and
// presentation behavior. Valid from Unconfigured or Configured; configuring
// while a frame is acquired is a contract violation. Every selected value is
// validated against the cached capability lists.
func (s *Surface) Configure(d *Device, cfg SurfaceConfig) error {
	const op = "configure surface"
	if err := s.use(op); err != nil {
		return err
	}
	if s.state == SurfaceFrameAcquired {
		return errf(op, KindContract, "configure while a frame is acquired")
	}
	if d == nil {
		return errf(op, KindValidation, "missing device")
	}
	if err := d.use(op); err != nil {
		return err
	}
	if cfg.Usage == 0 {
		cfg.Usage = TextureUsageRenderAttachment
	}
	if cfg.PresentMode == "" {
		cfg.PresentMode = "fifo"
	}
	if cfg.AlphaMode == "" && s.caps != nil && len(s.caps.AlphaModes) > 0 {
		cfg.AlphaMode = s.caps.AlphaModes[0]
	}
	if err := s.validateConfig(op, &cfg); err != nil {
		return err
	}
	s.configure(d, cfg)
	return nil
}

// configure issues the native call with already-validated values.
func (s *Surface) configure(d *Device, cfg SurfaceConfig) {
	m := abi.NewArena()
	ptr := abi.EncodeSurfaceConfiguration(m, &abi.SurfaceConfiguration{
		Device:      d.handle,
		Format:      cfg.Format,
		Usage:       cfg.Usage,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ViewFormats: cfg.ViewFormats,
		AlphaMode:   cfg.AlphaMode,
		PresentMode: cfg.PresentMode,
	})
	ffi.P().SurfaceConfigure(s.handle, ptr)
	runtime.KeepAlive(m)
	s.device = d
	s.cfg = cfg
	s.pendingWidth = cfg.Width
	s.pendingHeight = cfg.Height
	s.state = SurfaceConfigured
}

// Resize records new pixel dimensions reported by the windowing layer. The
// surface reconfigures itself before the next acquire; rendering never hits
// a stale-sized swapchain.
func (s *Surface) Resize(width, height uint32) error {
	const op = "resize surface"
	if err := s.use(op); err != nil {
		return err
	}
	s.pendingWidth = width
	s.pendingHeight = height
	return nil
}

// AcquireCurrentTexture returns the frame texture to render into. Only the
// "optimal" and "suboptimal" native statuses succeed; anything else raises
// an acquisition error and leaves the surface configured. The returned
// texture is valid until the matching Present.
func (s *Surface) AcquireCurrentTexture() (*Texture, error) {
	const op = "acquire current texture"
	if err := s.use(op); err != nil {
		return nil, err
	}
	switch s.state {
	case SurfaceFrameAcquired:
		return nil, errf(op, KindContract, "previous frame not presented")
	case SurfaceUnconfigured:
		return nil, errf(op, KindContract, "surface not configured")
	}

	// Apply any resize recorded since the last frame.
	if s.pendingWidth != s.cfg.Width || s.pendingHeight != s.cfg.Height {
		cfg := s.cfg
		cfg.Width = s.pendingWidth
		cfg.Height = s.pendingHeight
		if cfg.Width == 0 || cfg.Height == 0 {
			return nil, errf(op, KindValidation, "zero surface dimensions %dx%d", cfg.Width, cfg.Height)
		}
		s.configure(s.device, cfg)
	}

	m := abi.NewArena()
	out := abi.AllocSurfaceTexture(m)
	ffi.P().SurfaceGetCurrentTexture(s.handle, out.Addr())
	handle, status := abi.DecodeSurfaceTexture(out)
	runtime.KeepAlive(m)

	if status != abi.SurfaceStatusOptimal && status != abi.SurfaceStatusSuboptimal {
		return nil, errf(op, KindAcquisition, "surface texture status %s", abi.SurfaceStatusName(status))
	}
	if handle == 0 {
		return nil, errf(op, KindAcquisition, "native returned null frame texture")
	}
	if status == abi.SurfaceStatusSuboptimal {
		s.inst.log.Debug("suboptimal surface texture",
			zap.Uint32("width", s.cfg.Width),
			zap.Uint32("height", s.cfg.Height))
	}

	s.frame = &Texture{
		handle:       handle,
		device:       s.device,
		format:       s.cfg.Format,
		width:        s.cfg.Width,
		height:       s.cfg.Height,
		usage:        s.cfg.Usage,
		surfaceOwned: true,
	}
	s.state = SurfaceFrameAcquired
	return s.frame, nil
}

// Present shows the acquired frame and invalidates its texture; any later
// use of that texture is a contract error.
func (s *Surface) Present() error {
	const op = "present"
	if err := s.use(op); err != nil {
		return err
	}
	if s.state != SurfaceFrameAcquired {
		return errf(op, KindContract, "no frame acquired")
	}
	status := ffi.P().SurfacePresent(s.handle)
	s.frame.released = true
	s.frame = nil
	s.state = SurfaceConfigured
	if status != abi.StatusSuccess {
		return errf(op, KindNative, "native returned status %d", status)
	}
	return nil
}

// Unconfigure detaches the surface from its device. Valid only while no
// frame is acquired.
func (s *Surface) Unconfigure() error {
	const op = "unconfigure surface"
	if err := s.use(op); err != nil {
		return err
	}
	if s.state == SurfaceFrameAcquired {
		return errf(op, KindContract, "unconfigure while a frame is acquired")
	}
	if s.state != SurfaceConfigured {
		return nil
	}
	ffi.P().SurfaceUnconfigure(s.handle)
	s.device = nil
	s.state = SurfaceUnconfigured
	return nil
}

// Release frees the surface handle. Terminal from any state.
func (s *Surface) Release() error {
	const op = "release surface"
	if err := s.use(op); err != nil {
		return err
	}
	if s.frame != nil {
		s.frame.released = true
		s.frame = nil
	}
	s.state = SurfaceDestroyed
	ffi.P().SurfaceRelease(s.handle)
	return nil
}
