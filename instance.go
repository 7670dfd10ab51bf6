package wgpu

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/agiangrant/wgpu/internal/abi"
	"github.com/agiangrant/wgpu/internal/ffi"
)

// Instance is the root handle. It owns no GPU resources itself; it hands out
// adapters and surfaces and pumps the native event queue.
type Instance struct {
	handle   uintptr
	cfg      Config
	log      *zap.Logger
	released bool
}

// InstanceOptions configures instance creation. The zero value loads the
// native library from the default search path, uses DefaultConfig timings,
// and discards diagnostics.
type InstanceOptions struct {
	Config *Config
	Logger *zap.Logger
}

// CreateInstance loads the native library on first use and creates the root
// handle. Created once at startup, released once at shutdown.
func CreateInstance(opts *InstanceOptions) (*Instance, error) {
	const op = "create instance"
	if opts == nil {
		opts = &InstanceOptions{}
	}
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if !ffi.Loaded() {
		if err := ffi.Load(cfg.Library.resolveLibrary()); err != nil {
			return nil, wrapErr(op, KindNative, err)
		}
	}
	installHandlers()

	// An enum fallback firing means a descriptor bypassed validation; it is
	// observable but silent at the call site, so it is at least logged.
	abi.ReportFallback = func(table, value string) {
		log.Warn("enum fallback substituted table default",
			zap.String("table", table),
			zap.String("value", value))
	}

	m := abi.NewArena()
	desc := abi.EncodeInstanceDescriptor(m)
	handle := ffi.P().CreateInstance(desc)
	runtime.KeepAlive(m)
	if handle == 0 {
		return nil, errf(op, KindCreation, "native returned null instance")
	}
	return &Instance{handle: handle, cfg: cfg, log: log}, nil
}

func (in *Instance) use(op string) error {
	if in.released {
		return errf(op, KindContract, "instance already released")
	}
	return nil
}

// ProcessEvents pumps the native event queue once, delivering any completed
// request callbacks.
func (in *Instance) ProcessEvents() {
	if in.released {
		return
	}
	ffi.P().InstanceProcessEvents(in.handle)
}

// AdapterOptions selects the physical GPU for RequestAdapter. All fields are
// optional.
type AdapterOptions struct {
	// PowerPreference is "low-power" or "high-performance".
	PowerPreference string
	// ForceFallback requests a software adapter.
	ForceFallback bool
	// BackendType pins a specific native backend, e.g. "metal" or "vulkan".
	BackendType string
	// FeatureLevel is "core" (default) or "compatibility".
	FeatureLevel string
	// CompatibleSurface restricts the adapter to one that can present to
	// the given surface.
	CompatibleSurface *Surface
}

func (o *AdapterOptions) validate(op string) error {
	if err := checkEnum(op, "power-preference", o.PowerPreference); err != nil {
		return err
	}
	if err := checkEnum(op, "backend-type", o.BackendType); err != nil {
		return err
	}
	if err := checkEnum(op, "feature-level", o.FeatureLevel); err != nil {
		return err
	}
	if o.CompatibleSurface != nil {
		if err := o.CompatibleSurface.use(op); err != nil {
			return err
		}
	}
	return nil
}

// RequestAdapter asks the native library for a GPU adapter and waits for the
// result. Distinguishes native rejection (ErrNegotiation) from the callback
// never firing (ErrTimeout).
func (in *Instance) RequestAdapter(opts *AdapterOptions) (*Adapter, error) {
	const op = "request adapter"
	if err := in.use(op); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &AdapterOptions{}
	}
	if err := opts.validate(op); err != nil {
		return nil, err
	}

	var surface uintptr
	if opts.CompatibleSurface != nil {
		surface = opts.CompatibleSurface.handle
	}

	id, req := newRequest()
	m := abi.NewArena()
	desc := abi.EncodeRequestAdapterOptions(m, &abi.RequestAdapterOptions{
		FeatureLevel:      opts.FeatureLevel,
		PowerPreference:   opts.PowerPreference,
		ForceFallback:     opts.ForceFallback,
		BackendType:       opts.BackendType,
		CompatibleSurface: surface,
	})
	ffi.P().InstanceRequestAdapter(in.handle, desc, ffi.CallbackInfo{
		Mode:      ffi.CallbackModeAllowSpontaneous,
		Callback:  ffi.RequestAdapterTrampoline(),
		Userdata1: id,
	})
	runtime.KeepAlive(m)

	handle, err := in.await(op, id, req)
	if err != nil {
		return nil, err
	}
	return &Adapter{handle: handle, inst: in}, nil
}

// CreateSurface wraps a platform drawable in a Surface. The platform handle
// inside the source is opaque to this layer; the windowing layer supplies
// it.
func (in *Instance) CreateSurface(desc *SurfaceDescriptor) (*Surface, error) {
	const op = "create surface"
	if err := in.use(op); err != nil {
		return nil, err
	}
	if desc == nil || desc.Source == nil {
		return nil, errf(op, KindValidation, "missing platform source")
	}

	m := abi.NewArena()
	source := desc.Source.encode(m)
	ptr := abi.EncodeSurfaceDescriptor(m, desc.Label, source)
	handle := ffi.P().InstanceCreateSurface(in.handle, ptr)
	runtime.KeepAlive(m)
	if handle == 0 {
		return nil, errf(op, KindCreation, "native returned null surface")
	}
	return &Surface{handle: handle, inst: in}, nil
}

// Release frees the instance handle. Surfaces, adapters and devices obtained
// from it must be released first.
func (in *Instance) Release() error {
	const op = "release instance"
	if err := in.use(op); err != nil {
		return err
	}
	in.released = true
	ffi.P().InstanceRelease(in.handle)
	return nil
}
