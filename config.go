package wgpu

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/wgpu/internal/ffi"
)

// Config tunes library loading and the negotiation protocol. The zero value
// is not usable; start from DefaultConfig or LoadConfig.
type Config struct {
	Library     LibraryConfig     `toml:"library"`
	Negotiation NegotiationConfig `toml:"negotiation"`
}

// LibraryConfig locates the native WebGPU library. The WGPU_DAWN_LIB_PATH
// environment variable overrides both fields.
type LibraryConfig struct {
	// Path is the full path of the shared library. Empty means search.
	Path string `toml:"path"`
	// SearchDirs are extra directories checked for the platform library
	// name before the default search locations.
	SearchDirs []string `toml:"search_dirs"`
}

// NegotiationConfig bounds the adapter and device request wait loops.
type NegotiationConfig struct {
	TimeoutMS      int `toml:"timeout_ms"`
	PollIntervalUS int `toml:"poll_interval_us"`
}

// DefaultConfig returns the production defaults: a 5 second request timeout
// polled at 1ms.
func DefaultConfig() Config {
	return Config{
		Negotiation: NegotiationConfig{
			TimeoutMS:      5000,
			PollIntervalUS: 1000,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Negotiation.TimeoutMS <= 0 {
		return cfg, fmt.Errorf("invalid negotiation.timeout_ms %d", cfg.Negotiation.TimeoutMS)
	}
	if cfg.Negotiation.PollIntervalUS <= 0 {
		return cfg, fmt.Errorf("invalid negotiation.poll_interval_us %d", cfg.Negotiation.PollIntervalUS)
	}
	return cfg, nil
}

func (c Config) requestTimeout() time.Duration {
	return time.Duration(c.Negotiation.TimeoutMS) * time.Millisecond
}

func (c Config) pollInterval() time.Duration {
	return time.Duration(c.Negotiation.PollIntervalUS) * time.Microsecond
}

// resolveLibrary picks the library path to load. An empty result defers to
// the gateway's own default search.
func (c LibraryConfig) resolveLibrary() string {
	if path := os.Getenv("WGPU_DAWN_LIB_PATH"); path != "" {
		return path
	}
	if c.Path != "" {
		return c.Path
	}
	name := ffi.LibraryFileName()
	for _, dir := range c.SearchDirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
