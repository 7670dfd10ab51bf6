//go:build darwin || linux || freebsd

package ffi

import "github.com/ebitengine/purego"

// openLibrary loads the shared library with eager symbol resolution, so a
// mismatched library fails at load instead of at first call.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
