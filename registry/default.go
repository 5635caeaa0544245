package registry

import "sync"

var (
	defaultMu  sync.Mutex
	defaultReg *Registry
)

// Default returns the process registry, creating it from OptionsFromEnv on
// first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultReg == nil {
		defaultReg = New(OptionsFromEnv())
	}
	return defaultReg
}

// SetDefault installs r as the process registry. Blocks tracked by the
// previous process registry stay with it. SetDefault(nil) makes the next
// Default call build a fresh registry.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultReg = r
}

// Acquire calls Acquire on the process registry.
func Acquire(size int) []byte { return Default().Acquire(size) }

// Release calls Release on the process registry.
func Release(addr Address) bool { return Default().Release(addr) }

// ReleaseBlock calls ReleaseBlock on the process registry.
func ReleaseBlock(b []byte) bool { return Default().ReleaseBlock(b) }

// ReleaseAll calls ReleaseAll on the process registry.
func ReleaseAll(exitStatus int) { Default().ReleaseAll(exitStatus) }
