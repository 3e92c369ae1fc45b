// registry.go implements the extension registration system.
//
// Separated from extension.go to isolate the global registry state and
// thread-safe access patterns. Extensions self-register during init(),
// before main() runs.
//
// Design: The registry uses panic-on-duplicate following database/sql.Register
// conventions. This catches programmer errors early rather than allowing
// silent failures. Registration is a slice, not a map, because order matters:
// it fixes the command listing in `promptlint --help` and the two-phase init
// sequence in cmd, and both must be deterministic across runs.

package extension

import "sync"

var (
	mu         sync.RWMutex
	registered []Extension
	names      map[string]struct{}
)

// Register adds an extension to the registry. Called from init() functions.
//
// Why panic instead of returning error: Registration happens at init time,
// before main() runs. Errors at this stage indicate programmer mistakes
// (duplicate extension names), not runtime conditions. Panicking:
// 1. Fails fast and loudly during development
// 2. Avoids needing error handling in every init()
// 3. Makes duplicate registration impossible to ignore
//
// This follows the pattern used by database/sql.Register, flag.Var, etc.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	if names == nil {
		names = make(map[string]struct{})
	}
	name := e.Name()
	if _, exists := names[name]; exists {
		panic("extension already registered: " + name)
	}

	names[name] = struct{}{}
	registered = append(registered, e)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, len(registered))
	copy(exts, registered)
	return exts
}

// Get returns a specific extension by name, or nil if not found.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()

	for _, e := range registered {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// Names returns the names of all registered extensions.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, len(registered))
	for i, e := range registered {
		out[i] = e.Name()
	}
	return out
}
