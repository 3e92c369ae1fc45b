// context.go defines the Context interface for extension access to promptlint internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// access what they need without reaching into arbitrary internals.
//
// Design: Context uses an interface to enable testing with mock implementations.
// Extensions receive Context during Init(), not at construction, to support
// the two-phase initialization pattern where extensions register before
// the library has been discovered.

package extension

import (
	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/config"
)

// Context provides extensions controlled access to promptlint internals.
// Extensions receive this during initialisation to access shared resources.
type Context interface {
	// Accessor returns the sandboxed accessor for library reads.
	// Every filesystem operation an extension performs goes through it.
	Accessor() *access.Accessor

	// Root returns the absolute path of the discovered library root.
	Root() string

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	acc  *access.Accessor
	root string
	cfg  *config.Config
}

// NewContext creates a new extension context.
func NewContext(acc *access.Accessor, root string, cfg *config.Config) Context {
	return &extContext{
		acc:  acc,
		root: root,
		cfg:  cfg,
	}
}

// Accessor returns the sandboxed accessor, the only read path into the library.
func (c *extContext) Accessor() *access.Accessor {
	return c.acc
}

// Root returns the library root all accessor calls are resolved against.
func (c *extContext) Root() string {
	return c.root
}

// Config returns the loaded user configuration for respecting preferences.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
