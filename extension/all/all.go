// Package all imports all core promptlint extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/promptlint/extension/check"
	_ "github.com/jpl-au/promptlint/extension/core"
	_ "github.com/jpl-au/promptlint/extension/library"
)
