/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that discovers
// the library, loads config, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the library is discovered. The accessor is
// created once and shared across all extensions via the Context.

package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jpl-au/promptlint/extension"
	"github.com/jpl-au/promptlint/internal/access"
	"github.com/jpl-au/promptlint/internal/config"
	"github.com/jpl-au/promptlint/internal/library"
	"github.com/jpl-au/promptlint/internal/log"
	"github.com/jpl-au/promptlint/internal/sandbox"
)

// noRootCommands lists commands that bypass library discovery.
// Built dynamically from bootstrap commands plus extension-declared rootless commands.
var noRootCommands map[string]bool

// buildNoRootCommands creates the set of commands that skip library discovery.
//
// Why this exists: Most commands operate on a prompt library, but some must
// work without one. There are two categories:
//
//  1. Bootstrap commands (guide, config) - These help users set up or learn
//     about promptlint before a library exists. Running "promptlint guide"
//     shouldn't fail just because the working directory has no package.json.
//     The bare invocation, help, and completion fall in the same bucket.
//
//  2. Extension-declared rootless commands - Extensions can implement the
//     Rootless interface to declare commands that resolve their own library,
//     or none at all.
//
// When adding a new command: If it's a core bootstrap command, add it here.
// Otherwise, implement extension.Rootless in your extension.
func buildNoRootCommands() map[string]bool {
	cmds := map[string]bool{
		// Core bootstrap commands - always rootless
		"guide":  true,
		"config": true,

		// Cobra built-ins and the bare invocation (shows help)
		"promptlint": true,
		"help":       true,
		"completion": true,
	}

	// Add extension-declared rootless commands
	for _, ext := range extension.All() {
		if r, ok := ext.(extension.Rootless); ok {
			for _, name := range r.NoRootCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Shared state created during initialisation.
var (
	extContext  extension.Context
	extAccessor *access.Accessor
	extRoot     string
	extConfig   *config.Config
	initOnce    sync.Once
	initErr     error
)

// Accessor returns the shared sandboxed accessor.
// Valid only after initExtensions has run.
func Accessor() *access.Accessor { return extAccessor }

// LibraryRoot returns the discovered library root.
// Valid only after initExtensions has run.
func LibraryRoot() string { return extRoot }

// Config returns the loaded configuration, or nil before initialisation.
func Config() *config.Config { return extConfig }

// initExtensions discovers the library, builds the accessor, and injects
// them into extensions.
//
// Why sync.Once: The accessor and config must be shared across all
// extensions and the audit log project must be set exactly once. sync.Once
// guarantees one initialisation per process, even if multiple commands
// somehow trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		root, err := library.Discover(RootDir())
		if err != nil {
			if errors.Is(err, library.ErrNotFound) {
				initErr = fmt.Errorf("%w\n\nRun promptlint inside a prompt library, or point at one with --root.\nSee 'promptlint guide' to get started.", err)
				return
			}
			initErr = err
			return
		}
		extRoot = root

		// Set project identifier for audit logging
		log.SetProject(root)

		cfg, err := config.Load(root)
		if err != nil {
			initErr = fmt.Errorf("load config: %w", err)
			return
		}
		extConfig = cfg

		guard := sandbox.New(sandbox.Default())
		extAccessor = access.New(guard,
			access.WithWalkLimits(cfg.WalkDepth(), cfg.WalkEntries()),
			access.WithMaxFileSize(cfg.MaxFileSize()),
		)
		extContext = extension.NewContext(extAccessor, root, cfg)

		// Inject the shared context into all Initializable extensions.
		// This is dependency injection - extensions receive the accessor
		// rather than creating it themselves, enabling shared limits and
		// consistent audit attribution.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noRootCommands after all extensions are registered
		noRootCommands = buildNoRootCommands()
	})
}
