// Package config provides reading and writing of promptlint configuration.
// Supports both global (~/.promptlint/config.yaml) and local
// (<library>/.promptlint/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/promptlint/internal/access"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.promptlint/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is library-specific config in .promptlint/config.yaml
	ScopeLocal
)

// Author represents the author metadata recorded with audit entries.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Check holds validation behaviour options.
type Check struct {
	Strict *bool `yaml:"strict,omitempty"`
}

// Limits holds directory walk and file size limit options.
type Limits struct {
	WalkDepth   *int   `yaml:"walk_depth,omitempty"`
	WalkEntries *int   `yaml:"walk_entries,omitempty"`
	MaxFileSize *int64 `yaml:"max_file_size,omitempty"`
}

// Validation bounds for configuration values.
const (
	MinWalkDepth   = 1
	MaxWalkDepth   = 4096
	MinWalkEntries = 1
	MaxWalkEntries = 10_000_000
	MinMaxFileSize = 1
	MaxMaxFileSize = 1024 * 1024 * 1024 // 1 GB
)

// Config contains configuration for promptlint.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Check  Check  `yaml:"check,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.WalkDepth != nil {
		v := *c.Limits.WalkDepth
		if v < MinWalkDepth || v > MaxWalkDepth {
			return fmt.Errorf("%w: walk_depth must be between %d and %d, got %d",
				ErrInvalidValue, MinWalkDepth, MaxWalkDepth, v)
		}
	}
	if c.Limits.WalkEntries != nil {
		v := *c.Limits.WalkEntries
		if v < MinWalkEntries || v > MaxWalkEntries {
			return fmt.Errorf("%w: walk_entries must be between %d and %d, got %d",
				ErrInvalidValue, MinWalkEntries, MaxWalkEntries, v)
		}
	}
	if c.Limits.MaxFileSize != nil {
		v := *c.Limits.MaxFileSize
		if v < MinMaxFileSize || v > MaxMaxFileSize {
			return fmt.Errorf("%w: max_file_size must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxFileSize, MaxMaxFileSize, v)
		}
	}
	return nil
}

// Strict returns whether strict validation is enabled (defaults to false).
func (c *Config) Strict() bool {
	if c.Check.Strict == nil {
		return false
	}
	return *c.Check.Strict
}

// WalkDepth returns the maximum directory walk depth.
func (c *Config) WalkDepth() int {
	if c.Limits.WalkDepth == nil {
		return access.DefaultWalkDepth
	}
	return *c.Limits.WalkDepth
}

// WalkEntries returns the maximum number of entries visited per walk.
func (c *Config) WalkEntries() int {
	if c.Limits.WalkEntries == nil {
		return access.DefaultWalkEntries
	}
	return *c.Limits.WalkEntries
}

// MaxFileSize returns the maximum readable file size in bytes.
func (c *Config) MaxFileSize() int64 {
	if c.Limits.MaxFileSize == nil {
		return access.DefaultMaxFileSize
	}
	return *c.Limits.MaxFileSize
}

// LocalPath returns the path to the local (library) config file.
func LocalPath(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(root, ".promptlint", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.promptlint/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".promptlint", "config.yaml")
}

// Load reads configuration for a library: uses the library-local file
// if it exists, otherwise the global one.
func Load(root string) (*Config, error) {
	if _, err := os.Stat(LocalPath(root)); err == nil {
		return LoadScope(ScopeLocal, root)
	}
	return LoadScope(ScopeGlobal, root)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope, root string) (*Config, error) {
	path := pathForScope(scope, root)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope, root string) error {
	path := pathForScope(scope, root)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope, root string) string {
	switch scope {
	case ScopeLocal:
		return LocalPath(root)
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
