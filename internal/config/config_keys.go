// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "limits.walk_depth").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"check.strict",
		"limits.walk_depth", "limits.walk_entries", "limits.max_file_size",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "check.strict":
		return strconv.FormatBool(c.Strict()), nil
	case "limits.walk_depth":
		return strconv.Itoa(c.WalkDepth()), nil
	case "limits.walk_entries":
		return strconv.Itoa(c.WalkEntries()), nil
	case "limits.max_file_size":
		return strconv.FormatInt(c.MaxFileSize(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "check.strict":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: check.strict must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Check.Strict = &b
	case "limits.walk_depth":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.walk_depth must be a positive integer", ErrInvalidValue)
		}
		c.Limits.WalkDepth = &n
	case "limits.walk_entries":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.walk_entries must be a positive integer", ErrInvalidValue)
		}
		c.Limits.WalkEntries = &n
	case "limits.max_file_size":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_file_size must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxFileSize = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":          c.Author.Name,
		"author.email":         c.Author.Email,
		"check.strict":         strconv.FormatBool(c.Strict()),
		"limits.walk_depth":    strconv.Itoa(c.WalkDepth()),
		"limits.walk_entries":  strconv.Itoa(c.WalkEntries()),
		"limits.max_file_size": strconv.FormatInt(c.MaxFileSize(), 10),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "check.strict":
		return c.Check.Strict != nil
	case "limits.walk_depth":
		return c.Limits.WalkDepth != nil
	case "limits.walk_entries":
		return c.Limits.WalkEntries != nil
	case "limits.max_file_size":
		return c.Limits.MaxFileSize != nil
	default:
		return false
	}
}
