// Package log provides centralised audit logging for promptlint operations.
// Logs are stored in ~/.promptlint/log/promptlint-log.db and track all CLI
// commands and MCP tool invocations across libraries.
//
// Access denials are first-class: when an operation fails because the
// sandbox refused a path, the entry records the denial reason in its own
// column so denied probes can be queried apart from ordinary failures.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("library:cat", "read").
//		Author(cmd.Author()).
//		Path(p).
//		Write(err)
//
//	log.Event("check:validate", "validate").
//		Author(cmd.Author()).
//		Detail("findings", len(result.Findings)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "library:cat",
// "check:report", "mcp:read".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jpl-au/promptlint/internal/sandbox"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "library:cat", "mcp:promptlint_read"
	Author string // who performed the action
	Action string // verb: validate, read, count, report, etc.
	Path   string // input: path as requested

	// Output fields - populated after the operation completes
	ResolvedPath string // output: resolved absolute path, when access was granted
	Denial       string // reason the sandbox refused the path, empty otherwise

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "check:validate", "library:ls")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:read", "mcp:report")
//
// The action describes what operation was performed:
//   - "validate", "read", "list", "count", "report", "drift", etc.
//
// Example:
//
//	log.Event("check:validate", "validate").
//		Author(cmd.Author()).
//		Path(p).
//		Write(err)
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the library path this operation was asked to touch, exactly
// as it was requested and before any sandbox resolution.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Resolved sets the absolute path the sandbox granted (output).
//
// Only set this after the operation was allowed; denied requests never
// have a resolved path.
//
// Example:
//
//	l.Resolved(abs)  // After Resolve succeeded
func (b *Builder) Resolved(path string) *Builder {
	b.entry.ResolvedPath = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// glob patterns, match counts, finding totals, etc.
// Can be called multiple times to add multiple details.
//
// Example:
//
//	log.Event("library:count", "count").
//		Detail("pattern", pattern).
//		Detail("count", n)
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. When err is a sandbox denial the entry also records the
// denial reason, keeping refused probes queryable on their own.
//
// Example:
//
//	content, err := acc.ReadText(path, root)
//	log.Event("library:cat", "read").Path(path).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
		if reason, ok := sandbox.DenialReason(err); ok {
			b.entry.Denial = string(reason)
		}
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the library root.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
