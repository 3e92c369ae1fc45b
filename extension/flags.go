// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "paths-only" -> FlagPathsOnly).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagLocal     = "local"      // Use local config scope
	FlagLong      = "long"       // Long format output
	FlagPathsOnly = "paths-only" // Output paths only
	FlagRaw       = "raw"        // Raw output without terminal rendering
	FlagStrict    = "strict"     // Require every documented directory to exist
	FlagTree      = "tree"       // Tree view output

	// Duration flags

	FlagDebounce = "debounce" // Coalescing window for filesystem events
)
