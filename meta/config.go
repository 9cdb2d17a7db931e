// Package meta implements the engine orchestrator for miniregex.
//
// The orchestrator compiles a pattern once, selects an execution strategy
// (exact literal, prefiltered scan, or plain backtracking), and coordinates
// matching and scanning. Compiled engines are immutable; per-search mutable
// state is pooled, so one Engine is safe for concurrent use from multiple
// goroutines.
package meta

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // force plain backtracking
//	engine, err := meta.CompileWithConfig("ab*c", config)
type Config struct {
	// EnablePrefilter enables literal-based candidate finding. When
	// false, the Aho-Corasick prefilter is never built and all scanning
	// goes through the backtracking evaluator.
	// Default: true
	EnablePrefilter bool

	// MinPrefilterLen is the minimum byte length a mandatory literal
	// prefix must have before a prefilter is built for it. Shorter
	// prefixes still reject candidates, so the default accepts any
	// non-empty prefix.
	// Default: 1
	MinPrefilterLen int

	// MaxVisitedSize caps the evaluator's visited bit vector, in bits.
	// Texts past the cap are evaluated without pruning, which is correct
	// but may take exponential time on pathological patterns.
	// 0 means the evaluator default (256KB); negative disables pruning.
	// Default: 0
	MaxVisitedSize int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinPrefilterLen: 1,
		MaxVisitedSize:  0,
	}
}
