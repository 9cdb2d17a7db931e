package meta

// Strategy represents the execution strategy selected for a compiled
// pattern.
//
// The engine chooses between:
//   - UseExactLiteral: the pattern is nothing but unstarred literals
//   - UsePrefilteredScan: the pattern has a mandatory literal prefix
//   - UseBacktracker: everything else
//
// Selection is automatic during compilation based on literal extraction.
type Strategy int

const (
	// UseBacktracker runs the backtracking evaluator with no prefilter.
	// Selected for patterns with no usable literal prefix, such as ".b"
	// or "a*bc", and whenever prefiltering is disabled in the Config.
	UseBacktracker Strategy = iota

	// UseExactLiteral treats the pattern as a plain string. IsMatch is
	// string equality; FindAll is an Aho-Corasick occurrence scan.
	// Selected when every atom is an unstarred literal.
	UseExactLiteral

	// UsePrefilteredScan runs the evaluator only at positions where the
	// pattern's mandatory literal prefix occurs. Selected for patterns
	// like "ab*c" (prefix "a") when the prefix meets MinPrefilterLen.
	UsePrefilteredScan
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseBacktracker:
		return "Backtracker"
	case UseExactLiteral:
		return "ExactLiteral"
	case UsePrefilteredScan:
		return "PrefilteredScan"
	default:
		return "Unknown"
	}
}
