package meta

import (
	"github.com/coregx/miniregex/backtrack"
	"github.com/coregx/miniregex/literal"
	"github.com/coregx/miniregex/prefilter"
	"github.com/coregx/miniregex/syntax"
)

// Compile compiles a pattern with the default configuration.
//
// The only failure mode is a malformed pattern: a '*' with no preceding
// atom yields a *syntax.ParseError wrapping syntax.ErrDanglingStar.
//
// Example:
//
//	engine, err := meta.Compile("a*b")
//	if err != nil {
//	    return err
//	}
//	engine.IsMatch("aab") // true
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	atoms, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	bt := backtrack.New(atoms)
	if config.MaxVisitedSize != 0 {
		bt.SetMaxVisitedSize(config.MaxVisitedSize)
	}

	prefix := literal.ExtractPrefix(atoms)
	e := &Engine{
		pattern:     pattern,
		atoms:       atoms,
		backtracker: bt,
		config:      config,
		prefix:      prefix,
		suffix:      literal.ExtractSuffix(atoms),
		minLen:      syntax.MinLen(atoms),
		fixedLen:    !syntax.HasStar(atoms),
		statePool:   newSearchStatePool(),
	}
	e.strategy = selectStrategy(e)

	// The prefilter is what makes the literal strategies fast paths;
	// without it they fall back to the evaluator scan.
	if config.EnablePrefilter && e.strategy != UseBacktracker {
		pf, err := prefilter.NewAhoCorasick(prefix)
		if err != nil {
			// Unbuildable prefilter is not a compile failure; the
			// evaluator handles every pattern.
			e.strategy = UseBacktracker
		} else {
			e.pf = pf
		}
	}

	return e, nil
}

// selectStrategy picks the execution strategy from the extracted literals.
func selectStrategy(e *Engine) Strategy {
	if !e.config.EnablePrefilter {
		return UseBacktracker
	}
	if e.prefix.Complete && !e.prefix.IsEmpty() {
		return UseExactLiteral
	}
	if e.prefix.Len() >= e.config.MinPrefilterLen && !e.prefix.IsEmpty() {
		return UsePrefilteredScan
	}
	return UseBacktracker
}
