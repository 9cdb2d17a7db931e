package meta

import (
	"sync"

	"github.com/coregx/miniregex/backtrack"
)

// searchState holds per-search mutable state. Each in-flight search owns
// one instance; instances are recycled through searchStatePool so that
// concurrent searches on the same Engine never share evaluator state.
type searchState struct {
	bt *backtrack.State
}

// searchStatePool manages searchState reuse, following the stdlib regexp
// pattern of pooling per-search scratch space for concurrency safety.
type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool() *searchStatePool {
	return &searchStatePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &searchState{bt: backtrack.NewState()}
			},
		},
	}
}

func (p *searchStatePool) get() *searchState {
	return p.pool.Get().(*searchState)
}

func (p *searchStatePool) put(s *searchState) {
	p.pool.Put(s)
}
