package trivia

import (
	"math/rand/v2"
	"sync"

	"trivia/pkg/types"
)

// AllCategories is the quiz category id that selects from every category.
const AllCategories = 0

// Selector picks quiz questions uniformly at random from a pool.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a Selector drawing from src. A nil src is replaced by a
// randomly seeded PCG source.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{rng: rand.New(src)}
}

// Pick drops every question whose id is in previous and returns one of the
// rest. It reports false when nothing is left.
func (s *Selector) Pick(pool []*types.Question, previous []int) (*types.Question, bool) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	eligible := make([]*types.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		eligible = append(eligible, q)
	}

	if len(eligible) == 0 {
		return nil, false
	}

	// *rand.Rand is not safe for concurrent use
	s.mu.Lock()
	i := s.rng.IntN(len(eligible))
	s.mu.Unlock()

	return eligible[i], true
}
