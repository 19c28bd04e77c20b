package random

import (
	"math/rand/v2"
	"sync"

	"github.com/randomtoy/menu-designer/internal/domain"
)

// Std delegates to math/rand/v2 (auto-seeded, safe for concurrent use).
type Std struct{}

func (Std) Intn(n int) int { return rand.IntN(n) }

// Seeded is a PCG source for reproducible output. Not safe for concurrent use.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a fresh source; equal seeds yield equal sequences.
func NewSeeded(seed uint64) domain.RNG {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *Seeded) Intn(n int) int { return s.r.IntN(n) }

// Locked serializes access to an RNG so a single seeded source can be shared
// across requests.
type Locked struct {
	mu  sync.Mutex
	rng domain.RNG
}

func NewLocked(rng domain.RNG) *Locked {
	return &Locked{rng: rng}
}

func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
