package generator

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source the generator draws from. *rand.Rand satisfies it.
// Implementations shared across goroutines must be safe for concurrent use.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// globalRand uses the package-level math/rand/v2 source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// lockedRand serializes access to a seeded source so a fixed seed can be
// shared by concurrent callers.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed uint64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

func shuffleStrings(rng Rand, s []string) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
