package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the randomness used for accent, filler and doctor sampling.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// Locked wraps a *rand.Rand so it can be shared between request goroutines.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with seed. A zero seed uses the current time.
func New(seed int64) *Locked {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Locked{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// Fixed is a deterministic Source for tests: IntN always returns Int
// (clamped to n-1) and Float64 always returns Float.
type Fixed struct {
	Int   int
	Float float64
}

func (f Fixed) IntN(n int) int {
	if f.Int >= n {
		return n - 1
	}
	if f.Int < 0 {
		return 0
	}
	return f.Int
}

func (f Fixed) Float64() float64 {
	return f.Float
}
