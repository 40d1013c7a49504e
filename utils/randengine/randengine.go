// Seeded random engine wrapping golang.org/x/exp/rand.
//
// The whole simulation draws from one engine so that a run is a pure
// function of (seed, config): the spawner's Bernoulli draws and the
// per-tick activation shuffle consume the same stream in a fixed order.
package randengine

import (
	"flag"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "offset added to every engine seed")
)

// Engine is a deterministic random source. It is not safe for concurrent
// use; the world has a single logical owner and never draws concurrently.
type Engine struct {
	*rand.Rand
}

// New creates an engine seeded with seed plus the process-wide offset.
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// PTrue returns true with probability p.
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}
