// Package maze derives puzzle structure from a site layout: a random
// spanning tree over the site graph, all-pairs graph distances over its
// passable edges, and a distance-constrained waypoint placement.
package maze

import (
	"errors"
	"math/rand"
	"time"
)

// Rand is the injected random source. It matches *math/rand.Rand; results
// are deterministic given a fixed sequence of draws.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// ErrInvalidInput indicates arguments that violate an operation's
// preconditions (out-of-range site index, empty graph, impossible counts).
var ErrInvalidInput = errors.New("maze: invalid input")

// ErrPlacementExhausted signals that waypoint placement could not satisfy
// the distance constraint within its retry budget. Callers regenerate the
// entire layout; the signal is never surfaced to users.
var ErrPlacementExhausted = errors.New("maze: waypoint placement exhausted")

// NewRand returns a seeded random source and the effective seed. A zero seed
// selects a time-based one.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
