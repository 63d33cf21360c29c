// Package rng provides the seeded random source that drives every die roll and
// coin flip in a game.
//
// A game is replayable from its seed: two Rand values created with the same
// seed produce the same sequence of draws.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_rng.go github.com/samdwyer/dogboard/internal/rng Source

// Source produces uniform bits and uniform integers.
type Source interface {
	// Coin returns a uniformly random bit.
	Coin() bool
	// Between returns a uniformly random integer in [lo, hi].
	Between(lo, hi int) int
}

// Rand is a deterministic Source backed by math/rand.
type Rand struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a Rand from a seed.
func New(seed int64) *Rand {
	return &Rand{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Coin returns a uniformly random bit.
func (r *Rand) Coin() bool {
	r.pos++
	return r.src.Int63()&1 == 1
}

// Between returns a uniformly random integer in the closed range [lo, hi].
// It panics if hi < lo.
func (r *Rand) Between(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d]", lo, hi))
	}
	r.pos++
	return lo + r.src.Intn(hi-lo+1)
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *Rand) Position() int64 {
	return r.pos
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

var _ Source = (*Rand)(nil)
