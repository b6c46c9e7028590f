// Package random provides the dice used by mission resolution.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Roller produces uniform draws in [0, 100)
type Roller interface {
	Roll() float64
}

// PercentRoller draws percentages from a math/rand source. It is not safe for concurrent use.
type PercentRoller struct {
	rng *rand.Rand
}

// NewPercentRoller creates a roller from a seed
func NewPercentRoller(seed int64) *PercentRoller {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return &PercentRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a value in [0, 100)
func (r *PercentRoller) Roll() float64 {
	return r.rng.Float64() * 100
}

// Sequence replays fixed draws, then repeats the last one. Used by tests and simulations.
type Sequence struct {
	draws []float64
	next  int
}

// NewSequence creates a roller that returns draws in order
func NewSequence(draws ...float64) *Sequence {
	return &Sequence{draws: draws}
}

// Roll returns the next scripted draw
func (s *Sequence) Roll() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	if s.next >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	v := s.draws[s.next]
	s.next++
	return v
}

// Drawn reports how many scripted draws have been consumed
func (s *Sequence) Drawn() int {
	return s.next
}
