package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPercentRoller_Range(t *testing.T) {
	r := NewPercentRoller(42)
	for i := 0; i < 10000; i++ {
		v := r.Roll()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 100.0)
	}
}

func TestPercentRoller_Deterministic(t *testing.T) {
	a := NewPercentRoller(7)
	b := NewPercentRoller(7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Roll(), b.Roll())
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(10, 20)
	assert.Equal(t, 10.0, s.Roll())
	assert.Equal(t, 20.0, s.Roll())
	assert.Equal(t, 20.0, s.Roll())
	assert.Equal(t, 2, s.Drawn())

	assert.Equal(t, 0.0, NewSequence().Roll())
}
