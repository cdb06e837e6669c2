package hmm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dmtk/hmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScale_Arithmetic pins Combine/ValueOf/Transform of both strategies.
func TestScale_Arithmetic(t *testing.T) {
	lin := hmm.Linear.Arithmetic()
	assert.Equal(t, 0.125, lin.Combine(0.5, 0.25))
	assert.Equal(t, 0.5, lin.ValueOf(0.5))
	assert.Equal(t, 0.5, lin.Transform(0.5))

	lg := hmm.Logarithmic.Arithmetic()
	assert.Equal(t, -3.0, lg.Combine(-1, -2))
	assert.Equal(t, -1.0, lg.ValueOf(-1))
	assert.Equal(t, -2.0, lg.Transform(0.25))
	assert.True(t, math.IsInf(lg.Transform(0), -1), "log2(0) = -Inf")
}

// TestParseScale maps CLI names.
func TestParseScale(t *testing.T) {
	for name, want := range map[string]hmm.Scale{
		"linear": hmm.Linear, "lin": hmm.Linear,
		"log": hmm.Logarithmic, "log2": hmm.Logarithmic, "logarithmic": hmm.Logarithmic,
	} {
		got, err := hmm.ParseScale(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := hmm.ParseScale("ln")
	assert.ErrorIs(t, err, hmm.ErrInvalidParameters)
	assert.Equal(t, "log", hmm.Logarithmic.String())
}

func TestParseNormalizer(t *testing.T) {
	n, err := hmm.ParseNormalizer("occupancy")
	require.NoError(t, err)
	assert.Equal(t, hmm.StateOccupancy, n)
	assert.Equal(t, "incoming", hmm.IncomingTransitions.String())

	_, err = hmm.ParseNormalizer("outgoing")
	assert.ErrorIs(t, err, hmm.ErrInvalidParameters)
}

// TestModel_Rescale checks the pure log2 transform and uniform start synthesis.
func TestModel_Rescale(t *testing.T) {
	m := diceModel()
	lg, err := m.Rescale(hmm.Logarithmic)
	require.NoError(t, err)

	assert.InDelta(t, math.Log2(3.0/8), lg.Emission[Loaded][6], 1e-12)
	assert.InDelta(t, math.Log2(0.9), lg.Transition[hmm.Transition[string]{From: Fair, To: Fair}], 1e-12)
	assert.Equal(t, hmm.StartTable[string]{Fair: -1, Loaded: -1}, lg.Start)

	assert.Equal(t, diceEmission(), m.Emission, "input left untouched")
	assert.Nil(t, m.Start)

	_, err = m.Rescale(hmm.Scale(-1))
	assert.ErrorIs(t, err, hmm.ErrInvalidParameters)
}
