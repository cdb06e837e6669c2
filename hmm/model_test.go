package hmm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/dmtk/hmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModel_ValidateOK accepts both fixtures, with and without Start.
func TestModel_ValidateOK(t *testing.T) {
	assert.NoError(t, diceModel().Validate())
	assert.NoError(t, weatherModel().Validate())
}

// TestModel_ValidateReportsAll expects every violation of an empty model.
func TestModel_ValidateReportsAll(t *testing.T) {
	err := hmm.Model[string, int]{}.Validate()
	require.ErrorIs(t, err, hmm.ErrInvalidParameters)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	// empty emission, empty transition, empty (synthesized) start
	assert.Len(t, merr.Errors, 3)
}

// TestModel_ValidateViolations walks the individual invariants.
func TestModel_ValidateViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m *hmm.Model[string, int])
	}{
		{"empty emission row", func(m *hmm.Model[string, int]) { m.Emission[Loaded] = map[int]float64{} }},
		{"negative emission", func(m *hmm.Model[string, int]) { m.Emission[Fair][1] = -0.1 }},
		{"NaN transition", func(m *hmm.Model[string, int]) {
			m.Transition[hmm.Transition[string]{From: Fair, To: Fair}] = math.NaN()
		}},
		{"transition to unknown state", func(m *hmm.Model[string, int]) {
			m.Transition[hmm.Transition[string]{From: Fair, To: "X"}] = 0.1
		}},
		{"start count mismatch", func(m *hmm.Model[string, int]) { m.Start = hmm.StartTable[string]{Fair: 1} }},
		{"start names unknown state", func(m *hmm.Model[string, int]) {
			m.Start = hmm.StartTable[string]{Fair: 0.5, "X": 0.5}
		}},
		{"infinite start", func(m *hmm.Model[string, int]) {
			m.Start = hmm.StartTable[string]{Fair: math.Inf(1), Loaded: 0.5}
		}},
		{"short order", func(m *hmm.Model[string, int]) { m.Order = []string{Fair} }},
		{"order names unknown state", func(m *hmm.Model[string, int]) { m.Order = []string{Fair, "X"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := diceModel()
			tc.mutate(&m)
			assert.ErrorIs(t, m.Validate(), hmm.ErrInvalidParameters)
		})
	}
}

// TestModel_ValidateAcceptsAboveOne: re-estimated rows may exceed 1.
func TestModel_ValidateAcceptsAboveOne(t *testing.T) {
	m := diceModel()
	m.Emission[Fair][1] = 1.2
	assert.NoError(t, m.Validate())
}

// TestModel_Clone checks deep copying.
func TestModel_Clone(t *testing.T) {
	m := weatherModel()
	m.Order = []string{"R", "H"}
	c := m.Clone()
	require.Equal(t, m, c)

	c.Emission["H"]["normal"] = 0
	c.Transition[hmm.Transition[string]{From: "H", To: "H"}] = 0
	c.Start["H"] = 0
	c.Order[0] = "H"

	assert.Equal(t, 0.5, m.Emission["H"]["normal"])
	assert.Equal(t, 0.7, m.Transition[hmm.Transition[string]{From: "H", To: "H"}])
	assert.Equal(t, 0.6, m.Start["H"])
	assert.Equal(t, "R", m.Order[0])

	assert.Equal(t, hmm.Model[string, int]{}, hmm.Model[string, int]{}.Clone(), "nil tables stay nil")
}

// TestModel_States checks the tie-break order resolution.
func TestModel_States(t *testing.T) {
	m := weatherModel()
	assert.Equal(t, []string{"H", "R"}, m.States())

	m.Order = []string{"R", "H"}
	assert.Equal(t, []string{"R", "H"}, m.States())
}
