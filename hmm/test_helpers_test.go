// Package hmm_test holds shared fixtures for the hmm tests.
//
// Fixtures:
//   - diceModel:    the fair/loaded casino die (states F, L; rolls 1..6).
//   - weatherModel: the textbook healthy/fever chain (states H, R).
//   - twinModel:    two indistinguishable states, for tie-break checks.
//
// Every constructor returns fresh maps so tests may mutate them freely.
package hmm_test

import (
	"github.com/katalvlaran/dmtk/hmm"
)

const (
	Fair   = "F"
	Loaded = "L"
)

// Sequences used across tests (avoid magic literals in test bodies).
var (
	// goldenPath / goldenRolls: state path and rolls of the likelihood fixture.
	goldenPath  = []string{"F", "F", "F", "F", "F", "L", "L", "L", "L", "F", "F", "F", "F", "F", "F"}
	goldenRolls = []int{1, 2, 1, 5, 6, 2, 1, 6, 2, 4, 6, 2, 3, 6, 4}

	// streakRolls has a run of sixes in the middle.
	streakRolls = []int{1, 2, 3, 4, 5, 3, 4, 5, 1, 4, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 1, 1, 1, 1, 1, 1, 1, 1}

	// streakPath is the Viterbi path of streakRolls under diceModel.
	streakPath = []string{
		"F", "F", "F", "F", "F", "F", "F", "F", "F", "F",
		"L", "L", "L", "L", "L", "L", "L", "L", "L", "L", "L", "L", "L", "L", "L",
		"F", "F", "F", "F", "F", "F", "F", "F",
	}
)

// Expected values of the golden likelihood scenario.
const (
	goldenLinear = 2.85087e-15
	goldenLog2   = -48.3175
)

func diceEmission() hmm.EmissionTable[string, int] {
	return hmm.EmissionTable[string, int]{
		Fair:   {1: 1 / 6.0, 2: 1 / 6.0, 3: 1 / 6.0, 4: 1 / 6.0, 5: 1 / 6.0, 6: 1 / 6.0},
		Loaded: {1: 1 / 8.0, 2: 1 / 8.0, 3: 1 / 8.0, 4: 1 / 8.0, 5: 1 / 8.0, 6: 3 / 8.0},
	}
}

func diceTransition(stay float64) hmm.TransitionTable[string] {
	return hmm.TransitionTable[string]{
		{From: Fair, To: Fair}:     stay,
		{From: Fair, To: Loaded}:   1 - stay,
		{From: Loaded, To: Fair}:   1 - stay,
		{From: Loaded, To: Loaded}: stay,
	}
}

// diceModel returns the casino model with 0.9 self-loops and no Start
// (uniform synthesis).
func diceModel() hmm.Model[string, int] {
	return hmm.Model[string, int]{
		Emission:   diceEmission(),
		Transition: diceTransition(0.9),
	}
}

// weatherModel is the healthy(H)/fever(R) chain with normal/cold/dizzy symptoms.
func weatherModel() hmm.Model[string, string] {
	return hmm.Model[string, string]{
		Emission: hmm.EmissionTable[string, string]{
			"H": {"normal": 0.5, "cold": 0.4, "dizzy": 0.1},
			"R": {"normal": 0.1, "cold": 0.3, "dizzy": 0.6},
		},
		Transition: hmm.TransitionTable[string]{
			{From: "H", To: "H"}: 0.7,
			{From: "H", To: "R"}: 0.3,
			{From: "R", To: "H"}: 0.4,
			{From: "R", To: "R"}: 0.6,
		},
		Start: hmm.StartTable[string]{"H": 0.6, "R": 0.4},
	}
}

// twinModel has two states with identical rows everywhere.
func twinModel() hmm.Model[string, rune] {
	return hmm.Model[string, rune]{
		Emission: hmm.EmissionTable[string, rune]{
			"A": {'x': 0.5, 'y': 0.5},
			"B": {'x': 0.5, 'y': 0.5},
		},
		Transition: hmm.TransitionTable[string]{
			{From: "A", To: "A"}: 0.5,
			{From: "A", To: "B"}: 0.5,
			{From: "B", To: "A"}: 0.5,
			{From: "B", To: "B"}: 0.5,
		},
	}
}

// repeat returns n copies of v.
func repeat[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}

	return out
}
