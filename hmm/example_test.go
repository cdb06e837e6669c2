package hmm_test

import (
	"fmt"

	"github.com/katalvlaran/dmtk/hmm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleLikelihoodOf
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A casino switches between a fair die (F) and a loaded die (L) that shows
//	a six 3/8 of the time. How likely is a given switching pattern for the
//	observed rolls?
//
// Complexity: O(N)
func ExampleLikelihoodOf() {
	m := hmm.Model[string, int]{
		Emission: hmm.EmissionTable[string, int]{
			"F": {1: 1 / 6.0, 2: 1 / 6.0, 3: 1 / 6.0, 4: 1 / 6.0, 5: 1 / 6.0, 6: 1 / 6.0},
			"L": {1: 1 / 8.0, 2: 1 / 8.0, 3: 1 / 8.0, 4: 1 / 8.0, 5: 1 / 8.0, 6: 3 / 8.0},
		},
		Transition: hmm.TransitionTable[string]{
			{From: "F", To: "F"}: 0.9, {From: "F", To: "L"}: 0.1,
			{From: "L", To: "F"}: 0.1, {From: "L", To: "L"}: 0.9,
		},
	}
	path := []string{"F", "F", "F", "F", "F", "L", "L", "L", "L", "F", "F", "F", "F", "F", "F"}
	rolls := []int{1, 2, 1, 5, 6, 2, 1, 6, 2, 4, 6, 2, 3, 6, 4}

	p, err := hmm.LikelihoodOf(path, rolls, m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	lg, _ := hmm.LikelihoodOf(path, rolls, m, hmm.WithScale(hmm.Logarithmic))
	fmt.Printf("p=%.5e\nlog2(p)=%.4f\n", p, lg)
	// Output:
	// p=2.85087e-15
	// log2(p)=-48.3175
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDecode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A patient reports normal, cold, dizzy on three consecutive days; was
//	the patient healthy (H) or feverish (R) each day?
//
// Complexity: O(N·S²)
func ExampleDecode() {
	m := hmm.Model[string, string]{
		Emission: hmm.EmissionTable[string, string]{
			"H": {"normal": 0.5, "cold": 0.4, "dizzy": 0.1},
			"R": {"normal": 0.1, "cold": 0.3, "dizzy": 0.6},
		},
		Transition: hmm.TransitionTable[string]{
			{From: "H", To: "H"}: 0.7, {From: "H", To: "R"}: 0.3,
			{From: "R", To: "H"}: 0.4, {From: "R", To: "R"}: 0.6,
		},
		Start: hmm.StartTable[string]{"H": 0.6, "R": 0.4},
	}

	path, err := hmm.Decode([]string{"normal", "cold", "dizzy"}, m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(path)
	// Output:
	// [H H R]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleTrain
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Start from uninformative 50/50 switching and let Viterbi training fit
//	the tables to a sequence with a long streak of sixes.
//
// Complexity: O(iterations·N·S²)
func ExampleTrain() {
	m := hmm.Model[string, int]{
		Emission: hmm.EmissionTable[string, int]{
			"F": {1: 1 / 6.0, 2: 1 / 6.0, 3: 1 / 6.0, 4: 1 / 6.0, 5: 1 / 6.0, 6: 1 / 6.0},
			"L": {1: 1 / 8.0, 2: 1 / 8.0, 3: 1 / 8.0, 4: 1 / 8.0, 5: 1 / 8.0, 6: 3 / 8.0},
		},
		Transition: hmm.TransitionTable[string]{
			{From: "F", To: "F"}: 0.5, {From: "F", To: "L"}: 0.5,
			{From: "L", To: "F"}: 0.5, {From: "L", To: "L"}: 0.5,
		},
	}
	rolls := []int{1, 2, 3, 4, 5, 3, 4, 5, 1, 4, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 1, 1, 1, 1, 1, 1, 1, 1}

	res, err := hmm.Train(rolls, m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s after %d iterations\n", res.Termination, res.Iterations)
	fmt.Printf("P(L→L)=%.4f\n", res.Model.Transition[hmm.Transition[string]{From: "L", To: "L"}])
	// Output:
	// converged after 2 iterations
	// P(L→L)=0.9333
}
