package hmm

import (
	"cmp"
	"fmt"
)

// LikelihoodOf returns the probability that the state path states produced
// observations under m, in the scale chosen by WithScale (Linear by default).
//
// Algorithm:
//  1. score = ValueOf(Start[s₀]) ⊗ Emission[s₀][o₀]
//  2. For t = 1..N-1:
//     score = score ⊗ (Emission[sₜ][oₜ] ⊗ Transition[(sₜ₋₁, sₜ)])
//
// where ⊗ is the scale's Combine. Under Logarithmic the result is a log2
// probability.
//
// Errors:
//   - ErrInvalidParameters: empty or unequal-length sequences, bad option,
//     or a model that fails Validate.
//   - ErrUnknownSymbol:     a state, emission or transition along the path
//     is missing from the tables.
//
// Complexity: O(N) lookups plus O(|S|·|E| + |T|) for the private table copy.
func LikelihoodOf[S cmp.Ordered, E comparable](states []S, observations []E, m Model[S, E], opts ...Option) (float64, error) {
	const method = "LikelihoodOf"

	o, err := gatherOptions(opts)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	if len(observations) == 0 {
		return 0, hmmErrorf(method, ErrInvalidParameters, "observation sequence is empty")
	}
	if len(states) != len(observations) {
		return 0, hmmErrorf(method, ErrInvalidParameters, "%d states for %d observations", len(states), len(observations))
	}

	work, _, err := m.prepare(method)
	if err != nil {
		return 0, err
	}
	ar := o.Scale.Arithmetic()
	work = transformed(work, ar)

	start, ok := work.Start[states[0]]
	if !ok {
		return 0, hmmErrorf(method, ErrUnknownSymbol, "no start probability for state %v", states[0])
	}
	emit, err := emissionOf(method, work.Emission, states[0], observations[0])
	if err != nil {
		return 0, err
	}
	score := ar.Combine(ar.ValueOf(start), ar.ValueOf(emit))

	for t := 1; t < len(observations); t++ {
		emit, err = emissionOf(method, work.Emission, states[t], observations[t])
		if err != nil {
			return 0, err
		}
		key := Transition[S]{From: states[t-1], To: states[t]}
		trans, ok := work.Transition[key]
		if !ok {
			return 0, hmmErrorf(method, ErrUnknownSymbol, "no transition %v→%v", key.From, key.To)
		}
		score = ar.Combine(score, ar.Combine(ar.ValueOf(emit), ar.ValueOf(trans)))
	}

	return score, nil
}

// emissionOf looks up Emission[s][e] and fails on either missing level.
func emissionOf[S cmp.Ordered, E comparable](method string, emission EmissionTable[S, E], s S, e E) (float64, error) {
	dist, ok := emission[s]
	if !ok {
		return 0, hmmErrorf(method, ErrUnknownSymbol, "unknown state %v", s)
	}
	p, ok := dist[e]
	if !ok {
		return 0, hmmErrorf(method, ErrUnknownSymbol, "state %v has no emission %v", s, e)
	}

	return p, nil
}
