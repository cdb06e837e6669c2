// SPDX-License-Identifier: MIT
package hmm

import (
	"cmp"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Decode returns the most probable state path for observations under m.
// It is Viterbi without the score; see Viterbi for the algorithm.
func Decode[S cmp.Ordered, E comparable](observations []E, m Model[S, E], opts ...Option) ([]S, error) {
	d, err := Viterbi(observations, m, opts...)
	if err != nil {
		return nil, err
	}

	return d.Path, nil
}

// Viterbi finds the most probable hidden-state path by dynamic programming.
//
// The trellis is always computed in the log2 domain, whatever scale the
// caller uses elsewhere: N successive products underflow for any
// non-trivial sequence length.
//
// Algorithm Outline:
//  1. Let S = |states| (in tie-break order), N = len(observations).
//     Allocate score (S×N) and back (S×N).
//  2. Initialize: score[s][0] = log Start[s] + log Emission[s][o₀].
//  3. For t = 1..N-1, for each s:
//     cand[p]     = score[p][t-1] + log Transition[p→s]
//     back[s][t]  = first p attaining max(cand)
//     score[s][t] = cand[back[s][t]] + log Emission[s][oₜ]
//  4. Terminate on the first s attaining max score[s][N-1].
//  5. Follow back from that state to t=0.
//
// The winning predecessor is recorded during the forward pass; nothing is
// re-derived by comparing floating-point scores while backtracking.
//
// Ties:
//
//	The FIRST index in tie-break order wins (Model.Order, or ascending
//	state order when Order is nil). Results are bit-reproducible for a
//	fixed order.
//
// Errors:
//   - ErrInvalidParameters: empty observations, bad option or invalid model.
//   - ErrUnknownSymbol:     an observation missing from some state's
//     emission distribution, or a state pair without a transition entry.
//   - ErrDegenerateModel:   every path has probability zero.
//
// Complexity:
//
//	Time   = O(N·S²)
//	Memory = O(N·S)
func Viterbi[S cmp.Ordered, E comparable](observations []E, m Model[S, E], opts ...Option) (Decoding[S], error) {
	const method = "Viterbi"

	if _, err := gatherOptions(opts); err != nil {
		return Decoding[S]{}, fmt.Errorf("%s: %w", method, err)
	}
	if len(observations) == 0 {
		return Decoding[S]{}, hmmErrorf(method, ErrInvalidParameters, "observation sequence is empty")
	}
	work, states, err := m.prepare(method)
	if err != nil {
		return Decoding[S]{}, err
	}

	return viterbi(method, observations, work, states)
}

// lattice is the index-addressed log2 view of a prepared model.
type lattice[S cmp.Ordered, E comparable] struct {
	states   []S
	start    []float64
	trans    *mat.Dense // trans.At(from, to)
	emission []map[E]float64
}

func newLattice[S cmp.Ordered, E comparable](method string, work Model[S, E], states []S) (*lattice[S, E], error) {
	n := len(states)
	lt := &lattice[S, E]{
		states:   states,
		start:    make([]float64, n),
		trans:    mat.NewDense(n, n, nil),
		emission: make([]map[E]float64, n),
	}
	for i, s := range states {
		lt.start[i] = math.Log2(work.Start[s])

		dist := make(map[E]float64, len(work.Emission[s]))
		for e, p := range work.Emission[s] {
			dist[e] = math.Log2(p)
		}
		lt.emission[i] = dist

		for j, to := range states {
			p, ok := work.Transition[Transition[S]{From: s, To: to}]
			if !ok {
				return nil, hmmErrorf(method, ErrUnknownSymbol, "no transition %v→%v", s, to)
			}
			lt.trans.Set(i, j, math.Log2(p))
		}
	}

	return lt, nil
}

func (lt *lattice[S, E]) emit(method string, i int, e E) (float64, error) {
	p, ok := lt.emission[i][e]
	if !ok {
		return 0, hmmErrorf(method, ErrUnknownSymbol, "state %v has no emission %v", lt.states[i], e)
	}

	return p, nil
}

// viterbi runs the trellis over an already prepared model.
func viterbi[S cmp.Ordered, E comparable](method string, observations []E, work Model[S, E], states []S) (Decoding[S], error) {
	lt, err := newLattice(method, work, states)
	if err != nil {
		return Decoding[S]{}, err
	}
	nS, n := len(states), len(observations)

	score := mat.NewDense(nS, n, nil)
	back := make([][]int, nS)
	for i := range back {
		back[i] = make([]int, n)
	}

	// Initialization (t = 0).
	for i := 0; i < nS; i++ {
		e, err := lt.emit(method, i, observations[0])
		if err != nil {
			return Decoding[S]{}, err
		}
		score.Set(i, 0, lt.start[i]+e)
	}

	// Recurrence.
	cand := make([]float64, nS)
	for t := 1; t < n; t++ {
		for i := 0; i < nS; i++ {
			for p := 0; p < nS; p++ {
				cand[p] = score.At(p, t-1) + lt.trans.At(p, i)
			}
			best := floats.MaxIdx(cand) // first index on ties
			e, err := lt.emit(method, i, observations[t])
			if err != nil {
				return Decoding[S]{}, err
			}
			score.Set(i, t, cand[best]+e)
			back[i][t] = best
		}
	}

	// Termination.
	final := mat.Col(nil, n-1, score)
	last := floats.MaxIdx(final)
	if math.IsInf(final[last], -1) {
		return Decoding[S]{}, hmmErrorf(method, ErrDegenerateModel, "no state path has non-zero probability")
	}

	// Backtracking.
	path := make([]S, n)
	k := last
	for t := n - 1; t >= 0; t-- {
		path[t] = states[k]
		k = back[k][t]
	}

	return Decoding[S]{Path: path, LogProbability: final[last]}, nil
}
