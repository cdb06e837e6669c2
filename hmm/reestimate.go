package hmm

import (
	"cmp"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Reestimate derives new emission and transition tables from one decoded
// path and the observations that produced it, by counting and normalizing.
//
// Steps:
//  1. emissionCount[s][o]       = #{t : path[t] = s, obs[t] = o}
//  2. transitionCount[(p, n)]   = #{t ≥ 1 : path[t-1] = p, path[t] = n}
//  3. incoming(s)               = Σ_p transitionCount[(p, s)]
//  4. Transition'[(p, n)]       = transitionCount[(p, n)] / incoming(n)
//  5. Emission'[s][o]           = emissionCount[s][o] / incoming(s)
//
// Step 5 uses the incoming-transition total by default. A state decoded at
// t=0 contributes one emission without an incoming transition, so its
// emission row can sum above 1. WithNormalizer(StateOccupancy) divides by
// the number of steps decoded as s instead.
//
// The returned tables are complete: every state × every emission symbol of
// m (plus any newly observed symbol), and every transition key of m plus
// every observed pair. Unseen combinations get probability 0. Start and
// Order are carried over unchanged; m is not mutated.
//
// Errors:
//   - ErrInvalidParameters: empty or unequal-length sequences, invalid model.
//   - ErrUnknownSymbol:     path names a state absent from m.
//   - ErrDegenerateModel:   some state is never entered by a transition
//     (zero normalizer); every such state is reported.
//
// Complexity: O(N + |S|·|E| + |T|).
func Reestimate[S cmp.Ordered, E comparable](path []S, observations []E, m Model[S, E], opts ...Option) (Model[S, E], error) {
	const method = "Reestimate"

	o, err := gatherOptions(opts)
	if err != nil {
		return Model[S, E]{}, fmt.Errorf("%s: %w", method, err)
	}
	if len(observations) == 0 {
		return Model[S, E]{}, hmmErrorf(method, ErrInvalidParameters, "observation sequence is empty")
	}
	if len(path) != len(observations) {
		return Model[S, E]{}, hmmErrorf(method, ErrInvalidParameters, "%d states for %d observations", len(path), len(observations))
	}
	work, states, err := m.prepare(method)
	if err != nil {
		return Model[S, E]{}, err
	}
	next, err := reestimate(method, path, observations, work, states, o.Normalizer)
	if err != nil {
		return Model[S, E]{}, err
	}
	next.Order = m.Order

	return next.Clone(), nil
}

// reestimate counts over a prepared model. The result shares work.Start.
func reestimate[S cmp.Ordered, E comparable](
	method string,
	path []S,
	observations []E,
	work Model[S, E],
	states []S,
	normalizer Normalizer,
) (Model[S, E], error) {
	index := make(map[S]int, len(states))
	for i, s := range states {
		index[s] = i
	}

	// Stage 1: zero-initialized counters over the full domain.
	emissionCount := make([]map[E]float64, len(states))
	for i, s := range states {
		emissionCount[i] = make(map[E]float64, len(work.Emission[s]))
	}
	for _, dist := range work.Emission {
		for e := range dist {
			for i := range emissionCount {
				emissionCount[i][e] = 0
			}
		}
	}
	transitionCount := make(map[Transition[S]]float64, len(work.Transition))
	for k := range work.Transition {
		transitionCount[k] = 0
	}
	occupancy := make([]float64, len(states))
	incoming := make([]float64, len(states))

	// Stage 2: count along the decoded path.
	for t, s := range path {
		i, ok := index[s]
		if !ok {
			return Model[S, E]{}, hmmErrorf(method, ErrUnknownSymbol, "decoded path names unknown state %v", s)
		}
		if _, seen := emissionCount[i][observations[t]]; !seen {
			for j := range emissionCount {
				emissionCount[j][observations[t]] = 0
			}
		}
		emissionCount[i][observations[t]]++
		occupancy[i]++
		if t > 0 {
			transitionCount[Transition[S]{From: path[t-1], To: s}]++
			incoming[i]++
		}
	}

	// Stage 3: every state needs a non-zero normalizer.
	var merr *multierror.Error
	for i, s := range states {
		if incoming[i] == 0 {
			merr = multierror.Append(merr, fmt.Errorf("%w: state %v is never entered by a transition", ErrDegenerateModel, s))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return Model[S, E]{}, fmt.Errorf("%s: %w", method, err)
	}

	// Stage 4: normalize.
	emission := make(EmissionTable[S, E], len(states))
	for i, s := range states {
		den := incoming[i]
		if normalizer == StateOccupancy {
			den = occupancy[i]
		}
		dist := make(map[E]float64, len(emissionCount[i]))
		for e, c := range emissionCount[i] {
			dist[e] = c / den
		}
		emission[s] = dist
	}
	transition := make(TransitionTable[S], len(transitionCount))
	for k, c := range transitionCount {
		transition[k] = c / incoming[index[k.To]]
	}

	return Model[S, E]{Emission: emission, Transition: transition, Start: work.Start, Order: work.Order}, nil
}
