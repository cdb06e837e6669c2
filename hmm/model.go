// SPDX-License-Identifier: MIT
// Package hmm: the probability model value object and its validation.
//
// Model is a plain value: every operation works on a private deep copy
// (Clone), so caller-owned maps are never mutated, not even by the
// log-domain transform of Rescale.
package hmm

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Model bundles the emission, transition and start tables of a discrete HMM.
//
// Fields:
//   - Emission:   required, non-empty; its keys form the state alphabet.
//   - Transition: required, non-empty; keys must name known states.
//   - Start:      optional; nil synthesizes the uniform 1/|states|.
//   - Order:      optional; fixes the state enumeration used for first-match
//     arg-max tie-breaking. nil means ascending order of the states.
//
// Probabilities are not required to sum to 1; callers are expected to supply
// proper distributions.
type Model[S cmp.Ordered, E comparable] struct {
	Emission   EmissionTable[S, E]
	Transition TransitionTable[S]
	Start      StartTable[S]
	Order      []S
}

// Clone returns a deep copy of m. Nil tables stay nil.
func (m Model[S, E]) Clone() Model[S, E] {
	var c Model[S, E]
	if m.Emission != nil {
		c.Emission = make(EmissionTable[S, E], len(m.Emission))
		for s, dist := range m.Emission {
			c.Emission[s] = maps.Clone(dist)
		}
	}
	c.Transition = maps.Clone(m.Transition)
	c.Start = maps.Clone(m.Start)
	c.Order = slices.Clone(m.Order)

	return c
}

// States returns the state alphabet in tie-break order: Order when set,
// otherwise the emission keys sorted ascending.
func (m Model[S, E]) States() []S {
	if m.Order != nil {
		return slices.Clone(m.Order)
	}

	return slices.Sorted(maps.Keys(m.Emission))
}

// Validate checks the table invariants and reports every violation found.
// Each reported violation wraps ErrInvalidParameters.
//
// Invariants:
//   - Emission is non-empty and every state has a non-empty distribution.
//   - Transition is non-empty and names only known states.
//   - Start (after uniform synthesis) is non-empty, has exactly one entry per
//     state and names only known states.
//   - Order, when set, is a permutation of the states.
//   - Every probability is finite and non-negative.
//
// Complexity: O(|S|·|E| + |S|²) plus sorting of the state alphabet.
func (m Model[S, E]) Validate() error {
	return m.withStart().validate()
}

// withStart returns m with a uniform Start synthesized when Start is nil.
// The receiver's maps are shared; call on a clone when mutating further.
func (m Model[S, E]) withStart() Model[S, E] {
	if m.Start != nil {
		return m
	}
	m.Start = make(StartTable[S], len(m.Emission))
	if len(m.Emission) == 0 {
		return m
	}
	p := 1.0 / float64(len(m.Emission))
	for s := range m.Emission {
		m.Start[s] = p
	}

	return m
}

func (m Model[S, E]) validate() error {
	var merr *multierror.Error

	// Stage 1: emission table and the state alphabet.
	if len(m.Emission) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: emission table is empty", ErrInvalidParameters))
	}
	states := slices.Sorted(maps.Keys(m.Emission))
	for _, s := range states {
		dist := m.Emission[s]
		if len(dist) == 0 {
			merr = multierror.Append(merr, fmt.Errorf("%w: state %v has an empty emission distribution", ErrInvalidParameters, s))
		}
		for e, p := range dist {
			if !validProbability(p) {
				merr = multierror.Append(merr, fmt.Errorf("%w: emission[%v][%v] = %v", ErrInvalidParameters, s, e, p))
			}
		}
	}

	// Stage 2: transition table.
	if len(m.Transition) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: transition table is empty", ErrInvalidParameters))
	}
	for _, k := range sortedTransitions(m.Transition) {
		if _, ok := m.Emission[k.From]; !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: transition from unknown state %v", ErrInvalidParameters, k.From))
		}
		if _, ok := m.Emission[k.To]; !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: transition to unknown state %v", ErrInvalidParameters, k.To))
		}
		if p := m.Transition[k]; !validProbability(p) {
			merr = multierror.Append(merr, fmt.Errorf("%w: transition[%v→%v] = %v", ErrInvalidParameters, k.From, k.To, p))
		}
	}

	// Stage 3: start table against the state count.
	if len(m.Start) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: start table is empty", ErrInvalidParameters))
	}
	if len(m.Start) != len(m.Emission) {
		merr = multierror.Append(merr, fmt.Errorf("%w: start table has %d entries for %d states",
			ErrInvalidParameters, len(m.Start), len(m.Emission)))
	}
	for _, s := range slices.Sorted(maps.Keys(m.Start)) {
		if _, ok := m.Emission[s]; !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: start probability for unknown state %v", ErrInvalidParameters, s))
		}
		if p := m.Start[s]; !validProbability(p) {
			merr = multierror.Append(merr, fmt.Errorf("%w: start[%v] = %v", ErrInvalidParameters, s, p))
		}
	}

	// Stage 4: explicit tie-break order.
	if m.Order != nil {
		if err := validateOrder(m.Order, m.Emission); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}

// prepare returns a validated private copy of m with Start synthesized,
// together with its states in tie-break order.
func (m Model[S, E]) prepare(method string) (Model[S, E], []S, error) {
	work := m.Clone().withStart()
	if err := work.validate(); err != nil {
		return Model[S, E]{}, nil, fmt.Errorf("%s: %w", method, err)
	}

	return work, work.States(), nil
}

func validateOrder[S cmp.Ordered, E comparable](order []S, emission EmissionTable[S, E]) error {
	if len(order) != len(emission) {
		return fmt.Errorf("%w: order lists %d states, emission table has %d", ErrInvalidParameters, len(order), len(emission))
	}
	seen := make(map[S]struct{}, len(order))
	for _, s := range order {
		if _, ok := emission[s]; !ok {
			return fmt.Errorf("%w: order names unknown state %v", ErrInvalidParameters, s)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: order repeats state %v", ErrInvalidParameters, s)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// validProbability rejects NaN, ±Inf and negative values. Values above 1
// are accepted: re-estimated emissions may exceed 1 under IncomingTransitions.
func validProbability(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}

// sortedTransitions returns the keys of t ordered by (From, To).
func sortedTransitions[S cmp.Ordered](t TransitionTable[S]) []Transition[S] {
	keys := slices.Collect(maps.Keys(t))
	slices.SortFunc(keys, func(a, b Transition[S]) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})

	return keys
}
