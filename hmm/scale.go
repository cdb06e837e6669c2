package hmm

import (
	"cmp"
	"fmt"
	"math"
)

// Scale selects the probability domain of an evaluation.
//
//   - Linear:      probabilities in [0,1]; combining multiplies.
//   - Logarithmic: log2 probabilities; combining adds. Long sequences do not
//     underflow, and scores compare as log-probabilities.
type Scale int

const (
	// Linear evaluates in the natural probability domain.
	Linear Scale = iota

	// Logarithmic evaluates in the additive log2 domain.
	Logarithmic
)

// String implements fmt.Stringer.
func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	default:
		return "unknown"
	}
}

// ParseScale maps "linear" / "log" (also "logarithmic", "log2") to a Scale.
func ParseScale(name string) (Scale, error) {
	switch name {
	case "linear", "lin":
		return Linear, nil
	case "log", "log2", "logarithmic":
		return Logarithmic, nil
	default:
		return 0, fmt.Errorf("%w: unknown scale %q", ErrInvalidParameters, name)
	}
}

// Arithmetic is the strategy behind a Scale.
//
//   - Transform maps a table probability into the scale's domain; it is
//     applied once per table entry by Rescale.
//   - Combine is the scale's "multiplication" of two transformed values.
//   - ValueOf returns the comparable value of a transformed probability.
type Arithmetic interface {
	Transform(p float64) float64
	Combine(a, b float64) float64
	ValueOf(p float64) float64
}

// Arithmetic returns the strategy implementing s. Unknown scales fall back
// to Linear; WithScale and ParseScale reject them before they get here.
func (s Scale) Arithmetic() Arithmetic {
	if s == Logarithmic {
		return logArithmetic{}
	}

	return linearArithmetic{}
}

type linearArithmetic struct{}

func (linearArithmetic) Transform(p float64) float64  { return p }
func (linearArithmetic) Combine(a, b float64) float64 { return a * b }
func (linearArithmetic) ValueOf(p float64) float64    { return p }

type logArithmetic struct{}

// Transform returns log2(p); log2(0) is -Inf, which Combine propagates.
func (logArithmetic) Transform(p float64) float64  { return math.Log2(p) }
func (logArithmetic) Combine(a, b float64) float64 { return a + b }
func (logArithmetic) ValueOf(p float64) float64    { return p }

// Rescale returns a copy of m whose every probability went through the
// Transform of s. A nil Start is synthesized (uniform) before transforming.
// m itself is left untouched.
//
// Complexity: O(|S|·|E| + |T|).
func (m Model[S, E]) Rescale(s Scale) (Model[S, E], error) {
	if s != Linear && s != Logarithmic {
		return Model[S, E]{}, fmt.Errorf("Rescale: %w: unknown scale %d", ErrInvalidParameters, int(s))
	}

	return transformed(m.Clone().withStart(), s.Arithmetic()), nil
}

// transformed rewrites the tables of a private copy in place.
func transformed[S cmp.Ordered, E comparable](work Model[S, E], ar Arithmetic) Model[S, E] {
	for _, dist := range work.Emission {
		for e, p := range dist {
			dist[e] = ar.Transform(p)
		}
	}
	for k, p := range work.Transition {
		work.Transition[k] = ar.Transform(p)
	}
	for s, p := range work.Start {
		work.Start[s] = ar.Transform(p)
	}

	return work
}
