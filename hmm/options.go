// Package hmm: functional configuration shared by the likelihood evaluator,
// the decoder, the re-estimator and the training loop.
package hmm

import (
	"context"
	"fmt"
)

// DefaultMaxIterations caps the training loop when WithMaxIterations is not given.
const DefaultMaxIterations = 100

// Normalizer selects the denominator used for re-estimated emission probabilities.
type Normalizer int

const (
	// IncomingTransitions divides emission counts of state s by the number of
	// decoded transitions entering s. A state occupying t=0 contributes an
	// emission but no incoming transition, so its emissions may sum above 1.
	IncomingTransitions Normalizer = iota

	// StateOccupancy divides emission counts of state s by the number of time
	// steps decoded as s, which always yields a proper distribution.
	StateOccupancy
)

// String implements fmt.Stringer.
func (n Normalizer) String() string {
	switch n {
	case IncomingTransitions:
		return "incoming"
	case StateOccupancy:
		return "occupancy"
	default:
		return "unknown"
	}
}

// ParseNormalizer maps "incoming" / "occupancy" to a Normalizer.
func ParseNormalizer(name string) (Normalizer, error) {
	switch name {
	case "incoming":
		return IncomingTransitions, nil
	case "occupancy":
		return StateOccupancy, nil
	default:
		return 0, fmt.Errorf("%w: unknown normalizer %q", ErrInvalidParameters, name)
	}
}

// Option configures an hmm operation. Invalid values are recorded and
// surfaced as ErrInvalidParameters when the operation runs.
type Option func(*Options)

// Options holds the resolved configuration of a call.
type Options struct {
	// Ctx is checked between training iterations.
	Ctx context.Context

	// Scale selects the arithmetic of LikelihoodOf. Decoding always runs in
	// the logarithmic scale.
	Scale Scale

	// MaxIterations bounds Train. Must be > 0.
	MaxIterations int

	// Normalizer selects the emission denominator of Reestimate.
	Normalizer Normalizer

	// OnIteration runs after every decode of the training loop. A non-nil
	// error aborts training and is returned as is.
	OnIteration func(IterationReport) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns:
//   - Context.Background()
//   - Linear scale
//   - DefaultMaxIterations
//   - IncomingTransitions normalizer
//   - no-op OnIteration hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Scale:         Linear,
		MaxIterations: DefaultMaxIterations,
		Normalizer:    IncomingTransitions,
		OnIteration:   func(IterationReport) error { return nil },
	}
}

// WithContext sets a custom context for cancellation of Train.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithScale selects Linear or Logarithmic arithmetic for LikelihoodOf.
func WithScale(s Scale) Option {
	return func(o *Options) {
		switch s {
		case Linear, Logarithmic:
			o.Scale = s
		default:
			o.err = fmt.Errorf("%w: unknown scale %d", ErrInvalidParameters, int(s))
		}
	}
}

// WithMaxIterations bounds the number of training iterations.
//
//	n > 0:  limit to n iterations
//	n <= 0: invalid option → ErrInvalidParameters
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrInvalidParameters, n)

			return
		}
		o.MaxIterations = n
	}
}

// WithNormalizer selects the emission denominator used by Reestimate.
func WithNormalizer(n Normalizer) Option {
	return func(o *Options) {
		switch n {
		case IncomingTransitions, StateOccupancy:
			o.Normalizer = n
		default:
			o.err = fmt.Errorf("%w: unknown normalizer %d", ErrInvalidParameters, int(n))
		}
	}
}

// WithOnIteration registers a hook called after each training decode.
func WithOnIteration(fn func(IterationReport) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
