// SPDX-License-Identifier: MIT
// Package hmm: sentinel error set.
//
// Every public operation returns one of the sentinels below (possibly wrapped
// with call-site context via %w). Callers MUST branch with errors.Is; the
// message text is not part of the contract.
//
// ERROR CLASSES:
//   - ErrInvalidParameters: shape/size problems detected before any work.
//   - ErrUnknownSymbol:     a lookup hit a state/emission/transition the
//     tables do not define. Never defaulted to probability 0.
//   - ErrDegenerateModel:   a zero normalizer during re-estimation, or a
//     model under which no state path has non-zero probability.
//
// Termination of the training loop at the iteration cap is NOT an error;
// see Termination.

package hmm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters indicates empty tables, inconsistent state counts,
	// out-of-range probabilities, mismatched sequence lengths or a bad option.
	ErrInvalidParameters = errors.New("hmm: invalid parameters")

	// ErrUnknownSymbol indicates a state, emission or transition lookup that
	// is absent from the supplied tables.
	ErrUnknownSymbol = errors.New("hmm: unknown symbol")

	// ErrDegenerateModel indicates a division by a zero count while
	// re-estimating, or that every state path has zero probability.
	ErrDegenerateModel = errors.New("hmm: degenerate model")
)

// hmmErrorf attaches method context to a sentinel: "<method>: <sentinel>: <detail>".
func hmmErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
