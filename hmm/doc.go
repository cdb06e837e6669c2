// Package hmm implements inference and Viterbi training for discrete
// Hidden Markov Models over arbitrary state and emission alphabets.
//
// 🚀 What is an HMM?
//
//	A Markov chain of hidden states, each step emitting an observable
//	symbol. Given the emission, transition and start probabilities, this
//	package answers:
//	  • how likely is a given state path for a given observation sequence
//	  • which state path most probably produced the observations (Viterbi)
//	  • how should the tables change to better explain the observations
//
// ✨ Key features:
//   - generic tables: any ordered state type, any comparable emission type
//   - two interchangeable probability scales (Linear, Logarithmic/log2)
//   - Viterbi decoding, always in the log2 domain (no underflow)
//   - deterministic first-match tie-breaking in a caller-controlled order
//   - Viterbi training with an explicit termination reason
//   - caller tables are never mutated; every call works on private copies
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dmtk/hmm"
//
//	m := hmm.Model[string, int]{
//	  Emission:   emission,   // hmm.EmissionTable[string, int]
//	  Transition: transition, // hmm.TransitionTable[string]
//	  // Start: nil → uniform over the states
//	}
//
//	p, err := hmm.LikelihoodOf(path, rolls, m, hmm.WithScale(hmm.Logarithmic))
//	best, err := hmm.Decode(rolls, m)
//	res, err := hmm.Train(rolls, m, hmm.WithMaxIterations(50))
//	if res.Termination == hmm.IterationLimitReached { /* not converged */ }
//
// Errors are sentinels (ErrInvalidParameters, ErrUnknownSymbol,
// ErrDegenerateModel); match them with errors.Is.
//
// Performance:
//
//   - Decode: O(N·S²) time, O(N·S) memory
//   - Train:  O(iterations·N·S²)
//
// See example_test.go for runnable walkthroughs.
package hmm
