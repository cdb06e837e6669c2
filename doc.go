// Package dmtk is a toolkit for discrete Hidden Markov Models: score a
// hidden state path, recover the most probable one, and fit the model
// tables to an observation sequence.
//
// 🚀 What is in the box?
//
//	• hmm/:      the engine: tables, validation, probability scales,
//	             likelihood, Viterbi decoding, re-estimation, training
//	• dataset/:  loading observation sequences from CSV/TSV columns
//	• cmd/dmtk:  command-line front end (likelihood, decode, train)
//
// ✨ Why dmtk?
//
//   - Generic – any ordered state type, any comparable symbol type
//   - Underflow-free – decoding runs in log2 space
//   - Deterministic – ties resolve in a caller-chosen state order
//   - Side-effect free – input tables are never mutated
//
// Quick ASCII example (the occasionally dishonest casino):
//
//	      0.9           0.9
//	     ┌───┐         ┌───┐
//	     ▼   │  0.1    ▼   │
//	    ( F )───────▶( L )
//	      ▲    0.1     │
//	      └────────────┘
//
//	F emits 1..6 uniformly; L shows a six 3/8 of the time.
//
//	go install github.com/katalvlaran/dmtk/cmd/dmtk@latest
package dmtk
