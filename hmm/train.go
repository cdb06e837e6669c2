package hmm

import (
	"cmp"
	"fmt"
	"slices"
)

// Train runs Viterbi training: it alternates decode and re-estimate until the
// decoded path stops changing or the iteration cap is hit.
//
// Loop (states Running → Converged | IterationLimitReached):
//  1. Decode observations with the current tables.
//  2. If the path equals the previous iteration's path → Converged; the
//     current tables are returned (re-estimating would reproduce them).
//  3. Re-estimate; the new tables replace the current ones. Start is kept.
//  4. If MaxIterations decodes ran → IterationLimitReached.
//
// The first iteration never converges: there is no previous path.
//
// Options:
//   - WithMaxIterations(n):   cap, default DefaultMaxIterations.
//   - WithNormalizer(n):      emission denominator, see Reestimate.
//   - WithContext(ctx):       checked before every iteration.
//   - WithOnIteration(fn):    called after every decode.
//
// Errors:
//   - every error of Viterbi and Reestimate;
//   - ctx.Err() when the context is done;
//   - the hook's error, returned unwrapped.
//
// Complexity: O(iterations · N·S²).
func Train[S cmp.Ordered, E comparable](observations []E, m Model[S, E], opts ...Option) (TrainResult[S, E], error) {
	const method = "Train"

	o, err := gatherOptions(opts)
	if err != nil {
		return TrainResult[S, E]{}, fmt.Errorf("%s: %w", method, err)
	}
	if len(observations) == 0 {
		return TrainResult[S, E]{}, hmmErrorf(method, ErrInvalidParameters, "observation sequence is empty")
	}
	current, states, err := m.prepare(method)
	if err != nil {
		return TrainResult[S, E]{}, err
	}

	var previous []S
	for iteration := 1; ; iteration++ {
		if err = o.Ctx.Err(); err != nil {
			return TrainResult[S, E]{}, fmt.Errorf("%s: iteration %d: %w", method, iteration, err)
		}

		decoded, err := viterbi(method, observations, current, states)
		if err != nil {
			return TrainResult[S, E]{}, fmt.Errorf("iteration %d: %w", iteration, err)
		}

		changed := -1
		if previous != nil {
			changed = countChanged(previous, decoded.Path)
		}
		report := IterationReport{
			Iteration:      iteration,
			Changed:        changed,
			LogProbability: decoded.LogProbability,
			State:          Running,
		}
		if changed == 0 {
			report.State = Converged
		}
		if err = o.OnIteration(report); err != nil {
			return TrainResult[S, E]{}, err
		}
		if changed == 0 {
			return finish(m, current, decoded.Path, iteration, Converged), nil
		}

		next, err := reestimate(method, decoded.Path, observations, current, states, o.Normalizer)
		if err != nil {
			return TrainResult[S, E]{}, fmt.Errorf("iteration %d: %w", iteration, err)
		}
		current, previous = next, decoded.Path

		if iteration >= o.MaxIterations {
			return finish(m, current, decoded.Path, iteration, IterationLimitReached), nil
		}
	}
}

// finish packs the loop state; Start and Order come from the caller's model.
func finish[S cmp.Ordered, E comparable](in, current Model[S, E], path []S, iterations int, why Termination) TrainResult[S, E] {
	out := current.Clone()
	out.Start = in.Start
	out.Order = in.Order

	return TrainResult[S, E]{
		Model:       out.Clone(),
		Path:        slices.Clone(path),
		Iterations:  iterations,
		Termination: why,
	}
}

// countChanged counts positions where a and b differ; len(a) == len(b).
func countChanged[S comparable](a, b []S) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}
