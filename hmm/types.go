package hmm

import "cmp"

// EmissionTable maps a state to its distribution over emitted symbols,
// i.e. P(emission | state).
type EmissionTable[S cmp.Ordered, E comparable] map[S]map[E]float64

// Transition is an ordered (From, To) pair of states.
type Transition[S cmp.Ordered] struct {
	From S
	To   S
}

// TransitionTable maps an ordered pair of states to P(To | From).
type TransitionTable[S cmp.Ordered] map[Transition[S]]float64

// StartTable is the initial-state distribution P(state at t=0).
type StartTable[S cmp.Ordered] map[S]float64

// Decoding is the outcome of a Viterbi pass.
//   - Path:           most probable state sequence, len(Path) == len(observations).
//   - LogProbability: log2 score of Path (joint with the observations).
type Decoding[S cmp.Ordered] struct {
	Path           []S
	LogProbability float64
}

// Termination reports why the training loop stopped.
type Termination int

const (
	// Running is the state of a loop that has not terminated yet. It is only
	// observable from inside an iteration hook.
	Running Termination = iota

	// Converged means two consecutive iterations decoded identical paths.
	Converged

	// IterationLimitReached means MaxIterations iterations ran without
	// convergence; the returned tables are the latest estimates.
	IterationLimitReached
)

// String implements fmt.Stringer.
func (t Termination) String() string {
	switch t {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case IterationLimitReached:
		return "iteration limit reached"
	default:
		return "unknown"
	}
}

// IterationReport is handed to the OnIteration hook after every decode.
//
// Fields:
//   - Iteration:      1-based iteration number.
//   - Changed:        positions whose decoded state differs from the
//     previous iteration; -1 on the first iteration.
//   - LogProbability: log2 score of the decoded path.
//   - State:          Running, or Converged on the terminating iteration.
type IterationReport struct {
	Iteration      int
	Changed        int
	LogProbability float64
	State          Termination
}

// TrainResult holds the outcome of Train.
type TrainResult[S cmp.Ordered, E comparable] struct {
	// Model carries the tables current at loop termination. Start and Order
	// are those of the input model.
	Model Model[S, E]

	// Path is the last decoded state sequence.
	Path []S

	// Iterations is the number of decode passes performed.
	Iterations int

	// Termination is Converged or IterationLimitReached.
	Termination Termination
}
