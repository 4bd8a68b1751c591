package signal

// Transformer is a discrete-time state machine: each Step call consumes one
// input, produces one output, and advances the transformer by exactly one
// logical step. A transformer owns its internal state exclusively; callers
// advance it only through Step and never share one instance between
// pipelines.
//
// Stateless transformers (Const, Pure) may be stepped any number of times
// with identical behavior; stateful ones evolve deterministically from their
// construction-time initial state.
type Transformer[I, O any] interface {
	// Step advances the transformer by one step with the given input and
	// returns this step's output.
	Step(in I) O
}

// constant ignores its input and always emits the same value.
type constant[I, O any] struct {
	v O
}

func (t *constant[I, O]) Step(I) O { return t.v }

// Const returns a stateless transformer that ignores its input and outputs v
// on every step.
//
// Complexity: O(1) per step.
func Const[I, O any](v O) Transformer[I, O] {
	return &constant[I, O]{v: v}
}

// pure lifts a plain function into a transformer.
type pure[I, O any] struct {
	f func(I) O
}

func (t *pure[I, O]) Step(in I) O { return t.f(in) }

// Pure returns a stateless transformer that outputs f(input) on every step.
//
// Complexity: O(cost of f) per step.
func Pure[I, O any](f func(I) O) Transformer[I, O] {
	return &pure[I, O]{f: f}
}
