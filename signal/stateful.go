package signal

import "encoding/json"

// stateful is the persisting explicit-state transformer. Each step feeds the
// current state to the step function and stores the returned next state.
type stateful[I, O, S any] struct {
	state S
	step  func(I, S) (O, S)
}

func (t *stateful[I, O, S]) Step(in I) O {
	out, next := t.step(in, t.state)
	t.state = next

	return out
}

// Snapshot exports the internal state as JSON bytes.
func (t *stateful[I, O, S]) Snapshot() ([]byte, error) {
	return json.Marshal(t.state)
}

// Restore replaces the internal state with the decoded snapshot.
func (t *stateful[I, O, S]) Restore(data []byte) error {
	var s S
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t.state = s

	return nil
}

// Stateful returns a persisting stateful transformer. Each step evaluates
// f(input, state) and emits the returned output; the returned next state
// becomes current for the following step.
//
// The state type S must round-trip through encoding/json for Snapshot and
// Restore to be faithful; transformers whose state must stay in-memory only
// should use StatefulTransient instead.
//
// Complexity: O(cost of f) per step.
func Stateful[I, O, S any](init S, f func(I, S) (O, S)) Transformer[I, O] {
	return &stateful[I, O, S]{state: init, step: f}
}

// statefulTransient has the same step semantics as stateful but deliberately
// does not implement Persistable: its state never enters a snapshot, and a
// restored pipeline sees it at its initial state.
type statefulTransient[I, O, S any] struct {
	state S
	step  func(I, S) (O, S)
}

func (t *statefulTransient[I, O, S]) Step(in I) O {
	out, next := t.step(in, t.state)
	t.state = next

	return out
}

// StatefulTransient returns a stateful transformer whose state is transient:
// identical step semantics to Stateful, but the state is excluded from
// snapshot/restore.
func StatefulTransient[I, O, S any](init S, f func(I, S) (O, S)) Transformer[I, O] {
	return &statefulTransient[I, O, S]{state: init, step: f}
}

// Accum returns a persisting accumulator: each step evaluates
// f(input, state), stores the result as the new state, and emits it as the
// output.
//
// Complexity: O(cost of f) per step.
func Accum[I, S any](init S, f func(I, S) S) Transformer[I, S] {
	return Stateful(init, func(in I, s S) (S, S) {
		next := f(in, s)

		return next, next
	})
}

// AccumTransient is the non-persisting variant of Accum.
func AccumTransient[I, S any](init S, f func(I, S) S) Transformer[I, S] {
	return StatefulTransient(init, func(in I, s S) (S, S) {
		next := f(in, s)

		return next, next
	})
}
