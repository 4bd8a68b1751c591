package interval

import "github.com/katalvlaran/sigwire/signal"

// orElse steps both operands every step and keeps the first On result.
type orElse[I, T any] struct {
	a, b signal.Transformer[I, Value[T]]
}

func (c *orElse[I, T]) Step(in I) Value[T] {
	av := c.a.Step(in)
	bv := c.b.Step(in) // b advances even when a's result wins
	if av.IsOn() {
		return av
	}

	return bv
}

func (c *orElse[I, T]) Snapshot() ([]byte, error) { return signal.SnapshotParts(c.a, c.b) }
func (c *orElse[I, T]) Restore(data []byte) error { return signal.RestoreParts(data, c.a, c.b) }

// OrElse is binary optional choice: every step advances both a and b, in
// that order, and yields a's result if On, else b's result (which may itself
// be Off). Operand order fixes effect order, not just preference.
func OrElse[I, T any](a, b signal.Transformer[I, Value[T]]) signal.Transformer[I, Value[T]] {
	return &orElse[I, T]{a: a, b: b}
}

// fallback steps an interval operand and a plain operand every step.
type fallback[I, T any] struct {
	a signal.Transformer[I, Value[T]]
	b signal.Transformer[I, T]
}

func (c *fallback[I, T]) Step(in I) T {
	av := c.a.Step(in)
	bv := c.b.Step(in) // the default advances even on a's On steps
	if v, ok := av.Get(); ok {
		return v
	}

	return bv
}

func (c *fallback[I, T]) Snapshot() ([]byte, error) { return signal.SnapshotParts(c.a, c.b) }
func (c *fallback[I, T]) Restore(data []byte) error { return signal.RestoreParts(data, c.a, c.b) }

// Fallback is default-fallback choice: every step advances both operands, a
// first, and yields a's payload if On, else b's output. The result is a
// plain (always-present) stream. Chains nest to the right:
// Fallback(a, Fallback(b, c)) lets c serve as the ultimate default.
func Fallback[I, T any](a signal.Transformer[I, Value[T]], b signal.Transformer[I, T]) signal.Transformer[I, T] {
	return &fallback[I, T]{a: a, b: b}
}

// ChooseInterval is list choice: every step advances every transformer in
// ts, in list order, and yields the first On result, or Off if none. It is
// the right fold of OrElse over ts with AlwaysOff as the base case.
func ChooseInterval[I, T any](ts ...signal.Transformer[I, Value[T]]) signal.Transformer[I, Value[T]] {
	out := AlwaysOff[I, T]()
	for i := len(ts) - 1; i >= 0; i-- {
		out = OrElse(ts[i], out)
	}

	return out
}

// Choose is list choice with a guaranteed default: the right fold of
// Fallback over ts with def as the base case. Every operand, def included,
// advances every step; the result is the first On payload in list order, or
// def's output.
func Choose[I, T any](def signal.Transformer[I, T], ts ...signal.Transformer[I, Value[T]]) signal.Transformer[I, T] {
	out := def
	for i := len(ts) - 1; i >= 0; i-- {
		out = Fallback(ts[i], out)
	}

	return out
}

// during gates a plain operand on the incoming interval.
type during[A, B any] struct {
	f signal.Transformer[A, B]
}

func (c *during[A, B]) Step(in Value[A]) Value[B] {
	a, ok := in.Get()
	if !ok {
		// f is not stepped: its state is frozen for this step.
		return Off[B]()
	}

	return On(c.f.Step(a))
}

func (c *during[A, B]) Snapshot() ([]byte, error) { return signal.SnapshotParts(c.f) }
func (c *during[A, B]) Restore(data []byte) error { return signal.RestoreParts(data, c.f) }

// During lifts a plain transformer into the interval world by gating it:
// On(a) steps f with a and yields On(f's output); Off does not step f at
// all, freezing f's state and skipping its effects for that step. During is
// the only combinator in the algebra that pauses an operand rather than
// discarding its result.
func During[A, B any](f signal.Transformer[A, B]) signal.Transformer[Value[A], Value[B]] {
	return &during[A, B]{f: f}
}

// duringInterval gates an interval operand, flattening the nesting.
type duringInterval[A, B any] struct {
	f signal.Transformer[A, Value[B]]
}

func (c *duringInterval[A, B]) Step(in Value[A]) Value[B] {
	a, ok := in.Get()
	if !ok {
		return Off[B]()
	}

	return c.f.Step(a)
}

func (c *duringInterval[A, B]) Snapshot() ([]byte, error) { return signal.SnapshotParts(c.f) }
func (c *duringInterval[A, B]) Restore(data []byte) error { return signal.RestoreParts(data, c.f) }

// DuringInterval is During for an interval-producing operand, with the
// nested optionality flattened: On(a) steps f and yields f's result
// directly (On stays On, Off stays Off); Off skips f's step and yields Off.
func DuringInterval[A, B any](f signal.Transformer[A, Value[B]]) signal.Transformer[Value[A], Value[B]] {
	return &duringInterval[A, B]{f: f}
}

// comp short-circuits f on g's Off steps.
type comp[A, B, C any] struct {
	g signal.Transformer[A, Value[B]]
	f signal.Transformer[B, Value[C]]
}

func (c *comp[A, B, C]) Step(in A) Value[C] {
	b, ok := c.g.Step(in).Get()
	if !ok {
		// f is not stepped this step.
		return Off[C]()
	}

	return c.f.Step(b)
}

func (c *comp[A, B, C]) Snapshot() ([]byte, error) { return signal.SnapshotParts(c.g, c.f) }
func (c *comp[A, B, C]) Restore(data []byte) error { return signal.RestoreParts(data, c.g, c.f) }

// Compose is short-circuiting sequential composition, "f after g": each step
// advances g first; if g yields Off, f is not stepped and the composite
// yields Off; if g yields On(b), f is stepped with b and the composite
// yields f's result. Compose is associative and has ToOn as its left and
// right identity. The composite owns no state of its own — it only
// orchestrates its two operands.
func Compose[A, B, C any](f signal.Transformer[B, Value[C]], g signal.Transformer[A, Value[B]]) signal.Transformer[A, Value[C]] {
	return &comp[A, B, C]{g: g, f: f}
}
