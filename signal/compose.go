package signal

// Pair holds the two outputs of a product composition.
type Pair[X, Y any] struct {
	First  X
	Second Y
}

// then feeds g's output into f on every step.
type then[A, B, C any] struct {
	g Transformer[A, B]
	f Transformer[B, C]
}

func (t *then[A, B, C]) Step(in A) C { return t.f.Step(t.g.Step(in)) }

func (t *then[A, B, C]) Snapshot() ([]byte, error) { return SnapshotParts(t.g, t.f) }
func (t *then[A, B, C]) Restore(data []byte) error { return RestoreParts(data, t.g, t.f) }

// Then returns the sequential composition of g and f: each step advances g
// with the input and advances f with g's output. Both operands advance
// exactly once per step, g first.
func Then[A, B, C any](g Transformer[A, B], f Transformer[B, C]) Transformer[A, C] {
	return &then[A, B, C]{g: g, f: f}
}

// fanout steps both operands on the same input.
type fanout[I, O1, O2 any] struct {
	a Transformer[I, O1]
	b Transformer[I, O2]
}

func (t *fanout[I, O1, O2]) Step(in I) Pair[O1, O2] {
	return Pair[O1, O2]{First: t.a.Step(in), Second: t.b.Step(in)}
}

func (t *fanout[I, O1, O2]) Snapshot() ([]byte, error) { return SnapshotParts(t.a, t.b) }
func (t *fanout[I, O1, O2]) Restore(data []byte) error { return RestoreParts(data, t.a, t.b) }

// Fanout returns the product of a and b over a shared input: each step feeds
// the same input to both operands, a first, and pairs their outputs.
func Fanout[I, O1, O2 any](a Transformer[I, O1], b Transformer[I, O2]) Transformer[I, Pair[O1, O2]] {
	return &fanout[I, O1, O2]{a: a, b: b}
}

// par steps two independent transformers on paired inputs.
type par[A, B, C, D any] struct {
	a Transformer[A, B]
	b Transformer[C, D]
}

func (t *par[A, B, C, D]) Step(in Pair[A, C]) Pair[B, D] {
	return Pair[B, D]{First: t.a.Step(in.First), Second: t.b.Step(in.Second)}
}

func (t *par[A, B, C, D]) Snapshot() ([]byte, error) { return SnapshotParts(t.a, t.b) }
func (t *par[A, B, C, D]) Restore(data []byte) error { return RestoreParts(data, t.a, t.b) }

// Par returns the true product of a and b: each step feeds in.First to a and
// in.Second to b, a first, and pairs their outputs.
func Par[A, B, C, D any](a Transformer[A, B], b Transformer[C, D]) Transformer[Pair[A, C], Pair[B, D]] {
	return &par[A, B, C, D]{a: a, b: b}
}
