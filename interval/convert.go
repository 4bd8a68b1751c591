package interval

import "github.com/katalvlaran/sigwire/signal"

// FromInterval converts an interval stream back into a plain stream: each
// step yields the payload when On and def when Off. Composed after ToOn it
// is the identity.
func FromInterval[T any](def T) signal.Transformer[Value[T], T] {
	return signal.Pure(func(v Value[T]) T {
		if p, ok := v.Get(); ok {
			return p
		}

		return def
	})
}

// FromIntervalWith converts an interval stream into a plain stream through
// f: each step yields f(payload) when On and def when Off.
func FromIntervalWith[T, R any](def R, f func(T) R) signal.Transformer[Value[T], R] {
	return signal.Pure(func(v Value[T]) R {
		return Elim(def, f, v)
	})
}
