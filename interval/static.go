package interval

import "github.com/katalvlaran/sigwire/signal"

// AlwaysOff returns the interval transformer that ignores its input and
// yields Off on every step. It is the identity of choice composition: any
// transformer chosen against AlwaysOff decides the result alone.
func AlwaysOff[I, T any]() signal.Transformer[I, Value[T]] {
	return signal.Const[I](Off[T]())
}

// ToOn returns the always-on identity lift: every step yields On(input).
// It is the left and right identity of Compose.
func ToOn[T any]() signal.Transformer[T, Value[T]] {
	return signal.Pure(On[T])
}

// OnFor returns an interval transformer that yields On(input) for the first
// n steps and Off forever after. Negative n clamps to zero, meaning
// immediately and permanently off.
func OnFor[T any](n int) signal.Transformer[T, Value[T]] {
	if n < 0 {
		n = 0
	}

	return signal.Stateful(n, func(in T, remaining int) (Value[T], int) {
		if remaining > 0 {
			return On(in), remaining - 1
		}

		return Off[T](), 0
	})
}

// OffFor is the dual of OnFor: Off for the first n steps, On(input) forever
// after. Negative n clamps to zero, meaning immediately and permanently on.
func OffFor[T any](n int) signal.Transformer[T, Value[T]] {
	if n < 0 {
		n = 0
	}

	return signal.Stateful(n, func(in T, remaining int) (Value[T], int) {
		if remaining > 0 {
			return Off[T](), remaining - 1
		}

		return On(in), 0
	})
}

// When returns a stateless interval transformer yielding On(input) exactly
// when pred(input) holds and Off otherwise. The predicate is re-evaluated on
// every step; the result is not sticky.
func When[T any](pred func(T) bool) signal.Transformer[T, Value[T]] {
	return signal.Pure(func(in T) Value[T] {
		if pred(in) {
			return On(in)
		}

		return Off[T]()
	})
}

// Unless is the complement of When: On(input) exactly when pred(input) does
// not hold.
func Unless[T any](pred func(T) bool) signal.Transformer[T, Value[T]] {
	return When(func(in T) bool { return !pred(in) })
}
