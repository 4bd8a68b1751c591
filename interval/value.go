package interval

import "fmt"

// Value is the interval sum type over a payload type T: exactly one of
// On(payload) or Off. The zero value is Off.
//
// Value is deliberately an explicit two-variant type rather than a pointer
// or (T, bool) convention: a function returning Value[T] visibly claims the
// interval contract, and the only way to observe the payload is through an
// eliminator that also decides the Off case.
type Value[T any] struct {
	payload T
	on      bool
}

// On returns the present interval value carrying v.
func On[T any](v T) Value[T] {
	return Value[T]{payload: v, on: true}
}

// Off returns the absent interval value.
func Off[T any]() Value[T] {
	return Value[T]{}
}

// IsOn reports whether the value is On.
func (v Value[T]) IsOn() bool { return v.on }

// Get returns the payload and whether the value is On. The payload is the
// zero value of T when Off.
func (v Value[T]) Get() (T, bool) { return v.payload, v.on }

// String renders the value for debugging: "On(payload)" or "Off".
func (v Value[T]) String() string {
	if !v.on {
		return "Off"
	}

	return fmt.Sprintf("On(%v)", v.payload)
}

// Elim eliminates an interval value: def when Off, f(payload) when On.
func Elim[T, R any](def R, f func(T) R, v Value[T]) R {
	if !v.on {
		return def
	}

	return f(v.payload)
}

// MapValue applies f to the payload of an On value and preserves Off.
func MapValue[T, R any](f func(T) R, v Value[T]) Value[R] {
	if !v.on {
		return Off[R]()
	}

	return On(f(v.payload))
}
