package trigger

import "fmt"

// Event is a per-step trigger value: either absent or present with a payload
// of type P. The zero value is the absent event.
type Event[P any] struct {
	payload P
	fired   bool
}

// None returns the absent event: no trigger this step.
func None[P any]() Event[P] {
	return Event[P]{}
}

// Fire returns a present event carrying the given payload.
func Fire[P any](payload P) Event[P] {
	return Event[P]{payload: payload, fired: true}
}

// Fired reports whether the event is present this step.
func (e Event[P]) Fired() bool { return e.fired }

// Payload returns the carried payload and whether the event fired. The
// payload is the zero value of P when the event is absent.
func (e Event[P]) Payload() (P, bool) { return e.payload, e.fired }

// String renders the event for debugging: "None" or "Fire(payload)".
func (e Event[P]) String() string {
	if !e.fired {
		return "None"
	}

	return fmt.Sprintf("Fire(%v)", e.payload)
}

// Elim eliminates an event: def when absent, f(payload) when present.
func Elim[P, R any](def R, f func(P) R, e Event[P]) R {
	if !e.fired {
		return def
	}

	return f(e.payload)
}

// Map applies f to the payload of a present event and preserves absence.
func Map[P, Q any](f func(P) Q, e Event[P]) Event[Q] {
	if !e.fired {
		return None[Q]()
	}

	return Fire(f(e.payload))
}
