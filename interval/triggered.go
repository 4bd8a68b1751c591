package interval

import (
	"github.com/katalvlaran/sigwire/signal"
	"github.com/katalvlaran/sigwire/trigger"
)

// Timed pairs a per-step value with the trigger observed on the same step.
// It is the input of the single-trigger constructors After and Before.
type Timed[T, P any] struct {
	Value   T
	Trigger trigger.Event[P]
}

// Spanned pairs a per-step value with the start and end triggers observed on
// the same step. It is the input of Between.
type Spanned[T, P, Q any] struct {
	Value T
	Start trigger.Event[P]
	End   trigger.Event[Q]
}

// After returns a one-way latch: Off until the first firing trigger, then
// On(value) from the triggering step on, forever. The trigger payload is
// discarded; only its presence matters.
func After[T, P any]() signal.Transformer[Timed[T, P], Value[T]] {
	return signal.Stateful(false, func(in Timed[T, P], seen bool) (Value[T], bool) {
		if seen || in.Trigger.Fired() {
			return On(in.Value), true
		}

		return Off[T](), false
	})
}

// Before is the dual latch: On(value) until the first firing trigger, Off
// from the triggering step on, forever.
func Before[T, P any]() signal.Transformer[Timed[T, P], Value[T]] {
	return signal.Stateful(false, func(in Timed[T, P], done bool) (Value[T], bool) {
		if done || in.Trigger.Fired() {
			return Off[T](), true
		}

		return On(in.Value), false
	})
}

// Between toggles between two triggers: a firing start trigger turns the
// interval on, a firing end trigger turns it off, and in quiet steps the
// current state holds. Within a single step a firing end trigger always
// suppresses the step's output, even when the interval is already on; a
// start trigger firing on that same step still arms the interval, so the
// following step is On.
func Between[T, P, Q any]() signal.Transformer[Spanned[T, P, Q], Value[T]] {
	return signal.Stateful(false, func(in Spanned[T, P, Q], on bool) (Value[T], bool) {
		next := on
		switch {
		case in.Start.Fired():
			next = true
		case in.End.Fired():
			next = false
		}
		if in.End.Fired() || !next {
			return Off[T](), next
		}

		return On(in.Value), next
	})
}

// holdState is the serialized latch of Hold: the last payload seen, if any.
type holdState[T any] struct {
	Seen bool `json:"seen"`
	Last T    `json:"last"`
}

func holdStep[T any](e trigger.Event[T], s holdState[T]) (Value[T], holdState[T]) {
	if p, ok := e.Payload(); ok {
		return On(p), holdState[T]{Seen: true, Last: p}
	}
	if s.Seen {
		return On(s.Last), s
	}

	return Off[T](), s
}

// Hold latches the last trigger payload: a firing step yields On(payload)
// and updates the latch; quiet steps yield On(last payload) once anything
// has ever fired, Off before. The latch survives a snapshot/restore cycle;
// T must round-trip through encoding/json for that to be faithful.
func Hold[T any]() signal.Transformer[trigger.Event[T], Value[T]] {
	return signal.Stateful(holdState[T]{}, holdStep[T])
}

// HoldTransient has exactly Hold's step semantics, but its latch is
// in-memory only: it never enters a snapshot, and a restored pipeline sees
// it empty.
func HoldTransient[T any]() signal.Transformer[trigger.Event[T], Value[T]] {
	return signal.StatefulTransient(holdState[T]{}, holdStep[T])
}

// holdForState is the serialized latch of HoldFor: last payload plus the
// number of trigger-free steps it may still be emitted on.
type holdForState[T any] struct {
	Held      bool `json:"held"`
	Last      T    `json:"last"`
	Remaining int  `json:"remaining"`
}

// HoldFor latches like Hold, but a held payload expires after n steps with
// no new trigger: a firing step yields On(payload) and the value survives
// n-1 further trigger-free steps, after which quiet steps yield Off until
// the next firing. Negative n clamps to zero; a firing step always yields
// On regardless of n.
func HoldFor[T any](n int) signal.Transformer[trigger.Event[T], Value[T]] {
	if n < 0 {
		n = 0
	}

	return signal.Stateful(holdForState[T]{}, func(e trigger.Event[T], s holdForState[T]) (Value[T], holdForState[T]) {
		if p, ok := e.Payload(); ok {
			remaining := n - 1
			if remaining < 0 {
				remaining = 0
			}

			return On(p), holdForState[T]{Held: true, Last: p, Remaining: remaining}
		}
		if s.Held && s.Remaining > 0 {
			return On(s.Last), holdForState[T]{Held: true, Last: s.Last, Remaining: s.Remaining - 1}
		}

		return Off[T](), holdForState[T]{}
	})
}
