// Package sigwire is a composition algebra for intervaled discrete-time
// signal transformers — stream processors whose per-step output is either
// On(value) or Off, holding for contiguous runs of steps.
//
// 🚀 What is sigwire?
//
//	A pure, synchronous, single-threaded toolkit that brings together:
//		• Signal engine: stateless & stateful one-step-per-call transformers,
//		  sequential and product composition, opt-in state snapshots
//		• Trigger events: per-step fired/absent values with payloads
//		• Interval algebra: static and trigger-driven on/off constructors,
//		  choice and fallback, gated lifting, short-circuit composition
//
// ✨ Why choose sigwire?
//
//   - Predictable – exactly one logical step per call, deterministic
//     left-to-right operand order, no hidden scheduling
//   - Composable – every combinator maps interval transformers to interval
//     transformers; the contract survives arbitrary nesting
//   - Pure Go – no cgo, no hidden deps
//   - Restorable – snapshot a running pipeline's state and restore it into
//     a freshly built one
//
// Under the hood, everything is organized under three subpackages:
//
//	signal/   — the stream-transformer engine: Const, Pure, Stateful, Accum,
//	            Then, Fanout, Par, Run, and the Persistable capability
//	trigger/  — the discrete per-step event value and its eliminators
//	interval/ — the on/off algebra: AlwaysOff, ToOn, OnFor, OffFor, When,
//	            After, Before, Between, Hold, HoldFor, OrElse, Fallback,
//	            Choose, During, Compose, FromInterval
//
// Quick ASCII example:
//
//	value:   1    2    3    4    5
//	start:   .    ^    .    .    .
//	end:     .    .    .    ^    .
//	output:  Off  On 2 On 3 Off  Off
//
//	a Between window armed by the start trigger at step 2 and closed by the
//	end trigger at step 4.
//
// Dive into the examples/ directory for end-to-end scenarios, including
// pipeline snapshot and restore.
//
//	go get github.com/katalvlaran/sigwire
package sigwire
