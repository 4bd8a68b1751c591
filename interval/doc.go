// Package interval implements a composition algebra for intervaled signal
// transformers: transformers whose per-step output is either On(value) or
// Off, and whose on/off status holds for contiguous runs of steps.
//
// 🚀 What is an interval transformer?
//
//	A signal.Transformer[I, Value[T]] — a discrete-time transformer whose
//	output is the explicit On/Off sum type Value[T]. The algebra guarantees
//	that composing interval transformers yields interval transformers, with
//	precisely defined behavior for operand state and side effects during
//	Off periods.
//
// ✨ The algebra:
//   - Static constructors: AlwaysOff, ToOn, OnFor, OffFor, When, Unless
//   - Trigger-driven constructors: After, Before, Between, Hold,
//     HoldTransient, HoldFor — latches and holds over trigger.Event streams
//   - Choice: OrElse, Fallback, ChooseInterval, Choose — first On wins;
//     every operand is stepped every step, so operand side effects always
//     occur even when their result is discarded
//   - Gating: During, DuringInterval — the one family that actually pauses
//     its operand: while the incoming interval is Off the operand is not
//     stepped at all, freezing its state
//   - Short-circuit composition: Compose — an Off upstream result skips the
//     downstream stage's step entirely
//   - Conversion: FromInterval, FromIntervalWith — back to plain streams
//
// ⚙️ Side effects and Off:
//
//	Choice combinators discard results, never steps: both operands of
//	OrElse and Fallback advance on every step. Only During, DuringInterval
//	and (for its downstream operand) Compose skip steps. When operands
//	carry observable effects this distinction is the whole contract —
//	tests pin it explicitly.
//
// All operations are total: negative durations clamp to zero, Off is a
// first-class steady state, and nothing in this package returns an error.
package interval
