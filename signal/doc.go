// Package signal provides the discrete-time stream-transformer engine that
// the rest of sigwire builds on: small state machines advanced one step at a
// time, composed sequentially or in parallel, with opt-in state snapshots.
//
// 🚀 What is a signal transformer?
//
//	A Transformer[I, O] consumes one input per step and produces one output
//	per step. Stateful transformers own their internal state exclusively;
//	stepping is the only way to advance it. There is no scheduling, no
//	I/O and no concurrency — just synchronous, deterministic steps.
//
// ✨ Building blocks:
//   - Const / Pure — stateless transformers from a value or a function
//   - Stateful / Accum — explicit-state step functions (persisting)
//   - StatefulTransient / AccumTransient — same semantics, state never
//     serialized
//   - Then — sequential composition (g first, then f)
//   - Fanout / Par — step two transformers on the same step, pair outputs
//   - Run — drive a transformer over an input slice (testing & validation)
//
// ⚙️ Persistence:
//
//	Transformers built with the persisting constructors implement
//	Persistable: Snapshot() exports internal state as bytes, Restore()
//	re-imports it into an identically constructed transformer. Composites
//	(Then, Fanout, Par and the interval combinators) aggregate operand
//	snapshots positionally, so whole pipelines round-trip transparently.
//	Transient transformers opt out: their state never appears in a
//	snapshot, and a restored pipeline sees them at their initial state.
//
// See package interval for the on/off algebra layered on top.
package signal
