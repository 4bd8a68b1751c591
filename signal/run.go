package signal

// Run drives t over the input slice, one step per element, and returns the
// outputs in step order. The transformer is left at its post-run state, so a
// second Run continues where the first stopped.
//
// Run exists for tests and specification validation; production callers
// normally step transformers from their own loop.
//
// Complexity: O(len(inputs)) steps.
func Run[I, O any](t Transformer[I, O], inputs []I) []O {
	outs := make([]O, len(inputs))
	for i, in := range inputs {
		outs[i] = t.Step(in)
	}

	return outs
}
