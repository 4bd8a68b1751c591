package signal_test

import (
	"testing"

	"github.com/katalvlaran/sigwire/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCounter builds the persisting step counter used across these tests.
func newCounter() signal.Transformer[string, int] {
	return signal.Stateful(0, func(_ string, n int) (int, int) {
		return n + 1, n + 1
	})
}

// TestStateful_SnapshotRestore verifies that a freshly built transformer
// restored from a snapshot continues exactly where the original stopped.
func TestStateful_SnapshotRestore(t *testing.T) {
	orig := newCounter()
	signal.Run(orig, []string{"a", "b", "c"})

	snap, err := orig.(signal.Persistable).Snapshot()
	require.NoError(t, err, "Stateful must snapshot without error")

	fresh := newCounter()
	require.NoError(t, fresh.(signal.Persistable).Restore(snap))

	assert.Equal(t, 4, fresh.Step("d"),
		"restored counter must continue from the snapshotted state")
}

// TestStatefulTransient_NotPersistable verifies that the transient variant
// deliberately lacks the Persistable capability.
func TestStatefulTransient_NotPersistable(t *testing.T) {
	transient := signal.StatefulTransient(0, func(_ string, n int) (int, int) {
		return n + 1, n + 1
	})

	_, ok := transient.(signal.Persistable)
	assert.False(t, ok, "transient state must never be snapshotted")
}

// TestThen_CompositeRoundTrip verifies that a sequential composite
// aggregates its operands' snapshots and restores them positionally.
func TestThen_CompositeRoundTrip(t *testing.T) {
	build := func() signal.Transformer[int, int] {
		sum := signal.Accum(0, func(x, acc int) int { return acc + x })
		twice := signal.Pure(func(x int) int { return 2 * x })

		return signal.Then(sum, twice)
	}

	orig := build()
	signal.Run(orig, []int{1, 2, 3}) // sum is now 6

	snap, err := orig.(signal.Persistable).Snapshot()
	require.NoError(t, err)

	fresh := build()
	require.NoError(t, fresh.(signal.Persistable).Restore(snap))

	assert.Equal(t, 20, fresh.Step(4), "restored pipeline must emit 2*(6+4)")
}

// TestSnapshotParts_NullSlotsForTransient verifies that transient operands
// occupy null slots, so mixed pipelines keep stable snapshot positions.
func TestSnapshotParts_NullSlotsForTransient(t *testing.T) {
	persisting := newCounter()
	transient := signal.StatefulTransient(0, func(_ string, n int) (int, int) {
		return n + 1, n + 1
	})
	persisting.Step("a")
	transient.Step("a")

	snap, err := signal.SnapshotParts(persisting, transient)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, null]`, string(snap),
		"transient operand must contribute a null slot")

	// Restoring the same shape must not touch the transient operand.
	fresh := newCounter()
	require.NoError(t, signal.RestoreParts(snap, fresh, transient))
	assert.Equal(t, 2, fresh.Step("b"), "persisting slot must be restored")
}

// TestRestoreParts_ShapeMismatch verifies the snapshot-shape sentinel for
// wrong operand counts and malformed bytes.
func TestRestoreParts_ShapeMismatch(t *testing.T) {
	snap, err := signal.SnapshotParts(newCounter())
	require.NoError(t, err)

	err = signal.RestoreParts(snap, newCounter(), newCounter())
	assert.ErrorIs(t, err, signal.ErrSnapshotShape, "operand count mismatch must be rejected")

	err = signal.RestoreParts([]byte("not json"), newCounter())
	assert.ErrorIs(t, err, signal.ErrSnapshotShape, "malformed snapshot must be rejected")
}

// TestFanout_CompositeRoundTrip verifies product composites aggregate both
// operands' state.
func TestFanout_CompositeRoundTrip(t *testing.T) {
	build := func() signal.Transformer[int, signal.Pair[int, int]] {
		sum := signal.Accum(0, func(x, acc int) int { return acc + x })
		max := signal.Accum(0, func(x, acc int) int {
			if x > acc {
				return x
			}

			return acc
		})

		return signal.Fanout(sum, max)
	}

	orig := build()
	signal.Run(orig, []int{3, 1, 5})

	snap, err := orig.(signal.Persistable).Snapshot()
	require.NoError(t, err)

	fresh := build()
	require.NoError(t, fresh.(signal.Persistable).Restore(snap))

	assert.Equal(t, signal.Pair[int, int]{First: 11, Second: 5}, fresh.Step(2),
		"both sides of the product must resume from their snapshots")
}
