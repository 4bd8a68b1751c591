package signal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSnapshotShape is returned when a composite snapshot does not match the
// structure of the pipeline it is being restored into (wrong operand count or
// malformed encoding).
var ErrSnapshotShape = fmt.Errorf("signal: %w", errSnapshotShape)
var errSnapshotShape = errors.New("snapshot does not match pipeline shape")

// Persistable is the opt-in persistence capability: a transformer that can
// export a serialized snapshot of its internal state and re-import it later.
//
// Persisting constructors (Stateful, Accum) implement it; transient
// constructors do not. Composites implement it by aggregating their operands,
// so a whole pipeline snapshots and restores transparently as long as it is
// rebuilt with the same structure before Restore.
type Persistable interface {
	// Snapshot exports the current internal state.
	Snapshot() ([]byte, error)

	// Restore replaces the current internal state with a previously exported
	// snapshot.
	Restore(data []byte) error
}

// SnapshotParts encodes the snapshots of a composite's operands, in operand
// order, as a single snapshot. Operands that are not Persistable contribute a
// null slot, keeping positions stable across persisting and transient
// operands.
func SnapshotParts(parts ...any) ([]byte, error) {
	raws := make([]json.RawMessage, len(parts))
	for i, part := range parts {
		p, ok := part.(Persistable)
		if !ok {
			raws[i] = json.RawMessage("null")
			continue
		}
		b, err := p.Snapshot()
		if err != nil {
			return nil, err
		}
		raws[i] = b
	}

	return json.Marshal(raws)
}

// RestoreParts decodes a SnapshotParts snapshot and restores each operand in
// order. Null slots and non-Persistable operands are skipped; the slot count
// must match the operand count exactly.
func RestoreParts(data []byte, parts ...any) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return ErrSnapshotShape
	}
	if len(raws) != len(parts) {
		return ErrSnapshotShape
	}
	for i, part := range parts {
		p, ok := part.(Persistable)
		if !ok || string(raws[i]) == "null" {
			continue
		}
		if err := p.Restore(raws[i]); err != nil {
			return err
		}
	}

	return nil
}
