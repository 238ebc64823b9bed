package status

import (
	"fmt"

	"github.com/narust/reasoner/internal/reasoner"
	"github.com/segmentio/encoding/json"
)

// Encode serializes a Snapshot to its JSON wire form, the body of a SAV
// status INFO record.
func Encode(snap Snapshot) ([]byte, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("status: encode: %w", err)
	}
	return b, nil
}

// Decode parses a JSON payload into a Snapshot, without installing it —
// callers apply it with Restore.
func Decode(payload []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("status: decode: %w", err)
	}
	return snap, nil
}

// Save captures r's state and encodes it in one step, the implementation
// behind `SAV status ""`.
func Save(r *reasoner.Reasoner) ([]byte, error) {
	return Encode(Capture(r))
}

// Load decodes a payload and installs it into r in one step, the
// implementation behind `LOA status <payload>`.
func Load(r *reasoner.Reasoner, payload []byte) error {
	snap, err := Decode(payload)
	if err != nil {
		return err
	}
	return Restore(r, snap)
}
