package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"parkingslots/internal/db"
	apperrors "parkingslots/internal/errors"
)

// EncodeSlots serialises slots as a JSON array, keeping their order.
func EncodeSlots(slots []db.Slot) ([]byte, error) {
	if slots == nil {
		slots = []db.Slot{}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return nil, fmt.Errorf("encode slots: %w", err)
	}
	return data, nil
}

// DecodeSlots parses a stored slot list. Anything other than a JSON array is
// ErrMalformedData. Inside the array, entries without a usable slotNo and
// repeats of an earlier slotNo are skipped, flags of the wrong type or missing
// flags read as false, and unknown fields are ignored.
func DecodeSlots(data []byte) ([]db.Slot, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedData, err)
	}

	out := make([]db.Slot, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}
		var id string
		if err := json.Unmarshal(fields["slotNo"], &id); err != nil {
			continue
		}
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, db.Slot{
			ID:         id,
			Covered:    boolField(fields, "isCovered"),
			EVCharging: boolField(fields, "isEVCharging"),
			Occupied:   boolField(fields, "isOccupied"),
		})
	}
	return out, nil
}

func boolField(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v
}
