// Package store holds the ordered slot inventory. Registration order is the
// allocation priority, so the sequence is append-only.
package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"parkingslots/internal/db"
	apperrors "parkingslots/internal/errors"
)

// SlotStore is not safe for concurrent use; callers serialise access.
type SlotStore struct {
	slots []db.Slot
	index map[string]int
}

func NewSlotStore() *SlotStore {
	return &SlotStore{index: make(map[string]int)}
}

// Restore rebuilds a store from previously persisted slots. Blank or repeated
// ids are dropped so the uniqueness invariant holds for whatever was loaded.
func Restore(slots []db.Slot) *SlotStore {
	s := NewSlotStore()
	for _, slot := range slots {
		slot.ID = strings.TrimSpace(slot.ID)
		if slot.ID == "" {
			continue
		}
		if _, dup := s.index[slot.ID]; dup {
			continue
		}
		s.index[slot.ID] = len(s.slots)
		s.slots = append(s.slots, slot)
	}
	return s
}

// Register appends a new free slot. The id is trimmed before validation and
// must be valid UTF-8 so it survives a save and load unchanged.
func (s *SlotStore) Register(id string, covered, evCharging bool) (db.Slot, error) {
	id = strings.TrimSpace(id)
	if id == "" || !utf8.ValidString(id) {
		return db.Slot{}, apperrors.ErrInvalidID
	}
	if _, dup := s.index[id]; dup {
		return db.Slot{}, fmt.Errorf("register %q: %w", id, apperrors.ErrDuplicateID)
	}
	slot := db.Slot{ID: id, Covered: covered, EVCharging: evCharging}
	s.index[id] = len(s.slots)
	s.slots = append(s.slots, slot)
	return slot, nil
}

func (s *SlotStore) Get(index int) (db.Slot, error) {
	if index < 0 || index >= len(s.slots) {
		return db.Slot{}, fmt.Errorf("index %d: %w", index, apperrors.ErrSlotNotFound)
	}
	return s.slots[index], nil
}

func (s *SlotStore) SetOccupied(index int, value bool) error {
	if index < 0 || index >= len(s.slots) {
		return fmt.Errorf("index %d: %w", index, apperrors.ErrSlotNotFound)
	}
	slot := &s.slots[index]
	switch {
	case value && slot.Occupied:
		return fmt.Errorf("slot %q: %w", slot.ID, apperrors.ErrAlreadyOccupied)
	case !value && !slot.Occupied:
		return fmt.Errorf("slot %q: %w", slot.ID, apperrors.ErrAlreadyFree)
	}
	slot.Occupied = value
	return nil
}

// All returns a copy of the slots in registration order.
func (s *SlotStore) All() []db.Slot {
	out := make([]db.Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *SlotStore) Len() int {
	return len(s.slots)
}
