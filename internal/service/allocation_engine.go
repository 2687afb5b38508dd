package service

import (
	"parkingslots/internal/entities"
	apperrors "parkingslots/internal/errors"
	"parkingslots/internal/store"
)

// AllocationEngine matches requests to free slots. "Nearest" means first in
// registration order; there is no distance model.
type AllocationEngine struct {
	store *store.SlotStore
}

func NewAllocationEngine(s *store.SlotStore) *AllocationEngine {
	return &AllocationEngine{store: s}
}

// Candidates returns the indices of free slots satisfying req, in store order.
func (e *AllocationEngine) Candidates(req entities.AllocationRequest) []int {
	slots := e.store.All()
	var candidates []int
	for i, slot := range slots {
		if !slot.Occupied {
			candidates = append(candidates, i)
		}
	}
	if req.NeedsEV {
		candidates = filter(candidates, func(i int) bool { return slots[i].EVCharging })
	}
	if req.NeedsCover {
		candidates = filter(candidates, func(i int) bool { return slots[i].Covered })
	}
	return candidates
}

// Allocate occupies the first candidate for req.
func (e *AllocationEngine) Allocate(req entities.AllocationRequest) (entities.AllocationResult, error) {
	candidates := e.Candidates(req)
	if len(candidates) == 0 {
		return failed(apperrors.ErrNoSlotAvailable)
	}
	return e.occupy(candidates[0])
}

// AllocateAt occupies a specific slot without looking at its attributes.
func (e *AllocationEngine) AllocateAt(index int) (entities.AllocationResult, error) {
	return e.occupy(index)
}

func (e *AllocationEngine) Release(index int) error {
	return e.store.SetOccupied(index, false)
}

func (e *AllocationEngine) occupy(index int) (entities.AllocationResult, error) {
	if err := e.store.SetOccupied(index, true); err != nil {
		return failed(err)
	}
	slot, err := e.store.Get(index)
	if err != nil {
		return failed(err)
	}
	return entities.AllocationSucceeded(slot, index), nil
}

func failed(err error) (entities.AllocationResult, error) {
	return entities.AllocationFailed(apperrors.FromDomain(err).Message), err
}

func filter(in []int, keep func(int) bool) []int {
	var out []int
	for _, i := range in {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}
