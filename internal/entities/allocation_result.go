package entities

import "parkingslots/internal/db"

type AllocationResult struct {
	Success bool     `json:"success"`
	Slot    *db.Slot `json:"slot,omitempty"`
	Index   int      `json:"index"`
	Reason  string   `json:"reason,omitempty"`
}

func AllocationSucceeded(slot db.Slot, index int) AllocationResult {
	return AllocationResult{Success: true, Slot: &slot, Index: index}
}

func AllocationFailed(reason string) AllocationResult {
	return AllocationResult{Success: false, Index: -1, Reason: reason}
}
