package service

import (
	"parkingslots/internal/db"
	"parkingslots/internal/entities"
)

// ComputeStats derives the inventory summary from a slot snapshot.
func ComputeStats(slots []db.Slot) entities.Stats {
	stats := entities.Stats{Total: len(slots)}
	for _, slot := range slots {
		if slot.Occupied {
			stats.Occupied++
		}
	}
	stats.Available = stats.Total - stats.Occupied
	return stats
}
