package db

// Slot is one registered parking space. ID and the attribute flags are fixed at
// registration; only Occupied changes afterwards.
type Slot struct {
	ID         string `json:"slotNo"`
	Covered    bool   `json:"isCovered"`
	EVCharging bool   `json:"isEVCharging"`
	Occupied   bool   `json:"isOccupied"`
}
