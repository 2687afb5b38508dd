package entities

import "parkingslots/internal/db"

// SlotView pairs a slot with its position so a front end can target it.
type SlotView struct {
	Index int `json:"index"`
	db.Slot
}

type RegisterSlotRequest struct {
	ID         string `json:"slotNo"`
	Covered    bool   `json:"isCovered"`
	EVCharging bool   `json:"isEVCharging"`
}
