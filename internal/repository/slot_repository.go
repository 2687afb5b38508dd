package repository

import (
	"context"

	"parkingslots/internal/db"
)

// DefaultKey is the key the browser front end has always stored slots under.
const DefaultKey = "parkingSlots"

// SlotRepository persists the ordered slot list under a single key.
// Load returns (nil, nil) when nothing has been stored yet. Save is best-effort.
type SlotRepository interface {
	Load(ctx context.Context) ([]db.Slot, error)
	Save(ctx context.Context, slots []db.Slot) error
}
