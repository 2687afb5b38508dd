package repository

import (
	"context"

	"parkingslots/internal/db"
)

// MemoryRepository keeps the encoded slot list in memory. Values go through the
// same codec as the real backends.
type MemoryRepository struct {
	data  []byte
	Saves int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) ([]db.Slot, error) {
	if r.data == nil {
		return nil, nil
	}
	return DecodeSlots(r.data)
}

func (r *MemoryRepository) Save(ctx context.Context, slots []db.Slot) error {
	data, err := EncodeSlots(slots)
	if err != nil {
		return err
	}
	r.data = data
	r.Saves++
	return nil
}

// SetRaw replaces the stored value verbatim.
func (r *MemoryRepository) SetRaw(data []byte) {
	r.data = data
}

func (r *MemoryRepository) Raw() []byte {
	return r.data
}
