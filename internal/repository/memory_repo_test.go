package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingslots/internal/db"
	apperrors "parkingslots/internal/errors"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	slots, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, slots)

	in := []db.Slot{{ID: "A1", Covered: true}, {ID: "B2", Occupied: true}}
	require.NoError(t, r.Save(ctx, in))
	assert.Equal(t, 1, r.Saves)

	out, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	r.SetRaw([]byte("garbage"))
	_, err = r.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrMalformedData)
}
