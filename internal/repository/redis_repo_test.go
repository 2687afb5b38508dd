package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingslots/internal/db"
	apperrors "parkingslots/internal/errors"
)

func newRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisRepository(rdb, "lot:slots"), mr
}

func TestRedisRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r, mr := newRedisRepo(t)

	slots, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, slots)

	in := []db.Slot{{ID: "A1", Covered: true, EVCharging: true}, {ID: "B1", Occupied: true}}
	require.NoError(t, r.Save(ctx, in))
	assert.True(t, mr.Exists("lot:slots"))

	out, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRedisRepository_Malformed(t *testing.T) {
	r, mr := newRedisRepo(t)
	require.NoError(t, mr.Set("lot:slots", "not-json"))

	_, err := r.Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrMalformedData)
}

func TestNewRedisRepository_DefaultKey(t *testing.T) {
	r := NewRedisRepository(redis.NewClient(&redis.Options{}), "")
	assert.Equal(t, DefaultKey, r.Key)
}
