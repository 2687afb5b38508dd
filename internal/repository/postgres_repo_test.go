package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingslots/internal/db"
)

const selectQuery = `SELECT value FROM kv_store WHERE key = $1`

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewPostgresRepository(conn, ""), mock
}

func TestPostgresRepository_Load(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs(DefaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).
			AddRow(`[{"slotNo":"A1","isCovered":true,"isEVCharging":false,"isOccupied":false}]`))

	slots, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []db.Slot{{ID: "A1", Covered: true}}, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_LoadAbsent(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"no row", sql.ErrNoRows},
		{"no table", &pq.Error{Code: "42P01", Message: `relation "kv_store" does not exist`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := newMockRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).WithArgs(DefaultKey).WillReturnError(tt.err)

			slots, err := r.Load(context.Background())
			require.NoError(t, err)
			assert.Nil(t, slots)
		})
	}
}

func TestPostgresRepository_LoadError(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).WithArgs(DefaultKey).WillReturnError(errors.New("connection reset"))

	_, err := r.Load(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}

func TestPostgresRepository_Save(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store (key, value, updated_at)`)).
		WithArgs(DefaultKey, `[{"slotNo":"A1","isCovered":false,"isEVCharging":true,"isOccupied":true}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Save(context.Background(), []db.Slot{{ID: "A1", EVCharging: true, Occupied: true}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS kv_store`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
