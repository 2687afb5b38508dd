package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingslots/internal/db"
	apperrors "parkingslots/internal/errors"
)

func TestEncodeSlots_FieldNames(t *testing.T) {
	data, err := EncodeSlots([]db.Slot{{ID: "A1", Covered: true, EVCharging: false, Occupied: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"slotNo":"A1","isCovered":true,"isEVCharging":false,"isOccupied":true}]`, string(data))
}

func TestEncodeSlots_NilIsEmptyArray(t *testing.T) {
	data, err := EncodeSlots(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncodeDecode_PreservesOrderAndFields(t *testing.T) {
	in := []db.Slot{
		{ID: "C3", EVCharging: true},
		{ID: "A1", Covered: true, Occupied: true},
		{ID: "B2", Covered: true, EVCharging: true, Occupied: false},
	}
	data, err := EncodeSlots(in)
	require.NoError(t, err)

	out, err := DecodeSlots(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeSlots_Malformed(t *testing.T) {
	for _, raw := range []string{``, `{`, `{"slotNo":"A1"}`, `"parkingSlots"`, `42`} {
		_, err := DecodeSlots([]byte(raw))
		assert.ErrorIs(t, err, apperrors.ErrMalformedData, "input %q", raw)
	}
}

func TestDecodeSlots_DefaultsGracefully(t *testing.T) {
	raw := `[
		{"slotNo":"A1","isCovered":true,"extra":"ignored"},
		{"isCovered":true},
		{"slotNo":"   "},
		{"slotNo":7},
		"not an object",
		null,
		{"slotNo":" B2 ","isEVCharging":"yes","isOccupied":true},
		{"slotNo":"A1","isOccupied":true}
	]`
	out, err := DecodeSlots([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, []db.Slot{
		{ID: "A1", Covered: true},
		{ID: "B2", Occupied: true},
	}, out)
}
