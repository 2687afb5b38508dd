package errors

import "errors"

// Domain error kinds returned by the slot store and allocation service.
var (
	ErrInvalidID       = errors.New("invalid slot id")
	ErrDuplicateID     = errors.New("slot id already exists")
	ErrAlreadyOccupied = errors.New("slot is already occupied")
	ErrAlreadyFree     = errors.New("slot is already free")
	ErrNoSlotAvailable = errors.New("No slot available")
	ErrSlotNotFound    = errors.New("slot not found")

	// ErrMalformedData marks a persisted value that could not be decoded.
	ErrMalformedData = errors.New("malformed slot data")
)
