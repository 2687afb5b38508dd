package errors

import (
	"errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int    `json:"-"`
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Kind:    http.StatusText(code),
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
)

var domainErrors = []struct {
	err  error
	code int
	kind string
}{
	{ErrInvalidID, http.StatusBadRequest, "InvalidId"},
	{ErrDuplicateID, http.StatusConflict, "DuplicateId"},
	{ErrAlreadyOccupied, http.StatusConflict, "AlreadyOccupied"},
	{ErrAlreadyFree, http.StatusConflict, "AlreadyFree"},
	{ErrNoSlotAvailable, http.StatusNotFound, "NoSlotAvailable"},
	{ErrSlotNotFound, http.StatusNotFound, "SlotNotFound"},
}

// FromDomain maps a domain error to the HTTPError a handler should write.
// Unknown errors become a 500 without leaking their text.
func FromDomain(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return &HTTPError{Code: d.code, Kind: d.kind, Message: d.err.Error()}
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}
