package errors

import "errors"

var (
	ErrNotFound = errors.New("reservation not found")

	ErrInvalidID = errors.New("invalid reservation ID format")

	ErrVersionConflict = errors.New("reservation was modified concurrently")

	ErrLotNotFound = errors.New("lot not found")

	ErrEntryNotFound = errors.New("billing entry not found")
)
