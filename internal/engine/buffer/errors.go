package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by document operations.
var (
	// ErrInvalidOffset indicates an offset outside the document or inside a
	// multi-byte character.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrRangeInvalid indicates a range whose end precedes its start.
	ErrRangeInvalid = errors.New("invalid range")
)

// OffsetError records the operation and offset that failed validation.
type OffsetError struct {
	Op     string
	Offset ByteOffset
	Len    ByteOffset
	Err    error
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%s at %d (document length %d): %v", e.Op, e.Offset, e.Len, e.Err)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}
