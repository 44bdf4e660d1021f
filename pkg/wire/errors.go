package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputShape is returned when a packet is not exactly PacketSize bytes.
	ErrInvalidInputShape = errors.New("wire: invalid input shape")

	// ErrUnknownFieldCode is returned when a packet carries a code with no
	// assigned variant.
	ErrUnknownFieldCode = errors.New("wire: unknown field code")
)

// ShapeError reports a decode input of the wrong length.
type ShapeError struct {
	Length int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("wire: packet must be exactly %d bytes, got %d", PacketSize, e.Length)
}

// Unwrap allows errors.Is(err, ErrInvalidInputShape).
func (e *ShapeError) Unwrap() error {
	return ErrInvalidInputShape
}

// FieldCodeError reports an unassigned code found in a packet.
type FieldCodeError struct {
	Field Field
	Code  uint8
}

func (e *FieldCodeError) Error() string {
	return fmt.Sprintf("wire: unknown %s code %0*b (%d)", e.Field, e.Field.Width(), e.Code, e.Code)
}

// Unwrap allows errors.Is(err, ErrUnknownFieldCode).
func (e *FieldCodeError) Unwrap() error {
	return ErrUnknownFieldCode
}
