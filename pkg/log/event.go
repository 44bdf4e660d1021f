package log

import (
	"errors"
	"time"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Event is a single captured codec operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation ran (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one Recorder (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction is OUT for encode and IN for decode.
	Direction Direction `cbor:"3,keyasint"`

	Category Category `cbor:"4,keyasint"`

	// Packet is the raw input (decode) or output (encode). For decode shape
	// errors it holds whatever bytes were supplied.
	Packet []byte `cbor:"5,keyasint,omitempty"`

	// Message is set when a message was encoded or successfully decoded.
	Message *wire.Message `cbor:"6,keyasint,omitempty"`

	// Error is set when decoding failed.
	Error *ErrorEventData `cbor:"7,keyasint,omitempty"`

	// PayloadIgnored marks a decoded message whose kind does not use the
	// non-zero payload it carried.
	PayloadIgnored bool `cbor:"8,keyasint,omitempty"`
}

// Direction indicates which way a packet was travelling through the codec.
type Direction uint8

const (
	// DirectionIn is a packet being decoded.
	DirectionIn Direction = 0
	// DirectionOut is a message being encoded.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event.
type Category uint8

const (
	// CategoryMessage is a completed encode or decode.
	CategoryMessage Category = 0
	// CategoryError is a rejected decode.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ErrorKind classifies a decode failure.
type ErrorKind uint8

const (
	ErrorKindOther     ErrorKind = 0
	ErrorKindShape     ErrorKind = 1
	ErrorKindFieldCode ErrorKind = 2
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindOther:
		return "OTHER"
	case ErrorKindShape:
		return "INVALID_INPUT_SHAPE"
	case ErrorKindFieldCode:
		return "UNKNOWN_FIELD_CODE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData describes a decode failure.
type ErrorEventData struct {
	Kind ErrorKind `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`

	// Field and Code are set for ErrorKindFieldCode.
	Field string `cbor:"3,keyasint,omitempty"`
	Code  *uint8 `cbor:"4,keyasint,omitempty"`

	// Length is the rejected input length for ErrorKindShape.
	Length *int `cbor:"5,keyasint,omitempty"`
}

// NewErrorEventData classifies err using the wire error types.
func NewErrorEventData(err error) *ErrorEventData {
	data := &ErrorEventData{Kind: ErrorKindOther, Message: err.Error()}

	var shapeErr *wire.ShapeError
	var fieldErr *wire.FieldCodeError
	switch {
	case errors.As(err, &shapeErr):
		data.Kind = ErrorKindShape
		length := shapeErr.Length
		data.Length = &length
	case errors.As(err, &fieldErr):
		data.Kind = ErrorKindFieldCode
		data.Field = fieldErr.Field.String()
		code := fieldErr.Code
		data.Code = &code
	}
	return data
}
