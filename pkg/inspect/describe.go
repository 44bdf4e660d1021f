package inspect

import (
	"fmt"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

// FieldReport describes one header field of a packet.
type FieldReport struct {
	Field    wire.Field
	Code     uint8
	Assigned bool

	// Name is the variant name, or "Unknown (code)" for an unassigned code.
	Name string
}

// Bits returns the code as a zero-padded binary string of the field width.
func (r FieldReport) Bits() string {
	return fmt.Sprintf("%0*b", r.Field.Width(), r.Code)
}

// Report is a complete, non-aborting description of a packet.
type Report struct {
	Input []byte

	// Fields holds kind, conductor and target in wire order. It is empty
	// when the input is not exactly one packet long.
	Fields []FieldReport

	Payload uint16

	// Message is the decoded message, nil when Err is set.
	Message *wire.Message

	// Err is the wire.Decode error, if any.
	Err error
}

// Describe reports every field of data. Unlike wire.Decode it keeps going
// after an unassigned code so that all fields can be shown, but Err carries
// exactly the error wire.Decode returns.
func Describe(data []byte) Report {
	r := Report{Input: append([]byte(nil), data...)}

	msg, err := wire.Decode(data)
	r.Err = err
	if err == nil {
		r.Message = &msg
	}
	if len(data) != wire.PacketSize {
		return r
	}

	header := data[0]
	for _, f := range []wire.Field{wire.FieldKind, wire.FieldConductor, wire.FieldTarget} {
		code := f.Extract(header)
		fr := FieldReport{Field: f, Code: code, Assigned: f.IsAssigned(code)}
		if fr.Assigned {
			fr.Name = fieldName(f, code)
		} else {
			fr.Name = fmt.Sprintf("Unknown (%d)", code)
		}
		r.Fields = append(r.Fields, fr)
	}
	r.Payload = uint16(data[1])<<8 | uint16(data[2])
	return r
}

func fieldName(f wire.Field, code uint8) string {
	switch f {
	case wire.FieldKind:
		return wire.MessageKind(code).String()
	case wire.FieldConductor:
		return wire.ConductorID(code).String()
	case wire.FieldTarget:
		return wire.TargetGroup(code).String()
	default:
		return ""
	}
}
