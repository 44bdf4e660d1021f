package wire

import "fmt"

// Packet is the 3-byte wire form of a Message.
type Packet [PacketSize]byte

// Bytes returns the packet as a slice.
func (p Packet) Bytes() []byte {
	return p[:]
}

// Header returns byte 0 (kind, conductor and target).
func (p Packet) Header() byte {
	return p[0]
}

// Payload returns bytes 1-2 as a big-endian uint16.
func (p Packet) Payload() uint16 {
	return uint16(p[1])<<8 | uint16(p[2])
}

// String returns the packet as upper-case hex bytes separated by spaces ("4A 00 78").
func (p Packet) String() string {
	return fmt.Sprintf("%02X %02X %02X", p[0], p[1], p[2])
}

// Bits returns the packet as space-separated 8-bit binary groups.
func (p Packet) Bits() string {
	return fmt.Sprintf("%08b %08b %08b", p[0], p[1], p[2])
}

// Encode converts a message to its 3-byte wire form.
//
// Encode never fails. The payload is written only for SetTempo and Start;
// for every other kind bytes 1-2 are zero regardless of m.Payload.
// Out-of-domain enum values are masked to their field width; use
// Message.Validate to reject them before encoding.
func Encode(m Message) Packet {
	var payload uint16
	if m.Kind.CarriesPayload() {
		payload = m.Payload
	}
	return Packet{
		packHeader(uint8(m.Kind), uint8(m.Conductor), uint8(m.Target)),
		byte(payload >> 8),
		byte(payload),
	}
}

// Decode parses a 3-byte packet.
//
// Inputs of any other length return a *ShapeError (ErrInvalidInputShape).
// Fields are checked in wire order (kind, conductor, target) and the first
// unassigned code returns a *FieldCodeError (ErrUnknownFieldCode); later
// fields are not reported. A non-zero payload on a kind that does not use it
// is kept in the result and is not an error.
func Decode(data []byte) (Message, error) {
	if len(data) != PacketSize {
		return Message{}, &ShapeError{Length: len(data)}
	}
	var p Packet
	copy(p[:], data)
	return DecodePacket(p)
}

// DecodePacket parses a packet that is already known to be 3 bytes.
func DecodePacket(p Packet) (Message, error) {
	header := p.Header()

	kindCode := FieldKind.Extract(header)
	kind, ok := messageKindFromCode(kindCode)
	if !ok {
		return Message{}, &FieldCodeError{Field: FieldKind, Code: kindCode}
	}

	conductorCode := FieldConductor.Extract(header)
	conductor, ok := conductorFromCode(conductorCode)
	if !ok {
		return Message{}, &FieldCodeError{Field: FieldConductor, Code: conductorCode}
	}

	targetCode := FieldTarget.Extract(header)
	target, ok := targetFromCode(targetCode)
	if !ok {
		return Message{}, &FieldCodeError{Field: FieldTarget, Code: targetCode}
	}

	return Message{
		Kind:      kind,
		Conductor: conductor,
		Target:    target,
		Payload:   p.Payload(),
	}, nil
}

// Equal reports whether two messages encode to the same packet.
func Equal(a, b Message) bool {
	return Encode(a) == Encode(b)
}
