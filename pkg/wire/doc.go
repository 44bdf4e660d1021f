// Package wire defines the Baton wire format and its codec.
//
// Every Baton message travels as a fixed 3-byte packet. There is no length
// prefix, checksum or sequence number; framing is the caller's concern.
//
// # Packet Layout
//
//	Byte 0: KKKCCTTT   K = message kind (3 bits)
//	                   C = conductor ID (2 bits)
//	                   T = target group (3 bits)
//	Byte 1: payload high byte
//	Byte 2: payload low byte
//
// The payload is a big-endian uint16 whose meaning depends on the kind:
//   - SetTempo: tempo in beats per minute
//   - Start: elapsed milliseconds since the reference point
//   - all other kinds: unused, always encoded as zero
//
// # Code Table
//
// Message kinds use codes 0-5; codes 6 and 7 are reserved and rejected on
// decode. Conductor IDs (0-3) and target groups (0-7) are dense.
//
// # Usage
//
//	pkt := wire.Encode(wire.NewSetTempo(wire.ConductorC2, wire.TargetPercussion, 120))
//	// pkt == wire.Packet{0x4A, 0x00, 0x78}
//
//	msg, err := wire.Decode(pkt[:])
//	if errors.Is(err, wire.ErrUnknownFieldCode) {
//	    // reserved or unassigned code
//	}
//
// Encode and Decode are pure functions and safe for concurrent use.
package wire
