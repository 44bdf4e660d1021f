package wire

import (
	"fmt"
	"time"
)

// MaxPayload is the largest value the 16-bit payload can carry.
const MaxPayload = 1<<16 - 1

// Message is the decoded form of a Baton packet.
//
// Payload is meaningful only when Kind is KindSetTempo (beats per minute) or
// KindStart (elapsed milliseconds). For every other kind the encoder emits
// zero, and a decoded non-zero payload is kept but ignored.
//
// CBOR encoding (used by protocol capture):
//
//	{
//	  1: kind,       // uint8
//	  2: conductor,  // uint8
//	  3: target,     // uint8
//	  4: payload     // uint16, omitted when zero
//	}
type Message struct {
	Kind      MessageKind `cbor:"1,keyasint"`
	Conductor ConductorID `cbor:"2,keyasint"`
	Target    TargetGroup `cbor:"3,keyasint"`
	Payload   uint16      `cbor:"4,keyasint,omitempty"`
}

// NewMessage creates a message for a kind that carries no payload.
func NewMessage(kind MessageKind, conductor ConductorID, target TargetGroup) Message {
	return Message{Kind: kind, Conductor: conductor, Target: target}
}

// NewSetTempo creates a SetTempo message with the given beats per minute.
func NewSetTempo(conductor ConductorID, target TargetGroup, bpm uint16) Message {
	return Message{Kind: KindSetTempo, Conductor: conductor, Target: target, Payload: bpm}
}

// NewStart creates a Start message carrying the elapsed time in milliseconds.
// Elapsed times outside 0..65535 ms cannot be represented and are rejected.
func NewStart(conductor ConductorID, target TargetGroup, elapsed time.Duration) (Message, error) {
	ms := elapsed.Milliseconds()
	if elapsed < 0 || ms > MaxPayload {
		return Message{}, fmt.Errorf("elapsed time %s out of range 0-%dms", elapsed, MaxPayload)
	}
	return Message{Kind: KindStart, Conductor: conductor, Target: target, Payload: uint16(ms)}, nil
}

// Validate checks that every field holds an assigned code.
// Encode does not call Validate; input collectors should.
func (m Message) Validate() error {
	if !m.Kind.IsValid() {
		return fmt.Errorf("invalid message kind: %d", m.Kind)
	}
	if !m.Conductor.IsValid() {
		return fmt.Errorf("invalid conductor: %d", m.Conductor)
	}
	if !m.Target.IsValid() {
		return fmt.Errorf("invalid target group: %d", m.Target)
	}
	return nil
}

// Tempo returns the tempo in beats per minute.
// The second result is false unless the message is a SetTempo message.
func (m Message) Tempo() (uint16, bool) {
	if m.Kind != KindSetTempo {
		return 0, false
	}
	return m.Payload, true
}

// Elapsed returns the elapsed time carried by a Start message.
// The second result is false for every other kind.
func (m Message) Elapsed() (time.Duration, bool) {
	if m.Kind != KindStart {
		return 0, false
	}
	return time.Duration(m.Payload) * time.Millisecond, true
}

// PayloadIgnored returns true if the message carries a non-zero payload
// its kind does not use. Such messages are tolerated, not rejected.
func (m Message) PayloadIgnored() bool {
	return !m.Kind.CarriesPayload() && m.Payload != 0
}

// Canonical returns the message as it will appear on the wire, with the
// payload zeroed for kinds that do not use it.
func (m Message) Canonical() Message {
	if !m.Kind.CarriesPayload() {
		m.Payload = 0
	}
	return m
}

// String returns a compact description of the message.
func (m Message) String() string {
	switch m.Kind {
	case KindSetTempo:
		return fmt.Sprintf("%s %s->%s tempo=%dbpm", m.Kind, m.Conductor, m.Target, m.Payload)
	case KindStart:
		return fmt.Sprintf("%s %s->%s elapsed=%dms", m.Kind, m.Conductor, m.Target, m.Payload)
	default:
		return fmt.Sprintf("%s %s->%s", m.Kind, m.Conductor, m.Target)
	}
}
