package wire

// MessageKind is the semantic category of a message.
// It occupies the top 3 bits of byte 0.
type MessageKind uint8

const (
	// KindDirectPairing pairs a conductor with a single receiver.
	KindDirectPairing MessageKind = 0

	// KindGroupPairing pairs a conductor with a target group.
	KindGroupPairing MessageKind = 1

	// KindSetTempo sets the tempo. Payload carries beats per minute.
	KindSetTempo MessageKind = 2

	// KindStart starts playback. Payload carries elapsed milliseconds.
	KindStart MessageKind = 3

	// KindStop stops playback.
	KindStop MessageKind = 4

	// KindAlert signals an attention alert to the target group.
	KindAlert MessageKind = 5
)

// Codes 6 and 7 are reserved in this revision of the code table.
const (
	kindReserved6 uint8 = 6
	kindReserved7 uint8 = 7
)

// String returns the message kind name.
func (k MessageKind) String() string {
	switch k {
	case KindDirectPairing:
		return "DIRECT_PAIRING"
	case KindGroupPairing:
		return "GROUP_PAIRING"
	case KindSetTempo:
		return "SET_TEMPO"
	case KindStart:
		return "START"
	case KindStop:
		return "STOP"
	case KindAlert:
		return "ALERT"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the kind has an assigned code.
func (k MessageKind) IsValid() bool {
	_, ok := messageKindFromCode(uint8(k))
	return ok
}

// CarriesPayload returns true if the payload is meaningful for this kind.
func (k MessageKind) CarriesPayload() bool {
	return k == KindSetTempo || k == KindStart
}

// messageKindFromCode maps a raw 3-bit code to its kind.
func messageKindFromCode(code uint8) (MessageKind, bool) {
	switch code {
	case 0:
		return KindDirectPairing, true
	case 1:
		return KindGroupPairing, true
	case 2:
		return KindSetTempo, true
	case 3:
		return KindStart, true
	case 4:
		return KindStop, true
	case 5:
		return KindAlert, true
	case kindReserved6, kindReserved7:
		return 0, false
	default:
		return 0, false
	}
}

// ConductorID identifies the control unit that sends or is addressed by a message.
// It occupies bits 4-3 of byte 0. All four codes are assigned.
type ConductorID uint8

const (
	ConductorC1 ConductorID = 0
	ConductorC2 ConductorID = 1
	ConductorC3 ConductorID = 2
	ConductorC4 ConductorID = 3
)

// String returns the conductor name.
func (c ConductorID) String() string {
	switch c {
	case ConductorC1:
		return "C1"
	case ConductorC2:
		return "C2"
	case ConductorC3:
		return "C3"
	case ConductorC4:
		return "C4"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the conductor has an assigned code.
func (c ConductorID) IsValid() bool {
	_, ok := conductorFromCode(uint8(c))
	return ok
}

// Number returns the 1-based conductor number used by operators (C1 = 1).
func (c ConductorID) Number() int {
	return int(c) + 1
}

func conductorFromCode(code uint8) (ConductorID, bool) {
	switch code {
	case 0:
		return ConductorC1, true
	case 1:
		return ConductorC2, true
	case 2:
		return ConductorC3, true
	case 3:
		return ConductorC4, true
	default:
		return 0, false
	}
}

// TargetGroup is the addressed subset of receivers.
// It occupies the low 3 bits of byte 0. All eight codes are assigned.
type TargetGroup uint8

const (
	// TargetAll broadcasts to every receiver.
	TargetAll        TargetGroup = 0
	TargetWoodwinds  TargetGroup = 1
	TargetPercussion TargetGroup = 2
	TargetBrass      TargetGroup = 3
	TargetStrings    TargetGroup = 4
	TargetOther1     TargetGroup = 5
	TargetOther2     TargetGroup = 6
	TargetOther3     TargetGroup = 7
)

// String returns the target group name.
func (t TargetGroup) String() string {
	switch t {
	case TargetAll:
		return "ALL"
	case TargetWoodwinds:
		return "WOODWINDS"
	case TargetPercussion:
		return "PERCUSSION"
	case TargetBrass:
		return "BRASS"
	case TargetStrings:
		return "STRINGS"
	case TargetOther1:
		return "OTHER1"
	case TargetOther2:
		return "OTHER2"
	case TargetOther3:
		return "OTHER3"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the target group has an assigned code.
func (t TargetGroup) IsValid() bool {
	_, ok := targetFromCode(uint8(t))
	return ok
}

func targetFromCode(code uint8) (TargetGroup, bool) {
	switch code {
	case 0:
		return TargetAll, true
	case 1:
		return TargetWoodwinds, true
	case 2:
		return TargetPercussion, true
	case 3:
		return TargetBrass, true
	case 4:
		return TargetStrings, true
	case 5:
		return TargetOther1, true
	case 6:
		return TargetOther2, true
	case 7:
		return TargetOther3, true
	default:
		return 0, false
	}
}

// MessageKinds returns all assigned message kinds in code order.
func MessageKinds() []MessageKind {
	return []MessageKind{
		KindDirectPairing, KindGroupPairing, KindSetTempo,
		KindStart, KindStop, KindAlert,
	}
}

// Conductors returns all conductor IDs in code order.
func Conductors() []ConductorID {
	return []ConductorID{ConductorC1, ConductorC2, ConductorC3, ConductorC4}
}

// TargetGroups returns all target groups in code order.
func TargetGroups() []TargetGroup {
	return []TargetGroup{
		TargetAll, TargetWoodwinds, TargetPercussion, TargetBrass,
		TargetStrings, TargetOther1, TargetOther2, TargetOther3,
	}
}
