package wire

// PacketSize is the exact length of every Baton packet in bytes.
const PacketSize = 3

// Field identifies one of the bit fields packed into byte 0.
type Field uint8

const (
	FieldKind      Field = 0
	FieldConductor Field = 1
	FieldTarget    Field = 2
)

// Bit layout of byte 0, most significant bit first: [kind:3][conductor:2][target:3].
const (
	kindWidth      = 3
	conductorWidth = 2
	targetWidth    = 3

	kindShift      = conductorWidth + targetWidth // 5
	conductorShift = targetWidth                  // 3
	targetShift    = 0

	kindMask      uint8 = 1<<kindWidth - 1      // 0b111
	conductorMask uint8 = 1<<conductorWidth - 1 // 0b11
	targetMask    uint8 = 1<<targetWidth - 1    // 0b111
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldKind:
		return "kind"
	case FieldConductor:
		return "conductor"
	case FieldTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Width returns the field width in bits.
func (f Field) Width() int {
	switch f {
	case FieldKind:
		return kindWidth
	case FieldConductor:
		return conductorWidth
	case FieldTarget:
		return targetWidth
	default:
		return 0
	}
}

// Extract returns the raw code of the field from a header byte.
func (f Field) Extract(b byte) uint8 {
	switch f {
	case FieldKind:
		return (b >> kindShift) & kindMask
	case FieldConductor:
		return (b >> conductorShift) & conductorMask
	case FieldTarget:
		return (b >> targetShift) & targetMask
	default:
		return 0
	}
}

// IsAssigned returns true if code maps to a variant of the field's domain.
func (f Field) IsAssigned(code uint8) bool {
	var ok bool
	switch f {
	case FieldKind:
		_, ok = messageKindFromCode(code)
	case FieldConductor:
		_, ok = conductorFromCode(code)
	case FieldTarget:
		_, ok = targetFromCode(code)
	}
	return ok
}

// packHeader composes byte 0. Each code is masked to its width so an
// out-of-domain value cannot spill into a neighbouring field.
func packHeader(kind, conductor, target uint8) byte {
	return (kind&kindMask)<<kindShift |
		(conductor&conductorMask)<<conductorShift |
		(target&targetMask)<<targetShift
}
