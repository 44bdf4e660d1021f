package inspect

import (
	"fmt"
	"strings"

	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Format selects how a packet is rendered.
type Format string

const (
	FormatSummary Format = "summary"
	FormatHex     Format = "hex"
	FormatBits    Format = "bits"
)

// ParseFormat resolves a format name (case-insensitive).
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSummary, FormatHex, FormatBits:
		return f, true
	default:
		return "", false
	}
}

const (
	ruleHeavy = "=============================="
	ruleLight = "------------------------------"
)

// Formatter renders packets and messages for display.
type Formatter struct {
	// ASCII replaces the arrow glyph with "->" for terminals without UTF-8.
	ASCII bool
}

// NewFormatter creates a Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) arrow() string {
	if f.ASCII {
		return "->"
	}
	return "→"
}

// FormatPacket renders an encoded message in the given format.
func (f *Formatter) FormatPacket(m wire.Message, format Format) string {
	pkt := wire.Encode(m)
	switch format {
	case FormatHex:
		return pkt.String()
	case FormatBits:
		return pkt.Bits()
	default:
		return f.EncodeSummary(m)
	}
}

// FormatDecoded renders a decode result in the given format. Hex and bits
// formats show the decoded message on one line, or the error.
func (f *Formatter) FormatDecoded(data []byte, format Format) string {
	if format == FormatSummary || format == "" {
		return f.DecodeSummary(data)
	}
	msg, err := wire.Decode(data)
	if err != nil {
		return "error: " + err.Error()
	}
	pkt := wire.Packet{data[0], data[1], data[2]}
	shown := pkt.String()
	if format == FormatBits {
		shown = pkt.Bits()
	}
	return fmt.Sprintf("%s  %s", shown, msg)
}

// EncodeSummary renders the labeled breakdown of an encoded message.
func (f *Formatter) EncodeSummary(m wire.Message) string {
	pkt := wire.Encode(m)
	a := f.arrow()

	var sb strings.Builder
	sb.WriteString(ruleHeavy + "\n")
	sb.WriteString("PACKET ENCODE SUMMARY\n")
	sb.WriteString(ruleHeavy + "\n")
	fmt.Fprintf(&sb, "Message Type: %-13s %s %03b\n", m.Kind, a, uint8(m.Kind)&0b111)
	fmt.Fprintf(&sb, "Conductor ID: %-10s %s %02b\n", m.Conductor, a, uint8(m.Conductor)&0b11)
	fmt.Fprintf(&sb, "Target Group ID: %-10s %s %03b\n", m.Target, a, uint8(m.Target)&0b111)
	sb.WriteString(f.payloadLine(m.Kind, pkt[1], pkt[2], false))
	sb.WriteString(ruleLight + "\n")
	fmt.Fprintf(&sb, "%s Packet: %s\n", a, pkt.Bits())
	fmt.Fprintf(&sb, "%s Hex: %s\n", a, pkt)
	sb.WriteString(ruleHeavy + "\n")
	return sb.String()
}

// DecodeSummary renders the labeled breakdown of a packet. Unassigned codes
// are shown as "Unknown (code)" and the decode error is reported at the end.
func (f *Formatter) DecodeSummary(data []byte) string {
	r := Describe(data)
	a := f.arrow()

	var sb strings.Builder
	sb.WriteString(ruleHeavy + "\n")
	sb.WriteString("PACKET DECODE SUMMARY\n")
	sb.WriteString(ruleHeavy + "\n")
	fmt.Fprintf(&sb, "Input Bits: %s\n", bitGroups(data))
	sb.WriteString(ruleLight + "\n")

	if len(r.Fields) == 3 {
		fmt.Fprintf(&sb, "Message Type: %-13s %s %s\n", r.Fields[0].Name, a, r.Fields[0].Bits())
		fmt.Fprintf(&sb, "Conductor ID: %-10s %s %s\n", r.Fields[1].Name, a, r.Fields[1].Bits())
		fmt.Fprintf(&sb, "Target Group ID: %-10s %s %s\n", r.Fields[2].Name, a, r.Fields[2].Bits())

		if r.Fields[0].Assigned {
			kind := wire.MessageKind(r.Fields[0].Code)
			sb.WriteString(f.payloadLine(kind, data[1], data[2], true))
		} else {
			fmt.Fprintf(&sb, "Payload: %d %s %08b %08b\n", r.Payload, a, data[1], data[2])
		}
		sb.WriteString(ruleLight + "\n")
		fmt.Fprintf(&sb, "%s Packet: %s\n", a, bitGroups(data))
	}

	if r.Err != nil {
		fmt.Fprintf(&sb, "Error: %v\n", r.Err)
	}
	sb.WriteString(ruleHeavy + "\n")
	return sb.String()
}

func (f *Formatter) payloadLine(kind wire.MessageKind, hi, lo byte, decoding bool) string {
	a := f.arrow()
	value := uint16(hi)<<8 | uint16(lo)
	switch kind {
	case wire.KindSetTempo:
		return fmt.Sprintf("Tempo: %d BPM %s %08b %08b\n", value, a, hi, lo)
	case wire.KindStart:
		return fmt.Sprintf("Time: %d ms %s %08b %08b\n", value, a, hi, lo)
	}
	if decoding && value != 0 {
		return fmt.Sprintf("Tempo/Time: N/A %s %08b %08b (ignored)\n", a, hi, lo)
	}
	return fmt.Sprintf("Tempo/Time: N/A %s 00000000 00000000\n", a)
}

func bitGroups(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(parts, " ")
}
