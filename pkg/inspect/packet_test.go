package inspect

import (
	"bytes"
	"errors"
	"testing"
)

func TestParsePacket(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"binary groups", "01001010 00000000 01111000", []byte{0x4A, 0x00, 0x78}},
		{"binary extra whitespace", "  00101001\t00000011  00100000 ", []byte{0x29, 0x03, 0x20}},
		{"hex spaced", "4A 00 78", []byte{0x4A, 0x00, 0x78}},
		{"hex compact lower", "4a0078", []byte{0x4A, 0x00, 0x78}},
		{"hex prefixed", "0x980000", []byte{0x98, 0x00, 0x00}},
		{"hex prefixed per byte", "0x4A 0x00 0X78", []byte{0x4A, 0x00, 0x78}},
		{"two bytes", "4A 00", []byte{0x4A, 0x00}},
		{"four binary groups", "00000000 00000000 00000000 00000000", []byte{0, 0, 0, 0}},
		{"empty", "   ", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePacket(tt.input)
			if err != nil {
				t.Fatalf("ParsePacket(%q) error: %v", tt.input, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ParsePacket(%q) = %X, want %X", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePacketRejectsGarbage(t *testing.T) {
	for _, input := range []string{"zz 00 78", "4A0", "12 3G"} {
		_, err := ParsePacket(input)
		if !errors.Is(err, ErrPacketText) {
			t.Errorf("ParsePacket(%q) error = %v, want ErrPacketText", input, err)
		}
	}
}
