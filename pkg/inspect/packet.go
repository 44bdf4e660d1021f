package inspect

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPacketText is returned when packet text is neither binary groups nor hex.
var ErrPacketText = errors.New("inspect: unrecognized packet text")

// ParsePacket parses operator-entered packet text.
//
// Two notations are accepted: whitespace-separated 8-bit binary groups
// ("01001010 00000000 01111000") and hex, with or without spaces or 0x
// prefixes ("4A 00 78", "0x4a0078", "0x4A 0x00 0x78"). Text in which every
// group is exactly eight binary digits is read as binary.
//
// ParsePacket does not check the byte count; wire.Decode reports a wrong
// length as ErrInvalidInputShape.
func ParsePacket(text string) ([]byte, error) {
	groups := strings.Fields(text)
	if len(groups) == 0 {
		return []byte{}, nil
	}

	if isBinaryGroups(groups) {
		out := make([]byte, len(groups))
		for i, g := range groups {
			v, err := strconv.ParseUint(g, 2, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrPacketText, g, err)
			}
			out[i] = byte(v)
		}
		return out, nil
	}

	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(strings.TrimPrefix(strings.TrimPrefix(g, "0x"), "0X"))
	}
	out, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrPacketText, text, err)
	}
	return out, nil
}

func isBinaryGroups(groups []string) bool {
	for _, g := range groups {
		if len(g) != 8 || strings.Trim(g, "01") != "" {
			return false
		}
	}
	return true
}
