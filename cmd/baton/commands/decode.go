package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/baton-protocol/baton-go/pkg/inspect"
)

// RunDecode parses packet text, decodes it and writes the report.
// The report is written even when decoding fails; the decode error is
// returned so the caller can set the exit status.
func (s *Session) RunDecode(text string, w io.Writer) error {
	data, err := inspect.ParsePacket(text)
	if err != nil {
		return err
	}

	msg, err := s.Recorder.Decode(data)
	if err != nil {
		s.Logger.Debug("decode rejected", "input", fmt.Sprintf("%X", data), "error", err)
	} else {
		s.Logger.Debug("decoded", "message", msg.String(), "payload_ignored", msg.PayloadIgnored())
	}

	out := s.Formatter.FormatDecoded(data, s.Format)
	fmt.Fprint(w, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(w)
	}
	return err
}
