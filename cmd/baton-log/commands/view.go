package commands

import (
	"fmt"
	"io"

	"github.com/baton-protocol/baton-go/pkg/log"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	label := "Unknown"
	switch {
	case event.Message != nil:
		label = event.Message.Kind.String()
	case event.Error != nil:
		label = event.Error.Kind.String()
	}

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s %s\n",
		event.Timestamp.UTC().Format(timestampLayout),
		shortenSessionID(event.SessionID),
		event.Direction, event.Category, label)

	if len(event.Packet) == wire.PacketSize {
		pkt := wire.Packet{event.Packet[0], event.Packet[1], event.Packet[2]}
		fmt.Fprintf(w, "  Packet: %s (%s)\n", pkt, pkt.Bits())
	} else if len(event.Packet) > 0 {
		fmt.Fprintf(w, "  Input: % X (%d bytes)\n", event.Packet, len(event.Packet))
	}

	switch {
	case event.Message != nil:
		formatMessageDetails(w, event.Message, event.PayloadIgnored)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

func formatMessageDetails(w io.Writer, m *wire.Message, ignored bool) {
	fmt.Fprintf(w, "  Conductor: %s  Target: %s\n", m.Conductor, m.Target)
	if bpm, ok := m.Tempo(); ok {
		fmt.Fprintf(w, "  Tempo: %d BPM\n", bpm)
	}
	if elapsed, ok := m.Elapsed(); ok {
		fmt.Fprintf(w, "  Elapsed: %d ms\n", elapsed.Milliseconds())
	}
	if ignored {
		fmt.Fprintf(w, "  Payload: %d (ignored)\n", m.Payload)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Field != "" && e.Code != nil {
		fmt.Fprintf(w, "  Field: %s  Code: %d\n", e.Field, *e.Code)
	}
	if e.Length != nil {
		fmt.Fprintf(w, "  Length: %d\n", *e.Length)
	}
}

// RunView prints every event of the capture file matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
