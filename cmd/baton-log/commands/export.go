package commands

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/baton-protocol/baton-go/pkg/log"
)

// exportRecord is the flat, JSON-friendly form of an event.
type exportRecord struct {
	Timestamp      string  `json:"timestamp"`
	SessionID      string  `json:"session_id"`
	Direction      string  `json:"direction"`
	Category       string  `json:"category"`
	Packet         string  `json:"packet,omitempty"`
	Kind           string  `json:"kind,omitempty"`
	Conductor      string  `json:"conductor,omitempty"`
	Target         string  `json:"target,omitempty"`
	Payload        *uint16 `json:"payload,omitempty"`
	PayloadIgnored bool    `json:"payload_ignored,omitempty"`
	ErrorKind      string  `json:"error_kind,omitempty"`
	Error          string  `json:"error,omitempty"`
}

func newExportRecord(event log.Event) exportRecord {
	rec := exportRecord{
		Timestamp:      event.Timestamp.UTC().Format(timestampLayout),
		SessionID:      event.SessionID,
		Direction:      event.Direction.String(),
		Category:       event.Category.String(),
		Packet:         hex.EncodeToString(event.Packet),
		PayloadIgnored: event.PayloadIgnored,
	}
	if m := event.Message; m != nil {
		rec.Kind = m.Kind.String()
		rec.Conductor = m.Conductor.String()
		rec.Target = m.Target.String()
		if m.Kind.CarriesPayload() || event.PayloadIgnored {
			payload := m.Payload
			rec.Payload = &payload
		}
	}
	if e := event.Error; e != nil {
		rec.ErrorKind = e.Kind.String()
		rec.Error = e.Message
	}
	return rec
}

var csvHeader = []string{
	"timestamp", "session_id", "direction", "category", "packet",
	"kind", "conductor", "target", "payload", "payload_ignored", "error_kind", "error",
}

func (r exportRecord) csvRow() []string {
	payload := ""
	if r.Payload != nil {
		payload = strconv.Itoa(int(*r.Payload))
	}
	ignored := ""
	if r.PayloadIgnored {
		ignored = "true"
	}
	return []string{
		r.Timestamp, r.SessionID, r.Direction, r.Category, r.Packet,
		r.Kind, r.Conductor, r.Target, payload, ignored, r.ErrorKind, r.Error,
	}
}

// RunExport writes the matching events of a capture file as JSONL or CSV.
// An empty output writes to stdout.
func RunExport(path, format, output string, filter log.Filter) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(newExportRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(newExportRecord(event).csvRow()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
