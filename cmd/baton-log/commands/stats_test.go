package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/baton-protocol/baton-go/pkg/log"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

func TestStatsAggregates(t *testing.T) {
	s := newStats()
	for _, e := range sessionEvents() {
		s.add(e)
	}

	if s.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", s.TotalEvents)
	}
	if s.EventsByDirection[log.DirectionOut] != 2 || s.EventsByDirection[log.DirectionIn] != 3 {
		t.Errorf("by direction = %v", s.EventsByDirection)
	}
	if s.MessagesByKind[wire.KindSetTempo] != 2 || s.MessagesByKind[wire.KindStop] != 1 {
		t.Errorf("by kind = %v", s.MessagesByKind)
	}
	if s.TempoCount != 2 || s.TempoMin != 90 || s.TempoMax != 120 {
		t.Errorf("tempo = %d..%d over %d", s.TempoMin, s.TempoMax, s.TempoCount)
	}
	if s.IgnoredPayloads != 1 {
		t.Errorf("IgnoredPayloads = %d, want 1", s.IgnoredPayloads)
	}
	if s.ErrorsByKind[log.ErrorKindShape] != 1 || s.ErrorsByKind[log.ErrorKindFieldCode] != 1 {
		t.Errorf("errors = %v", s.ErrorsByKind)
	}
	if len(s.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(s.Sessions))
	}
	for _, sess := range s.Sessions {
		if sess.Encoded != 2 || sess.Decoded != 3 || sess.Errors != 2 {
			t.Errorf("session = %+v", sess)
		}
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestCapture(t, sessionEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 5",
		"SET_TEMPO:",
		"PERCUSSION:",
		"Tempo: 90-120 BPM over 2 messages",
		"Ignored Payloads: 1",
		"Sessions: 1",
		"[abc12345] 5 events (2 out, 3 in), duration 4s",
		"Errors: 2",
		"UNKNOWN_FIELD_CODE:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestCapture(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
