package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/baton-protocol/baton-go/pkg/log"
)

func TestFormatEncodeEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sessionEvents()[0])
	output := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.123456Z",
		"[sess:abc12345]",
		"OUT MESSAGE SET_TEMPO",
		"Packet: 4A 00 78 (01001010 00000000 01111000)",
		"Conductor: C2  Target: PERCUSSION",
		"Tempo: 120 BPM",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestFormatIgnoredPayload(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sessionEvents()[2])
	output := buf.String()

	if !strings.Contains(output, "IN  MESSAGE STOP") {
		t.Errorf("expected header, got:\n%s", output)
	}
	if !strings.Contains(output, "Payload: 999 (ignored)") {
		t.Errorf("expected ignored payload, got:\n%s", output)
	}
	if strings.Contains(output, "Tempo:") {
		t.Errorf("unexpected tempo line:\n%s", output)
	}
}

func TestFormatErrorEvents(t *testing.T) {
	events := sessionEvents()

	var buf bytes.Buffer
	formatEvent(&buf, events[3])
	output := buf.String()
	if !strings.Contains(output, "ERROR UNKNOWN_FIELD_CODE") {
		t.Errorf("expected error header, got:\n%s", output)
	}
	if !strings.Contains(output, "Field: kind  Code: 7") {
		t.Errorf("expected field details, got:\n%s", output)
	}

	buf.Reset()
	formatEvent(&buf, events[4])
	output = buf.String()
	if !strings.Contains(output, "Input: 4A 00 (2 bytes)") {
		t.Errorf("expected raw input, got:\n%s", output)
	}
	if !strings.Contains(output, "Length: 2") {
		t.Errorf("expected length, got:\n%s", output)
	}
}

func TestRunViewAppliesFilter(t *testing.T) {
	path := createTestCapture(t, sessionEvents())

	errCat := log.CategoryError
	var buf bytes.Buffer
	if err := RunView(path, log.Filter{Category: &errCat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "SET_TEMPO") {
		t.Errorf("filtered view contains message events:\n%s", output)
	}
	if got := strings.Count(output, "[sess:"); got != 2 {
		t.Errorf("got %d events, want 2", got)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/capture.blog", log.Filter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}
