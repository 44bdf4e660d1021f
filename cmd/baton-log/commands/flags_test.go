package commands

import (
	"testing"

	"github.com/baton-protocol/baton-go/pkg/log"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

func TestParseDirectionFlag(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Direction
		wantErr bool
	}{
		{"in", log.DirectionIn, false},
		{"OUT", log.DirectionOut, false},
		{"decode", log.DirectionIn, false},
		{"sideways", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDirectionFlag(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirectionFlag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirectionFlag(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseCategoryFlag(t *testing.T) {
	if c, err := ParseCategoryFlag("Error"); err != nil || c != log.CategoryError {
		t.Errorf("ParseCategoryFlag(Error) = %v, %v", c, err)
	}
	if _, err := ParseCategoryFlag("state"); err == nil {
		t.Error("expected error for state")
	}
}

func TestBuildFilter(t *testing.T) {
	f, err := BuildFilter(FilterOptions{
		SessionID: "abc",
		Direction: "in",
		Category:  "message",
		Kind:      "stop",
		Conductor: "C4",
		Target:    "all",
	})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	if f.SessionID != "abc" || *f.Direction != log.DirectionIn || *f.Category != log.CategoryMessage {
		t.Errorf("filter = %+v", f)
	}
	if *f.Kind != wire.KindStop || *f.Conductor != wire.ConductorC4 || *f.Target != wire.TargetAll {
		t.Errorf("message criteria = %v %v %v", *f.Kind, *f.Conductor, *f.Target)
	}
}

func TestBuildFilterErrors(t *testing.T) {
	for _, opts := range []FilterOptions{
		{Direction: "up"},
		{Category: "state"},
		{Kind: "connect"},
		{Conductor: "C9"},
		{Target: "timpani"},
		{TimeStart: "yesterday"},
		{TimeEnd: "2026-13-01"},
	} {
		if _, err := BuildFilter(opts); err == nil {
			t.Errorf("BuildFilter(%+v) expected error", opts)
		}
	}
}
