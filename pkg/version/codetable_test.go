package version

import (
	"strings"
	"testing"
)

func TestLoadCurrentCodeTable(t *testing.T) {
	table, err := LoadCurrentCodeTable()
	if err != nil {
		t.Fatalf("LoadCurrentCodeTable() error: %v", err)
	}
	if table.Version != Current {
		t.Errorf("Version = %q, want %q", table.Version, Current)
	}
	if len(table.Kinds) != 6 || len(table.Conductors) != 4 || len(table.Targets) != 8 {
		t.Errorf("sizes = %d/%d/%d, want 6/4/8", len(table.Kinds), len(table.Conductors), len(table.Targets))
	}
}

func TestCurrentCodeTableMatchesCodec(t *testing.T) {
	table, err := LoadCurrentCodeTable()
	if err != nil {
		t.Fatal(err)
	}
	result := table.Validate()
	if !result.Valid {
		t.Errorf("code table disagrees with codec:\n%s", strings.Join(result.Errors, "\n"))
	}
}

func TestLoadCodeTableCaches(t *testing.T) {
	a, err := LoadCodeTable("1.0")
	if err != nil {
		t.Fatal(err)
	}
	b, err := LoadCodeTable("1.0")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected cached table on second load")
	}
}

func TestLoadCodeTableNotFound(t *testing.T) {
	if _, err := LoadCodeTable("99.99"); err == nil {
		t.Fatal("LoadCodeTable(99.99) should return error")
	}
}

func TestAvailableCodeTables(t *testing.T) {
	versions, err := AvailableCodeTables()
	if err != nil {
		t.Fatalf("AvailableCodeTables() error: %v", err)
	}
	found := false
	for _, v := range versions {
		if v == Current {
			found = true
		}
	}
	if !found {
		t.Errorf("AvailableCodeTables() = %v, missing %q", versions, Current)
	}
}

func TestValidateDetectsMismatch(t *testing.T) {
	table := &CodeTable{
		Kinds: []Entry{
			{Code: 0, Name: "DIRECT_PAIRING"},
			{Code: 1, Name: "CONNECT"},
			{Code: 6, Name: "SYNC"},
		},
		ReservedKinds: []uint8{2},
	}

	result := table.Validate()
	if result.Valid {
		t.Fatal("expected mismatches")
	}

	joined := strings.Join(result.Errors, "\n")
	for _, want := range []string{
		"kind code 1: table says CONNECT, codec says GROUP_PAIRING",
		"kind code 6 (SYNC) not assigned by codec",
		"kind code 3 assigned by codec but missing from table",
		"conductor code 0 assigned by codec but missing from table",
		"kind code 2 is reserved but assigned by codec",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing error %q in:\n%s", want, joined)
		}
	}
}
