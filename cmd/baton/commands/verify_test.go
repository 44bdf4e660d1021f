package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunVerifyBundledVectors(t *testing.T) {
	var out bytes.Buffer
	sum, err := RunVerify("../../../testdata/vectors.yaml", false, &out)
	if err != nil {
		t.Fatalf("RunVerify failed: %v\n%s", err, out.String())
	}
	if sum.Failed != 0 || sum.Total == 0 {
		t.Errorf("summary = %+v, want all passing", sum)
	}
	if !strings.HasPrefix(out.String(), "Suite: baton-core\n") {
		t.Errorf("unexpected header: %q", out.String())
	}
	if strings.Contains(out.String(), "PASS") {
		t.Error("non-verbose run should not list passing vectors")
	}
}

func TestRunVerifyReportsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `name: broken
vectors:
  - id: BAD-001
    op: encode
    message: {kind: STOP, conductor: C4, target: ALL}
    packet: "98 00 01"
  - id: OK-001
    op: decode
    packet: "98 00 00"
    message: {kind: STOP, conductor: C4, target: ALL}
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	sum, err := RunVerify(path, true, &out)
	if err == nil {
		t.Fatal("expected failure")
	}
	if sum.Failed != 1 || sum.Passed != 1 {
		t.Errorf("summary = %+v", sum)
	}
	text := out.String()
	for _, want := range []string{"FAIL BAD-001", "PASS OK-001", "1/2 passed, 1 failed"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunVerifyMissingFile(t *testing.T) {
	var out bytes.Buffer
	if _, err := RunVerify(filepath.Join(t.TempDir(), "none.yaml"), false, &out); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if err := RunVersion(&out); err != nil {
		t.Fatalf("RunVersion failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Baton protocol 1.0", "010  SET_TEMPO", "11   C4", "111  OTHER3"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}
