package main

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baton-protocol/baton-go/cmd/baton/commands"
	"github.com/baton-protocol/baton-go/internal/config"
	"github.com/baton-protocol/baton-go/pkg/inspect"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

func newTestFlagSet() (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	configPath := commonFlags(fs)
	fs.String("conductor", "C1", "")
	fs.String("target", "ALL", "")
	fs.String("kind", "", "")
	return fs, configPath
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baton.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "conductor: C3\ntarget: brass\nformat: hex\n")

	fs, configPath := newTestFlagSet()
	if err := fs.Parse([]string{"-config", path, "-target", "strings", "-kind", "stop"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(fs, *configPath)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	// Flag wins over file.
	if cfg.TargetGroup() != wire.TargetStrings {
		t.Errorf("target = %s, want STRINGS", cfg.TargetGroup())
	}
	// File wins over flag defaults that were not set explicitly.
	if cfg.ConductorID() != wire.ConductorC3 {
		t.Errorf("conductor = %s, want C3", cfg.ConductorID())
	}
	if cfg.OutputFormat() != inspect.FormatHex {
		t.Errorf("format = %s, want hex", cfg.OutputFormat())
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	fs, configPath := newTestFlagSet()
	if err := fs.Parse([]string{"-format", "bits"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(fs, *configPath)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.OutputFormat() != inspect.FormatBits {
		t.Errorf("format = %s, want bits", cfg.OutputFormat())
	}
	if cfg.ConductorID() != wire.ConductorC1 {
		t.Errorf("conductor = %s, want C1", cfg.ConductorID())
	}
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	fs, configPath := newTestFlagSet()
	if err := fs.Parse([]string{"-conductor", "C9"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(fs, *configPath); err == nil {
		t.Error("expected validation error")
	}
}

func TestOpenSessionWithCapture(t *testing.T) {
	fs, configPath := newTestFlagSet()
	capture := filepath.Join(t.TempDir(), "session.blog")
	if err := fs.Parse([]string{"-capture", capture, "-log-level", "error", "-format", "hex"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(fs, *configPath)
	if err != nil {
		t.Fatal(err)
	}

	session, closeFn, err := openSession(cfg, io.Discard)
	if err != nil {
		t.Fatalf("openSession failed: %v", err)
	}
	if _, err := session.Recorder.Decode([]byte{0x4A, 0x00, 0x78}); err != nil {
		t.Fatal(err)
	}
	closeFn()

	info, err := os.Stat(capture)
	if err != nil {
		t.Fatalf("capture file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("capture file is empty")
	}
}

func TestDecodePacketExitStatus(t *testing.T) {
	cfg := config.Default()
	cfg.Format = string(inspect.FormatHex)
	session := commands.NewSession(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		text       string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"valid", "4A 00 78", 0, "SET_TEMPO C2->PERCUSSION", ""},
		{"per byte 0x prefixes", "0x4A 0x00 0x78", 0, "SET_TEMPO C2->PERCUSSION", ""},
		{"unknown kind is reported in the output", "E3 00 3C", 1, "error: wire: unknown kind code", ""},
		{"wrong length", "4A 00", 1, "error: wire: packet must be exactly 3 bytes", ""},
		{"not a packet", "zz 00 78", 1, "", "Error: inspect: unrecognized packet text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := decodePacket(session, tt.text, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantStdout == "" && stdout.Len() != 0 {
				t.Errorf("unexpected stdout: %q", stdout.String())
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr == "" && stderr.Len() != 0 {
				t.Errorf("unexpected stderr: %q", stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
