// Command baton encodes, decodes and verifies Baton packets.
//
// A Baton packet is three bytes: a header holding the message kind, the
// conductor and the target group, followed by a big-endian 16-bit payload
// used by SET_TEMPO (BPM) and START (elapsed ms).
//
// Usage:
//
//	baton <command> [flags] [args]
//
// Commands:
//
//	encode   Encode a message from flags
//	decode   Decode a packet given as hex or binary groups
//	verify   Run a conformance vector file
//	console  Interactive encode/decode session
//	version  Print the protocol version and code table
//
// Examples:
//
//	# Tempo change for the percussion section
//	baton encode -kind set_tempo -conductor C2 -target percussion -tempo 120
//
//	# Decode and capture to a file for baton-log
//	baton decode -capture session.blog "4A 00 78"
//
//	# Interactive session with defaults from a config file
//	baton console -config baton.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/baton-protocol/baton-go/cmd/baton/commands"
	"github.com/baton-protocol/baton-go/cmd/baton/console"
	"github.com/baton-protocol/baton-go/internal/config"
	"github.com/baton-protocol/baton-go/pkg/inspect"
	batonlog "github.com/baton-protocol/baton-go/pkg/log"
)

const usage = `baton - Baton packet tool

Usage:
  baton <command> [flags] [args]

Commands:
  encode   Encode a message from flags
  decode   Decode a packet given as hex or binary groups
  verify   Run a conformance vector file
  console  Interactive encode/decode session
  version  Print the protocol version and code table

Use "baton <command> -help" for more information about a command.
`

// settingFlags are flags that override config file values.
var settingFlags = map[string]bool{
	"conductor": true,
	"target":    true,
	"format":    true,
	"ascii":     true,
	"capture":   true,
	"log-level": true,
	"prompt":    true,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "encode":
		runEncode(args)
	case "decode":
		runDecode(args)
	case "verify":
		runVerify(args)
	case "console":
		runConsole(args)
	case "version":
		if err := commands.RunVersion(os.Stdout); err != nil {
			fail(err)
		}
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// commonFlags registers the flags every codec command accepts.
func commonFlags(fs *flag.FlagSet) *string {
	configPath := fs.String("config", "", "Path to YAML config file")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.String("capture", "", "Append CBOR capture events to this file")
	fs.String("format", "summary", "Output format: summary, hex, bits")
	fs.Bool("ascii", false, "Use ASCII arrows in summaries")
	return configPath
}

func setUsage(fs *flag.FlagSet, text string) {
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, text)
		fs.PrintDefaults()
	}
}

// loadConfig layers the config file and explicitly set flags over the
// defaults.
func loadConfig(fs *flag.FlagSet, configPath string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}

	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if !settingFlags[f.Name] || setErr != nil {
			return
		}
		setErr = cfg.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return config.Config{}, setErr
	}
	return cfg, cfg.Validate()
}

// openSession sets up logging to logOut and capture. The returned func
// closes the capture file.
func openSession(cfg config.Config, logOut io.Writer) (*commands.Session, func(), error) {
	logger := cfg.Logger(logOut)
	slog.SetDefault(logger)

	loggers := []batonlog.Logger{batonlog.NewSlogAdapter(logger)}
	closeFn := func() {}

	if cfg.Capture != "" {
		fileLogger, err := batonlog.NewFileLogger(cfg.Capture)
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fileLogger)
		closeFn = func() {
			if err := fileLogger.Err(); err != nil {
				logger.Error("capture write failed", "file", cfg.Capture, "error", err)
			}
			if err := fileLogger.Close(); err != nil {
				logger.Error("closing capture", "file", cfg.Capture, "error", err)
			}
		}
	}

	session := commands.NewSession(cfg, batonlog.NewMultiLogger(loggers...), logger)
	if cfg.Capture != "" {
		logger.Info("capturing", "file", cfg.Capture, "session", session.Recorder.SessionID())
	}
	return session, closeFn, nil
}

// prepare parses args and opens a session, exiting on error.
func prepare(fs *flag.FlagSet, configPath *string, args []string) (*commands.Session, func()) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	cfg, err := loadConfig(fs, *configPath)
	if err != nil {
		fail(err)
	}
	session, closeFn, err := openSession(cfg, os.Stderr)
	if err != nil {
		fail(err)
	}
	return session, closeFn
}

// decodePacket decodes text and returns the exit status. Decode errors are
// part of the report on stdout; text that is not a packet at all goes to
// stderr.
func decodePacket(session *commands.Session, text string, stdout, stderr io.Writer) int {
	err := session.RunDecode(text, stdout)
	if errors.Is(err, inspect.ErrPacketText) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	if err != nil {
		return 1
	}
	return 0
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	setUsage(fs, "baton encode - Encode a message\n\nUsage:\n  baton encode -kind <kind> [-conductor C] [-target T] [-tempo BPM | -time-ms MS] [flags]\n\nFlags:\n")
	configPath := commonFlags(fs)
	var req commands.EncodeRequest
	fs.StringVar(&req.Kind, "kind", "", "Message kind (e.g. set_tempo, start, stop) or code 0-5")
	fs.String("conductor", "C1", "Conductor (C1-C4 or 1-4)")
	fs.String("target", "ALL", "Target group (name or 0-7)")
	fs.StringVar(&req.Tempo, "tempo", "", "Tempo in BPM (SET_TEMPO only)")
	fs.StringVar(&req.TimeMs, "time-ms", "", "Elapsed time in ms (START only)")

	session, closeFn := prepare(fs, configPath, args)
	err := session.RunEncode(req, os.Stdout)
	closeFn()
	if err != nil {
		fail(err)
	}
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	setUsage(fs, "baton decode - Decode a packet\n\nUsage:\n  baton decode [flags] <packet>\n\nThe packet is hex (\"4A 00 78\", \"4a0078\") or 8-bit binary groups.\n\nFlags:\n")
	configPath := commonFlags(fs)

	session, closeFn := prepare(fs, configPath, args)
	if fs.NArg() < 1 {
		closeFn()
		fmt.Fprintln(os.Stderr, "Error: packet required")
		fs.Usage()
		os.Exit(1)
	}

	code := decodePacket(session, strings.Join(fs.Args(), " "), os.Stdout, os.Stderr)
	closeFn()
	if code != 0 {
		os.Exit(code)
	}
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	setUsage(fs, "baton verify - Run conformance vectors\n\nUsage:\n  baton verify [-v] <vectors.yaml>\n\nFlags:\n")
	verbose := fs.Bool("v", false, "List passing vectors too")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: vector file required")
		fs.Usage()
		os.Exit(1)
	}

	if _, err := commands.RunVerify(fs.Arg(0), *verbose, os.Stdout); err != nil {
		fail(err)
	}
}

func runConsole(args []string) {
	fs := flag.NewFlagSet("console", flag.ExitOnError)
	setUsage(fs, "baton console - Interactive encode/decode session\n\nUsage:\n  baton console [flags]\n\nFlags:\n")
	configPath := commonFlags(fs)
	fs.String("conductor", "C1", "Default conductor (C1-C4 or 1-4)")
	fs.String("target", "ALL", "Default target group (name or 0-7)")
	fs.String("prompt", "baton> ", "Console prompt")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	cfg, err := loadConfig(fs, *configPath)
	if err != nil {
		fail(err)
	}

	c, err := console.New(cfg.Prompt)
	if err != nil {
		fail(err)
	}

	// Logs go through readline so they do not break the prompt.
	session, closeFn, err := openSession(cfg, c.Stdout())
	if err != nil {
		fail(err)
	}
	defer closeFn()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	c.Run(ctx, session)
}
