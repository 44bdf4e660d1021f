// Command baton-log views and analyzes Baton capture files.
//
// Capture files are written by "baton -capture <file>" and hold one CBOR
// event per encode or decode.
//
// Usage:
//
//	baton-log <command> [flags] <capture.blog>
//
// Commands:
//
//	view     Print events in human-readable form
//	export   Export events as JSONL or CSV
//	filter   Copy matching events into a new capture file
//	stats    Summarize a capture file
//
// Examples:
//
//	# Only rejected decodes
//	baton-log view -category error session.blog
//
//	# Tempo changes sent by conductor 2
//	baton-log view -kind set_tempo -conductor 2 session.blog
//
//	# Export to CSV
//	baton-log export -format csv -o session.csv session.blog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/baton-protocol/baton-go/cmd/baton-log/commands"
)

const usage = `baton-log - Baton capture analyzer

Usage:
  baton-log <command> [flags] <capture.blog>

Commands:
  view     Print events in human-readable form
  export   Export events as JSONL or CSV
  filter   Copy matching events into a new capture file
  stats    Summarize a capture file

Use "baton-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// filterFlags registers the shared filter flags on fs.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, error)")
	fs.StringVar(&opts.Kind, "kind", "", "Filter by message kind (e.g. set_tempo)")
	fs.StringVar(&opts.Conductor, "conductor", "", "Filter by conductor (C1-C4 or 1-4)")
	fs.StringVar(&opts.Target, "target", "", "Filter by target group (name or 0-7)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Only events at or after this time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Only events before this time (RFC3339)")
	return opts
}

func setUsage(fs *flag.FlagSet, text string) {
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, text)
		fs.PrintDefaults()
	}
}

// parseArgs parses flags and returns the capture path, exiting on error.
func parseArgs(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	setUsage(fs, "baton-log view - Print events in human-readable form\n\nUsage:\n  baton-log view [flags] <capture.blog>\n\nFlags:\n")
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		fail(err)
	}
	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	setUsage(fs, "baton-log export - Export events as JSONL or CSV\n\nUsage:\n  baton-log export [flags] <capture.blog>\n\nFlags:\n")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		fail(err)
	}
	if err := commands.RunExport(path, *format, *output, filter); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	setUsage(fs, "baton-log filter - Copy matching events into a new capture file\n\nUsage:\n  baton-log filter -o <out.blog> [flags] <capture.blog>\n\nFlags:\n")
	output := fs.String("o", "", "Output file (required)")
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		fail(err)
	}
	if err := commands.RunFilter(path, *output, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	setUsage(fs, "baton-log stats - Summarize a capture file\n\nUsage:\n  baton-log stats <capture.blog>\n\n")
	path := parseArgs(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
