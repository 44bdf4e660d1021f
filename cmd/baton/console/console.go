// Package console provides the interactive baton session.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/baton-protocol/baton-go/cmd/baton/commands"
	"github.com/baton-protocol/baton-go/pkg/inspect"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Prompter asks the operator for one line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// lineReader is the part of readline.Instance the command loop uses.
// Close must unblock a pending Readline.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Console handles interactive mode for baton.
type Console struct {
	session *commands.Session
	out     io.Writer
	ask     Prompter
	rl      lineReader
}

// New creates a console reading from the terminal. The session is
// supplied to Run so that its logger can write through Stdout.
func New(prompt string) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	c := newConsole(nil, rl.Stdout(), &readlinePrompter{rl: rl, prompt: prompt})
	c.rl = rl
	return c, nil
}

func newConsole(session *commands.Session, out io.Writer, ask Prompter) *Console {
	return &Console{session: session, out: out, ask: ask}
}

// Stdout returns a writer that coordinates with the readline prompt.
// Use it for log output.
func (c *Console) Stdout() io.Writer {
	return c.out
}

// Run reads commands for session until exit, EOF or ctx is done.
func (c *Console) Run(ctx context.Context, session *commands.Session) {
	c.session = session
	defer c.rl.Close()

	// Readline blocks; closing the reader is the only way to wake it.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.rl.Close()
		case <-done:
		}
	}()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) && ctx.Err() == nil {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			return
		}

		if !c.Execute(line) {
			return
		}
	}
}

// Execute runs one command line. It returns false when the session should end.
func (c *Console) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "encode", "e":
		c.cmdEncode(args)

	case "decode", "d":
		c.cmdDecode(args)

	case "format", "f":
		c.cmdFormat(args)

	case "kinds":
		fmt.Fprintf(c.out, "Message kinds: %s\n", strings.Join(inspect.KindNames(), ", "))

	case "targets":
		fmt.Fprintf(c.out, "Target groups: %s\n", strings.Join(inspect.TargetNames(), ", "))

	case "session":
		fmt.Fprintf(c.out, "Session: %s\n", c.session.Recorder.SessionID())

	case "exit", "quit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `
Commands:
  encode [kind [conductor [target [payload]]]]   Encode a message (prompts when no args)
  decode [packet]                                Decode hex or binary bytes (e.g. 4A 00 78)
  format [summary|hex|bits]                      Show or change the output format
  kinds                                          List message kinds
  targets                                        List target groups
  session                                        Show the capture session ID
  help                                           Show this help
  exit                                           Leave the console

`)
}

func (c *Console) cmdEncode(args []string) {
	var (
		req commands.EncodeRequest
		err error
	)
	if len(args) > 0 {
		req, err = requestFromArgs(args)
	} else {
		req, err = c.promptRequest()
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	if err := c.session.RunEncode(req, c.out); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}

// requestFromArgs maps positional arguments onto a request. The payload
// argument goes to whichever field the kind uses.
func requestFromArgs(args []string) (commands.EncodeRequest, error) {
	if len(args) > 4 {
		return commands.EncodeRequest{}, fmt.Errorf("too many arguments (usage: encode [kind [conductor [target [payload]]]])")
	}
	req := commands.EncodeRequest{Kind: args[0]}
	if len(args) > 1 {
		req.Conductor = args[1]
	}
	if len(args) > 2 {
		req.Target = args[2]
	}
	if len(args) > 3 {
		kind, _ := inspect.ResolveKind(req.Kind)
		if kind == wire.KindStart {
			req.TimeMs = args[3]
		} else {
			req.Tempo = args[3]
		}
	}
	return req, nil
}

// promptRequest walks the operator through one message. Empty conductor
// or target answers keep the session defaults.
func (c *Console) promptRequest() (commands.EncodeRequest, error) {
	var req commands.EncodeRequest

	kindName, err := c.ask.Prompt(fmt.Sprintf("Message type (%s): ", strings.Join(inspect.KindNames(), ", ")))
	if err != nil {
		return req, err
	}
	req.Kind = strings.TrimSpace(kindName)
	kind, ok := inspect.ResolveKind(req.Kind)
	if !ok {
		return req, fmt.Errorf("unknown message kind %q", req.Kind)
	}

	if req.Conductor, err = c.promptField(fmt.Sprintf("Conductor (C1-C4) [%s]: ", c.session.Conductor)); err != nil {
		return req, err
	}
	if req.Target, err = c.promptField(fmt.Sprintf("Target group [%s]: ", c.session.Target)); err != nil {
		return req, err
	}

	switch kind {
	case wire.KindSetTempo:
		req.Tempo, err = c.promptField("Tempo (BPM): ")
	case wire.KindStart:
		req.TimeMs, err = c.promptField("Time (ms): ")
	}
	return req, err
}

func (c *Console) promptField(label string) (string, error) {
	s, err := c.ask.Prompt(label)
	return strings.TrimSpace(s), err
}

func (c *Console) cmdDecode(args []string) {
	text := strings.Join(args, " ")
	if text == "" {
		var err error
		if text, err = c.promptField("Packet: "); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return
		}
	}

	// RunDecode prints the decode error itself.
	if err := c.session.RunDecode(text, c.out); err != nil && errors.Is(err, inspect.ErrPacketText) {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}

func (c *Console) cmdFormat(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(c.out, "Format: %s\n", c.session.Format)
		return
	}
	f, ok := inspect.ParseFormat(args[0])
	if !ok {
		fmt.Fprintf(c.out, "Error: unknown format %q (summary, hex, bits)\n", args[0])
		return
	}
	c.session.Format = f
	fmt.Fprintf(c.out, "Format: %s\n", f)
}

type readlinePrompter struct {
	rl     *readline.Instance
	prompt string
}

func (p *readlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label)
	defer p.rl.SetPrompt(p.prompt)
	return p.rl.Readline()
}
