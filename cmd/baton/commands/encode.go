package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/baton-protocol/baton-go/pkg/inspect"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

// EncodeRequest is the raw operator input for one message.
// Empty Conductor or Target fall back to the session defaults. An empty
// payload field encodes as zero.
type EncodeRequest struct {
	Kind      string
	Conductor string
	Target    string
	Tempo     string
	TimeMs    string
}

// BuildMessage resolves a request into a validated message.
func (s *Session) BuildMessage(req EncodeRequest) (wire.Message, error) {
	if req.Kind == "" {
		return wire.Message{}, fmt.Errorf("message kind required (one of %s)", strings.Join(inspect.KindNames(), ", "))
	}
	kind, ok := inspect.ResolveKind(req.Kind)
	if !ok {
		return wire.Message{}, fmt.Errorf("unknown message kind %q (one of %s)", req.Kind, strings.Join(inspect.KindNames(), ", "))
	}

	conductor := s.Conductor
	if req.Conductor != "" {
		if conductor, ok = inspect.ResolveConductor(req.Conductor); !ok {
			return wire.Message{}, fmt.Errorf("unknown conductor %q (C1-C4 or 1-4)", req.Conductor)
		}
	}

	target := s.Target
	if req.Target != "" {
		if target, ok = inspect.ResolveTarget(req.Target); !ok {
			return wire.Message{}, fmt.Errorf("unknown target group %q (one of %s or 0-7)", req.Target, strings.Join(inspect.TargetNames(), ", "))
		}
	}

	if req.Tempo != "" && kind != wire.KindSetTempo {
		return wire.Message{}, fmt.Errorf("tempo only applies to %s, not %s", wire.KindSetTempo, kind)
	}
	if req.TimeMs != "" && kind != wire.KindStart {
		return wire.Message{}, fmt.Errorf("time only applies to %s, not %s", wire.KindStart, kind)
	}

	var payload uint16
	switch kind {
	case wire.KindSetTempo:
		v, err := parsePayload("tempo", req.Tempo)
		if err != nil {
			return wire.Message{}, err
		}
		payload = v
	case wire.KindStart:
		v, err := parsePayload("time", req.TimeMs)
		if err != nil {
			return wire.Message{}, err
		}
		payload = v
	}

	msg := wire.Message{Kind: kind, Conductor: conductor, Target: target, Payload: payload}
	if err := msg.Validate(); err != nil {
		return wire.Message{}, err
	}
	return msg, nil
}

func parsePayload(name, s string) (uint16, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (must be 0-%d)", name, s, wire.MaxPayload)
	}
	return uint16(v), nil
}

// RunEncode encodes one message and writes it in the session format.
func (s *Session) RunEncode(req EncodeRequest, w io.Writer) error {
	msg, err := s.BuildMessage(req)
	if err != nil {
		return err
	}

	pkt := s.Recorder.Encode(msg)
	s.Logger.Debug("encoded", "message", msg.String(), "packet", pkt.String())

	out := s.Formatter.FormatPacket(msg, s.Format)
	fmt.Fprint(w, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(w)
	}
	return nil
}
