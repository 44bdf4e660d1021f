package vectors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/baton-protocol/baton-go/pkg/inspect"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Result is the outcome of one vector.
type Result struct {
	ID     string
	Passed bool

	// Detail explains a failure.
	Detail string
}

// Summary counts results.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Run checks every vector of the suite in order.
func (s *Suite) Run() ([]Result, Summary) {
	results := make([]Result, 0, len(s.Vectors))
	var sum Summary
	for _, v := range s.Vectors {
		r := Check(v)
		results = append(results, r)
		sum.Total++
		if r.Passed {
			sum.Passed++
		} else {
			sum.Failed++
		}
	}
	return results, sum
}

// Check runs a single vector against the codec.
func Check(v Vector) Result {
	var err error
	switch v.Op {
	case OpEncode:
		err = checkEncode(v)
	case OpDecode:
		err = checkDecode(v)
	default:
		err = fmt.Errorf("unsupported op %q", v.Op)
	}
	if err != nil {
		return Result{ID: v.ID, Detail: err.Error()}
	}
	return Result{ID: v.ID, Passed: true}
}

// Message resolves the names into a wire message.
func (m MessageSpec) Message() (wire.Message, error) {
	kind, ok := inspect.ResolveKind(m.Kind)
	if !ok {
		return wire.Message{}, fmt.Errorf("unknown kind %q", m.Kind)
	}
	conductor, ok := inspect.ResolveConductor(m.Conductor)
	if !ok {
		return wire.Message{}, fmt.Errorf("unknown conductor %q", m.Conductor)
	}
	target, ok := inspect.ResolveTarget(m.Target)
	if !ok {
		return wire.Message{}, fmt.Errorf("unknown target %q", m.Target)
	}
	return wire.Message{Kind: kind, Conductor: conductor, Target: target, Payload: m.Payload}, nil
}

func checkEncode(v Vector) error {
	msg, err := v.Message.Message()
	if err != nil {
		return err
	}
	want, err := inspect.ParsePacket(v.Packet)
	if err != nil {
		return err
	}

	got := wire.Encode(msg)
	if string(got.Bytes()) != string(want) {
		return fmt.Errorf("encode %s: got %s, want % X", msg, got, want)
	}
	return nil
}

func checkDecode(v Vector) error {
	data, err := inspect.ParsePacket(v.Packet)
	if err != nil {
		return err
	}
	got, decodeErr := wire.Decode(data)

	if v.Error != "" {
		return matchError(v, decodeErr)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode % X: unexpected error: %v", data, decodeErr)
	}

	want, err := v.Message.Message()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("decode % X: got %+v, want %+v", data, got, want)
	}
	return nil
}

func matchError(v Vector, err error) error {
	if err == nil {
		return fmt.Errorf("expected %s error, decode succeeded", v.Error)
	}

	switch v.Error {
	case ErrorInvalidInputShape:
		if !errors.Is(err, wire.ErrInvalidInputShape) {
			return fmt.Errorf("expected %s, got %v", v.Error, err)
		}
	case ErrorUnknownFieldCode:
		var fieldErr *wire.FieldCodeError
		if !errors.As(err, &fieldErr) {
			return fmt.Errorf("expected %s, got %v", v.Error, err)
		}
		if v.Field != "" && !strings.EqualFold(v.Field, fieldErr.Field.String()) {
			return fmt.Errorf("expected unknown %s code, got unknown %s code", v.Field, fieldErr.Field)
		}
		if v.Code != nil && *v.Code != fieldErr.Code {
			return fmt.Errorf("expected code %d, got %d", *v.Code, fieldErr.Code)
		}
	}
	return nil
}
