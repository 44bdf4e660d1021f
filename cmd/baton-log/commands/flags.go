// Package commands implements the baton-log CLI commands.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/baton-protocol/baton-go/pkg/inspect"
	"github.com/baton-protocol/baton-go/pkg/log"
)

// FilterOptions holds the raw filter flags shared by view, export and filter.
type FilterOptions struct {
	SessionID string
	Direction string
	Category  string
	Kind      string
	Conductor string
	Target    string
	TimeStart string
	TimeEnd   string
}

// BuildFilter converts flag values into a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{SessionID: opts.SessionID}

	if opts.Direction != "" {
		d, err := ParseDirectionFlag(opts.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	if opts.Kind != "" {
		k, ok := inspect.ResolveKind(opts.Kind)
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid kind: %s", opts.Kind)
		}
		filter.Kind = &k
	}
	if opts.Conductor != "" {
		c, ok := inspect.ResolveConductor(opts.Conductor)
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid conductor: %s (must be C1-C4 or 1-4)", opts.Conductor)
		}
		filter.Conductor = &c
	}
	if opts.Target != "" {
		g, ok := inspect.ResolveTarget(opts.Target)
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid target: %s", opts.Target)
		}
		filter.Target = &g
	}
	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// ParseDirectionFlag parses "in" or "out" (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in", "decode":
		return log.DirectionIn, nil
	case "out", "encode":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses "message" or "error" (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message or error)", s)
	}
}

// shortenSessionID returns the first 8 characters of a session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
