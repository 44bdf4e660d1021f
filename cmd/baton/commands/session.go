// Package commands implements the baton subcommands.
//
// Each Run function writes its report to an io.Writer so it can be tested
// without a terminal. Codec calls go through a log.Recorder, which captures
// them when a capture file is configured.
package commands

import (
	"log/slog"

	"github.com/baton-protocol/baton-go/internal/config"
	"github.com/baton-protocol/baton-go/pkg/inspect"
	batonlog "github.com/baton-protocol/baton-go/pkg/log"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Session carries what the subcommands share.
type Session struct {
	Recorder  *batonlog.Recorder
	Formatter *inspect.Formatter
	Format    inspect.Format

	// Defaults for messages that leave the conductor or target unset.
	Conductor wire.ConductorID
	Target    wire.TargetGroup

	// Prompt is the console prompt.
	Prompt string

	Logger *slog.Logger
}

// NewSession builds a session from cfg. capture may be nil and logger
// defaults to slog.Default().
func NewSession(cfg config.Config, capture batonlog.Logger, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		Recorder:  batonlog.NewRecorder(capture),
		Formatter: cfg.Formatter(),
		Format:    cfg.OutputFormat(),
		Conductor: cfg.ConductorID(),
		Target:    cfg.TargetGroup(),
		Prompt:    cfg.Prompt,
		Logger:    logger,
	}
}
