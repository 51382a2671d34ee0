package cli

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/messaging"
)

// DefaultStandScore is the cargo score at which the stand prompt defaults to yes
const DefaultStandScore = 8

// Config holds configuration for the text driver
type Config struct {
	// Engine is the game being driven
	Engine game.Engine

	// Prompter collects stand and hold decisions
	Prompter Prompter

	// Messaging supplies the flavour lines
	Messaging messaging.Service

	// Out receives rendered output, defaults to stdout
	Out io.Writer

	// StandScore is the cargo score the stand prompt defaults to yes at, defaults to DefaultStandScore
	StandScore int

	// Optional logger, discarded when nil
	Logger *slog.Logger
}
