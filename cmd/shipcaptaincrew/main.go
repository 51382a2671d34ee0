package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/config"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
	"github.com/KirkDiggler/shipcaptaincrew/internal/handlers/cli"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/messaging"
	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	// Interrupts cancel the game between turns
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.Seed,
	})

	engine, err := game.New(&game.Config{
		PlayerCount:   cfg.Players,
		DiceCount:     cfg.Dice,
		MaxRolls:      cfg.MaxRolls,
		DiceRoller:    diceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DiceRoller: diceRoller,
	})
	if err != nil {
		logger.Error("failed to create messaging service", "error", err)
		os.Exit(1)
	}

	var prompter cli.Prompter = cli.NewTerminalPrompter()
	rounds := cfg.Rounds
	if cfg.Auto {
		prompter = cli.NewAutoPrompter()
		if rounds == 0 {
			rounds = 1
		}
	}

	driver, err := cli.New(&cli.Config{
		Engine:    engine,
		Prompter:  prompter,
		Messaging: messagingSvc,
		Out:       os.Stdout,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to create driver", "error", err)
		os.Exit(1)
	}

	logger.Info("starting game",
		"game_id", engine.ID(),
		"players", cfg.Players,
		"dice", cfg.Dice,
		"max_rolls", cfg.MaxRolls)

	if _, err := driver.Play(ctx, rounds); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("game interrupted")
			return
		}
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

// newLogger builds a slog logger backed by the pterm logger
func newLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}

	ptermLevel := pterm.LogLevelInfo
	switch {
	case level <= slog.LevelDebug:
		ptermLevel = pterm.LogLevelDebug
	case level >= slog.LevelError:
		ptermLevel = pterm.LogLevelError
	case level >= slog.LevelWarn:
		ptermLevel = pterm.LogLevelWarn
	}

	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel)))
}
