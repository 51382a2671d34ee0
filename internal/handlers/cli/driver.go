package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/messaging"
)

// Driver plays rounds of the game against a Prompter
type Driver struct {
	engine     game.Engine
	prompter   Prompter
	messaging  messaging.Service
	out        io.Writer
	standScore int
	logger     *slog.Logger
}

// New creates a new text driver
func New(cfg *Config) (*Driver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}

	if cfg.Prompter == nil {
		return nil, ErrNilPrompter
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	standScore := cfg.StandScore
	if standScore == 0 {
		standScore = DefaultStandScore
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Driver{
		engine:     cfg.Engine,
		prompter:   cfg.Prompter,
		messaging:  cfg.Messaging,
		out:        out,
		standScore: standScore,
		logger:     logger,
	}, nil
}

func (d *Driver) print(text string) {
	fmt.Fprintln(d.out, text)
}

// Play runs rounds until rounds have been played, or when rounds is zero
// until the prompter declines another, then prints the final standings.
func (d *Driver) Play(ctx context.Context, rounds int) (*models.Leaderboard, error) {
	for played := 1; ; played++ {
		if _, err := d.PlayRound(ctx); err != nil {
			return nil, err
		}

		if rounds > 0 {
			if played >= rounds {
				break
			}
			continue
		}

		again, err := d.prompter.Confirm("Play another round?", false)
		if err != nil {
			return nil, fmt.Errorf("failed to confirm next round: %w", err)
		}
		if !again {
			break
		}
	}

	leaderboard := d.engine.FinalStandings()
	d.print(renderLeaderboard(leaderboard))
	d.print(game.FormatFinalWinner(d.engine.FinalWinner()))

	d.logger.Info("game over",
		"game_id", leaderboard.GameID,
		"rounds", leaderboard.RoundsPlayed,
		"leaders", leaderboard.Leaders)

	return leaderboard, nil
}

// PlayRound plays every turn of one round, aggregates it once and prepares
// the next round.
func (d *Driver) PlayRound(ctx context.Context) (*models.RoundResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := d.PlayTurn(ctx); err != nil {
			return nil, err
		}

		if !d.engine.NextPlayer() {
			break
		}
	}

	result := d.engine.EndOfRoundResults()
	d.print(renderRoundResult(result))

	message, err := d.messaging.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		Round:     result.Round,
		Winners:   result.Winners(),
		HighScore: result.HighScore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get round message: %w", err)
	}
	d.print(renderMessage(message.Title, message.Message))

	d.logger.Info("round complete",
		"round", result.Round,
		"high_score", result.HighScore,
		"winners", result.Winners())

	d.engine.StartNewRound()
	d.engine.ResetDice()

	return result, nil
}

// PlayTurn rolls for the current player until they stand or cannot roll,
// then closes the turn.
func (d *Driver) PlayTurn(ctx context.Context) error {
	player := d.engine.CurrentPlayerNumber()
	d.print(renderTurnHeader(player, d.engine.MaxRolls()))

	for d.engine.CanCurrentPlayerRoll() {
		d.engine.Roll()
		d.loadShip()
		d.engine.ScoreCurrentPlayer()

		stage := d.stage()
		score := d.engine.CurrentPlayerScore()
		d.print(renderDice(d.engine.Dice()))

		message, err := d.messaging.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
			PlayerNumber: player,
			Stage:        stage,
			Score:        score,
			RollsLeft:    d.engine.MaxRolls() - d.engine.CurrentPlayer().RollsUsed,
		})
		if err != nil {
			return fmt.Errorf("failed to get roll message: %w", err)
		}
		d.print(renderMessage(message.Title, message.Message))

		if stage != messaging.HandStageCrew || !d.engine.CanCurrentPlayerRoll() {
			continue
		}

		stand, err := d.prompter.Confirm(fmt.Sprintf("Player %d: stand on %d?", player, score), score >= d.standScore)
		if err != nil {
			return fmt.Errorf("failed to confirm stand: %w", err)
		}
		if stand {
			break
		}

		labels, err := d.prompter.Ask("Cargo dice to hold (labels, blank for none)")
		if err != nil {
			return fmt.Errorf("failed to read cargo holds: %w", err)
		}
		for _, label := range strings.ToUpper(labels) {
			if unicode.IsLetter(label) {
				d.engine.HoldDie(label)
			}
		}
	}

	score := d.engine.CurrentPlayerScore()
	d.engine.EndTurn()
	d.engine.ResetDice()

	d.logger.Info("turn over", "player", player, "score", score)
	return nil
}

// loadShip holds a ship, then a captain only with a ship aboard, then a crew
// only with a captain aboard.
func (d *Driver) loadShip() {
	if !d.engine.AutoHold(game.ShipFace) {
		return
	}
	if !d.engine.AutoHold(game.CaptainFace) {
		return
	}
	d.engine.AutoHold(game.CrewFace)
}

func (d *Driver) stage() messaging.HandStage {
	switch {
	case !d.engine.IsHoldingFace(game.ShipFace):
		return messaging.HandStageEmpty
	case !d.engine.IsHoldingFace(game.CaptainFace):
		return messaging.HandStageShip
	case !d.engine.IsHoldingFace(game.CrewFace):
		return messaging.HandStageCaptain
	default:
		return messaging.HandStageCrew
	}
}
