package game

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// FormatDice renders dice in order, marking held dice with an asterisk
func FormatDice(dice []models.Die) string {
	parts := make([]string, 0, len(dice))
	for i := range dice {
		parts = append(parts, dice[i].String())
	}
	return strings.Join(parts, " ")
}

// FormatRoundResults renders an aggregated round, one line per player
func FormatRoundResults(result *models.RoundResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Round %d results (high score %d)\n", result.Round, result.HighScore)
	for _, standing := range result.Standings {
		outcome := "loss"
		if standing.Won {
			outcome = "win"
		}
		fmt.Fprintf(&b, "  Player %d: score %d, %s (%d-%d)\n",
			standing.PlayerNumber, standing.Score, outcome, standing.Wins, standing.Losses)
	}
	return b.String()
}

// FormatFinalWinner renders the overall winner line
func FormatFinalWinner(winner models.Player) string {
	rounds := "rounds"
	if winner.Wins == 1 {
		rounds = "round"
	}
	return fmt.Sprintf("Player %d wins the game with %d %s won and %d lost",
		winner.Number, winner.Wins, rounds, winner.Losses)
}
