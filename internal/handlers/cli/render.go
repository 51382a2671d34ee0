package cli

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
	"github.com/pterm/pterm"
)

// renderTurnHeader renders the banner shown when a player takes the dice
func renderTurnHeader(playerNumber, maxRolls int) string {
	return pterm.LightCyan(fmt.Sprintf("== Player %d, %d rolls ==", playerNumber, maxRolls))
}

// renderDice renders the dice as a two row table: labels, then faces
func renderDice(dice []models.Die) string {
	labels := make([]string, 0, len(dice))
	faces := make([]string, 0, len(dice))
	for _, die := range dice {
		labels = append(labels, string(die.Label))
		if die.Held {
			faces = append(faces, pterm.LightGreen(strconv.Itoa(die.Value)+"*"))
		} else {
			faces = append(faces, strconv.Itoa(die.Value))
		}
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(pterm.TableData{labels, faces}).
		Srender()
	if err != nil {
		return game.FormatDice(dice)
	}
	return table
}

// renderMessage renders a flavour line under a title
func renderMessage(title, message string) string {
	return pterm.LightYellow(title) + " " + message
}

func standingRows(standings []*models.PlayerStanding, resultColumn string) pterm.TableData {
	data := pterm.TableData{{"Player", "Score", resultColumn, "W-L"}}
	for _, standing := range standings {
		outcome := pterm.LightRed("loss")
		if standing.Won {
			outcome = pterm.LightGreen("win")
		}
		data = append(data, []string{
			strconv.Itoa(standing.PlayerNumber),
			strconv.Itoa(standing.Score),
			outcome,
			fmt.Sprintf("%d-%d", standing.Wins, standing.Losses),
		})
	}
	return data
}

// renderRoundResult renders an aggregated round, highest score first
func renderRoundResult(result *models.RoundResult) string {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(standingRows(result.Standings, "Round")).
		Srender()
	if err != nil {
		return game.FormatRoundResults(result)
	}

	title := fmt.Sprintf("|ROUND %d|", result.Round)
	return pterm.DefaultBox.
		WithTitle(pterm.LightYellow(title)).
		WithTitleTopCenter().
		Sprint(table)
}

// renderLeaderboard renders the cumulative standings, most wins first
func renderLeaderboard(leaderboard *models.Leaderboard) string {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(standingRows(leaderboard.Standings, "Leader")).
		Srender()
	if err != nil {
		return fmt.Sprintf("%d rounds played, leaders %v", leaderboard.RoundsPlayed, leaderboard.Leaders)
	}

	title := fmt.Sprintf("|FINAL STANDINGS, %d ROUNDS|", leaderboard.RoundsPlayed)
	return pterm.DefaultBox.
		WithTitle(pterm.LightGreen(title)).
		WithTitleTopCenter().
		Sprint(table)
}
