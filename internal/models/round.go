package models

import (
	"time"
)

// PlayerStanding is a player's line in a round result or leaderboard
type PlayerStanding struct {
	// PlayerNumber is the seat number of the player
	PlayerNumber int

	// Score is the player's score for the round
	Score int

	// Won indicates the player tied or held the high score
	Won bool

	// Wins is the cumulative win tally after aggregation
	Wins int

	// Losses is the cumulative loss tally after aggregation
	Losses int
}

// RoundResult is the aggregated outcome of one completed round
type RoundResult struct {
	// ID is the unique identifier for this result
	ID string

	// GameID is the ID of the engine that produced the result
	GameID string

	// Round is the 1-based round number
	Round int

	// HighScore is the best score of the round
	HighScore int

	// Standings are ordered by score, highest first
	Standings []*PlayerStanding

	// CompletedAt is when the round was aggregated
	CompletedAt time.Time
}

// Winners returns the seat numbers credited with a win
func (r *RoundResult) Winners() []int {
	var winners []int
	for _, standing := range r.Standings {
		if standing.Won {
			winners = append(winners, standing.PlayerNumber)
		}
	}
	return winners
}
