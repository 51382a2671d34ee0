package models

// Leaderboard represents the cumulative standings of a game
type Leaderboard struct {
	// GameID is the unique identifier for the game
	GameID string

	// RoundsPlayed is the number of aggregated rounds
	RoundsPlayed int

	// Standings are ordered by wins, most first
	Standings []*PlayerStanding

	// Leaders are the seat numbers tied for the most wins
	Leaders []int
}
