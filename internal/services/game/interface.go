package game

import "github.com/KirkDiggler/shipcaptaincrew/internal/models"

// Engine runs the turns, holds and scoring of a Ship, Captain and Crew game.
//
// Every operation is synchronous and the engine is not safe for concurrent use.
type Engine interface {
	// ID returns the unique identifier of this game
	ID() string

	// MaxRolls returns the roll ceiling per player per round
	MaxRolls() int

	// RoundsPlayed returns how many rounds have been aggregated
	RoundsPlayed() int

	// CanCurrentPlayerRoll reports whether the current player has rolls left and an unheld die
	CanCurrentPlayerRoll() bool

	// Roll counts a roll for the current player and rerolls every unheld die
	Roll()

	// IsHoldingFace reports whether a held die shows face
	IsHoldingFace(face int) bool

	// AutoHold holds the first unheld die showing face unless one is already held
	AutoHold(face int) bool

	// HoldDie holds the die with the given label
	HoldDie(label rune)

	// ResetDice releases every die without rerolling
	ResetDice()

	// ResetPlayers clears every player's round counters
	ResetPlayers()

	// ScoreCurrentPlayer scores the current player if ship, captain and crew are held
	ScoreCurrentPlayer() bool

	// EndTurn uses up the current player's remaining rolls
	EndTurn()

	// NextPlayer moves to the first player in seat order with rolls left
	NextPlayer() bool

	// EndOfRoundResults credits wins and losses for the round and returns the standings.
	// It must be called exactly once per completed round.
	EndOfRoundResults() *models.RoundResult

	// FinalStandings returns cumulative standings ordered by wins
	FinalStandings() *models.Leaderboard

	// FinalWinner returns the first player in seat order with the most wins
	FinalWinner() models.Player

	// StartNewRound reorders players by score, hands the turn to the round leader and clears round counters
	StartNewRound()

	// CurrentPlayer returns a copy of the current player
	CurrentPlayer() models.Player

	// CurrentPlayerNumber returns the seat number of the current player
	CurrentPlayerNumber() int

	// CurrentPlayerScore returns the current player's round score
	CurrentPlayerScore() int

	// Players returns copies of the players in their stored order
	Players() []models.Player

	// Dice returns copies of the dice in creation order
	Dice() []models.Die

	// DiceDisplay renders every die and its held state
	DiceDisplay() string
}
