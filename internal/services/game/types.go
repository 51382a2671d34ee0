package game

import (
	"log/slog"

	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
)

const (
	// MinPlayers is the smallest table the engine accepts
	MinPlayers = 2

	// DefaultDiceSides is used when Config.DiceSides is zero
	DefaultDiceSides = 6

	// CrewFace is the face that fills the crew role
	CrewFace = 4

	// CaptainFace is the face that fills the captain role
	CaptainFace = 5

	// ShipFace is the face that fills the ship role
	ShipFace = 6

	// QualifyingOffset is subtracted from the dice total of a qualifying hand
	QualifyingOffset = CrewFace + CaptainFace + ShipFace
)

// Config holds configuration for the game engine
type Config struct {
	// Number of players at the table, at least MinPlayers
	PlayerCount int

	// Number of dice in play, at least one
	DiceCount int

	// Rolls each player may take per round, at least one
	MaxRolls int

	// Number of sides on each die, defaults to DefaultDiceSides
	DiceSides int

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional logger, discarded when nil
	Logger *slog.Logger
}
