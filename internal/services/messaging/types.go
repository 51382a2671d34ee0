package messaging

import (
	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// HandStage is how far a player has loaded the ship
type HandStage string

const (
	// HandStageEmpty means no ship is held
	HandStageEmpty HandStage = "empty"

	// HandStageShip means only the ship is held
	HandStageShip HandStage = "ship"

	// HandStageCaptain means ship and captain are held
	HandStageCaptain HandStage = "captain"

	// HandStageCrew means ship, captain and crew are held and cargo scores
	HandStageCrew HandStage = "crew"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks among the candidate lines
	DiceRoller dice.Roller

	// DefaultTone is used when an input does not ask for one
	DefaultTone MessageTone
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	// PlayerNumber is the seat that rolled
	PlayerNumber int

	// Stage is how much of ship, captain and crew is held
	Stage HandStage

	// Score is the cargo score once the crew is aboard
	Score int

	// RollsLeft is the number of rolls the player still has
	RollsLeft int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Title   string
	Message string
}

// GetRoundResultMessageInput contains the input for GetRoundResultMessage
type GetRoundResultMessageInput struct {
	// Round is the 1-based round number
	Round int

	// Winners are the seats credited with a win
	Winners []int

	// HighScore is the best score of the round
	HighScore int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRoundResultMessageOutput contains the output for GetRoundResultMessage
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
}
