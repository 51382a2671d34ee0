package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            GameError = "config cannot be nil"
	ErrInvalidConfiguration GameError = "invalid game configuration"
	ErrNilDiceRoller        GameError = "dice roller cannot be nil"
)
