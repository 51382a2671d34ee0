package models

// Player holds one seat's round counters and its tally across rounds.
//
// Player does not know the roll ceiling; the engine enforces it.
type Player struct {
	// Number is the 1-based seat number assigned at creation
	Number int

	// Score is the cargo score for the current round
	Score int

	// RollsUsed is the number of rolls taken this round
	RollsUsed int

	// Wins counts rounds this player finished on the high score
	Wins int

	// Losses counts rounds this player finished below the high score
	Losses int
}

// NewPlayer creates a player with the given seat number
func NewPlayer(number int) *Player {
	return &Player{Number: number}
}

// Roll records one roll
func (p *Player) Roll() {
	p.RollsUsed++
}

// AddWin increments the win tally
func (p *Player) AddWin() {
	p.Wins++
}

// AddLoss increments the loss tally
func (p *Player) AddLoss() {
	p.Losses++
}

// ResetRound clears the round counters, keeping wins and losses
func (p *Player) ResetRound() {
	p.Score = 0
	p.RollsUsed = 0
}
