package models

import (
	"fmt"

	"github.com/KirkDiggler/shipcaptaincrew/internal/dice"
)

// Die is a single die in play. Held dice keep their face until reset.
type Die struct {
	// Label addresses the die from a driver (A, B, C, ...)
	Label rune

	// Sides is the number of faces on the die
	Sides int

	// Value is the face currently showing, always in [1, Sides]
	Value int

	// Held indicates the die is set aside and will not be rerolled
	Held bool
}

// NewDie creates an unheld die showing 1
func NewDie(label rune, sides int) *Die {
	return &Die{
		Label: label,
		Sides: sides,
		Value: 1,
	}
}

// Roll assigns a new face from roller unless the die is held
func (d *Die) Roll(roller dice.Roller) {
	if d.Held {
		return
	}
	d.Value = roller.Roll(d.Sides)
}

// Hold sets the die aside
func (d *Die) Hold() {
	d.Held = true
}

// Reset releases the die without rerolling it
func (d *Die) Reset() {
	d.Held = false
}

// Shows reports whether the die currently shows face
func (d *Die) Shows(face int) bool {
	return d.Value == face
}

func (d *Die) String() string {
	if d.Held {
		return fmt.Sprintf("%c:%d*", d.Label, d.Value)
	}
	return fmt.Sprintf("%c:%d", d.Label, d.Value)
}
