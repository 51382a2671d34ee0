package dice

import (
	"math/rand"
	"time"
)

// DefaultSides is the side count used when a caller asks for fewer than one side
const DefaultSides = 6

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/shipcaptaincrew/internal/dice Roller

// Roller produces a face value for a single die
type Roller interface {
	// Roll returns a uniformly random face in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// SeededRoller is a Roller backed by math/rand
type SeededRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &SeededRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *SeededRoller) Roll(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}
	return r.random.Intn(sides) + 1
}
