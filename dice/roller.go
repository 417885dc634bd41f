package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/gamedice/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a uniformly distributed integer in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandRoller implements Roller using math/rand.
//
// A RandRoller is not safe for concurrent use: give each goroutine its
// own roller, or guard a shared one with a lock.
type RandRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *RandRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 1 // Degenerate die always rolls 1
	}
	return r.random.Intn(sides) + 1
}
