package rolls

import (
	"github.com/KirkDiggler/gamedice/dice"
	"github.com/KirkDiggler/gamedice/internal/common/clock"
	"github.com/KirkDiggler/gamedice/internal/common/uuid"
	"github.com/KirkDiggler/gamedice/internal/models"
)

// Config holds configuration for the rolls service
type Config struct {
	// Roller produces the underlying random die results
	Roller dice.Roller

	// Clock provides timestamps for recorded rolls
	Clock clock.Clock

	// UUIDGenerator provides roll identifiers
	UUIDGenerator uuid.UUID

	// HistorySize caps how many rolls are retained; zero or negative
	// uses the default
	HistorySize int
}

// RollPoolInput contains the parameters for rolling a pool
type RollPoolInput struct {
	// Pool is the dice pool to roll
	Pool dice.Pool
}

// RollPoolOutput contains the result of rolling a pool
type RollPoolOutput struct {
	// Roll is the recorded roll
	Roll *models.Roll
}

// GetHistoryInput contains the parameters for fetching roll history
type GetHistoryInput struct {
	// Limit caps the number of rolls returned; zero returns all
	// retained rolls
	Limit int
}

// GetHistoryOutput contains retained rolls, newest first
type GetHistoryOutput struct {
	// Rolls are the retained rolls
	Rolls []*models.Roll
}
