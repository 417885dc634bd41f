package rolls

import (
	"context"

	"github.com/KirkDiggler/gamedice/internal/common/clock"
	"github.com/KirkDiggler/gamedice/internal/common/uuid"
	"github.com/KirkDiggler/gamedice/internal/models"

	"github.com/KirkDiggler/gamedice/dice"
)

const defaultHistorySize = 100

// service implements the Service interface
type service struct {
	roller        dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	historySize   int
	history       []*models.Roll
}

// NewService creates a new rolls service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	historySize := cfg.HistorySize
	if historySize <= 0 {
		historySize = defaultHistorySize
	}

	return &service{
		roller:        cfg.Roller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		historySize:   historySize,
	}, nil
}

// RollPool rolls every die in the pool individually, records the
// outcome with an ID and timestamp, and returns it
func (s *service) RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	entries := input.Pool.Entries()
	results := make([]int, 0, len(entries))
	total := input.Pool.Modifier()
	for _, e := range entries {
		result := e.Sign * e.Die.Roll(s.roller)
		results = append(results, result)
		total += result
	}

	roll := &models.Roll{
		ID:         s.uuidGenerator.NewUUID(),
		Expression: input.Pool.String(),
		Results:    results,
		Total:      total,
		Timestamp:  s.clock.Now(),
	}

	// Retain the most recent rolls only
	s.history = append(s.history, roll)
	if len(s.history) > s.historySize {
		s.history = s.history[len(s.history)-s.historySize:]
	}

	return &RollPoolOutput{
		Roll: roll,
	}, nil
}

// GetHistory returns retained rolls, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	limit := len(s.history)
	if input != nil && input.Limit > 0 && input.Limit < limit {
		limit = input.Limit
	}

	rolls := make([]*models.Roll, 0, limit)
	for i := len(s.history) - 1; i >= len(s.history)-limit; i-- {
		rolls = append(rolls, s.history[i])
	}

	return &GetHistoryOutput{
		Rolls: rolls,
	}, nil
}
