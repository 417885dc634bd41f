package rolls

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gamedice/internal/services/rolls Service

// Service defines the interface for roll operations
type Service interface {
	// RollPool rolls every die in a pool and records the outcome
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)

	// GetHistory returns retained rolls, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
