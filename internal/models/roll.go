package models

import (
	"time"
)

// Roll represents a single resolved roll of a dice pool
type Roll struct {
	// ID is the unique identifier for the roll
	ID string

	// Expression is the canonical form of the pool that was rolled
	Expression string

	// Results holds each die's signed contribution in pool order
	Results []int

	// Total is the sum of all results plus the pool modifier
	Total int

	// Timestamp is when the roll was made
	Timestamp time.Time
}
