package repository

import "time"

// PointBalance represents a balance row: one per loyalty program.
type PointBalance struct {
	ID        string
	ProgramID string
	Balance   int
	UpdatedAt time.Time
}
