package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is one recorded user action. CreatedAt is always server-assigned
// at ingestion time; client clocks are never trusted for ordering.
type Event struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	EventName  string
	UserID     string
	Properties map[string]any
	CreatedAt  time.Time
}
