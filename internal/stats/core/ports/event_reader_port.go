package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	eventsdomain "usage-insights-service/internal/events/core/domain"
)

// EventReaderPort is the read side of the event store: indexed lookup by
// project set and timestamp lower bound, plus the recency listing.
type EventReaderPort interface {
	ListByProjectsSince(ctx context.Context, projectIDs []uuid.UUID, since time.Time) ([]eventsdomain.Event, error)
	ListRecentByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]eventsdomain.Event, error)
}
