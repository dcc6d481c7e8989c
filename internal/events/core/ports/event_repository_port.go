package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"usage-insights-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent appends a single event. The insert is atomic: on error
	// nothing is persisted.
	InsertEvent(ctx context.Context, e *domain.Event) error

	// ListByProjectsSince returns all events for the given project set with
	// created_at >= since, newest first. An empty project set yields no rows.
	ListByProjectsSince(ctx context.Context, projectIDs []uuid.UUID, since time.Time) ([]domain.Event, error)

	// ListRecentByProject returns up to limit most recent events for one
	// project, newest first, with no time filter.
	ListRecentByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.Event, error)
}
