package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

const insertEventSQL = `
INSERT INTO events (
    id,
    project_id,
    event_name,
    user_id,
    properties,
    created_at
) VALUES (
    $1, $2, $3, $4, $5, $6
);
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) error {
	propertiesJSON, err := json.Marshal(e.Properties)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.ProjectID,
		e.EventName,
		e.UserID,
		propertiesJSON,
		e.CreatedAt,
	)
	return err
}

const listByProjectsSinceSQL = `
SELECT id, project_id, event_name, user_id, properties, created_at
FROM events
WHERE project_id = ANY($1::uuid[]) AND created_at >= $2
ORDER BY created_at DESC;
`

func (r *EventRepository) ListByProjectsSince(ctx context.Context, projectIDs []uuid.UUID, since time.Time) ([]domain.Event, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(projectIDs))
	for i, id := range projectIDs {
		ids[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, listByProjectsSinceSQL, pq.Array(ids), since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

const listRecentByProjectSQL = `
SELECT id, project_id, event_name, user_id, properties, created_at
FROM events
WHERE project_id = $1
ORDER BY created_at DESC
LIMIT $2;
`

func (r *EventRepository) ListRecentByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listRecentByProjectSQL, projectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows RowScanner) ([]domain.Event, error) {
	var events []domain.Event

	for rows.Next() {
		var (
			e         domain.Event
			propsJSON []byte
		)
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.EventName, &e.UserID, &propsJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		if len(propsJSON) > 0 {
			if err := json.Unmarshal(propsJSON, &e.Properties); err != nil {
				return nil, err
			}
		}
		if e.Properties == nil {
			e.Properties = map[string]any{}
		}
		e.CreatedAt = e.CreatedAt.UTC()
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
