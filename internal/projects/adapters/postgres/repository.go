package postgres

import (
	"context"

	"github.com/google/uuid"

	eventsports "usage-insights-service/internal/events/core/ports"
	"usage-insights-service/internal/projects/core/domain"
	"usage-insights-service/internal/projects/core/ports"
)

type ProjectRepository struct {
	db DB
}

func NewProjectRepository(db DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var (
	_ ports.ProjectRepositoryPort     = (*ProjectRepository)(nil)
	_ eventsports.ProjectResolverPort = (*ProjectRepository)(nil)
)

const findBySecretSQL = `
SELECT id, owner_id, api_secret
FROM projects
WHERE api_secret = $1;
`

func (r *ProjectRepository) FindBySecret(ctx context.Context, secret string) (*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, findBySecretSQL, secret)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var p domain.Project
	if err := rows.Scan(&p.ID, &p.OwnerID, &p.APISecret); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProjectIDBySecret adapts FindBySecret to the ingestion side's resolver port.
func (r *ProjectRepository) ProjectIDBySecret(ctx context.Context, secret string) (uuid.UUID, bool, error) {
	p, err := r.FindBySecret(ctx, secret)
	if err != nil {
		return uuid.Nil, false, err
	}
	if p == nil {
		return uuid.Nil, false, nil
	}
	return p.ID, true, nil
}

const existsSQL = `
SELECT 1
FROM projects
WHERE id = $1;
`

func (r *ProjectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	rows, err := r.db.QueryContext(ctx, existsSQL, id)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, err
	}
	return found, nil
}

// Owned and member projects in one pass; UNION deduplicates a user who is
// both owner and member of the same project.
const visibleProjectsSQL = `
SELECT id FROM projects WHERE owner_id = $1
UNION
SELECT project_id FROM project_members WHERE user_id = $1;
`

func (r *ProjectRepository) VisibleProjects(ctx context.Context, userID string) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, visibleProjectsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
