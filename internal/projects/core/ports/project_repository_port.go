package ports

import (
	"context"

	"github.com/google/uuid"

	"usage-insights-service/internal/projects/core/domain"
)

type ProjectRepositoryPort interface {
	// FindBySecret returns the project whose ingestion secret matches, or
	// (nil, nil) when no project does.
	FindBySecret(ctx context.Context, secret string) (*domain.Project, error)

	// Exists reports whether a project with the given id exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// VisibleProjects returns the deduplicated set of project ids the user
	// owns or is a member of.
	VisibleProjects(ctx context.Context, userID string) ([]uuid.UUID, error)
}
