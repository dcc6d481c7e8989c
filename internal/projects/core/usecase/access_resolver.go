package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"usage-insights-service/internal/projects/core/ports"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("project access denied")
)

// AccessResolver computes which projects a user may view: owned projects
// union member projects.
type AccessResolver struct {
	repo ports.ProjectRepositoryPort
}

func NewAccessResolver(repo ports.ProjectRepositoryPort) *AccessResolver {
	return &AccessResolver{repo: repo}
}

func (r *AccessResolver) VisibleProjects(ctx context.Context, userID string) ([]uuid.UUID, error) {
	ids, err := r.repo.VisibleProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("visible projects: %w", err)
	}
	return ids, nil
}

func (r *AccessResolver) HasAccess(ctx context.Context, userID string, projectID uuid.UUID) (bool, error) {
	ids, err := r.VisibleProjects(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == projectID {
			return true, nil
		}
	}
	return false, nil
}

// Authorize checks existence before access: a project that does not exist
// yields ErrProjectNotFound, one that exists but is not visible to the user
// yields ErrForbidden. Callers depend on that order.
func (r *AccessResolver) Authorize(ctx context.Context, userID string, projectID uuid.UUID) error {
	exists, err := r.repo.Exists(ctx, projectID)
	if err != nil {
		return fmt.Errorf("project existence: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}

	ok, err := r.HasAccess(ctx, userID, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
