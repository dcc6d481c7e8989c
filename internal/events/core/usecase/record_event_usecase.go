package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/events/core/ports"
)

var (
	ErrUnknownSecret = errors.New("unrecognized project secret")
	ErrInvalidEvent  = errors.New("invalid event")
)

type RecordEventUseCase struct {
	projects ports.ProjectResolverPort
	repo     ports.EventRepositoryPort
	now      func() time.Time
}

func NewRecordEventUseCase(projects ports.ProjectResolverPort, repo ports.EventRepositoryPort, now func() time.Time) *RecordEventUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecordEventUseCase{projects: projects, repo: repo, now: now}
}

type RecordEventInput struct {
	Secret     string
	EventName  string
	UserID     string
	Properties map[string]any
}

// Execute authenticates the secret, validates the payload and appends one
// event with a server-assigned timestamp. No retries, no deduplication.
func (uc *RecordEventUseCase) Execute(ctx context.Context, in RecordEventInput) (*domain.Event, error) {
	projectID, found, err := uc.projects.ProjectIDBySecret(ctx, in.Secret)
	if err != nil {
		return nil, fmt.Errorf("resolve project secret: %w", err)
	}
	if !found {
		return nil, ErrUnknownSecret
	}

	eventName := strings.TrimSpace(in.EventName)
	userID := strings.TrimSpace(in.UserID)
	if eventName == "" {
		return nil, fmt.Errorf("%w: event_name must be non-empty", ErrInvalidEvent)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id must be non-empty", ErrInvalidEvent)
	}

	props := in.Properties
	if props == nil {
		props = map[string]any{}
	}
	for key, val := range props {
		if !isPrimitive(val) {
			return nil, fmt.Errorf("%w: property %q must have a primitive value", ErrInvalidEvent, key)
		}
	}

	e := &domain.Event{
		ID:         uuid.New(),
		ProjectID:  projectID,
		EventName:  eventName,
		UserID:     userID,
		Properties: props,
		CreatedAt:  uc.now().UTC(),
	}

	if err := uc.repo.InsertEvent(ctx, e); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	return e, nil
}

// isPrimitive accepts the value types a decoded JSON property map may carry.
// Nested objects and arrays are rejected.
func isPrimitive(v any) bool {
	switch v.(type) {
	case string, bool, float64, int, int64:
		return true
	default:
		return false
	}
}
