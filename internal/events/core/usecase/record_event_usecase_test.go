package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/events/core/usecase"
)

// fakeProjectResolver fakes ProjectResolverPort.
type fakeProjectResolver struct {
	ResolveFn  func(ctx context.Context, secret string) (uuid.UUID, bool, error)
	lastSecret string
}

func (f *fakeProjectResolver) ProjectIDBySecret(ctx context.Context, secret string) (uuid.UUID, bool, error) {
	f.lastSecret = secret
	if f.ResolveFn != nil {
		return f.ResolveFn(ctx, secret)
	}
	return uuid.Nil, false, nil
}

// fakeEventRepo fakes EventRepositoryPort.
type fakeEventRepo struct {
	InsertFn     func(ctx context.Context, e *domain.Event) error
	lastInserted *domain.Event
	insertCalled bool
}

func (f *fakeEventRepo) InsertEvent(ctx context.Context, e *domain.Event) error {
	f.insertCalled = true
	f.lastInserted = e
	if f.InsertFn != nil {
		return f.InsertFn(ctx, e)
	}
	return nil
}

func (f *fakeEventRepo) ListByProjectsSince(ctx context.Context, projectIDs []uuid.UUID, since time.Time) ([]domain.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) ListRecentByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.Event, error) {
	return nil, nil
}

func resolverFor(projectID uuid.UUID, secret string) *fakeProjectResolver {
	return &fakeProjectResolver{
		ResolveFn: func(ctx context.Context, s string) (uuid.UUID, bool, error) {
			if s == secret {
				return projectID, true, nil
			}
			return uuid.Nil, false, nil
		},
	}
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestRecordEvent_Success(t *testing.T) {
	projectID := uuid.New()
	resolver := resolverFor(projectID, "sk_live_1")
	repo := &fakeEventRepo{}

	fixed := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	uc := usecase.NewRecordEventUseCase(resolver, repo, func() time.Time { return fixed })

	e, err := uc.Execute(context.Background(), usecase.RecordEventInput{
		Secret:     "sk_live_1",
		EventName:  "page_view",
		UserID:     "u1",
		Properties: map[string]any{"path": "/pricing", "count": float64(3)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.insertCalled {
		t.Fatalf("expected InsertEvent to be called")
	}
	if e.ProjectID != projectID {
		t.Fatalf("expected projectID %s, got %s", projectID, e.ProjectID)
	}
	if e.ID == uuid.Nil {
		t.Fatalf("expected a generated event id")
	}
	if !e.CreatedAt.Equal(fixed) {
		t.Fatalf("expected createdAt %v (server clock), got %v", fixed, e.CreatedAt)
	}
	if e.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected createdAt in UTC, got %v", e.CreatedAt.Location())
	}
}

// ------------------------------------------------------------
// TRIMMING
// ------------------------------------------------------------

func TestRecordEvent_TrimsNameAndUserID(t *testing.T) {
	resolver := resolverFor(uuid.New(), "sk")
	repo := &fakeEventRepo{}
	uc := usecase.NewRecordEventUseCase(resolver, repo, nil)

	e, err := uc.Execute(context.Background(), usecase.RecordEventInput{
		Secret:    "sk",
		EventName: "  signup  ",
		UserID:    "\tu42\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.EventName != "signup" {
		t.Fatalf("expected trimmed event name, got %q", e.EventName)
	}
	if e.UserID != "u42" {
		t.Fatalf("expected trimmed user id, got %q", e.UserID)
	}
}

// ------------------------------------------------------------
// UNAUTHORIZED
// ------------------------------------------------------------

func TestRecordEvent_UnknownSecret(t *testing.T) {
	resolver := resolverFor(uuid.New(), "sk_known")
	repo := &fakeEventRepo{}
	uc := usecase.NewRecordEventUseCase(resolver, repo, nil)

	_, err := uc.Execute(context.Background(), usecase.RecordEventInput{
		Secret:    "sk_bogus",
		EventName: "page_view",
		UserID:    "u1",
	})
	if !errors.Is(err, usecase.ErrUnknownSecret) {
		t.Fatalf("expected ErrUnknownSecret, got %v", err)
	}
	if repo.insertCalled {
		t.Fatalf("expected no insert on unknown secret")
	}
}

// ------------------------------------------------------------
// INVALID INPUT
// ------------------------------------------------------------

func TestRecordEvent_EmptyEventName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		resolver := resolverFor(uuid.New(), "sk")
		repo := &fakeEventRepo{}
		uc := usecase.NewRecordEventUseCase(resolver, repo, nil)

		_, err := uc.Execute(context.Background(), usecase.RecordEventInput{
			Secret:    "sk",
			EventName: name,
			UserID:    "u1",
		})
		if !errors.Is(err, usecase.ErrInvalidEvent) {
			t.Fatalf("eventName %q: expected ErrInvalidEvent, got %v", name, err)
		}
		if repo.insertCalled {
			t.Fatalf("eventName %q: expected no row persisted", name)
		}
	}
}

func TestRecordEvent_EmptyUserID(t *testing.T) {
	resolver := resolverFor(uuid.New(), "sk")
	repo := &fakeEventRepo{}
	uc := usecase.NewRecordEventUseCase(resolver, repo, nil)

	_, err := uc.Execute(context.Background(), usecase.RecordEventInput{
		Secret:    "sk",
		EventName: "page_view",
		UserID:    "   ",
	})
	if !errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
	if repo.insertCalled {
		t.Fatalf("expected no row persisted")
	}
}

func TestRecordEvent_NonPrimitiveProperty(t *testing.T) {
	resolver := resolverFor(uuid.New(), "sk")
	repo := &fakeEventRepo{}
	uc := usecase.NewRecordEventUseCase(resolver, repo, nil)

	_, err := uc.Execute(context.Background(), usecase.RecordEventInput{
		Secret:     "sk",
		EventName:  "page_view",
		UserID:     "u1",
		Properties: map[string]any{"nested": map[string]any{"a": 1}},
	})
	if !errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
	if repo.insertCalled {
		t.Fatalf("expected no row persisted")
	}
}

func TestRecordEvent_NilPropertiesBecomeEmptyMap(t *testing.T) {
	resolver := resolverFor(uuid.New(), "sk")
	repo := &fakeEventRepo{}
	uc := usecase.NewRecordEventUseCase(resolver, repo, nil)

	e, err := uc.Execute(context.Background(), usecase.RecordEventInput{
		Secret:    "sk",
		EventName: "page_view",
		UserID:    "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Properties == nil {
		t.Fatalf("expected non-nil properties map")
	}
	if len(e.Properties) != 0 {
		t.Fatalf("expected empty properties map, got %v", e.Properties)
	}
}

// ------------------------------------------------------------
// STORAGE FAILURE
// ------------------------------------------------------------

func TestRecordEvent_RepoError(t *testing.T) {
	resolver := resolverFor(uuid.New(), "sk")
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.Event) error {
			return errors.New("db down")
		},
	}
	uc := usecase.NewRecordEventUseCase(resolver, repo, nil)

	_, err := uc.Execute(context.Background(), usecase.RecordEventInput{
		Secret:    "sk",
		EventName: "page_view",
		UserID:    "u1",
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if errors.Is(err, usecase.ErrInvalidEvent) || errors.Is(err, usecase.ErrUnknownSecret) {
		t.Fatalf("storage failure must not map to a client error, got %v", err)
	}
}
