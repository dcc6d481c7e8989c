package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/events/core/usecase"
)

type fakeRecordEventUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.RecordEventInput) (*domain.Event, error)
	lastInput usecase.RecordEventInput
	called    bool
}

func (f *fakeRecordEventUseCase) Execute(ctx context.Context, in usecase.RecordEventInput) (*domain.Event, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, errors.New("not configured")
}

// helper: create fiber app and routes
func setupTestApp(uc RecordEventUseCase) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(uc)
	app.Post("/api/events", h.CreateEvent)
	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, body any, apiKey string) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/events", buf)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(APIKeyHeader, apiKey)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, respBody
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestCreateEvent_Success(t *testing.T) {
	eventID := uuid.New()
	projectID := uuid.New()
	createdAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	uc := &fakeRecordEventUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.RecordEventInput) (*domain.Event, error) {
			if in.Secret != "sk_1" {
				t.Fatalf("expected secret sk_1, got %s", in.Secret)
			}
			return &domain.Event{
				ID:         eventID,
				ProjectID:  projectID,
				EventName:  in.EventName,
				UserID:     in.UserID,
				Properties: in.Properties,
				CreatedAt:  createdAt,
			}, nil
		},
	}

	app := setupTestApp(uc)

	resp, body := doRequest(t, app, map[string]any{
		"eventName":  "page_view",
		"userId":     "u1",
		"properties": map[string]any{"path": "/"},
	}, "sk_1")

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", resp.StatusCode, body)
	}

	var out EventResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if out.ID != eventID.String() || out.ProjectID != projectID.String() {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.EventName != "page_view" || out.UserID != "u1" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

// ------------------------------------------------------------
// AUTH
// ------------------------------------------------------------

func TestCreateEvent_MissingAPIKey(t *testing.T) {
	uc := &fakeRecordEventUseCase{}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, map[string]any{
		"eventName": "page_view",
		"userId":    "u1",
	}, "")

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("expected usecase not to be called")
	}
}

func TestCreateEvent_UnknownSecret(t *testing.T) {
	uc := &fakeRecordEventUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.RecordEventInput) (*domain.Event, error) {
			return nil, usecase.ErrUnknownSecret
		},
	}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, map[string]any{
		"eventName": "page_view",
		"userId":    "u1",
	}, "sk_bogus")

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// BAD REQUEST
// ------------------------------------------------------------

func TestCreateEvent_InvalidJSON(t *testing.T) {
	uc := &fakeRecordEventUseCase{}
	app := setupTestApp(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(APIKeyHeader, "sk_1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("expected usecase not to be called")
	}
}

func TestCreateEvent_MissingFields(t *testing.T) {
	uc := &fakeRecordEventUseCase{}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, map[string]any{
		"userId": "u1",
	}, "sk_1")

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("expected usecase not to be called")
	}
}

func TestCreateEvent_WhitespaceNameRejected(t *testing.T) {
	uc := &fakeRecordEventUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.RecordEventInput) (*domain.Event, error) {
			return nil, usecase.ErrInvalidEvent
		},
	}
	app := setupTestApp(uc)

	resp, body := doRequest(t, app, map[string]any{
		"eventName": "   ",
		"userId":    "u1",
	}, "sk_1")

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (%s)", resp.StatusCode, body)
	}
}

// ------------------------------------------------------------
// INTERNAL ERROR
// ------------------------------------------------------------

func TestCreateEvent_StorageFailure(t *testing.T) {
	uc := &fakeRecordEventUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.RecordEventInput) (*domain.Event, error) {
			return nil, errors.New("db down")
		},
	}
	app := setupTestApp(uc)

	resp, _ := doRequest(t, app, map[string]any{
		"eventName": "page_view",
		"userId":    "u1",
	}, "sk_1")

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
