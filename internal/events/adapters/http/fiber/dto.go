package fiber

import (
	"time"

	"usage-insights-service/internal/events/core/domain"
)

// CreateEventRequest represents the ingestion payload. The project secret
// travels in the X-API-Key header, not the body.
type CreateEventRequest struct {
	EventName  string         `json:"eventName" validate:"required,max=128"`
	UserID     string         `json:"userId" validate:"required,max=128"`
	Properties map[string]any `json:"properties" validate:"omitempty,max=50"`
}

type EventResponse struct {
	ID         string         `json:"id"`
	EventName  string         `json:"eventName"`
	UserID     string         `json:"userId"`
	ProjectID  string         `json:"projectId"`
	Properties map[string]any `json:"properties"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:         e.ID.String(),
		EventName:  e.EventName,
		UserID:     e.UserID,
		ProjectID:  e.ProjectID.String(),
		Properties: e.Properties,
		CreatedAt:  e.CreatedAt,
	}
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message,omitempty" example:"event_name must be non-empty"`
}
