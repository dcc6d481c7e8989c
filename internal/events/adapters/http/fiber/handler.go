package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/events/core/usecase"
	"usage-insights-service/internal/metrics"
	"usage-insights-service/internal/validation"
)

// APIKeyHeader carries the project's ingestion secret.
const APIKeyHeader = "X-API-Key"

type RecordEventUseCase interface {
	Execute(ctx context.Context, in usecase.RecordEventInput) (*domain.Event, error)
}

type EventHandler struct {
	recordUC RecordEventUseCase
}

func NewEventHandler(recordUC RecordEventUseCase) *EventHandler {
	return &EventHandler{recordUC: recordUC}
}

// CreateEvent godoc
// @Summary Record a usage event
// @Description Appends one event for the project identified by the X-API-Key secret. The timestamp is server-assigned.
// @Tags Events
// @Accept json
// @Produce json
// @Param X-API-Key header string true "Project ingestion secret"
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	secret := c.Get(APIKeyHeader)
	if secret == "" {
		metrics.EventsRejected.WithLabelValues("unauthorized").Inc()
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error: "missing_api_key",
		})
	}

	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		metrics.EventsRejected.WithLabelValues("invalid").Inc()
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if err := validation.Struct(&req); err != nil {
		metrics.EventsRejected.WithLabelValues("invalid").Inc()
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	}

	e, err := h.recordUC.Execute(c.UserContext(), usecase.RecordEventInput{
		Secret:     secret,
		EventName:  req.EventName,
		UserID:     req.UserID,
		Properties: req.Properties,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownSecret):
			metrics.EventsRejected.WithLabelValues("unauthorized").Inc()
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error: "unknown_api_key",
			})
		case errors.Is(err, usecase.ErrInvalidEvent):
			metrics.EventsRejected.WithLabelValues("invalid").Inc()
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			metrics.EventsRejected.WithLabelValues("error").Inc()
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	metrics.EventsIngested.Inc()
	return c.Status(http.StatusCreated).JSON(toEventResponse(e))
}
