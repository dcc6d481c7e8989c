package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"usage-insights-service/internal/auth"
	eventsdomain "usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/metrics"
	projectsusecase "usage-insights-service/internal/projects/core/usecase"
	"usage-insights-service/internal/stats/core/domain"
	"usage-insights-service/internal/stats/core/usecase"
)

// DefaultWindowDays is used when the days query parameter is absent.
const DefaultWindowDays = 30

type GetOverviewUseCase interface {
	Execute(ctx context.Context, in usecase.OverviewInput) (*domain.Overview, error)
}

type ListEventsUseCase interface {
	Execute(ctx context.Context, projectID uuid.UUID) ([]eventsdomain.Event, error)
}

type AccessResolver interface {
	VisibleProjects(ctx context.Context, userID string) ([]uuid.UUID, error)
	Authorize(ctx context.Context, userID string, projectID uuid.UUID) error
}

type StatsHandler struct {
	overviewUC GetOverviewUseCase
	listUC     ListEventsUseCase
	access     AccessResolver
}

func NewStatsHandler(overviewUC GetOverviewUseCase, listUC ListEventsUseCase, access AccessResolver) *StatsHandler {
	return &StatsHandler{overviewUC: overviewUC, listUC: listUC, access: access}
}

// GetProjectStats godoc
// @Summary Overview for one project
// @Description Aggregates the project's events over an inclusive UTC day window.
// @Tags Stats
// @Produce json
// @Param projectID path string true "Project id"
// @Param days query int false "Window size in days, default 30, clamped to [1,365]"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/projects/{projectID}/stats [get]
func (h *StatsHandler) GetProjectStats(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectID"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_project_id",
		})
	}

	days, err := windowDaysParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_days",
		})
	}

	if err := h.access.Authorize(c.UserContext(), auth.UserID(c), projectID); err != nil {
		return authorizeError(c, err)
	}

	defer observeOverview("project")()

	overview, err := h.overviewUC.Execute(c.UserContext(), usecase.OverviewInput{
		ProjectIDs: []uuid.UUID{projectID},
		WindowDays: days,
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.JSON(toOverviewResponse(overview))
}

// GetAllStats godoc
// @Summary Overview across all visible projects
// @Description Aggregates events of every project the caller owns or is a member of.
// @Tags Stats
// @Produce json
// @Param days query int false "Window size in days, default 30, clamped to [1,365]"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/stats [get]
func (h *StatsHandler) GetAllStats(c *fiber.Ctx) error {
	days, err := windowDaysParam(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_days",
		})
	}

	projectIDs, err := h.access.VisibleProjects(c.UserContext(), auth.UserID(c))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	defer observeOverview("all")()

	overview, err := h.overviewUC.Execute(c.UserContext(), usecase.OverviewInput{
		ProjectIDs: projectIDs,
		WindowDays: days,
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.JSON(toOverviewResponse(overview))
}

// ListProjectEvents godoc
// @Summary Most recent events of a project
// @Description Returns up to 100 most recent events, newest first, with no day-window filter.
// @Tags Stats
// @Produce json
// @Param projectID path string true "Project id"
// @Success 200 {array} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/projects/{projectID}/events [get]
func (h *StatsHandler) ListProjectEvents(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectID"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_project_id",
		})
	}

	if err := h.access.Authorize(c.UserContext(), auth.UserID(c), projectID); err != nil {
		return authorizeError(c, err)
	}

	events, err := h.listUC.Execute(c.UserContext(), projectID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.JSON(toEventResponses(events))
}

// windowDaysParam reads the days query parameter. Non-numeric input is an
// error; numeric input outside [1,365] is clamped here, at the boundary, so
// the aggregator can trust its input.
func windowDaysParam(c *fiber.Ctx) (int, error) {
	raw := c.Query("days", "")
	if raw == "" {
		return DefaultWindowDays, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if n < usecase.MinWindowDays {
		n = usecase.MinWindowDays
	}
	if n > usecase.MaxWindowDays {
		n = usecase.MaxWindowDays
	}
	return n, nil
}

// authorizeError preserves the exists-before-access distinction: not-found
// wins over forbidden.
func authorizeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, projectsusecase.ErrProjectNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "project_not_found",
		})
	case errors.Is(err, projectsusecase.ErrForbidden):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Error: "forbidden",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func observeOverview(scope string) func() {
	metrics.OverviewRequests.WithLabelValues(scope).Inc()
	start := time.Now()
	return func() {
		metrics.OverviewDuration.Observe(time.Since(start).Seconds())
	}
}
