package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	eventsdomain "usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/stats/core/ports"
)

// ListEventsUseCase serves the full project event listing: the most recent
// events regardless of any day window, capped at ListingLimit.
type ListEventsUseCase struct {
	reader ports.EventReaderPort
}

func NewListEventsUseCase(reader ports.EventReaderPort) *ListEventsUseCase {
	return &ListEventsUseCase{reader: reader}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, projectID uuid.UUID) ([]eventsdomain.Event, error) {
	events, err := uc.reader.ListRecentByProject(ctx, projectID, ListingLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return events, nil
}
