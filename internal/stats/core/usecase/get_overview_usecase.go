package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	eventsdomain "usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/stats/core/domain"
	"usage-insights-service/internal/stats/core/ports"
)

const (
	// OverviewRecentLimit caps Overview.RecentEvents.
	OverviewRecentLimit = 10

	// ListingLimit caps the full project event listing, which is not
	// window-filtered.
	ListingLimit = 100

	MinWindowDays = 1
	MaxWindowDays = 365
)

// ErrInvalidWindow means the caller bypassed boundary clamping. The
// aggregator refuses rather than silently producing a truncated window.
var ErrInvalidWindow = errors.New("window days out of range")

type GetOverviewUseCase struct {
	reader ports.EventReaderPort
	now    func() time.Time
}

func NewGetOverviewUseCase(reader ports.EventReaderPort, now func() time.Time) *GetOverviewUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetOverviewUseCase{reader: reader, now: now}
}

type OverviewInput struct {
	ProjectIDs []uuid.UUID
	WindowDays int
}

// Execute computes the overview for the inclusive UTC day window
// [today-(windowDays-1), today]. WindowDays is trusted to be within
// [MinWindowDays, MaxWindowDays]; clamping happens at the transport boundary.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, in OverviewInput) (*domain.Overview, error) {
	if in.WindowDays < MinWindowDays || in.WindowDays > MaxWindowDays {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, in.WindowDays)
	}

	now := uc.now().UTC()
	start := windowStart(now, in.WindowDays)

	var events []eventsdomain.Event
	if len(in.ProjectIDs) > 0 {
		var err error
		events, err = uc.reader.ListByProjectsSince(ctx, in.ProjectIDs, start)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
	}

	return buildOverview(events, in.WindowDays, now), nil
}

// buildOverview is a pure function of the stored events, the window size and
// the reference time. Calling it twice over unchanged data yields identical
// results.
func buildOverview(events []eventsdomain.Event, windowDays int, now time.Time) *domain.Overview {
	start := windowStart(now, windowDays)

	windowed := make([]eventsdomain.Event, 0, len(events))
	for _, e := range events {
		if !e.CreatedAt.Before(start) {
			windowed = append(windowed, e)
		}
	}

	users := map[string]struct{}{}
	type group struct {
		count int
		users map[string]struct{}
	}
	groups := map[string]*group{}

	for _, e := range windowed {
		users[e.UserID] = struct{}{}
		g := groups[e.EventName]
		if g == nil {
			g = &group{users: map[string]struct{}{}}
			groups[e.EventName] = g
		}
		g.count++
		g.users[e.UserID] = struct{}{}
	}

	breakdown := make([]domain.BreakdownEntry, 0, len(groups))
	for name, g := range groups {
		breakdown = append(breakdown, domain.BreakdownEntry{
			EventName:   name,
			TotalCount:  g.count,
			UniqueUsers: len(g.users),
		})
	}
	// count descending, event name ascending as the deterministic tie-break
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalCount != breakdown[j].TotalCount {
			return breakdown[i].TotalCount > breakdown[j].TotalCount
		}
		return breakdown[i].EventName < breakdown[j].EventName
	})

	recent := make([]eventsdomain.Event, len(windowed))
	copy(recent, windowed)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > OverviewRecentLimit {
		recent = recent[:OverviewRecentLimit]
	}

	return &domain.Overview{
		TotalEvents:    len(windowed),
		UniqueUsers:    len(users),
		EventBreakdown: breakdown,
		RecentEvents:   recent,
		DailyStats:     dailyStats(windowed, windowDays, now),
	}
}
