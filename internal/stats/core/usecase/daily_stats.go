package usecase

import (
	"time"

	eventsdomain "usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/stats/core/domain"
)

// dailyStats partitions events into exactly windowDays UTC calendar-day
// buckets, oldest first. Days without events are emitted with zero counts.
// All date truncation uses UTC regardless of the location attached to
// CreatedAt.
func dailyStats(events []eventsdomain.Event, windowDays int, now time.Time) []domain.DailyStat {
	start := windowStart(now, windowDays)

	buckets := make([]domain.DailyStat, windowDays)
	dayUsers := make([]map[string]struct{}, windowDays)
	for i := range buckets {
		buckets[i] = domain.DailyStat{
			Date:          start.AddDate(0, 0, i),
			PerEventCount: map[string]int{},
		}
		dayUsers[i] = map[string]struct{}{}
	}

	for _, e := range events {
		day := startOfDayUTC(e.CreatedAt)
		idx := int(day.Sub(start) / (24 * time.Hour))
		if idx < 0 || idx >= windowDays {
			continue
		}
		buckets[idx].TotalCount++
		buckets[idx].PerEventCount[e.EventName]++
		dayUsers[idx][e.UserID] = struct{}{}
	}

	for i := range buckets {
		buckets[i].UniqueUsers = len(dayUsers[i])
	}

	return buckets
}

// windowStart is midnight UTC of the oldest day in an inclusive windowDays
// window ending today.
func windowStart(now time.Time, windowDays int) time.Time {
	return startOfDayUTC(now).AddDate(0, 0, -(windowDays - 1))
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
