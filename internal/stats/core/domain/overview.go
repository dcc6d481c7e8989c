package domain

import (
	"time"

	eventsdomain "usage-insights-service/internal/events/core/domain"
)

// Overview is the derived analytics read-model for a project set and a day
// window. It is recomputed from raw events on every request and never
// persisted.
type Overview struct {
	TotalEvents    int
	UniqueUsers    int
	EventBreakdown []BreakdownEntry
	RecentEvents   []eventsdomain.Event
	DailyStats     []DailyStat
}

// BreakdownEntry aggregates one event name across the whole window.
type BreakdownEntry struct {
	EventName   string
	TotalCount  int
	UniqueUsers int
}

// DailyStat is one UTC calendar day's bucket. Date carries only the day
// (midnight UTC); counts cover that day alone.
type DailyStat struct {
	Date          time.Time
	TotalCount    int
	UniqueUsers   int
	PerEventCount map[string]int
}
