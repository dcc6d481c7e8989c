package fiber

import (
	"time"

	eventsdomain "usage-insights-service/internal/events/core/domain"
	"usage-insights-service/internal/stats/core/domain"
)

type OverviewResponse struct {
	TotalEvents    int                      `json:"totalEvents"`
	UniqueUsers    int                      `json:"uniqueUsers"`
	EventBreakdown []BreakdownEntryResponse `json:"eventBreakdown"`
	RecentEvents   []EventResponse          `json:"recentEvents"`
	DailyStats     []DailyStatResponse      `json:"dailyStats"`
}

type BreakdownEntryResponse struct {
	EventName   string `json:"eventName"`
	TotalCount  int    `json:"totalCount"`
	UniqueUsers int    `json:"uniqueUsers"`
}

type DailyStatResponse struct {
	// Date is the ISO calendar date of the bucket, e.g. "2026-08-31".
	Date          string         `json:"date"`
	TotalCount    int            `json:"totalCount"`
	UniqueUsers   int            `json:"uniqueUsers"`
	PerEventCount map[string]int `json:"perEventCount"`
}

type EventResponse struct {
	ID         string         `json:"id"`
	EventName  string         `json:"eventName"`
	UserID     string         `json:"userId"`
	ProjectID  string         `json:"projectId"`
	Properties map[string]any `json:"properties"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"project_not_found"`
	Message string `json:"message,omitempty"`
}

const isoDate = "2006-01-02"

func toOverviewResponse(o *domain.Overview) OverviewResponse {
	resp := OverviewResponse{
		TotalEvents:    o.TotalEvents,
		UniqueUsers:    o.UniqueUsers,
		EventBreakdown: make([]BreakdownEntryResponse, 0, len(o.EventBreakdown)),
		RecentEvents:   toEventResponses(o.RecentEvents),
		DailyStats:     make([]DailyStatResponse, 0, len(o.DailyStats)),
	}

	for _, b := range o.EventBreakdown {
		resp.EventBreakdown = append(resp.EventBreakdown, BreakdownEntryResponse{
			EventName:   b.EventName,
			TotalCount:  b.TotalCount,
			UniqueUsers: b.UniqueUsers,
		})
	}

	for _, d := range o.DailyStats {
		resp.DailyStats = append(resp.DailyStats, DailyStatResponse{
			Date:          d.Date.Format(isoDate),
			TotalCount:    d.TotalCount,
			UniqueUsers:   d.UniqueUsers,
			PerEventCount: d.PerEventCount,
		})
	}

	return resp
}

func toEventResponses(events []eventsdomain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			ID:         e.ID.String(),
			EventName:  e.EventName,
			UserID:     e.UserID,
			ProjectID:  e.ProjectID.String(),
			Properties: e.Properties,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}
