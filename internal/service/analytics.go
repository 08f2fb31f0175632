package service

import (
	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/internal/store"
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// AnalyticsService aggregates the inquiry log for the analytics and
// dashboard views. Pure reads; nothing here mutates state.
type AnalyticsService struct {
	logs *store.LogStore
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(logs *store.LogStore) *AnalyticsService {
	return &AnalyticsService{logs: logs}
}

// Analytics computes totals, the AI-handled rate, per-channel counts and
// weekday buckets. The weekday is derived from each record's real
// creation timestamp; records whose timestamp no longer parses are
// counted in the totals but skipped from the weekday chart.
func (s *AnalyticsService) Analytics() model.AnalyticsResponse {
	records := s.logs.List()

	byChannel := map[model.Channel]int{
		model.ChannelAccommodation: 0,
		model.ChannelFacility:      0,
		model.ChannelActivity:      0,
		model.ChannelGeneral:       0,
		model.ChannelDirect:        0,
	}

	byWeekday := make([]model.WeekdayBucket, len(weekdayNames))
	for i, name := range weekdayNames {
		byWeekday[i] = model.WeekdayBucket{Weekday: name}
	}

	ai := 0
	for _, r := range records {
		byChannel[r.Channel]++
		if r.Channel != model.ChannelDirect {
			ai++
		}

		t, ok := r.CreatedTime()
		if !ok {
			continue
		}
		bucket := &byWeekday[int(t.Weekday())]
		switch r.Channel {
		case model.ChannelAccommodation:
			bucket.Accommodation++
		case model.ChannelActivity:
			bucket.Activity++
		case model.ChannelDirect:
			bucket.Direct++
		}
	}

	rate := 0
	if len(records) > 0 {
		rate = int(float64(ai)/float64(len(records))*100 + 0.5)
	}

	return model.AnalyticsResponse{
		Total:     len(records),
		AIRate:    rate,
		ByChannel: byChannel,
		ByWeekday: byWeekday,
	}
}

// DashboardStats computes the overview counters.
func (s *AnalyticsService) DashboardStats() model.DashboardStats {
	records := s.logs.List()

	stats := model.DashboardStats{Total: len(records)}
	for _, r := range records {
		if r.Channel == model.ChannelDirect {
			stats.Direct++
		} else {
			stats.AI++
		}
		if r.NotificationSent {
			stats.Notified++
		}
	}
	return stats
}
