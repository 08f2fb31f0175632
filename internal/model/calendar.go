package model

// CalendarEvent is a fabricated schedule entry used for display only;
// it is never persisted and has no bearing on the inquiry data.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// AnalyticsResponse aggregates the inquiry log for the analytics view.
type AnalyticsResponse struct {
	Total     int             `json:"total"`
	AIRate    int             `json:"aiRatePercent"`
	ByChannel map[Channel]int `json:"byChannel"`
	ByWeekday []WeekdayBucket `json:"byWeekday"`
}

// WeekdayBucket counts inquiries per weekday, split the way the bar
// chart splits them.
type WeekdayBucket struct {
	Weekday       string `json:"weekday"`
	Accommodation int    `json:"accommodation"`
	Activity      int    `json:"activity"`
	Direct        int    `json:"direct"`
}
