package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/stayai/facility-desk/internal/model"
)

// ReportService renders plain-text reports offered as file downloads.
// The exact layout is presentational; nothing else parses it.
type ReportService struct{}

// NewReportService creates a new report service.
func NewReportService() *ReportService {
	return &ReportService{}
}

// DetailReport renders the full detail report for a stored record and
// returns the content together with a download filename derived from
// the phone digits and the record's date stamp.
func (s *ReportService) DetailReport(record model.InquiryRecord, profile model.FacilityProfile) (string, string) {
	handling := "AI auto response (" + string(record.Channel) + ")"
	if record.Channel == model.ChannelDirect {
		handling = "staff direct response"
	}

	special := record.Detail.SpecialRequests
	if special == "" {
		special = record.Detail.Meals
	}
	if special == "" {
		special = "none"
	}

	transcript := record.Transcript
	if transcript == "" {
		transcript = "No conversation transcript on file."
	}

	notified := "not sent"
	if record.NotificationSent {
		notified = "sent"
	}

	var b strings.Builder
	b.WriteString("[StayAI inquiry detail report]\n")
	b.WriteString("----------------------------------\n")
	fmt.Fprintf(&b, "Record ID: %s\n", record.ID)
	fmt.Fprintf(&b, "Logged at: %s\n", record.CreatedAt)
	fmt.Fprintf(&b, "Customer phone: %s\n", record.PhoneNumber)
	fmt.Fprintf(&b, "Handling: %s\n", handling)
	b.WriteString("----------------------------------\n")
	b.WriteString("[Summary]\n")
	b.WriteString(record.Summary + "\n\n")
	b.WriteString("[Details]\n")
	fmt.Fprintf(&b, "- Purpose: %s\n", record.Detail.Purpose)
	fmt.Fprintf(&b, "- Target: %s\n", valueOr(record.Detail.Target, "unspecified"))
	fmt.Fprintf(&b, "- Headcount: %d\n", record.Detail.Headcount)
	fmt.Fprintf(&b, "- Schedule: %s\n", record.Detail.Date)
	fmt.Fprintf(&b, "- Meals/notes: %s\n", special)
	b.WriteString("----------------------------------\n")
	b.WriteString("[Transcript]\n")
	b.WriteString(transcript + "\n")
	b.WriteString("----------------------------------\n")
	fmt.Fprintf(&b, "Manager notification: %s\n", notified)
	fmt.Fprintf(&b, "Facility: %s\n", valueOr(profile.FacilityName, "StayAI"))
	fmt.Fprintf(&b, "Manager: %s\n", valueOr(profile.ManagerName, "Manager"))
	b.WriteString("----------------------------------\n")
	b.WriteString("Generated by StayAI Manager.\n")

	datePart := record.CreatedAt
	if i := strings.IndexByte(datePart, ' '); i >= 0 {
		datePart = datePart[:i]
	}
	datePart = strings.ReplaceAll(datePart, "-", "")

	phone := digitsOnly(record.PhoneNumber)
	if phone == "" {
		phone = "log"
	}

	return b.String(), fmt.Sprintf("inquiry_%s_%s.txt", phone, datePart)
}

// Briefing renders the live-consultation briefing from the direct-entry
// form state, for pasting into the shared consultation document.
func (s *ReportService) Briefing(req model.DirectEntryRequest, profile model.FacilityProfile, now time.Time) (string, string) {
	stay := req.Accommodation
	if strings.HasPrefix(stay, "other") {
		stay = req.CustomAccommodation
	}

	var b strings.Builder
	b.WriteString("[StayAI consultation briefing]\n")
	fmt.Fprintf(&b, "Logged at: %s\n", now.Format(model.TimestampLayout))
	fmt.Fprintf(&b, "Facility: %s\n", profile.FacilityName)
	fmt.Fprintf(&b, "Manager: %s\n\n", profile.ManagerName)
	b.WriteString("Customer:\n")
	fmt.Fprintf(&b, "- Organization: %s\n", valueOr(req.OrgName, "Individual"))
	fmt.Fprintf(&b, "- Phone: %s\n", valueOr(req.Phone, "not provided"))
	fmt.Fprintf(&b, "- Planned visit: %s\n\n", valueOr(req.VisitDate, "undecided"))
	b.WriteString("Consultation:\n")
	fmt.Fprintf(&b, "- Target group: %s\n", valueOr(req.Target, "unspecified"))
	fmt.Fprintf(&b, "- Headcount: %s\n", valueOr(req.CountBand, "unspecified"))
	fmt.Fprintf(&b, "- Stay: %s\n", valueOr(stay, "unspecified"))
	fmt.Fprintf(&b, "- Activities: %s\n", valueOr(strings.Join(req.Activities, ", "), "none"))
	fmt.Fprintf(&b, "- Meals: %s\n\n", valueOr(strings.Join(req.Meals, ", "), "none"))
	b.WriteString("Notes:\n")
	b.WriteString(valueOr(req.SpecialRequests, "none") + "\n")

	name := req.OrgName
	if name == "" {
		name = req.Phone
	}
	if name == "" {
		name = "briefing"
	}

	return b.String(), fmt.Sprintf("inquiry_%s.txt", sanitizeFilename(name))
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}
