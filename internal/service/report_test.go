package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stayai/facility-desk/internal/model"
)

func TestDetailReport_ContentAndFilename(t *testing.T) {
	svc := NewReportService()

	record := model.InquiryRecord{
		ID:          "77",
		CreatedAt:   "2024-05-01 10:00",
		PhoneNumber: "010-1234-5678",
		Channel:     model.ChannelAccommodation,
		Summary:     "Family of 3",
		Detail: model.InquiryDetail{
			Purpose:   "lodging",
			Headcount: 3,
			Date:      "5/10",
			Meals:     "2 meals",
		},
		Transcript:       "Customer: hello",
		NotificationSent: true,
	}
	profile := model.FacilityProfile{FacilityName: "Nature Land", ManagerName: "Kim"}

	content, filename := svc.DetailReport(record, profile)

	require.Equal(t, "inquiry_01012345678_20240501.txt", filename)
	require.Contains(t, content, "Record ID: 77")
	require.Contains(t, content, "AI auto response (ACCOMMODATION)")
	require.Contains(t, content, "Meals/notes: 2 meals")
	require.Contains(t, content, "Manager notification: sent")
	require.Contains(t, content, "Facility: Nature Land")
}

func TestDetailReport_DirectEntryHandling(t *testing.T) {
	svc := NewReportService()

	record := model.InquiryRecord{
		ID:          "8",
		CreatedAt:   "2024-05-02 09:30",
		PhoneNumber: "010-****-****",
		Channel:     model.ChannelDirect,
	}

	content, filename := svc.DetailReport(record, model.FacilityProfile{})

	// The placeholder phone has digits too; they still key the filename.
	require.Equal(t, "inquiry_010_20240502.txt", filename)
	require.Contains(t, content, "staff direct response")
	require.Contains(t, content, "No conversation transcript on file.")
	require.Contains(t, content, "Meals/notes: none")
}

func TestBriefing_FilenamePrefersOrgName(t *testing.T) {
	svc := NewReportService()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	content, filename := svc.Briefing(model.DirectEntryRequest{
		OrgName:   "Sunrise Elementary",
		Phone:     "010-2222-3333",
		CountBand: "100-150",
	}, model.FacilityProfile{FacilityName: "Nature Land"}, now)

	require.Equal(t, "inquiry_Sunrise_Elementary.txt", filename)
	require.Contains(t, content, "Organization: Sunrise Elementary")
	require.Contains(t, content, "Headcount: 100-150")
	require.Contains(t, content, "Logged at: 2024-05-01 10:00")
}

func TestBriefing_FallbackFilenames(t *testing.T) {
	svc := NewReportService()
	now := time.Now()

	_, filename := svc.Briefing(model.DirectEntryRequest{Phone: "010-2222-3333"}, model.FacilityProfile{}, now)
	require.Equal(t, "inquiry_010-2222-3333.txt", filename)

	_, filename = svc.Briefing(model.DirectEntryRequest{}, model.FacilityProfile{}, now)
	require.Equal(t, "inquiry_briefing.txt", filename)
}
