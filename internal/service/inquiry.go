// Package service provides the business logic for the facility desk.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stayai/facility-desk/internal/llm"
	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/internal/notify"
	"github.com/stayai/facility-desk/internal/sheets"
	"github.com/stayai/facility-desk/internal/store"
	"github.com/stayai/facility-desk/pkg/logger"
	"github.com/stayai/facility-desk/pkg/metrics"
)

// ErrNoExtraction is returned when the AI adapter could not produce
// structured fields; the caller leaves prior state unchanged.
var ErrNoExtraction = errors.New("no extraction")

// UnknownPhonePlaceholder is recorded when the caller's number was not
// captured during a staff direct entry.
const UnknownPhonePlaceholder = "010-****-****"

// simulationPhone marks records created by the call simulator.
const simulationPhone = "010-simulation-test"

// InquiryService runs the inquiry lifecycle: build a record, persist it,
// then best-effort push it to the spreadsheet and notify the manager.
// Append and sync are sequential, not transactional; a failed sync never
// rolls back the local save.
type InquiryService struct {
	logs       *store.LogStore
	settings   *store.SettingsStore
	dispatcher *sheets.Dispatcher
	extractor  llm.Client
	notifier   notify.Publisher
	logger     *logger.Logger
}

// NewInquiryService creates a new inquiry service. The extractor may be
// nil when no AI credential is configured.
func NewInquiryService(
	logs *store.LogStore,
	settings *store.SettingsStore,
	dispatcher *sheets.Dispatcher,
	extractor llm.Client,
	notifier notify.Publisher,
	log *logger.Logger,
) *InquiryService {
	return &InquiryService{
		logs:       logs,
		settings:   settings,
		dispatcher: dispatcher,
		extractor:  extractor,
		notifier:   notifier,
		logger:     log,
	}
}

// Save appends the record, publishes the manager notification and then
// attempts the spreadsheet sync. Only the sync outcome is reported.
func (s *InquiryService) Save(ctx context.Context, record model.InquiryRecord) model.SaveInquiryResponse {
	s.logs.Append(record)
	metrics.InquiriesTotal.WithLabelValues(string(record.Channel)).Inc()

	profile := s.settings.Profile()
	if err := s.notifier.NotifyManager(ctx, record, profile); err != nil {
		s.logger.Warnw("manager notification failed", "record_id", record.ID, "error", err)
	}

	result := s.dispatcher.Sync(ctx, record, profile)
	if !result.OK {
		s.logger.Infow("sheet sync skipped or failed", "record_id", record.ID, "reason", result.Reason)
	}

	return model.SaveInquiryResponse{
		Record:     &record,
		SyncOK:     result.OK,
		SyncReason: result.Reason,
	}
}

// Resync re-pushes an already stored record to the spreadsheet.
func (s *InquiryService) Resync(ctx context.Context, id string) (sheets.Result, error) {
	record, ok := s.logs.Get(id)
	if !ok {
		return sheets.Result{}, fmt.Errorf("inquiry %s not found", id)
	}
	return s.dispatcher.Sync(ctx, record, s.settings.Profile()), nil
}

// SaveDirectEntry builds a DIRECT record from the staff form and runs
// the save lifecycle.
func (s *InquiryService) SaveDirectEntry(ctx context.Context, req model.DirectEntryRequest) model.SaveInquiryResponse {
	return s.Save(ctx, NewDirectRecord(req, time.Now()))
}

// Simulate runs the AI analysis path: extract structured fields from the
// transcript and store the resulting record. Extraction failure leaves
// the log untouched.
func (s *InquiryService) Simulate(ctx context.Context, transcript string) (*model.SimulateResponse, error) {
	if s.extractor == nil {
		return nil, errors.New("no AI provider configured")
	}

	fields, err := s.extractor.ExtractInquiry(ctx, transcript)
	if err != nil || fields == nil {
		s.logger.Warnw("inquiry extraction failed", "error", err)
		return nil, ErrNoExtraction
	}

	record := NewSimulatedRecord(*fields, transcript, time.Now())
	resp := s.Save(ctx, record)

	return &model.SimulateResponse{Fields: fields, Record: resp.Record}, nil
}

// NewDirectRecord synthesizes an inquiry record from the direct-response
// form state.
func NewDirectRecord(req model.DirectEntryRequest, now time.Time) model.InquiryRecord {
	stay := req.Accommodation
	if strings.HasPrefix(stay, "other") {
		stay = req.CustomAccommodation
	}

	org := req.OrgName
	if org == "" {
		org = "Individual"
	}
	target := req.Target
	if target == "" {
		target = "general"
	}
	countBand := req.CountBand
	if countBand == "" {
		countBand = "headcount unknown"
	}
	datePart := "schedule TBD"
	if req.VisitDate != "" {
		datePart = req.VisitDate + " visit"
	}
	summary := fmt.Sprintf("[%s] %s %s, %s, %s, requests noted", org, target, countBand, datePart, stay)

	phone := req.Phone
	if phone == "" {
		phone = UnknownPhonePlaceholder
	}

	date := req.VisitDate
	if date == "" {
		date = stay
	}
	if date == "" {
		date = "to be arranged"
	}

	special := req.SpecialRequests
	if special == "" {
		special = fmt.Sprintf("org: %s, schedule: %s, stay: %s, activities: %s, meals: %s",
			req.OrgName, req.VisitDate, stay,
			strings.Join(req.Activities, "/"), strings.Join(req.Meals, "/"))
	}

	requests := req.SpecialRequests
	if requests == "" {
		requests = "none"
	}

	return model.InquiryRecord{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		CreatedAt:   now.Format(model.TimestampLayout),
		PhoneNumber: phone,
		Channel:     model.ChannelDirect,
		Summary:     summary,
		Detail: model.InquiryDetail{
			Purpose:         "consultation",
			Target:          req.Target,
			Headcount:       leadingInt(req.CountBand),
			Date:            date,
			SpecialRequests: special,
			Meals:           strings.Join(req.Meals, ", "),
		},
		Transcript:       "Staff direct entry\nRequests: " + requests,
		NotificationSent: true,
	}
}

// NewSimulatedRecord synthesizes an inquiry record from an AI extraction.
func NewSimulatedRecord(fields model.ExtractedFields, transcript string, now time.Time) model.InquiryRecord {
	channel := model.ChannelActivity
	purpose := strings.ToLower(fields.Purpose)
	if strings.Contains(purpose, "lodg") || strings.Contains(purpose, "accommodation") || strings.Contains(purpose, "stay") {
		channel = model.ChannelAccommodation
	}

	analysis, _ := json.MarshalIndent(fields, "", "  ")

	return model.InquiryRecord{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		CreatedAt:   now.Format(model.TimestampLayout),
		PhoneNumber: simulationPhone,
		Channel:     channel,
		Summary:     fields.Summary,
		Detail: model.InquiryDetail{
			Purpose:         fields.Purpose,
			Target:          fields.Target,
			Headcount:       fields.Headcount,
			Date:            fields.Date,
			SpecialRequests: fields.SpecialRequests,
		},
		Transcript:       "[AI response simulation]\n\nCustomer transcript:\n" + transcript + "\n\nAI analysis:\n" + string(analysis),
		NotificationSent: true,
	}
}

// leadingInt parses the digits at the start of a headcount band such as
// "30 to 100 people"; bands with no leading digits count as zero.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
