package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stayai/facility-desk/internal/kv"
	"github.com/stayai/facility-desk/internal/llm"
	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/internal/notify"
	"github.com/stayai/facility-desk/internal/sheets"
	"github.com/stayai/facility-desk/internal/store"
	"github.com/stayai/facility-desk/pkg/logger"
)

// fakeExtractor is a canned llm.Client for the analysis path.
type fakeExtractor struct {
	fields *model.ExtractedFields
	err    error
}

func (f *fakeExtractor) TestConnection(ctx context.Context) bool { return true }

func (f *fakeExtractor) ExtractInquiry(ctx context.Context, transcript string) (*model.ExtractedFields, error) {
	return f.fields, f.err
}

func (f *fakeExtractor) SampleEvents(ctx context.Context, facilityName string) ([]model.CalendarEvent, error) {
	return nil, nil
}

func (f *fakeExtractor) Name() string { return "fake" }

type testEnv struct {
	logs     *store.LogStore
	settings *store.SettingsStore
	svc      *InquiryService
}

func newTestEnv(t *testing.T, extractor *fakeExtractor) *testEnv {
	t.Helper()

	db, err := kv.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.NewNop()
	settings := store.NewSettingsStore(db)
	require.NoError(t, settings.Load())
	logs := store.NewLogStore(db, log)
	require.NoError(t, logs.LoadOrSeed())

	dispatcher := sheets.NewDispatcher(nil, log)

	var client llm.Client
	if extractor != nil {
		client = extractor
	}

	return &testEnv{
		logs:     logs,
		settings: settings,
		svc:      NewInquiryService(logs, settings, dispatcher, client, notify.NopPublisher{}, log),
	}
}

func TestSave_SyncFailureKeepsRecord(t *testing.T) {
	env := newTestEnv(t, nil)

	// The default profile has no webhook URL, so the sync is skipped.
	resp := env.svc.Save(context.Background(), model.InquiryRecord{
		ID:        "r1",
		CreatedAt: "2024-05-01 10:00",
		Channel:   model.ChannelGeneral,
		Summary:   "test",
	})

	require.False(t, resp.SyncOK)
	require.Equal(t, sheets.ReasonNoEndpoint, resp.SyncReason)

	_, ok := env.logs.Get("r1")
	require.True(t, ok)
}

func TestSave_SyncsWhenWebhookConfigured(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	env := newTestEnv(t, nil)
	profile := env.settings.Profile()
	profile.SheetWebhookURL = server.URL
	require.NoError(t, env.settings.SaveProfile(profile))

	resp := env.svc.Save(context.Background(), model.InquiryRecord{ID: "r2", Channel: model.ChannelDirect})
	require.True(t, resp.SyncOK)
	require.EqualValues(t, 1, calls.Load())
}

func TestResync_UnknownIDFails(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.svc.Resync(context.Background(), "missing")
	require.Error(t, err)
}

func TestSimulate_ExtractionFailureLeavesLogUntouched(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{err: errors.New("model unavailable")})
	before := len(env.logs.List())

	_, err := env.svc.Simulate(context.Background(), "Customer: hello")
	require.ErrorIs(t, err, ErrNoExtraction)
	require.Len(t, env.logs.List(), before)
}

func TestSimulate_NoExtractorConfigured(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.svc.Simulate(context.Background(), "Customer: hello")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoExtraction)
}

func TestSimulate_StoresExtractedRecord(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{fields: &model.ExtractedFields{
		Purpose:   "lodging for the weekend",
		Target:    "family",
		Headcount: 4,
		Date:      "6/1",
		Summary:   "Family of 4, weekend stay",
	}})

	resp, err := env.svc.Simulate(context.Background(), "Customer: can four of us stay this weekend?")
	require.NoError(t, err)
	require.NotNil(t, resp.Record)
	require.Equal(t, model.ChannelAccommodation, resp.Record.Channel)

	stored, ok := env.logs.Get(resp.Record.ID)
	require.True(t, ok)
	require.Equal(t, "Family of 4, weekend stay", stored.Summary)
}

func TestNewDirectRecord_SynthesizesFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local)
	req := model.DirectEntryRequest{
		OrgName:       "Sunrise Elementary",
		VisitDate:     "2024-06-10",
		Target:        "elementary school",
		CountBand:     "100-150",
		Activities:    []string{"zipline", "water play"},
		Meals:         []string{"1 meal (lunch)"},
		Accommodation: "1 night",
	}

	rec := NewDirectRecord(req, now)

	require.Equal(t, strconv.FormatInt(now.UnixMilli(), 10), rec.ID)
	require.Equal(t, "2024-05-01 10:30", rec.CreatedAt)
	require.Equal(t, UnknownPhonePlaceholder, rec.PhoneNumber)
	require.Equal(t, model.ChannelDirect, rec.Channel)
	require.Equal(t, "consultation", rec.Detail.Purpose)
	require.Equal(t, 100, rec.Detail.Headcount)
	require.Equal(t, "2024-06-10", rec.Detail.Date)
	require.True(t, rec.NotificationSent)
	require.Contains(t, rec.Summary, "[Sunrise Elementary]")
	require.Contains(t, rec.Summary, "elementary school")
	require.Contains(t, rec.Transcript, "Staff direct entry")

	// No explicit special requests, so the composed fallback carries the
	// rest of the form state.
	require.Contains(t, rec.Detail.SpecialRequests, "zipline/water play")
	require.Contains(t, rec.Detail.SpecialRequests, "1 meal (lunch)")
}

func TestNewDirectRecord_Fallbacks(t *testing.T) {
	now := time.Now()
	rec := NewDirectRecord(model.DirectEntryRequest{Phone: "010-2222-3333"}, now)

	require.Equal(t, "010-2222-3333", rec.PhoneNumber)
	require.Contains(t, rec.Summary, "[Individual]")
	require.Equal(t, "to be arranged", rec.Detail.Date)
	require.Zero(t, rec.Detail.Headcount)
}

func TestNewDirectRecord_CustomAccommodation(t *testing.T) {
	rec := NewDirectRecord(model.DirectEntryRequest{
		OrgName:             "Club",
		Accommodation:       "other (custom)",
		CustomAccommodation: "glamping tents",
	}, time.Now())

	require.Contains(t, rec.Summary, "glamping tents")
	require.Equal(t, "glamping tents", rec.Detail.Date)
}

func TestNewSimulatedRecord_ChannelFromPurpose(t *testing.T) {
	cases := []struct {
		purpose string
		want    model.Channel
	}{
		{"lodging inquiry", model.ChannelAccommodation},
		{"overnight stay", model.ChannelAccommodation},
		{"Accommodation for 20", model.ChannelAccommodation},
		{"zipline booking", model.ChannelActivity},
		{"pottery workshop", model.ChannelActivity},
	}

	for _, tc := range cases {
		rec := NewSimulatedRecord(model.ExtractedFields{
			Purpose: tc.purpose,
			Summary: "s",
		}, "transcript", time.Now())
		require.Equal(t, tc.want, rec.Channel, "purpose %q", tc.purpose)
	}
}

func TestNewSimulatedRecord_TranscriptEmbedsAnalysis(t *testing.T) {
	rec := NewSimulatedRecord(model.ExtractedFields{
		Purpose:   "activity",
		Headcount: 12,
		Summary:   "Group of 12",
	}, "Customer: hi", time.Now())

	require.Equal(t, simulationPhone, rec.PhoneNumber)
	require.True(t, strings.HasPrefix(rec.Transcript, "[AI response simulation]"))
	require.Contains(t, rec.Transcript, "Customer: hi")
	require.Contains(t, rec.Transcript, `"count": 12`)
}

func TestLeadingInt(t *testing.T) {
	require.Equal(t, 30, leadingInt("30 or fewer"))
	require.Equal(t, 100, leadingInt("100-150"))
	require.Equal(t, 250, leadingInt(" 250 or more"))
	require.Zero(t, leadingInt("headcount unknown"))
	require.Zero(t, leadingInt(""))
}
