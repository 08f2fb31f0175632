package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/stayai/facility-desk/internal/llm"
	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/internal/service"
	"github.com/stayai/facility-desk/internal/store"
	"github.com/stayai/facility-desk/pkg/logger"
)

// AIHandler handles the AI adapter endpoints: credential testing, the
// sample calendar feed and the consultation briefing export.
type AIHandler struct {
	settings  *store.SettingsStore
	reports   *service.ReportService
	extractor llm.Client
	logger    *logger.Logger
}

// NewAIHandler creates a new AI handler. The extractor may be nil when
// no provider credential is configured.
func NewAIHandler(settings *store.SettingsStore, reports *service.ReportService, extractor llm.Client, log *logger.Logger) *AIHandler {
	return &AIHandler{
		settings:  settings,
		reports:   reports,
		extractor: extractor,
		logger:    log,
	}
}

type testConnectionRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
}

type testConnectionResponse struct {
	Provider  string `json:"provider"`
	Connected bool   `json:"connected"`
}

// TestConnection handles POST /api/v1/ai/test
//
// When a key is supplied in the body it is used for this one call and
// discarded; keys are never persisted server-side.
func (h *AIHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	var req testConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client := h.extractor
	if req.APIKey != "" {
		c, err := llm.NewClient(llm.Provider(req.Provider), req.APIKey)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		client = c
	}
	if client == nil {
		writeError(w, http.StatusServiceUnavailable, "no AI provider configured")
		return
	}

	writeJSON(w, http.StatusOK, testConnectionResponse{
		Provider:  client.Name(),
		Connected: client.TestConnection(r.Context()),
	})
}

// CalendarEvents handles GET /api/v1/calendar/events
func (h *AIHandler) CalendarEvents(w http.ResponseWriter, r *http.Request) {
	if h.extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "no AI provider configured")
		return
	}

	profile := h.settings.Profile()
	events, err := h.extractor.SampleEvents(r.Context(), profile.FacilityName)
	if err != nil {
		h.logger.Warnw("calendar event generation failed", "error", err)
		writeError(w, http.StatusBadGateway, "event generation failed")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// Briefing handles POST /api/v1/reports/briefing
func (h *AIHandler) Briefing(w http.ResponseWriter, r *http.Request) {
	var req model.DirectEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, filename := h.reports.Briefing(req, h.settings.Profile(), time.Now())
	writeDownload(w, filename, content)
}
