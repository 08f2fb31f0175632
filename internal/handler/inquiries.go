// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stayai/facility-desk/internal/middleware"
	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/internal/service"
	"github.com/stayai/facility-desk/internal/sheets"
	"github.com/stayai/facility-desk/internal/store"
	"github.com/stayai/facility-desk/pkg/logger"
)

// InquiryHandler handles inquiry log endpoints.
type InquiryHandler struct {
	logs       *store.LogStore
	settings   *store.SettingsStore
	inquiries  *service.InquiryService
	reports    *service.ReportService
	dispatcher *sheets.Dispatcher
	logger     *logger.Logger
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(
	logs *store.LogStore,
	settings *store.SettingsStore,
	inquiries *service.InquiryService,
	reports *service.ReportService,
	dispatcher *sheets.Dispatcher,
	log *logger.Logger,
) *InquiryHandler {
	return &InquiryHandler{
		logs:       logs,
		settings:   settings,
		inquiries:  inquiries,
		reports:    reports,
		dispatcher: dispatcher,
		logger:     log,
	}
}

// List handles GET /api/v1/inquiries
//
// The optional q parameter applies the log view's linear substring
// filter over phone number, summary and channel.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.logs.List()

	if q := r.URL.Query().Get("q"); q != "" {
		needle := strings.ToLower(q)
		filtered := make([]model.InquiryRecord, 0, len(records))
		for _, rec := range records {
			if strings.Contains(rec.PhoneNumber, q) ||
				strings.Contains(strings.ToLower(rec.Summary), needle) ||
				strings.Contains(strings.ToLower(string(rec.Channel)), needle) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	writeJSON(w, http.StatusOK, model.ListInquiriesResponse{
		Inquiries: records,
		Total:     len(records),
		Syncing:   h.dispatcher.Busy(),
	})
}

// DirectEntry handles POST /api/v1/inquiries/direct
func (h *InquiryHandler) DirectEntry(w http.ResponseWriter, r *http.Request) {
	var req model.DirectEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The form can be saved once there is someone to call back.
	if req.Phone == "" && req.OrgName == "" {
		writeError(w, http.StatusBadRequest, "phone or organization name is required")
		return
	}

	resp := h.inquiries.SaveDirectEntry(r.Context(), req)
	writeJSON(w, http.StatusCreated, resp)
}

// Simulate handles POST /api/v1/inquiries/simulate
func (h *InquiryHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req model.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateTranscript(req.Transcript); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.inquiries.Simulate(r.Context(), req.Transcript)
	if err != nil {
		if errors.Is(err, service.ErrNoExtraction) {
			writeError(w, http.StatusBadGateway, "extraction failed")
			return
		}
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Resync handles POST /api/v1/inquiries/{id}/sync
func (h *InquiryHandler) Resync(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := middleware.ValidateRecordID(id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.inquiries.Resync(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "inquiry not found")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Report handles GET /api/v1/inquiries/{id}/report
func (h *InquiryHandler) Report(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := middleware.ValidateRecordID(id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, ok := h.logs.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "inquiry not found")
		return
	}

	content, filename := h.reports.DetailReport(record, h.settings.Profile())
	writeDownload(w, filename, content)
}

// Reset handles DELETE /api/v1/inquiries
//
// The confirm parameter stands in for the operator's yes/no prompt; the
// reset is all-or-nothing.
func (h *InquiryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "reset requires confirm=true")
		return
	}

	if err := h.logs.ResetAll(); err != nil {
		h.logger.Errorw("failed to reset inquiry log", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reset inquiry log")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
