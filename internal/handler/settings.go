package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/internal/service"
	"github.com/stayai/facility-desk/internal/store"
	"github.com/stayai/facility-desk/pkg/logger"
)

// SettingsHandler handles the facility profile and scenario endpoints.
type SettingsHandler struct {
	settings *store.SettingsStore
	logger   *logger.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings *store.SettingsStore, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: log}
}

// GetProfile handles GET /api/v1/settings/profile
func (h *SettingsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Profile())
}

// UpdateProfile handles PUT /api/v1/settings/profile
//
// The body replaces the stored profile wholesale; omitted fields are
// cleared, not preserved.
func (h *SettingsHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.FacilityProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settings.SaveProfile(profile); err != nil {
		h.logger.Errorw("failed to save facility profile", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GetScenario handles GET /api/v1/settings/scenario
func (h *SettingsHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Scenario())
}

// UpdateScenario handles PUT /api/v1/settings/scenario
func (h *SettingsHandler) UpdateScenario(w http.ResponseWriter, r *http.Request) {
	var scenario model.ScenarioConfig
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settings.SaveScenario(scenario); err != nil {
		h.logger.Errorw("failed to save scenario config", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save scenario")
		return
	}

	writeJSON(w, http.StatusOK, scenario)
}

// Templates handles GET /api/v1/settings/scenarios/templates
func (h *SettingsHandler) Templates(w http.ResponseWriter, r *http.Request) {
	profile := h.settings.Profile()
	writeJSON(w, http.StatusOK, service.ScenarioTemplates(profile.FacilityName))
}

// Options handles GET /api/v1/options
func (h *SettingsHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.DirectEntryOptions)
}
