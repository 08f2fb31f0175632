package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/stayai/facility-desk/internal/kv"
	"github.com/stayai/facility-desk/internal/model"
)

// Persisted-state keys, stable across versions.
const (
	profileKey  = "stayai_settings"
	scenarioKey = "stayai_scenario"
)

// DefaultSheetViewURL is backfilled into profiles persisted before the
// view-URL field existed. This is the single sanctioned migration.
const DefaultSheetViewURL = "https://docs.google.com/spreadsheets/d/1lenX6ITlHHQoXDZ4_gsaR1V0zherUe_KwEO-COPAfT0/edit?gid=0#gid=0"

// DefaultProfile returns the profile used when nothing is persisted.
func DefaultProfile() model.FacilityProfile {
	return model.FacilityProfile{
		FacilityName:  "Nature Land",
		ManagerName:   "Manager",
		ManagerPhone:  "010-0000-0000",
		FacilityTypes: []string{"retreat"},
		Guides: []string{
			"Deposit policy (confirmed at 30% down payment)",
			"Check group insurance coverage for elementary school groups",
			"Ask about meal allergies ahead of the visit",
		},
		SheetViewURL: DefaultSheetViewURL,
	}
}

// DefaultScenario returns the scenario config used when nothing is
// persisted.
func DefaultScenario() model.ScenarioConfig {
	return model.ScenarioConfig{
		AutoResponseEnabled:    true,
		NotifyOnAbsenceEnabled: true,
		ScenarioID:             "1",
	}
}

// SettingsStore owns the two singleton configuration records. Both are
// replaced wholesale on save; it never patches fields itself, with the
// one exception of the sheet-view-URL backfill at load time.
type SettingsStore struct {
	kv *kv.Store

	mu       sync.RWMutex
	profile  model.FacilityProfile
	scenario model.ScenarioConfig
}

// NewSettingsStore creates a settings store over the given persistence
// layer.
func NewSettingsStore(store *kv.Store) *SettingsStore {
	return &SettingsStore{kv: store}
}

// Load reads both singletons, applying defaults where nothing is
// persisted and the view-URL backfill to older profiles.
func (s *SettingsStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(profileKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		s.profile = DefaultProfile()
	case err != nil:
		return err
	default:
		var profile model.FacilityProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			return err
		}
		if profile.SheetViewURL == "" {
			profile.SheetViewURL = DefaultSheetViewURL
		}
		s.profile = profile
	}

	data, err = s.kv.Get(scenarioKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		s.scenario = DefaultScenario()
	case err != nil:
		return err
	default:
		var scenario model.ScenarioConfig
		if err := json.Unmarshal(data, &scenario); err != nil {
			return err
		}
		s.scenario = scenario
	}

	return nil
}

// Profile returns the current facility profile.
func (s *SettingsStore) Profile() model.FacilityProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SaveProfile replaces the persisted profile wholesale.
func (s *SettingsStore) SaveProfile(profile model.FacilityProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := s.kv.Put(profileKey, data); err != nil {
		return err
	}
	s.profile = profile
	return nil
}

// Scenario returns the current scenario config.
func (s *SettingsStore) Scenario() model.ScenarioConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scenario
}

// SaveScenario replaces the persisted scenario config wholesale.
func (s *SettingsStore) SaveScenario(scenario model.ScenarioConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(scenario)
	if err != nil {
		return err
	}
	if err := s.kv.Put(scenarioKey, data); err != nil {
		return err
	}
	s.scenario = scenario
	return nil
}
