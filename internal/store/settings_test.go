package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stayai/facility-desk/internal/model"
)

func TestLoad_AppliesDefaultsWhenNothingPersisted(t *testing.T) {
	db := openTestKV(t)

	settings := NewSettingsStore(db)
	require.NoError(t, settings.Load())

	profile := settings.Profile()
	require.Equal(t, "Nature Land", profile.FacilityName)
	require.Equal(t, DefaultSheetViewURL, profile.SheetViewURL)
	require.Empty(t, profile.SheetWebhookURL)

	scenario := settings.Scenario()
	require.True(t, scenario.AutoResponseEnabled)
	require.True(t, scenario.NotifyOnAbsenceEnabled)
	require.Equal(t, "1", scenario.ScenarioID)
}

func TestLoad_BackfillsMissingViewURL(t *testing.T) {
	db := openTestKV(t)

	// A profile persisted before the view-URL field existed.
	legacy := `{"facilityName":"Old Place","managerName":"Kim","managerPhone":"010-1234-5678","facilityType":["retreat"],"guides":[],"googleSheetsUrl":"https://example.com/hook"}`
	require.NoError(t, db.Put("stayai_settings", []byte(legacy)))

	settings := NewSettingsStore(db)
	require.NoError(t, settings.Load())

	profile := settings.Profile()
	require.Equal(t, "Old Place", profile.FacilityName)
	require.Equal(t, "https://example.com/hook", profile.SheetWebhookURL)
	require.Equal(t, DefaultSheetViewURL, profile.SheetViewURL)
}

func TestLoad_LeavesExistingViewURLAlone(t *testing.T) {
	db := openTestKV(t)

	stored := `{"facilityName":"Old Place","googleSpreadsheetUrl":"https://example.com/mine"}`
	require.NoError(t, db.Put("stayai_settings", []byte(stored)))

	settings := NewSettingsStore(db)
	require.NoError(t, settings.Load())
	require.Equal(t, "https://example.com/mine", settings.Profile().SheetViewURL)
}

func TestSaveProfile_ReplacesWholesale(t *testing.T) {
	db := openTestKV(t)

	settings := NewSettingsStore(db)
	require.NoError(t, settings.Load())

	// Save a profile with most fields cleared; nothing from the previous
	// state may leak through.
	require.NoError(t, settings.SaveProfile(model.FacilityProfile{
		FacilityName: "New Place",
		SheetViewURL: "https://example.com/view",
	}))

	reloaded := NewSettingsStore(db)
	require.NoError(t, reloaded.Load())
	profile := reloaded.Profile()
	require.Equal(t, "New Place", profile.FacilityName)
	require.Empty(t, profile.ManagerName)
	require.Empty(t, profile.Guides)
}

func TestSaveScenario_RoundTrips(t *testing.T) {
	db := openTestKV(t)

	settings := NewSettingsStore(db)
	require.NoError(t, settings.Load())

	want := model.ScenarioConfig{
		AutoResponseEnabled:    false,
		NotifyOnAbsenceEnabled: true,
		ScenarioID:             "3",
		CustomScenario:         "Say hello warmly.",
	}
	require.NoError(t, settings.SaveScenario(want))

	reloaded := NewSettingsStore(db)
	require.NoError(t, reloaded.Load())
	require.Equal(t, want, reloaded.Scenario())
}
