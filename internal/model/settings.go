package model

// FacilityProfile is the singleton facility configuration. It is
// replaced wholesale on save; callers merge before saving.
type FacilityProfile struct {
	FacilityName  string   `json:"facilityName"`
	ManagerName   string   `json:"managerName"`
	ManagerPhone  string   `json:"managerPhone"`
	FacilityTypes []string `json:"facilityType"`
	Guides        []string `json:"guides"`

	// SheetWebhookURL is the Apps Script POST target for record sync.
	SheetWebhookURL string `json:"googleSheetsUrl,omitempty"`
	// SheetViewURL is the human-facing spreadsheet address.
	SheetViewURL string `json:"googleSpreadsheetUrl,omitempty"`
	// DocsWebhookURL enables the briefing-document integration.
	DocsWebhookURL string `json:"googleDocsUrl,omitempty"`
}

// ScenarioConfig is the singleton AI-behavior configuration, replaced
// wholesale on save.
type ScenarioConfig struct {
	AutoResponseEnabled    bool   `json:"isAutoResponseActive"`
	NotifyOnAbsenceEnabled bool   `json:"isSmsOnAbsenceActive"`
	ScenarioID             string `json:"selectedScenarioId"`
	CustomScenario         string `json:"customScenario"`
}

// ScenarioTemplate is one selectable auto-response script.
type ScenarioTemplate struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DashboardStats are the overview counters shown on the dashboard.
type DashboardStats struct {
	Total    int `json:"total"`
	AI       int `json:"ai"`
	Direct   int `json:"direct"`
	Notified int `json:"notified"`
}
