// Package model defines data structures for the facility desk.
package model

import (
	"time"
)

// Channel identifies how an inquiry was handled.
type Channel string

const (
	ChannelAccommodation Channel = "ACCOMMODATION"
	ChannelFacility      Channel = "FACILITY"
	ChannelActivity      Channel = "ACTIVITY"
	ChannelGeneral       Channel = "GENERAL"
	// ChannelDirect marks staff-entered records; every other channel is
	// assigned by the AI analysis path.
	ChannelDirect Channel = "DIRECT"
)

// TimestampLayout is the display format used for record timestamps.
const TimestampLayout = "2006-01-02 15:04"

// InquiryDetail holds the structured portion of an inquiry record.
type InquiryDetail struct {
	Purpose         string `json:"purpose"`
	Target          string `json:"target"`
	Headcount       int    `json:"count"`
	Date            string `json:"date"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	Meals           string `json:"meals,omitempty"`
}

// InquiryRecord is one logged customer contact. Records are immutable
// after creation; only a full store reset removes them.
type InquiryRecord struct {
	ID               string        `json:"id"`
	CreatedAt        string        `json:"timestamp"`
	PhoneNumber      string        `json:"phoneNumber"`
	Channel          Channel       `json:"type"`
	Summary          string        `json:"summary"`
	Detail           InquiryDetail `json:"details"`
	Transcript       string        `json:"transcript"`
	NotificationSent bool          `json:"smsSent"`
}

// CreatedTime parses the record's display timestamp. The zero time and
// false are returned when the timestamp is not in the canonical layout
// (hand-edited or legacy data).
func (r *InquiryRecord) CreatedTime() (time.Time, bool) {
	t, err := time.ParseInLocation(TimestampLayout, r.CreatedAt, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractedFields is the structured output of the AI extraction adapter.
// Purpose, Headcount, Date and Summary are required by the extraction
// schema; Target and SpecialRequests are optional.
type ExtractedFields struct {
	Purpose         string `json:"purpose"`
	Target          string `json:"target,omitempty"`
	Headcount       int    `json:"count"`
	Date            string `json:"date"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	Summary         string `json:"summary"`
}

// DirectEntryRequest carries the staff direct-response form state.
type DirectEntryRequest struct {
	OrgName             string   `json:"orgName"`
	Phone               string   `json:"phone"`
	VisitDate           string   `json:"visitDate"`
	Target              string   `json:"target"`
	CountBand           string   `json:"count"`
	Activities          []string `json:"activities"`
	Meals               []string `json:"meals"`
	Accommodation       string   `json:"accommodation"`
	CustomAccommodation string   `json:"customAccommodation"`
	SpecialRequests     string   `json:"specialRequests"`
}

// SimulateRequest carries a transcript for the AI analysis path.
type SimulateRequest struct {
	Transcript string `json:"transcript"`
}

// SimulateResponse returns both the extraction and the stored record.
type SimulateResponse struct {
	Fields *ExtractedFields `json:"fields"`
	Record *InquiryRecord   `json:"record"`
}

// ListInquiriesResponse is the response for listing inquiry records.
type ListInquiriesResponse struct {
	Inquiries []InquiryRecord `json:"inquiries"`
	Total     int             `json:"total"`
	Syncing   bool            `json:"syncing"`
}

// SaveInquiryResponse reports the local save together with the
// best-effort sync outcome. A failed sync never undoes the save.
type SaveInquiryResponse struct {
	Record     *InquiryRecord `json:"record"`
	SyncOK     bool           `json:"syncOk"`
	SyncReason string         `json:"syncReason,omitempty"`
}
