// Package sheets pushes inquiry records to the configured spreadsheet
// webhook. The push is best-effort and one-way: failure is reported to
// the caller and never affects the already-persisted record.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/pkg/logger"
	"github.com/stayai/facility-desk/pkg/metrics"
)

// Failure reasons surfaced to the caller. These are the only structured
// error codes in the system.
const (
	ReasonNoEndpoint     = "NO_ENDPOINT"
	ReasonTransportError = "TRANSPORT_ERROR"
)

// Result reports the outcome of one sync attempt. OK means the request
// was dispatched without a transport-level error; the endpoint's
// acknowledgment is never read back.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// payload is the flat projection posted to the webhook. Field names are
// part of the webhook contract and must stay stable.
type payload struct {
	FacilityName    string        `json:"facilityName"`
	Timestamp       string        `json:"timestamp"`
	PhoneNumber     string        `json:"phoneNumber"`
	Type            model.Channel `json:"type"`
	Summary         string        `json:"summary"`
	Purpose         string        `json:"purpose"`
	Target          string        `json:"target"`
	Count           int           `json:"count"`
	Date            string        `json:"date"`
	SpecialRequests string        `json:"specialRequests"`
	Transcript      string        `json:"transcript"`
}

// Dispatcher performs the webhook writes.
type Dispatcher struct {
	client *http.Client
	logger *logger.Logger
	busy   atomic.Bool
}

// NewDispatcher creates a dispatcher. A nil client falls back to
// http.DefaultClient.
func NewDispatcher(client *http.Client, log *logger.Logger) *Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Dispatcher{client: client, logger: log}
}

// Busy reports whether a sync request is currently in flight, so the
// caller can surface a busy indicator. Advisory only; concurrent calls
// are not serialized.
func (d *Dispatcher) Busy() bool {
	return d.busy.Load()
}

// Sync posts the record's flat projection to the profile's webhook URL.
// With no URL configured it returns NO_ENDPOINT without any network
// I/O. The busy flag is cleared on every exit path.
func (d *Dispatcher) Sync(ctx context.Context, record model.InquiryRecord, profile model.FacilityProfile) Result {
	if profile.SheetWebhookURL == "" {
		return Result{OK: false, Reason: ReasonNoEndpoint}
	}

	d.busy.Store(true)
	metrics.SheetSyncInFlight.Set(1)
	defer func() {
		d.busy.Store(false)
		metrics.SheetSyncInFlight.Set(0)
	}()

	special := record.Detail.SpecialRequests
	if special == "" {
		special = record.Detail.Meals
	}

	body, err := json.Marshal(payload{
		FacilityName:    profile.FacilityName,
		Timestamp:       record.CreatedAt,
		PhoneNumber:     record.PhoneNumber,
		Type:            record.Channel,
		Summary:         record.Summary,
		Purpose:         record.Detail.Purpose,
		Target:          record.Detail.Target,
		Count:           record.Detail.Headcount,
		Date:            record.Detail.Date,
		SpecialRequests: special,
		Transcript:      record.Transcript,
	})
	if err != nil {
		return Result{OK: false, Reason: ReasonTransportError}
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, profile.SheetWebhookURL, bytes.NewReader(body))
	if err != nil {
		metrics.RecordSheetSync("error", time.Since(start).Seconds())
		return Result{OK: false, Reason: ReasonTransportError}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warnw("sheet sync failed", "record_id", record.ID, "error", err)
		metrics.RecordSheetSync("error", time.Since(start).Seconds())
		return Result{OK: false, Reason: ReasonTransportError}
	}
	// The webhook's response is opaque; the status code is not part of
	// the contract.
	resp.Body.Close()

	metrics.RecordSheetSync("ok", time.Since(start).Seconds())
	return Result{OK: true}
}
