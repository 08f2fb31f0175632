// Package store holds the persisted application state: the inquiry log
// and the two singleton settings records.
package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/stayai/facility-desk/internal/kv"
	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/pkg/logger"
)

// logsKey is the persisted-state key for the inquiry list. Stable
// across versions.
const logsKey = "stayai_logs"

// seedRecords is installed on first run so the log view is never empty.
var seedRecords = []model.InquiryRecord{
	{
		ID:          "1",
		CreatedAt:   "2023-10-24 14:20",
		PhoneNumber: "010-1234-5678",
		Channel:     model.ChannelAccommodation,
		Summary:     "Family of 3, one-night stay on Nov 15",
		Detail: model.InquiryDetail{
			Purpose:   "lodging",
			Target:    "family",
			Headcount: 3,
			Date:      "11/15",
		},
		Transcript:       "Customer: Hello, is a family of three able to stay on November 15?\nAI: Yes, a family room is available on that date.",
		NotificationSent: true,
	},
	{
		ID:          "2",
		CreatedAt:   "2023-10-24 13:05",
		PhoneNumber: "010-9876-5432",
		Channel:     model.ChannelActivity,
		Summary:     "Group of 20 university students, pottery workshop",
		Detail: model.InquiryDetail{
			Purpose:   "activity",
			Target:    "university students",
			Headcount: 20,
			Date:      "undecided",
		},
		Transcript:       "Customer: We'd like to book the pottery workshop for a group of 20 university students.\nAI: Certainly. Do you have a specific date in mind?",
		NotificationSent: true,
	},
}

// LogStore owns the ordered inquiry list, newest first. Insertion order
// is the only ordering. Records are accepted as-is; no validation or
// deduplication is performed here.
type LogStore struct {
	kv     *kv.Store
	logger *logger.Logger

	mu      sync.RWMutex
	records []model.InquiryRecord
}

// NewLogStore creates a log store over the given persistence layer.
func NewLogStore(store *kv.Store, log *logger.Logger) *LogStore {
	return &LogStore{kv: store, logger: log}
}

// LoadOrSeed loads the persisted list, or installs and persists the
// fixed seed set when nothing has been persisted yet. Calling it again
// never duplicates the seed.
func (s *LogStore) LoadOrSeed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(logsKey)
	if errors.Is(err, kv.ErrNotFound) {
		s.records = append([]model.InquiryRecord(nil), seedRecords...)
		s.logger.Infow("no persisted inquiry log, installing seed set", "count", len(s.records))
		return s.persistLocked()
	}
	if err != nil {
		return err
	}

	var records []model.InquiryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	s.records = records
	return nil
}

// Append inserts the record at the head of the list and persists the
// full list. Persistence faults are logged, not surfaced; the in-memory
// state is authoritative for the session either way.
func (s *LogStore) Append(record model.InquiryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]model.InquiryRecord{record}, s.records...)
	if err := s.persistLocked(); err != nil {
		s.logger.Errorw("failed to persist inquiry log", "error", err)
	}
}

// List returns a snapshot of the records, newest first.
func (s *LogStore) List() []model.InquiryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.InquiryRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id.
func (s *LogStore) Get(id string) (model.InquiryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.InquiryRecord{}, false
}

// ResetAll clears the list and persists the empty state. The explicit
// user confirmation happens upstream of this call.
func (s *LogStore) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []model.InquiryRecord{}
	return s.persistLocked()
}

func (s *LogStore) persistLocked() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return err
	}
	return s.kv.Put(logsKey, data)
}
