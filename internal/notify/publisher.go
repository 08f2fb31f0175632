package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/pkg/metrics"
)

const (
	// StreamName is the name of the notifications stream.
	StreamName = "NOTIFICATIONS"

	// SubjectPrefix is the prefix for all notification subjects.
	SubjectPrefix = "notify"
)

// Notification is the message delivered to the manager's SMS relay.
type Notification struct {
	RecordID     string        `json:"record_id"`
	Channel      model.Channel `json:"channel"`
	PhoneNumber  string        `json:"phone_number"`
	Summary      string        `json:"summary"`
	ManagerPhone string        `json:"manager_phone"`
	CreatedAt    string        `json:"created_at"`
}

// Publisher delivers manager notifications for new inquiry records.
type Publisher interface {
	NotifyManager(ctx context.Context, record model.InquiryRecord, profile model.FacilityProfile) error
}

// StreamPublisher publishes notifications to a JetStream stream.
type StreamPublisher struct {
	client *Client
}

// NewStreamPublisher creates a publisher and ensures the stream exists.
func NewStreamPublisher(ctx context.Context, client *Client) (*StreamPublisher, error) {
	js := client.JetStream()

	if _, err := js.Stream(ctx, StreamName); err != nil {
		_, err = js.CreateStream(ctx, jetstream.StreamConfig{
			Name:        StreamName,
			Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
			Retention:   jetstream.LimitsPolicy,
			MaxAge:      30 * 24 * time.Hour,
			Storage:     jetstream.FileStorage,
			Replicas:    1,
			Description: "Manager notifications for new inquiries",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create stream: %w", err)
		}
	}

	return &StreamPublisher{client: client}, nil
}

// Subject returns the subject for a notification.
func Subject(channel model.Channel) string {
	return fmt.Sprintf("%s.manager.%s", SubjectPrefix, channel)
}

// NotifyManager publishes one notification for the record.
func (p *StreamPublisher) NotifyManager(ctx context.Context, record model.InquiryRecord, profile model.FacilityProfile) error {
	data, err := json.Marshal(Notification{
		RecordID:     record.ID,
		Channel:      record.Channel,
		PhoneNumber:  record.PhoneNumber,
		Summary:      record.Summary,
		ManagerPhone: profile.ManagerPhone,
		CreatedAt:    record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if _, err := p.client.JetStream().Publish(ctx, Subject(record.Channel), data); err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	metrics.NotificationsTotal.WithLabelValues("ok").Inc()
	return nil
}

// NopPublisher is used when no NATS server is configured.
type NopPublisher struct{}

// NotifyManager discards the notification.
func (NopPublisher) NotifyManager(ctx context.Context, record model.InquiryRecord, profile model.FacilityProfile) error {
	return nil
}
