// Package llm provides the AI adapter interface and implementations.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/stayai/facility-desk/internal/model"
)

// Client is the capability interface the rest of the application sees.
// Every call is a single attempt; there is no retry or partial-result
// handling, and a failure leaves caller state untouched.
type Client interface {
	// TestConnection performs a minimal round-trip call and reports
	// binary reachability; used to validate a credential before it is
	// trusted.
	TestConnection(ctx context.Context) bool

	// ExtractInquiry pulls structured inquiry fields out of a free-text
	// conversation transcript. Returns nil when the call errors or the
	// response is unparsable.
	ExtractInquiry(ctx context.Context, transcript string) (*model.ExtractedFields, error)

	// SampleEvents fabricates plausible-looking schedule entries for the
	// given facility. Display only; nothing is persisted.
	SampleEvents(ctx context.Context, facilityName string) ([]model.CalendarEvent, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of LLM provider.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// NewClient creates a new LLM client based on provider.
func NewClient(provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey)
	default:
		return NewOpenAIClient(apiKey)
	}
}

// decodeExtraction parses a model response into extraction fields,
// tolerating markdown code fences around the JSON.
func decodeExtraction(raw string) (*model.ExtractedFields, error) {
	raw = stripFences(raw)
	if raw == "" {
		return nil, errors.New("empty response")
	}

	var fields model.ExtractedFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	if fields.Purpose == "" || fields.Summary == "" {
		return nil, errors.New("extraction missing required fields")
	}
	return &fields, nil
}

// decodeEvents parses a model response into calendar events, tolerating
// fences and leading prose before the array.
func decodeEvents(raw string) ([]model.CalendarEvent, error) {
	raw = stripFences(raw)
	if idx := strings.Index(raw, "["); idx > 0 {
		raw = raw[idx:]
	}
	if raw == "" {
		return nil, errors.New("empty response")
	}

	var events []model.CalendarEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, err
	}
	return events, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

const extractionPrompt = `Extract inquiry details from this customer conversation and respond with a single JSON object with these keys:
"purpose" (string, purpose of inquiry, e.g. lodging or activity),
"target" (string, target group, e.g. family, students, corporate),
"count" (number of people),
"date" (string, desired date or period),
"specialRequests" (string, any special requests or notes),
"summary" (string, a one-line summary suitable for a manager SMS).
"purpose", "count", "date" and "summary" are required.

Conversation:
`

func eventsPrompt(facilityName, today string) string {
	return `Generate 4 realistic calendar events for a facility named "` + facilityName + `" occurring today (` + today + `). Each event is a group booking. Respond with a JSON array of objects with keys "id", "title" (group name and headcount), "time" (format HH:mm - HH:mm), "type" (one of check-in, check-out, inspection, other), "color" (one of indigo, amber, emerald, rose) and optional "description".`
}
