package llm

import (
	"context"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/pkg/metrics"
)

const anthropicModel = "claude-3-5-haiku-20241022"

// AnthropicClient is the Anthropic LLM adapter.
type AnthropicClient struct {
	client *anthropic.Client
}

// NewAnthropicClient creates a new Anthropic client.
func NewAnthropicClient(apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	return &AnthropicClient{client: anthropic.NewClient(option.WithAPIKey(apiKey))}, nil
}

// Name returns the provider name.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

func (c *AnthropicClient) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(anthropicModel),
		MaxTokens: anthropic.F(maxTokens),
		Messages: anthropic.F([]anthropic.MessageParam{
			{
				Role: anthropic.F(anthropic.MessageParamRoleUser),
				Content: anthropic.F([]anthropic.MessageParamContentUnion{
					anthropic.TextBlockParam{
						Type: anthropic.F(anthropic.TextBlockParamTypeText),
						Text: anthropic.F(prompt),
					},
				}),
			},
		}),
	})
	if err != nil {
		return "", err
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			content += block.Text
		}
	}
	return content, nil
}

// TestConnection performs a minimal ping completion.
func (c *AnthropicClient) TestConnection(ctx context.Context) bool {
	start := time.Now()

	_, err := c.complete(ctx, "connection_test_ping", 10)

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordLLMCall(c.Name(), "test", status, time.Since(start).Seconds())
	return err == nil
}

// ExtractInquiry extracts structured inquiry fields from a transcript.
func (c *AnthropicClient) ExtractInquiry(ctx context.Context, transcript string) (*model.ExtractedFields, error) {
	start := time.Now()

	content, err := c.complete(ctx, extractionPrompt+transcript, 1024)
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "extract", "error", time.Since(start).Seconds())
		return nil, err
	}

	fields, err := decodeExtraction(content)
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "extract", "unparsable", time.Since(start).Seconds())
		return nil, err
	}

	metrics.RecordLLMCall(c.Name(), "extract", "ok", time.Since(start).Seconds())
	return fields, nil
}

// SampleEvents fabricates schedule entries for the calendar view.
func (c *AnthropicClient) SampleEvents(ctx context.Context, facilityName string) ([]model.CalendarEvent, error) {
	start := time.Now()

	content, err := c.complete(ctx, eventsPrompt(facilityName, time.Now().Format("2006-01-02")), 1024)
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "events", "error", time.Since(start).Seconds())
		return nil, err
	}

	events, err := decodeEvents(content)
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "events", "unparsable", time.Since(start).Seconds())
		return nil, err
	}

	metrics.RecordLLMCall(c.Name(), "events", "ok", time.Since(start).Seconds())
	return events, nil
}
