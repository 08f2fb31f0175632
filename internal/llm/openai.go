package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/pkg/metrics"
)

const openAIModel = "gpt-4o-mini"

// OpenAIClient is the OpenAI LLM adapter.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	return &OpenAIClient{client: openai.NewClient(apiKey)}, nil
}

// Name returns the provider name.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// TestConnection performs a minimal ping completion.
func (c *OpenAIClient) TestConnection(ctx context.Context) bool {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     openAIModel,
		MaxTokens: 10,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "connection_test_ping"},
		},
	})

	status := "ok"
	ok := err == nil && len(resp.Choices) > 0
	if !ok {
		status = "error"
	}
	metrics.RecordLLMCall(c.Name(), "test", status, time.Since(start).Seconds())
	return ok
}

// ExtractInquiry extracts structured inquiry fields from a transcript.
func (c *OpenAIClient) ExtractInquiry(ctx context.Context, transcript string) (*model.ExtractedFields, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openAIModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: extractionPrompt + transcript},
		},
	})
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "extract", "error", time.Since(start).Seconds())
		return nil, err
	}
	if len(resp.Choices) == 0 {
		metrics.RecordLLMCall(c.Name(), "extract", "error", time.Since(start).Seconds())
		return nil, errors.New("no completion choices")
	}

	fields, err := decodeExtraction(resp.Choices[0].Message.Content)
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "extract", "unparsable", time.Since(start).Seconds())
		return nil, err
	}

	metrics.RecordLLMCall(c.Name(), "extract", "ok", time.Since(start).Seconds())
	return fields, nil
}

// SampleEvents fabricates schedule entries for the calendar view.
func (c *OpenAIClient) SampleEvents(ctx context.Context, facilityName string) ([]model.CalendarEvent, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: eventsPrompt(facilityName, time.Now().Format("2006-01-02"))},
		},
	})
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "events", "error", time.Since(start).Seconds())
		return nil, err
	}
	if len(resp.Choices) == 0 {
		metrics.RecordLLMCall(c.Name(), "events", "error", time.Since(start).Seconds())
		return nil, errors.New("no completion choices")
	}

	events, err := decodeEvents(resp.Choices[0].Message.Content)
	if err != nil {
		metrics.RecordLLMCall(c.Name(), "events", "unparsable", time.Since(start).Seconds())
		return nil, err
	}

	metrics.RecordLLMCall(c.Name(), "events", "ok", time.Since(start).Seconds())
	return events, nil
}
