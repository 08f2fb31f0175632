package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeExtraction_PlainJSON(t *testing.T) {
	fields, err := decodeExtraction(`{"purpose":"lodging","target":"family","count":3,"date":"5/10","summary":"Family of 3"}`)
	require.NoError(t, err)
	require.Equal(t, "lodging", fields.Purpose)
	require.Equal(t, 3, fields.Headcount)
}

func TestDecodeExtraction_ToleratesCodeFences(t *testing.T) {
	raw := "```json\n{\"purpose\":\"activity\",\"count\":20,\"date\":\"undecided\",\"summary\":\"Group of 20\"}\n```"
	fields, err := decodeExtraction(raw)
	require.NoError(t, err)
	require.Equal(t, "activity", fields.Purpose)
}

func TestDecodeExtraction_MissingRequiredFields(t *testing.T) {
	_, err := decodeExtraction(`{"target":"family","count":3}`)
	require.Error(t, err)
}

func TestDecodeExtraction_EmptyAndGarbage(t *testing.T) {
	_, err := decodeExtraction("")
	require.Error(t, err)

	_, err = decodeExtraction("I could not find any inquiry details.")
	require.Error(t, err)
}

func TestDecodeEvents_ToleratesLeadingProse(t *testing.T) {
	raw := "Here are the events:\n[{\"id\":\"1\",\"title\":\"Sunrise Elementary (120)\",\"time\":\"10:00 - 12:00\",\"type\":\"check-in\",\"color\":\"indigo\"}]"
	events, err := decodeEvents(raw)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Sunrise Elementary (120)", events[0].Title)
}

func TestDecodeEvents_Fenced(t *testing.T) {
	raw := "```json\n[{\"id\":\"1\",\"title\":\"t\",\"time\":\"09:00 - 10:00\",\"type\":\"inspection\",\"color\":\"amber\"}]\n```"
	events, err := decodeEvents(raw)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestNewClient_DefaultsToOpenAI(t *testing.T) {
	client, err := NewClient(Provider("unknown"), "key")
	require.NoError(t, err)
	require.Equal(t, "openai", client.Name())

	client, err = NewClient(ProviderAnthropic, "key")
	require.NoError(t, err)
	require.Equal(t, "anthropic", client.Name())
}
