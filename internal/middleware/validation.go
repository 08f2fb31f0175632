package middleware

import (
	"errors"
	"unicode/utf8"
)

// Record contents are accepted as-is by the stores; these validators
// guard transport-level inputs only.

// ValidateTranscript validates a transcript submitted for AI analysis.
func ValidateTranscript(transcript string) error {
	if len(transcript) == 0 {
		return errors.New("transcript cannot be empty")
	}
	if len(transcript) > 100000 { // ~100KB limit
		return errors.New("transcript exceeds maximum length")
	}
	if !utf8.ValidString(transcript) {
		return errors.New("transcript must be valid UTF-8")
	}
	return nil
}

// ValidateRecordID validates an inquiry record id.
func ValidateRecordID(id string) error {
	if len(id) == 0 {
		return errors.New("record ID cannot be empty")
	}
	if len(id) > 64 {
		return errors.New("record ID exceeds maximum length")
	}
	return nil
}
