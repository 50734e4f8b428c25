package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrompt indicates GenerateContent was called with an empty prompt
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrMissingAPIKey indicates no API key was configured at call time
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY not set")

	// ErrNoContent indicates a success response without any candidate text
	ErrNoContent = errors.New("response contains no candidate text")
)

// StatusError reports a non-success HTTP status from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("gemini: request failed with status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("gemini: request failed with status %d", e.Code)
}

// ParseError reports a success response whose body could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gemini: failed to parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
