package stt

import "fmt"

// Result represents the result of a speech-to-text transcription
type Result struct {
	Transcript  string  // The transcribed text
	Language    string  // Requested or reported language, "" when unknown
	Confidence  float64 // Confidence score (0.0-1.0), may be 0 if not provided
	Provider    string  // The provider used (e.g., "groq", "google")
	RawResponse string  // Raw response from the provider (for debugging/logging)
}

// Error reports that speech could not be turned into text: the service was
// unreachable, answered with an error, or returned no transcript.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcription failed (%s): %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(provider string, format string, args ...any) *Error {
	return &Error{Provider: provider, Err: fmt.Errorf(format, args...)}
}
