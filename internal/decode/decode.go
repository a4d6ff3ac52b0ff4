// Package decode turns the judge's raw text into the typed values the
// pipeline expects. Judges are instructed to answer with bare JSON but
// frequently wrap it in code fences or prose; this package strips that
// noise before unmarshaling and classifies anything unrecoverable as a
// MalformedError.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MalformedError reports that the judge's response could not be decoded
// into the expected schema. It is the single terminal failure kind for
// undecodable judge output; callers that retry treat it as retryable.
type MalformedError struct {
	Raw string // The raw judge response, for diagnosis
	Err error  // The underlying decode failure
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed judge response: %v", e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is (or wraps) a MalformedError
func IsMalformed(err error) bool {
	var m *MalformedError
	return errors.As(err, &m)
}

// Unmarshal decodes the judge's raw response into v
func Unmarshal(raw string, v any) error {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return &MalformedError{Raw: raw, Err: fmt.Errorf("no JSON object found in response")}
	}

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &MalformedError{Raw: raw, Err: err}
	}
	return nil
}

// extractJSON isolates the outermost JSON object in raw text, stripping
// Markdown code fences and surrounding prose
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)

	// Strip a fenced block if present, with or without a language tag
	if idx := strings.Index(text, "```"); idx != -1 {
		rest := text[idx+3:]
		if nl := strings.IndexByte(rest, '\n'); nl != -1 {
			firstLine := strings.TrimSpace(rest[:nl])
			if firstLine == "json" || firstLine == "" {
				rest = rest[nl+1:]
			}
		}
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		text = strings.TrimSpace(rest)
	}

	// Isolate the outermost object
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return ""
	}

	return text[start : end+1]
}
