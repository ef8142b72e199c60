// Package nlu wraps the external generative-language boundary. The
// service is treated as opaque and fallible: free text goes in,
// free text comes back, and the text is expected but not guaranteed to
// contain embedded JSON. Every failure is surfaced as a typed reason
// so callers can recover without corrupting unrelated state.
package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies why a request could not produce a usable
// result.
type FailureKind string

const (
	// KindNetwork covers transport failures before a response arrived.
	KindNetwork FailureKind = "network"
	// KindServer covers non-2xx responses and upstream errors.
	KindServer FailureKind = "server"
	// KindEmpty covers 2xx responses carrying no usable content.
	KindEmpty FailureKind = "empty-response"
	// KindParse covers content that fails structured-data extraction.
	KindParse FailureKind = "parse-error"
)

// Failure is the typed error surfaced for any unusable NLU exchange.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// KindOf extracts the failure kind from an error chain, or "" when the
// error is not an NLU failure.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// Request is a free-text prompt with an optional inline binary
// attachment.
type Request struct {
	System   string
	Prompt   string
	Image    []byte
	MIMEType string
}

// Client is the outbound boundary to the generative-language service.
type Client interface {
	GenerateText(ctx context.Context, req Request) (string, error)
}

// ExtractJSON unmarshals the structured payload embedded in a model
// response into v. Responses frequently wrap the JSON in markdown
// fences; those are stripped first. A failed parse is a typed
// KindParse failure.
func ExtractJSON(raw string, v interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &Failure{Kind: KindParse, Err: err}
	}
	return nil
}
