package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestEnvelopeAccessors(t *testing.T) {
	env := Envelope{
		"header": map[string]any{
			"namespace": "Alexa.ConnectedHome.Control",
			"name":      "TurnOnRequest",
			"count":     3,
		},
		"payload": map[string]any{},
	}

	t.Run("Header", func(t *testing.T) {
		h, ok := Header(env)
		if !ok {
			t.Fatal("Header() should find the header mapping")
		}
		if got := h["name"]; got != "TurnOnRequest" {
			t.Errorf("Header()[name] = %v, want %v", got, "TurnOnRequest")
		}
	})

	t.Run("HeaderString", func(t *testing.T) {
		if got, ok := HeaderString(env, "namespace"); !ok || got != "Alexa.ConnectedHome.Control" {
			t.Errorf("HeaderString(namespace) = %q, %v", got, ok)
		}
		if _, ok := HeaderString(env, "count"); ok {
			t.Error("HeaderString should reject non-string fields")
		}
		if _, ok := HeaderString(env, "missing"); ok {
			t.Error("HeaderString should reject missing fields")
		}
	})

	t.Run("Payload", func(t *testing.T) {
		if _, ok := Payload(env); !ok {
			t.Error("Payload() should find the payload mapping")
		}
		if _, ok := Payload(Envelope{"payload": "text"}); ok {
			t.Error("Payload() should reject non-mapping payloads")
		}
	})

	t.Run("NilEnvelope", func(t *testing.T) {
		if _, ok := Header(nil); ok {
			t.Error("Header(nil) should report false")
		}
		if _, ok := Payload(nil); ok {
			t.Error("Payload(nil) should report false")
		}
	})
}

func TestErrorsUnwrap(t *testing.T) {
	cfgErr := &ConfigError{Field: "workers", Value: -1, Err: ErrInvalidConfig}
	if !errors.Is(cfgErr, ErrInvalidConfig) {
		t.Error("ConfigError should unwrap to ErrInvalidConfig")
	}
	if got := cfgErr.Error(); got != "config error in field workers (value: -1): invalid configuration" {
		t.Errorf("ConfigError.Error() = %q", got)
	}

	docErr := &DocumentError{Path: "pair.yaml", Err: fmt.Errorf("decode: %w", ErrUnsupportedFormat)}
	if !errors.Is(docErr, ErrUnsupportedFormat) {
		t.Error("DocumentError should unwrap to the wrapped cause")
	}
	if got := (&DocumentError{Err: ErrUnsupportedFormat}).Error(); got != "document error: unsupported document format" {
		t.Errorf("DocumentError.Error() = %q", got)
	}
}
