package core

import (
	"context"
)

// Envelope is a decoded request or response document: a mapping with a
// "header" and a "payload" key. It has the shape produced by decoding JSON
// or YAML into interface values.
type Envelope = map[string]any

// Handler produces the response for a request.
// Handlers are wrapped by the middleware package so every response they
// return is validated before it leaves the service.
type Handler func(ctx context.Context, request Envelope) (Envelope, error)

// Header returns the header mapping of an envelope.
func Header(env Envelope) (map[string]any, bool) {
	if env == nil {
		return nil, false
	}
	h, ok := env["header"].(map[string]any)
	return h, ok
}

// HeaderString returns a string header field of an envelope.
func HeaderString(env Envelope, key string) (string, bool) {
	h, ok := Header(env)
	if !ok {
		return "", false
	}
	s, ok := h[key].(string)
	return s, ok
}

// Payload returns the payload mapping of an envelope.
func Payload(env Envelope) (map[string]any, bool) {
	if env == nil {
		return nil, false
	}
	p, ok := env["payload"].(map[string]any)
	return p, ok
}
