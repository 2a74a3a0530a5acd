// Package response builds Smart Home Skill API v2 response envelopes from
// the requests they answer.
package response

import (
	"github.com/google/uuid"

	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
)

// NewMessageID returns a fresh random message id.
func NewMessageID() string {
	return uuid.NewString()
}

// NewHeader returns a response header for request. The namespace and
// message id are echoed from the request header; a request without a
// message id gets a fresh one.
func NewHeader(request core.Envelope, name string) map[string]any {
	namespace, _ := core.HeaderString(request, smarthome.HeaderNamespace)
	messageID, ok := core.HeaderString(request, smarthome.HeaderMessageID)
	if !ok || messageID == "" {
		messageID = NewMessageID()
	}
	return map[string]any{
		smarthome.HeaderNamespace:      namespace,
		smarthome.HeaderName:           name,
		smarthome.HeaderPayloadVersion: smarthome.PayloadVersion,
		smarthome.HeaderMessageID:      messageID,
	}
}

// New assembles an envelope. A nil payload becomes an empty object.
func New(header, payload map[string]any) core.Envelope {
	if payload == nil {
		payload = map[string]any{}
	}
	return core.Envelope{
		"header":  header,
		"payload": payload,
	}
}

// ConfirmationName returns the confirmation answering a control request.
func ConfirmationName(requestName string) string {
	return smarthome.ConfirmationName(requestName)
}

// ResponseName returns the response answering a discovery or system request.
func ResponseName(requestName string) string {
	return smarthome.ResponseName(requestName)
}

// For returns the successful response to request: a confirmation for
// control requests, the response for discovery and system requests.
func For(request core.Envelope, payload map[string]any) core.Envelope {
	name, _ := core.HeaderString(request, smarthome.HeaderName)
	responseName := ResponseName(name)
	if smarthome.RequestCategory(name) == smarthome.CategoryControl {
		responseName = ConfirmationName(name)
	}
	return New(NewHeader(request, responseName), payload)
}

// Error returns a control error response to request.
func Error(request core.Envelope, errorName string, payload map[string]any) core.Envelope {
	return New(NewHeader(request, errorName), payload)
}
