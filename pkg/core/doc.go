// Package core provides the foundational types shared by the Smart Home
// validation packages.
//
// Requests and responses travel as decoded documents (Envelope): a mapping
// with a "header" carrying namespace, name, payloadVersion and messageId, and
// a request/response specific "payload". The helpers in this package read
// those fields without asserting on the rest of the document, which is the
// validator's job.
//
// Example usage:
//
//	import "github.com/connectedhome/validation-go/pkg/core"
//
//	name, ok := core.HeaderString(request, "name")
//	if !ok {
//		return core.ErrInvalidRequest
//	}
package core
