package validation

import (
	"encoding/json"
	"fmt"

	"github.com/connectedhome/validation-go/pkg/core"
)

// Subjects used when the failing name is not known yet.
const (
	SubjectRequest           = "Request"
	SubjectResponse          = "Response"
	SubjectDiscoveryResponse = "Discovery Response"
	SubjectControlResponse   = "Control Response"
	SubjectSystemResponse    = "System Response"
	SubjectEnvelope          = "Envelope"
	SubjectLambda            = "Lambda"
)

// ValidationError is the single violation kind reported by the validator.
// Subject names the request or response the rule applies to, Message names
// the offending field and Data holds the structure that failed the rule.
type ValidationError struct {
	Subject string
	Message string
	Data    any

	err error
}

// Error renders the violation as "<subject> :: <message>: <data>", with data
// serialised as JSON.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s :: %s: %s", e.Subject, e.Message, renderData(e.Data))
}

// Unwrap returns core.ErrInvalidRequest for violations of the request
// envelope and core.ErrInvalidResponse for everything else.
func (e *ValidationError) Unwrap() error {
	return e.err
}

func newViolation(subject, message string, data any) *ValidationError {
	return &ValidationError{
		Subject: subject,
		Message: message,
		Data:    data,
		err:     core.ErrInvalidResponse,
	}
}

func newRequestViolation(message string, data any) *ValidationError {
	return &ValidationError{
		Subject: SubjectRequest,
		Message: message,
		Data:    data,
		err:     core.ErrInvalidRequest,
	}
}

func renderData(data any) string {
	if data == nil {
		return "null"
	}
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(b)
}
