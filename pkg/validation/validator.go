package validation

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
)

// ResponseKind is the outcome of the response header rule. It tells the
// payload rules which shape to expect.
type ResponseKind int

const (
	KindUnknown ResponseKind = iota
	KindDiscovery
	KindConfirmation
	KindError
	KindHealthCheck
)

func (k ResponseKind) String() string {
	switch k {
	case KindDiscovery:
		return "discovery"
	case KindConfirmation:
		return "confirmation"
	case KindError:
		return "error"
	case KindHealthCheck:
		return "health_check"
	default:
		return "unknown"
	}
}

// EnvelopeChecker checks a whole response document before the rule engine
// runs. The schema package provides a JSON Schema implementation.
type EnvelopeChecker interface {
	Check(doc any) error
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger logs dispatch decisions and violations at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithEnvelopeSchema runs checker against the response before the rule
// engine. Its failures are reported with the Envelope subject.
func WithEnvelopeSchema(checker EnvelopeChecker) Option {
	return func(v *Validator) {
		v.envelope = checker
	}
}

// Validator validates Smart Home responses against the request that
// produced them. A Validator holds no per-call state and is safe for
// concurrent use.
type Validator struct {
	logger   logrus.FieldLogger
	envelope EnvelopeChecker
}

// NewValidator creates a new response validator
func NewValidator(opts ...Option) *Validator {
	v := &Validator{logger: discardLogger()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate validates response against request with the default validator.
func Validate(request, response core.Envelope) error {
	return defaultValidator.Validate(request, response)
}

// Validate checks response against request and returns the first violation
// as a *ValidationError, or nil when the response is valid. Any slice counts
// as a list and any string-keyed map as an object, so responses built from
// typed Go values validate like decoded JSON. Neither argument is modified.
func (v *Validator) Validate(request, response core.Envelope) error {
	if err := v.validate(normalizeEnvelope(request), normalizeEnvelope(response)); err != nil {
		v.logger.WithFields(logrus.Fields{
			"subject": err.Subject,
			"message": err.Message,
		}).Debug("response failed validation")
		return err
	}
	return nil
}

func (v *Validator) validate(request, response core.Envelope) *ValidationError {
	if request == nil {
		return newRequestViolation("request is missing", nil)
	}
	if len(request) == 0 {
		return newRequestViolation("request must not be empty", request)
	}
	namespace, ok := core.HeaderString(request, smarthome.HeaderNamespace)
	if !ok {
		return newRequestViolation("request is invalid", request)
	}

	if response == nil {
		return newViolation(SubjectResponse, "response is missing", nil)
	}
	if len(response) == 0 {
		return newViolation(SubjectResponse, "response must not be empty", response)
	}
	for _, key := range smarthome.RequiredResponseKeys.Names() {
		if _, ok := response[key]; !ok {
			return newViolation(SubjectResponse, key+" is missing", response)
		}
	}

	if v.envelope != nil {
		if err := v.envelope.Check(response); err != nil {
			return newViolation(SubjectEnvelope, err.Error(), response)
		}
	}

	category := smarthome.CategoryOf(namespace)
	v.logger.WithFields(logrus.Fields{
		"namespace": namespace,
		"category":  category.String(),
	}).Debug("validating response")

	switch category {
	case smarthome.CategoryDiscovery:
		return v.validateDiscoveryResponse(request, response)
	case smarthome.CategoryControl:
		return v.validateControlResponse(request, response)
	case smarthome.CategorySystem:
		return v.validateSystemResponse(request, response)
	default:
		return newRequestViolation("request.header.namespace is invalid", request)
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
