package middleware

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
	"github.com/connectedhome/validation-go/pkg/validation"
)

// Policy decides what happens to a response that fails validation.
type Policy int

const (
	// FailInvocation returns the violation in place of the response.
	FailInvocation Policy = iota
	// BestEffort logs the violation and returns the response unchanged.
	BestEffort
)

func (p Policy) String() string {
	switch p {
	case FailInvocation:
		return "fail"
	case BestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

type options struct {
	logger        logrus.FieldLogger
	validator     *validation.Validator
	policy        Policy
	checkDeadline bool
}

// Option configures Validate.
type Option func(*options)

// WithLogger sets the logger requests and violations are reported to.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithValidator replaces the validator responses are checked with.
func WithValidator(v *validation.Validator) Option {
	return func(o *options) {
		if v != nil {
			o.validator = v
		}
	}
}

// WithPolicy sets the policy for invalid responses.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithDeadlineCheck enables or disables the execution budget check. It is
// enabled by default.
func WithDeadlineCheck(enabled bool) Option {
	return func(o *options) {
		o.checkDeadline = enabled
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:        discardLogger(),
		policy:        FailInvocation,
		checkDeadline: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.validator == nil {
		o.validator = validation.NewValidator(validation.WithLogger(o.logger))
	}
	return o
}

// Validation returns Validate as a Middleware.
func Validation(opts ...Option) Middleware {
	return func(next core.Handler) core.Handler {
		return Validate(next, opts...)
	}
}

// Validate wraps next so its responses are validated against the request
// they answer. Errors returned by next pass through untouched.
func Validate(next core.Handler, opts ...Option) core.Handler {
	o := newOptions(opts)

	return func(ctx context.Context, request core.Envelope) (core.Envelope, error) {
		log := o.logger.WithFields(requestFields(request))

		if o.checkDeadline {
			if err := validation.ValidateDeadline(ctx); err != nil {
				log.WithError(err).Warn("execution budget too long")
				if o.policy == FailInvocation {
					return nil, err
				}
			}
		}

		log.Info("handling request")
		resp, err := next(ctx, request)
		if err != nil {
			log.WithError(err).Error("handler failed")
			return nil, err
		}

		if err := o.validator.Validate(request, resp); err != nil {
			entry := log.WithError(err).WithField("policy", o.policy.String())
			var violation *validation.ValidationError
			if errors.As(err, &violation) {
				entry = entry.WithFields(logrus.Fields{
					"subject": violation.Subject,
					"reason":  violation.Message,
				})
			}
			entry.Error("invalid response")
			if o.policy == FailInvocation {
				return nil, err
			}
			return resp, nil
		}

		log.WithFields(responseFields(resp)).Info("response is valid")
		return resp, nil
	}
}

func requestFields(request core.Envelope) logrus.Fields {
	fields := logrus.Fields{}
	for key, field := range map[string]string{
		smarthome.HeaderNamespace: "namespace",
		smarthome.HeaderName:      "request",
		smarthome.HeaderMessageID: "message_id",
	} {
		if v, ok := core.HeaderString(request, key); ok {
			fields[field] = v
		}
	}
	return fields
}

func responseFields(resp core.Envelope) logrus.Fields {
	fields := logrus.Fields{}
	if name, ok := core.HeaderString(resp, smarthome.HeaderName); ok {
		fields["response"] = name
	}
	return fields
}
