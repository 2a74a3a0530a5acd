package middleware

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/connectedhome/validation-go/pkg/core"
)

// Middleware decorates a handler.
type Middleware func(next core.Handler) core.Handler

// Chain composes middleware so the first one listed runs outermost.
func Chain(middleware ...Middleware) Middleware {
	return func(next core.Handler) core.Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}

// Recover turns a panic in the wrapped handler into an error. A nil logger
// discards the report.
func Recover(logger logrus.FieldLogger) Middleware {
	if logger == nil {
		logger = discardLogger()
	}
	return func(next core.Handler) core.Handler {
		return func(ctx context.Context, request core.Envelope) (resp core.Envelope, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.WithFields(requestFields(request)).WithField("panic", r).Error("handler panicked")
					resp, err = nil, fmt.Errorf("handler panicked: %v", r)
				}
			}()
			return next(ctx, request)
		}
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
