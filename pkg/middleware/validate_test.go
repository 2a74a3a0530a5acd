package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectedhome/validation-go/internal/testutil"
	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
	"github.com/connectedhome/validation-go/pkg/validation"
)

func respondWith(resp core.Envelope, err error) core.Handler {
	return func(context.Context, core.Envelope) (core.Envelope, error) {
		return resp, err
	}
}

func TestValidatePassesValidResponse(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	want := testutil.ControlResponse(smarthome.TurnOnConfirmation, nil)

	handler := Validate(respondWith(want, nil), WithLogger(logger))
	got, err := handler(context.Background(), testutil.ControlRequest(smarthome.TurnOnRequest))

	require.NoError(t, err)
	assert.Equal(t, want, got)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "response is valid", last.Message)
	assert.Equal(t, smarthome.TurnOnConfirmation, last.Data["response"])
	assert.Equal(t, smarthome.TurnOnRequest, last.Data["request"])
	assert.Equal(t, testutil.MessageID, last.Data["message_id"])
}

func TestValidatePolicies(t *testing.T) {
	request := testutil.HealthCheckRequest()
	invalid := testutil.Patch(t, testutil.HealthCheckResponse(), `[{"op":"replace","path":"/payload/description","value":""}]`)

	t.Run("fail invocation", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		handler := Validate(respondWith(invalid, nil), WithLogger(logger))

		resp, err := handler(context.Background(), request)
		assert.Nil(t, resp)

		var violation *validation.ValidationError
		require.True(t, errors.As(err, &violation))
		assert.Equal(t, smarthome.HealthCheckResponse, violation.Subject)

		last := hook.LastEntry()
		require.NotNil(t, last)
		assert.Equal(t, logrus.ErrorLevel, last.Level)
		assert.Equal(t, "invalid response", last.Message)
		assert.Equal(t, "fail", last.Data["policy"])
		assert.Equal(t, "payload.description must not be empty", last.Data["reason"])
	})

	t.Run("best effort", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		handler := Validate(respondWith(invalid, nil), WithLogger(logger), WithPolicy(BestEffort))

		resp, err := handler(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, invalid, resp)

		entries := hook.AllEntries()
		require.NotEmpty(t, entries)
		assert.Equal(t, "invalid response", entries[len(entries)-1].Message)
		assert.Equal(t, "best-effort", entries[len(entries)-1].Data["policy"])
	})
}

func TestValidateHandlerError(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	boom := errors.New("backend unavailable")

	handler := Validate(respondWith(nil, boom), WithLogger(logger))
	resp, err := handler(context.Background(), testutil.DiscoveryRequest())

	assert.Nil(t, resp)
	assert.Same(t, boom, err)
	assert.Equal(t, "handler failed", hook.LastEntry().Message)
}

func TestValidateDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	called := false
	next := func(context.Context, core.Envelope) (core.Envelope, error) {
		called = true
		return testutil.HealthCheckResponse(), nil
	}

	t.Run("fail invocation skips handler", func(t *testing.T) {
		called = false
		_, err := Validate(next)(ctx, testutil.HealthCheckRequest())

		var violation *validation.ValidationError
		require.True(t, errors.As(err, &violation))
		assert.Equal(t, validation.SubjectLambda, violation.Subject)
		assert.False(t, called)
	})

	t.Run("best effort runs handler", func(t *testing.T) {
		called = false
		resp, err := Validate(next, WithPolicy(BestEffort))(ctx, testutil.HealthCheckRequest())
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.True(t, called)
	})

	t.Run("check disabled", func(t *testing.T) {
		called = false
		_, err := Validate(next, WithDeadlineCheck(false))(ctx, testutil.HealthCheckRequest())
		require.NoError(t, err)
		assert.True(t, called)
	})
}

type rejectAll struct{}

func (rejectAll) Check(any) error { return errors.New("rejected") }

func TestValidateWithValidator(t *testing.T) {
	v := validation.NewValidator(validation.WithEnvelopeSchema(rejectAll{}))
	handler := Validate(respondWith(testutil.HealthCheckResponse(), nil), WithValidator(v))

	_, err := handler(context.Background(), testutil.HealthCheckRequest())
	requireSubject(t, err, validation.SubjectEnvelope)
}

func requireSubject(t *testing.T, err error, subject string) {
	t.Helper()
	var violation *validation.ValidationError
	require.True(t, errors.As(err, &violation), "got %v", err)
	assert.Equal(t, subject, violation.Subject)
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next core.Handler) core.Handler {
			return func(ctx context.Context, request core.Envelope) (core.Envelope, error) {
				order = append(order, name)
				return next(ctx, request)
			}
		}
	}

	handler := Chain(tag("outer"), tag("inner"), Validation())(respondWith(testutil.HealthCheckResponse(), nil))
	_, err := handler(context.Background(), testutil.HealthCheckRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRecover(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	panicky := func(context.Context, core.Envelope) (core.Envelope, error) {
		panic("nil appliance")
	}

	resp, err := Recover(logger)(panicky)(context.Background(), testutil.DiscoveryRequest())
	assert.Nil(t, resp)
	assert.EqualError(t, err, "handler panicked: nil appliance")
	assert.Equal(t, "handler panicked", hook.LastEntry().Message)
}

func TestRecoverWithoutLogger(t *testing.T) {
	panicky := func(context.Context, core.Envelope) (core.Envelope, error) {
		panic("nil appliance")
	}

	var err error
	require.NotPanics(t, func() {
		_, err = Recover(nil)(panicky)(context.Background(), testutil.DiscoveryRequest())
	})
	assert.EqualError(t, err, "handler panicked: nil appliance")
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "fail", FailInvocation.String())
	assert.Equal(t, "best-effort", BestEffort.String())
	assert.Equal(t, "unknown", Policy(7).String())
}
