package response_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectedhome/validation-go/internal/testutil"
	"github.com/connectedhome/validation-go/pkg/response"
	"github.com/connectedhome/validation-go/pkg/smarthome"
	"github.com/connectedhome/validation-go/pkg/validation"
)

func TestNewMessageID(t *testing.T) {
	first := response.NewMessageID()
	second := response.NewMessageID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, len(first), smarthome.MaxMessageIDLength)
}

func TestNewHeaderEchoesRequest(t *testing.T) {
	header := response.NewHeader(testutil.ControlRequest(smarthome.TurnOnRequest), smarthome.TurnOnConfirmation)

	assert.Equal(t, map[string]any{
		"namespace":      smarthome.NamespaceControl,
		"name":           smarthome.TurnOnConfirmation,
		"payloadVersion": "2",
		"messageId":      testutil.MessageID,
	}, header)
}

func TestNewHeaderWithoutMessageID(t *testing.T) {
	request := testutil.Patch(t, testutil.DiscoveryRequest(), `[{"op":"remove","path":"/header/messageId"}]`)
	header := response.NewHeader(request, smarthome.DiscoverAppliancesResponse)

	id, ok := header["messageId"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNewNilPayload(t *testing.T) {
	env := response.New(testutil.Header(smarthome.NamespaceControl, smarthome.TurnOffConfirmation), nil)
	assert.Equal(t, map[string]any{}, env["payload"])
}

func TestBuiltResponsesValidate(t *testing.T) {
	thermostat := response.Appliance{
		ID:                  "thermostat-001",
		ManufacturerName:    "Sample Manufacturer",
		ModelName:           "Thermostat",
		Version:             "2",
		FriendlyName:        "Hallway Thermostat",
		FriendlyDescription: "Thermostat by Sample Manufacturer",
		IsReachable:         true,
		Actions:             []string{"setTargetTemperature", "incrementTargetTemperature", "decrementTargetTemperature"},
	}

	tests := []struct {
		name     string
		request  map[string]any
		response map[string]any
	}{
		{
			name:     "discovery",
			request:  testutil.DiscoveryRequest(),
			response: response.For(testutil.DiscoveryRequest(), response.DiscoveryPayload(thermostat)),
		},
		{
			name:     "empty discovery",
			request:  testutil.DiscoveryRequest(),
			response: response.For(testutil.DiscoveryRequest(), response.DiscoveryPayload()),
		},
		{
			name:     "turn on",
			request:  testutil.ControlRequest(smarthome.TurnOnRequest),
			response: response.For(testutil.ControlRequest(smarthome.TurnOnRequest), nil),
		},
		{
			name:     "set temperature",
			request:  testutil.ControlRequest(smarthome.SetTargetTemperatureRequest),
			response: response.For(testutil.ControlRequest(smarthome.SetTargetTemperatureRequest), response.TemperaturePayload(22, "COOL", 25, "AUTO")),
		},
		{
			name:     "health check",
			request:  testutil.HealthCheckRequest(),
			response: response.For(testutil.HealthCheckRequest(), response.HealthPayload(true, "The system is currently healthy")),
		},
		{
			name:     "value out of range",
			request:  testutil.ControlRequest(smarthome.SetTargetTemperatureRequest),
			response: response.Error(testutil.ControlRequest(smarthome.SetTargetTemperatureRequest), smarthome.ValueOutOfRangeError, response.ValueOutOfRangePayload(5, 30)),
		},
		{
			name:     "rate limited",
			request:  testutil.ControlRequest(smarthome.IncrementPercentageRequest),
			response: response.Error(testutil.ControlRequest(smarthome.IncrementPercentageRequest), smarthome.RateLimitExceededError, response.RateLimitPayload(10, "HOUR")),
		},
		{
			name:     "unwilling to set value",
			request:  testutil.ControlRequest(smarthome.SetTargetTemperatureRequest),
			response: response.Error(testutil.ControlRequest(smarthome.SetTargetTemperatureRequest), smarthome.UnwillingToSetValueError, response.UnwillingToSetValuePayload("ThermostatIsOff", "The thermostat is off")),
		},
		{
			name:     "no such target",
			request:  testutil.ControlRequest(smarthome.TurnOffRequest),
			response: response.Error(testutil.ControlRequest(smarthome.TurnOffRequest), smarthome.NoSuchTargetError, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, validation.Validate(tt.request, tt.response))
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, smarthome.TurnOnConfirmation, response.ConfirmationName(smarthome.TurnOnRequest))
	assert.Equal(t, smarthome.HealthCheckResponse, response.ResponseName(smarthome.HealthCheckRequest))
}
