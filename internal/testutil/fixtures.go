package testutil

import (
	"fmt"

	"github.com/connectedhome/validation-go/pkg/smarthome"
)

// MessageID is the message id used by every fixture.
const MessageID = "01ebf625-0b89-4c4d-b3aa-32340e894688"

// Header returns a payload version 2 header.
func Header(namespace, name string) map[string]any {
	return map[string]any{
		"namespace":      namespace,
		"name":           name,
		"payloadVersion": smarthome.PayloadVersion,
		"messageId":      MessageID,
	}
}

// Envelope returns a document with the given header and payload.
func Envelope(namespace, name string, payload map[string]any) map[string]any {
	if payload == nil {
		payload = map[string]any{}
	}
	return map[string]any{
		"header":  Header(namespace, name),
		"payload": payload,
	}
}

// DiscoveryRequest returns a DiscoverAppliancesRequest.
func DiscoveryRequest() map[string]any {
	return Envelope(smarthome.NamespaceDiscovery, smarthome.DiscoverAppliancesRequest, map[string]any{
		"accessToken": "access-token",
	})
}

// ControlRequest returns a control request for the given name.
func ControlRequest(name string) map[string]any {
	return Envelope(smarthome.NamespaceControl, name, map[string]any{
		"accessToken": "access-token",
		"appliance": map[string]any{
			"applianceId":                "ThermostatAuto-001",
			"additionalApplianceDetails": map[string]any{},
		},
	})
}

// HealthCheckRequest returns a HealthCheckRequest.
func HealthCheckRequest() map[string]any {
	return Envelope(smarthome.NamespaceSystem, smarthome.HealthCheckRequest, map[string]any{
		"initiationTimestamp": "1435302567000",
	})
}

// Appliance returns a valid discovered appliance.
func Appliance(id string) map[string]any {
	return map[string]any{
		"applianceId":         id,
		"manufacturerName":    "Sample Manufacturer",
		"modelName":           "Switch",
		"version":             "1",
		"friendlyName":        "Sample Switch",
		"friendlyDescription": "Switch by Sample Manufacturer",
		"isReachable":         true,
		"actions":             []any{"turnOn", "turnOff"},
		"additionalApplianceDetails": map[string]any{
			"extraDetail1": "This is an on/off switch that is online and reachable",
		},
	}
}

// Appliances returns n valid appliances with distinct ids.
func Appliances(n int) []any {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Appliance(fmt.Sprintf("switch-%03d", i)))
	}
	return out
}

// DiscoveryResponse returns a DiscoverAppliancesResponse listing appliances.
func DiscoveryResponse(appliances ...any) map[string]any {
	if appliances == nil {
		appliances = []any{}
	}
	return Envelope(smarthome.NamespaceDiscovery, smarthome.DiscoverAppliancesResponse, map[string]any{
		"discoveredAppliances": appliances,
	})
}

// ControlResponse returns a control response.
func ControlResponse(name string, payload map[string]any) map[string]any {
	return Envelope(smarthome.NamespaceControl, name, payload)
}

// TemperaturePayload returns a thermostat confirmation payload whose
// previous state was 21 degrees in the same mode.
func TemperaturePayload(target float64, mode string) map[string]any {
	return map[string]any{
		"targetTemperature": map[string]any{"value": target},
		"temperatureMode":   map[string]any{"value": mode},
		"previousState": map[string]any{
			"targetTemperature": map[string]any{"value": 21.0},
			"temperatureMode":   map[string]any{"value": mode},
		},
	}
}

// ErrorPayloads holds a valid payload for every control error that carries
// one.
func ErrorPayloads() map[string]map[string]any {
	return map[string]map[string]any{
		smarthome.ValueOutOfRangeError: {
			"minimumValue": 5.0,
			"maximumValue": 30.0,
		},
		smarthome.DependentServiceUnavailableError: {
			"dependentServiceName": "Customer Credentials Database",
		},
		smarthome.TargetFirmwareOutdatedError: {
			"minimumFirmwareVersion": "17",
			"currentFirmwareVersion": "6",
		},
		smarthome.TargetBridgeFirmwareOutdatedError: {
			"minimumFirmwareVersion": "17",
			"currentFirmwareVersion": "6",
		},
		smarthome.UnwillingToSetValueError: {
			"errorInfo": map[string]any{
				"code":        "ThermostatIsOff",
				"description": "The requested operation is unsafe because it requires changing the mode.",
			},
		},
		smarthome.RateLimitExceededError: {
			"rateLimit": "10",
			"timeUnit":  "HOUR",
		},
		smarthome.NotSupportedInCurrentModeError: {
			"currentDeviceMode": "AWAY",
		},
		smarthome.UnexpectedInformationReceivedError: {
			"faultingParameter": "value",
		},
	}
}

// HealthCheckResponse returns a healthy HealthCheckResponse.
func HealthCheckResponse() map[string]any {
	return Envelope(smarthome.NamespaceSystem, smarthome.HealthCheckResponse, map[string]any{
		"description": "The system is currently healthy",
		"isHealthy":   true,
	})
}
