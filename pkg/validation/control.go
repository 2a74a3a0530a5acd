package validation

import (
	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
)

func (v *Validator) validateControlResponse(request, response core.Envelope) *ValidationError {
	kind, err := validateResponseHeader(request, response)
	if err != nil {
		return err
	}
	name, _ := core.HeaderString(response, smarthome.HeaderName)

	rawPayload := response["payload"]
	if rawPayload == nil {
		return newViolation(name, "payload is missing", nil)
	}
	payload, ok := rawPayload.(map[string]any)
	if !ok {
		return newViolation(name, "payload must be an object", rawPayload)
	}

	if smarthome.NonEmptyPayloadResponses.Contains(name) {
		if len(payload) == 0 {
			return newViolation(name, "payload must not be empty", payload)
		}
	} else if len(payload) != 0 {
		return newViolation(name, "payload must be empty", payload)
	}

	switch kind {
	case KindConfirmation:
		if smarthome.TemperatureConfirmations.Contains(name) {
			return validateTemperaturePayload(name, payload)
		}
		return nil
	case KindError:
		return validateErrorPayload(name, payload)
	default:
		return newViolation(SubjectControlResponse, "header.name is invalid", response["header"])
	}
}

func validateTemperaturePayload(name string, payload map[string]any) *ValidationError {
	for _, key := range []string{"targetTemperature", "temperatureMode", "previousState"} {
		if _, ok := payload[key]; !ok {
			return newViolation(name, "payload."+key+" is missing", payload)
		}
	}
	if err := validateTemperatureState(name, "payload.", payload, payload); err != nil {
		return err
	}

	previous, ok := object(payload, "previousState")
	if !ok {
		return newViolation(name, "payload.previousState must be an object", payload)
	}
	for _, key := range []string{"targetTemperature", "temperatureMode"} {
		if _, ok := previous[key]; !ok {
			return newViolation(name, "payload.previousState."+key+" is missing", payload)
		}
	}
	return validateTemperatureState(name, "payload.previousState.", previous, payload)
}

// validateTemperatureState checks the targetTemperature and temperatureMode
// pair shared by the payload and its previousState. data is what a
// violation reports.
func validateTemperatureState(name, prefix string, state, data map[string]any) *ValidationError {
	target, ok := object(state, "targetTemperature")
	if !ok {
		return newViolation(name, prefix+"targetTemperature must be an object", data)
	}
	value, ok := target["value"]
	if !ok {
		return newViolation(name, prefix+"targetTemperature.value is missing", data)
	}
	if !isNumber(value) {
		return newViolation(name, prefix+"targetTemperature.value must be a number", data)
	}

	mode, ok := object(state, "temperatureMode")
	if !ok {
		return newViolation(name, prefix+"temperatureMode must be an object", data)
	}
	rawMode, ok := mode["value"]
	if !ok {
		return newViolation(name, prefix+"temperatureMode.value is missing", data)
	}
	if s, ok := rawMode.(string); !ok || !smarthome.TemperatureModes.Contains(s) {
		return newViolation(name, prefix+"temperatureMode.value is invalid", data)
	}
	return nil
}

func validateErrorPayload(name string, payload map[string]any) *ValidationError {
	switch name {
	case smarthome.ValueOutOfRangeError:
		for _, key := range []string{"minimumValue", "maximumValue"} {
			value, ok := payload[key]
			if !ok {
				return newViolation(name, "payload."+key+" is missing", payload)
			}
			if !isNumber(value) {
				return newViolation(name, "payload."+key+" must be a number", payload)
			}
		}

	case smarthome.DependentServiceUnavailableError:
		raw, ok := payload["dependentServiceName"]
		if !ok {
			return newViolation(name, "payload.dependentServiceName is missing", payload)
		}
		if s, ok := raw.(string); !ok || !alphanumericSpacesPattern.MatchString(s) {
			return newViolation(name, "payload.dependentServiceName must be specified in alphanumeric characters and spaces", payload)
		}

	case smarthome.TargetFirmwareOutdatedError, smarthome.TargetBridgeFirmwareOutdatedError:
		for _, key := range []string{"minimumFirmwareVersion", "currentFirmwareVersion"} {
			raw, ok := payload[key]
			if !ok {
				return newViolation(name, "payload."+key+" is missing", payload)
			}
			s, ok := raw.(string)
			if !ok {
				return newViolation(name, "payload."+key+" must be a string", payload)
			}
			if isEmptyString(s) {
				return newViolation(name, "payload."+key+" must not be empty", payload)
			}
			if !alphanumericPattern.MatchString(s) {
				return newViolation(name, "payload."+key+" must be specified in alphanumeric characters", payload)
			}
		}

	case smarthome.UnwillingToSetValueError:
		if _, ok := payload["errorInfo"]; !ok {
			return newViolation(name, "payload.errorInfo is missing", payload)
		}
		info, ok := object(payload, "errorInfo")
		if !ok {
			return newViolation(name, "payload.errorInfo must be an object", payload)
		}
		for _, key := range []string{"code", "description"} {
			if _, ok := info[key]; !ok {
				return newViolation(name, "payload.errorInfo."+key+" is missing", payload)
			}
		}
		if code, ok := info["code"].(string); !ok || !smarthome.ErrorInfoCodes.Contains(code) {
			return newViolation(name, "payload.errorInfo.code is invalid", payload)
		}
		if _, ok := info["description"].(string); !ok {
			return newViolation(name, "payload.errorInfo.description must be a string", payload)
		}

	case smarthome.RateLimitExceededError:
		for _, key := range []string{"rateLimit", "timeUnit"} {
			if _, ok := payload[key]; !ok {
				return newViolation(name, "payload."+key+" is missing", payload)
			}
		}
		if !isPositiveInteger(payload["rateLimit"]) {
			return newViolation(name, "payload.rateLimit must be a positive integer", payload)
		}
		if unit, ok := payload["timeUnit"].(string); !ok || !smarthome.TimeUnits.Contains(unit) {
			return newViolation(name, "payload.timeUnit is invalid", payload)
		}

	case smarthome.NotSupportedInCurrentModeError:
		raw, ok := payload["currentDeviceMode"]
		if !ok {
			return newViolation(name, "payload.currentDeviceMode is missing", payload)
		}
		if mode, ok := raw.(string); !ok || !smarthome.DeviceModes.Contains(mode) {
			return newViolation(name, "payload.currentDeviceMode is invalid", payload)
		}

	case smarthome.UnexpectedInformationReceivedError:
		raw, ok := payload["faultingParameter"]
		if !ok {
			return newViolation(name, "payload.faultingParameter is missing", payload)
		}
		if s, ok := raw.(string); !ok || isEmptyString(s) {
			return newViolation(name, "payload.faultingParameter must not be empty", payload)
		}
	}
	return nil
}
