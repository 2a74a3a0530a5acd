package validation

import (
	"fmt"

	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
)

func (v *Validator) validateDiscoveryResponse(request, response core.Envelope) *ValidationError {
	if _, err := validateResponseHeader(request, response); err != nil {
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

	rawAppliances, ok := payload["discoveredAppliances"]
	if !ok {
		return newViolation(name, "payload.discoveredAppliances is missing", payload)
	}
	appliances, ok := rawAppliances.([]any)
	if !ok {
		return newViolation(name, "payload.discoveredAppliances must be a list", payload)
	}
	if len(appliances) > smarthome.MaxDiscoveredAppliances {
		return newViolation(name, fmt.Sprintf("payload.discoveredAppliances must not contain more than %d appliances", smarthome.MaxDiscoveredAppliances), payload)
	}

	for _, raw := range appliances {
		if err := validateAppliance(name, raw); err != nil {
			return err
		}
	}
	return nil
}

func validateAppliance(subject string, raw any) *ValidationError {
	appliance, ok := raw.(map[string]any)
	if !ok {
		return newViolation(subject, "discovered appliance must be an object", raw)
	}
	for _, key := range smarthome.RequiredApplianceKeys.Names() {
		if _, ok := appliance[key]; !ok {
			return newViolation(subject, key+" is missing", appliance)
		}
	}

	applianceID, err := applianceString(subject, appliance, "applianceId", smarthome.MaxApplianceIDLength)
	if err != nil {
		return err
	}
	if !applianceIDPattern.MatchString(applianceID) {
		return newViolation(subject, "applianceId must be alphanumeric or include these special characters: _-=;:?@&", appliance)
	}

	for _, key := range []string{"manufacturerName", "modelName", "version"} {
		if _, err := applianceString(subject, appliance, key, smarthome.MaxApplianceFieldLength); err != nil {
			return err
		}
	}

	friendlyName, err := applianceString(subject, appliance, "friendlyName", smarthome.MaxApplianceFieldLength)
	if err != nil {
		return err
	}
	if !alphanumericSpacesPattern.MatchString(friendlyName) {
		return newViolation(subject, "friendlyName must be specified in alphanumeric characters and spaces", appliance)
	}

	if _, err := applianceString(subject, appliance, "friendlyDescription", smarthome.MaxApplianceFieldLength); err != nil {
		return err
	}

	if !isBool(appliance["isReachable"]) {
		return newViolation(subject, "isReachable must be a boolean", appliance)
	}

	actions, ok := appliance["actions"].([]any)
	if !ok {
		return newViolation(subject, "actions must be a list", appliance)
	}
	if len(actions) == 0 {
		return newViolation(subject, "actions must not be empty", appliance)
	}
	for _, rawAction := range actions {
		action, ok := rawAction.(string)
		if !ok || !smarthome.Actions.Contains(action) {
			return newViolation(subject, fmt.Sprintf("%v is an invalid action", rawAction), appliance)
		}
	}

	if details := appliance["additionalApplianceDetails"]; details != nil {
		size, err := serializedSize(details)
		if err != nil {
			return newViolation(subject, "additionalApplianceDetails must be serializable", appliance)
		}
		if size > smarthome.MaxAdditionalDetailsBytes {
			return newViolation(subject, fmt.Sprintf("additionalApplianceDetails must not exceed %d bytes", smarthome.MaxAdditionalDetailsBytes), appliance)
		}
	}

	return nil
}

// applianceString checks a required, non-empty, length-limited string field.
func applianceString(subject string, appliance map[string]any, key string, maxLen int) (string, *ValidationError) {
	s, ok := appliance[key].(string)
	if !ok {
		return "", newViolation(subject, key+" must be a string", appliance)
	}
	if isEmptyString(s) {
		return "", newViolation(subject, key+" must not be empty", appliance)
	}
	if charCount(s) > maxLen {
		return "", newViolation(subject, fmt.Sprintf("%s must not exceed %d characters", key, maxLen), appliance)
	}
	return s, nil
}
