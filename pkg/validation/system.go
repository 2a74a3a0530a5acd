package validation

import (
	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
)

func (v *Validator) validateSystemResponse(request, response core.Envelope) *ValidationError {
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

	for _, key := range []string{"description", "isHealthy"} {
		if _, ok := payload[key]; !ok {
			return newViolation(name, "payload."+key+" is missing", payload)
		}
	}
	if description, ok := payload["description"].(string); !ok || isEmptyString(description) {
		return newViolation(name, "payload.description must not be empty", payload)
	}
	if !isBool(payload["isHealthy"]) {
		return newViolation(name, "payload.isHealthy must be a boolean", payload)
	}
	return nil
}
