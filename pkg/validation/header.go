package validation

import (
	"fmt"

	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/smarthome"
)

// validateResponseHeader checks the response header against the request
// name and returns the kind of response the header announces.
func validateResponseHeader(request, response core.Envelope) (ResponseKind, *ValidationError) {
	requestName, _ := core.HeaderString(request, smarthome.HeaderName)
	if !smarthome.Requests.Contains(requestName) {
		return KindUnknown, newRequestViolation("request name is invalid", request)
	}

	rawHeader := response["header"]
	if rawHeader == nil {
		return KindUnknown, newViolation(SubjectResponse, "response header is missing", response)
	}
	header, ok := rawHeader.(map[string]any)
	if !ok {
		return KindUnknown, newViolation(SubjectResponse, "response header must be an object", response)
	}
	for _, key := range smarthome.RequiredHeaderKeys.Names() {
		if _, ok := header[key]; !ok {
			return KindUnknown, newViolation(SubjectResponse, "header."+key+" is required", header)
		}
	}

	namespace, _ := header[smarthome.HeaderNamespace].(string)
	name, _ := header[smarthome.HeaderName].(string)

	var kind ResponseKind
	switch smarthome.RequestCategory(requestName) {
	case smarthome.CategoryDiscovery:
		if namespace != smarthome.NamespaceDiscovery {
			return KindUnknown, newViolation(SubjectDiscoveryResponse, "header.namespace must be "+smarthome.NamespaceDiscovery, header)
		}
		if !smarthome.DiscoveryResponses.Contains(name) {
			return KindUnknown, newViolation(SubjectDiscoveryResponse, "header.name is invalid", header)
		}
		if want := smarthome.ResponseName(requestName); name != want {
			return KindUnknown, newViolation(SubjectDiscoveryResponse, fmt.Sprintf("header.name must be %s for %s", want, requestName), header)
		}
		kind = KindDiscovery

	case smarthome.CategoryControl:
		if namespace != smarthome.NamespaceControl {
			return KindUnknown, newViolation(SubjectControlResponse, "header.namespace must be "+smarthome.NamespaceControl, header)
		}
		if !smarthome.ControlResponses.Contains(name) {
			return KindUnknown, newViolation(SubjectControlResponse, "header.name is invalid", header)
		}
		if smarthome.ControlErrors.Contains(name) {
			kind = KindError
			break
		}
		if want := smarthome.ConfirmationName(requestName); name != want {
			return KindUnknown, newViolation(SubjectControlResponse, fmt.Sprintf("header.name must be an error response name or %s for %s", want, requestName), header)
		}
		kind = KindConfirmation

	case smarthome.CategorySystem:
		if namespace != smarthome.NamespaceSystem {
			return KindUnknown, newViolation(SubjectSystemResponse, "header.namespace must be "+smarthome.NamespaceSystem, header)
		}
		if !smarthome.SystemResponses.Contains(name) {
			return KindUnknown, newViolation(SubjectSystemResponse, "header.name is invalid", header)
		}
		if want := smarthome.ResponseName(requestName); name != want {
			return KindUnknown, newViolation(SubjectSystemResponse, fmt.Sprintf("header.name must be %s for %s", want, requestName), header)
		}
		kind = KindHealthCheck
	}

	if version, ok := header[smarthome.HeaderPayloadVersion].(string); !ok || version != smarthome.PayloadVersion {
		return KindUnknown, newViolation(name, "header.payloadVersion must be '2' (string)", header)
	}

	messageID, ok := header[smarthome.HeaderMessageID].(string)
	switch {
	case !ok:
		return KindUnknown, newViolation(name, "header.messageId must be a string", header)
	case isEmptyString(messageID):
		return KindUnknown, newViolation(name, "header.messageId must not be empty", header)
	case charCount(messageID) > smarthome.MaxMessageIDLength:
		return KindUnknown, newViolation(name, fmt.Sprintf("header.messageId must not exceed %d characters", smarthome.MaxMessageIDLength), header)
	case !messageIDPattern.MatchString(messageID):
		return KindUnknown, newViolation(name, "header.messageId must be specified in alphanumeric characters or -", header)
	}

	return kind, nil
}
