package smarthome

import "strings"

// PayloadVersion is the only payload version the vocabulary describes.
const PayloadVersion = "2"

// Namespaces
const (
	NamespaceDiscovery = "Alexa.ConnectedHome.Discovery"
	NamespaceControl   = "Alexa.ConnectedHome.Control"
	NamespaceSystem    = "Alexa.ConnectedHome.System"
)

// Request names
const (
	DiscoverAppliancesRequest = "DiscoverAppliancesRequest"

	TurnOnRequest                     = "TurnOnRequest"
	TurnOffRequest                    = "TurnOffRequest"
	SetTargetTemperatureRequest       = "SetTargetTemperatureRequest"
	IncrementTargetTemperatureRequest = "IncrementTargetTemperatureRequest"
	DecrementTargetTemperatureRequest = "DecrementTargetTemperatureRequest"
	SetPercentageRequest              = "SetPercentageRequest"
	IncrementPercentageRequest        = "IncrementPercentageRequest"
	DecrementPercentageRequest        = "DecrementPercentageRequest"

	HealthCheckRequest = "HealthCheckRequest"
)

// Success response names
const (
	DiscoverAppliancesResponse = "DiscoverAppliancesResponse"

	TurnOnConfirmation                     = "TurnOnConfirmation"
	TurnOffConfirmation                    = "TurnOffConfirmation"
	SetTargetTemperatureConfirmation       = "SetTargetTemperatureConfirmation"
	IncrementTargetTemperatureConfirmation = "IncrementTargetTemperatureConfirmation"
	DecrementTargetTemperatureConfirmation = "DecrementTargetTemperatureConfirmation"
	SetPercentageConfirmation              = "SetPercentageConfirmation"
	IncrementPercentageConfirmation        = "IncrementPercentageConfirmation"
	DecrementPercentageConfirmation        = "DecrementPercentageConfirmation"

	HealthCheckResponse = "HealthCheckResponse"
)

// Control error response names
const (
	ValueOutOfRangeError                  = "ValueOutOfRangeError"
	TargetOfflineError                    = "TargetOfflineError"
	BridgeOfflineError                    = "BridgeOfflineError"
	NoSuchTargetError                     = "NoSuchTargetError"
	DriverInternalError                   = "DriverInternalError"
	DependentServiceUnavailableError      = "DependentServiceUnavailableError"
	TargetConnectivityUnstableError       = "TargetConnectivityUnstableError"
	TargetBridgeConnectivityUnstableError = "TargetBridgeConnectivityUnstableError"
	TargetFirmwareOutdatedError           = "TargetFirmwareOutdatedError"
	TargetBridgeFirmwareOutdatedError     = "TargetBridgeFirmwareOutdatedError"
	TargetHardwareMalfunctionError        = "TargetHardwareMalfunctionError"
	TargetBridgeHardwareMalfunctionError  = "TargetBridgeHardwareMalfunctionError"
	UnwillingToSetValueError              = "UnwillingToSetValueError"
	RateLimitExceededError                = "RateLimitExceededError"
	NotSupportedInCurrentModeError        = "NotSupportedInCurrentModeError"
	ExpiredAccessTokenError               = "ExpiredAccessTokenError"
	InvalidAccessTokenError               = "InvalidAccessTokenError"
	UnsupportedTargetError                = "UnsupportedTargetError"
	UnsupportedOperationError             = "UnsupportedOperationError"
	UnsupportedTargetSettingError         = "UnsupportedTargetSettingError"
	UnexpectedInformationReceivedError    = "UnexpectedInformationReceivedError"
)

// Header keys
const (
	HeaderNamespace      = "namespace"
	HeaderName           = "name"
	HeaderPayloadVersion = "payloadVersion"
	HeaderMessageID      = "messageId"
)

const (
	requestSuffix      = "Request"
	responseSuffix     = "Response"
	confirmationSuffix = "Confirmation"
)

// ConfirmationName derives the success response name of a control request,
// e.g. TurnOnRequest becomes TurnOnConfirmation.
func ConfirmationName(requestName string) string {
	return strings.Replace(requestName, requestSuffix, confirmationSuffix, 1)
}

// ResponseName derives the response name of a discovery or system request,
// e.g. HealthCheckRequest becomes HealthCheckResponse.
func ResponseName(requestName string) string {
	return strings.Replace(requestName, requestSuffix, responseSuffix, 1)
}
