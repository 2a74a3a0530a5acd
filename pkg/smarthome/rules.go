package smarthome

// Set is a read-only collection of wire names.
type Set struct {
	names   []string
	members map[string]struct{}
}

func newSet(groups ...[]string) Set {
	s := Set{members: make(map[string]struct{})}
	for _, group := range groups {
		for _, name := range group {
			if _, dup := s.members[name]; dup {
				continue
			}
			s.members[name] = struct{}{}
			s.names = append(s.names, name)
		}
	}
	return s
}

// Contains reports whether name is a member of the set.
func (s Set) Contains(name string) bool {
	_, ok := s.members[name]
	return ok
}

// Names returns the members in declaration order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.names)
}

var (
	discoveryRequestNames = []string{DiscoverAppliancesRequest}
	controlRequestNames   = []string{
		TurnOnRequest,
		TurnOffRequest,
		SetTargetTemperatureRequest,
		IncrementTargetTemperatureRequest,
		DecrementTargetTemperatureRequest,
		SetPercentageRequest,
		IncrementPercentageRequest,
		DecrementPercentageRequest,
	}
	systemRequestNames = []string{HealthCheckRequest}

	discoveryResponseNames   = []string{DiscoverAppliancesResponse}
	controlConfirmationNames = []string{
		TurnOnConfirmation,
		TurnOffConfirmation,
		SetTargetTemperatureConfirmation,
		IncrementTargetTemperatureConfirmation,
		DecrementTargetTemperatureConfirmation,
		SetPercentageConfirmation,
		IncrementPercentageConfirmation,
		DecrementPercentageConfirmation,
	}
	controlErrorNames = []string{
		ValueOutOfRangeError,
		TargetOfflineError,
		BridgeOfflineError,
		NoSuchTargetError,
		DriverInternalError,
		DependentServiceUnavailableError,
		TargetConnectivityUnstableError,
		TargetBridgeConnectivityUnstableError,
		TargetFirmwareOutdatedError,
		TargetBridgeFirmwareOutdatedError,
		TargetHardwareMalfunctionError,
		TargetBridgeHardwareMalfunctionError,
		UnwillingToSetValueError,
		RateLimitExceededError,
		NotSupportedInCurrentModeError,
		ExpiredAccessTokenError,
		InvalidAccessTokenError,
		UnsupportedTargetError,
		UnsupportedOperationError,
		UnsupportedTargetSettingError,
		UnexpectedInformationReceivedError,
	}
	systemResponseNames = []string{HealthCheckResponse}

	temperatureConfirmationNames = []string{
		SetTargetTemperatureConfirmation,
		IncrementTargetTemperatureConfirmation,
		DecrementTargetTemperatureConfirmation,
	}
)

// Rule tables. They are built once at package initialisation and never
// modified afterwards.
var (
	DiscoveryRequests = newSet(discoveryRequestNames)
	ControlRequests   = newSet(controlRequestNames)
	SystemRequests    = newSet(systemRequestNames)
	Requests          = newSet(discoveryRequestNames, controlRequestNames, systemRequestNames)

	DiscoveryResponses   = newSet(discoveryResponseNames)
	ControlConfirmations = newSet(controlConfirmationNames)
	ControlErrors        = newSet(controlErrorNames)
	ControlResponses     = newSet(controlConfirmationNames, controlErrorNames)
	SystemResponses      = newSet(systemResponseNames)
	Responses            = newSet(discoveryResponseNames, controlConfirmationNames, controlErrorNames, systemResponseNames)

	TemperatureConfirmations = newSet(temperatureConfirmationNames)

	// NonEmptyPayloadResponses lists the control responses whose payload
	// must carry data. Every other control response has an empty payload.
	NonEmptyPayloadResponses = newSet(temperatureConfirmationNames, []string{
		ValueOutOfRangeError,
		DependentServiceUnavailableError,
		TargetFirmwareOutdatedError,
		TargetBridgeFirmwareOutdatedError,
		UnwillingToSetValueError,
		RateLimitExceededError,
		NotSupportedInCurrentModeError,
		UnexpectedInformationReceivedError,
	})

	Actions = newSet([]string{
		"setTargetTemperature",
		"incrementTargetTemperature",
		"decrementTargetTemperature",
		"setPercentage",
		"incrementPercentage",
		"decrementPercentage",
		"turnOff",
		"turnOn",
	})

	TemperatureModes = newSet([]string{"HEAT", "COOL", "AUTO"})
	DeviceModes      = newSet([]string{"HEAT", "COOL", "AUTO", "AWAY", "OTHER"})
	ErrorInfoCodes   = newSet([]string{"ThermostatIsOff"})
	TimeUnits        = newSet([]string{"MINUTE", "HOUR", "DAY"})

	RequiredHeaderKeys    = newSet([]string{HeaderNamespace, HeaderName, HeaderPayloadVersion, HeaderMessageID})
	RequiredResponseKeys  = newSet([]string{"header", "payload"})
	RequiredApplianceKeys = newSet([]string{
		"applianceId",
		"manufacturerName",
		"modelName",
		"version",
		"friendlyName",
		"friendlyDescription",
		"isReachable",
		"actions",
		"additionalApplianceDetails",
	})
)

// Limits
const (
	MaxDiscoveredAppliances   = 300
	MaxApplianceIDLength      = 256
	MaxApplianceFieldLength   = 128
	MaxAdditionalDetailsBytes = 5000
	MaxMessageIDLength        = 128
)
