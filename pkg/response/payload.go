package response

// Appliance describes a device reported in a discovery response.
type Appliance struct {
	ID                  string
	ManufacturerName    string
	ModelName           string
	Version             string
	FriendlyName        string
	FriendlyDescription string
	IsReachable         bool
	Actions             []string
	Details             map[string]any
}

// Map returns the wire form of the appliance.
func (a Appliance) Map() map[string]any {
	actions := make([]any, len(a.Actions))
	for i, action := range a.Actions {
		actions[i] = action
	}
	details := a.Details
	if details == nil {
		details = map[string]any{}
	}
	return map[string]any{
		"applianceId":                a.ID,
		"manufacturerName":           a.ManufacturerName,
		"modelName":                  a.ModelName,
		"version":                    a.Version,
		"friendlyName":               a.FriendlyName,
		"friendlyDescription":        a.FriendlyDescription,
		"isReachable":                a.IsReachable,
		"actions":                    actions,
		"additionalApplianceDetails": details,
	}
}

// DiscoveryPayload returns the payload listing appliances.
func DiscoveryPayload(appliances ...Appliance) map[string]any {
	list := make([]any, len(appliances))
	for i, a := range appliances {
		list[i] = a.Map()
	}
	return map[string]any{"discoveredAppliances": list}
}

// TemperaturePayload returns a thermostat confirmation payload.
func TemperaturePayload(target float64, mode string, previousTarget float64, previousMode string) map[string]any {
	return map[string]any{
		"targetTemperature": map[string]any{"value": target},
		"temperatureMode":   map[string]any{"value": mode},
		"previousState": map[string]any{
			"targetTemperature": map[string]any{"value": previousTarget},
			"temperatureMode":   map[string]any{"value": previousMode},
		},
	}
}

// HealthPayload returns a health check payload.
func HealthPayload(healthy bool, description string) map[string]any {
	return map[string]any{
		"description": description,
		"isHealthy":   healthy,
	}
}

// ValueOutOfRangePayload returns the payload of a ValueOutOfRangeError.
func ValueOutOfRangePayload(minimum, maximum float64) map[string]any {
	return map[string]any{
		"minimumValue": minimum,
		"maximumValue": maximum,
	}
}

// RateLimitPayload returns the payload of a RateLimitExceededError.
func RateLimitPayload(limit int, unit string) map[string]any {
	return map[string]any{
		"rateLimit": limit,
		"timeUnit":  unit,
	}
}

// UnwillingToSetValuePayload returns the payload of an
// UnwillingToSetValueError.
func UnwillingToSetValuePayload(code, description string) map[string]any {
	return map[string]any{
		"errorInfo": map[string]any{
			"code":        code,
			"description": description,
		},
	}
}
