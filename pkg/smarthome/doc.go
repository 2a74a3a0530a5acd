// Package smarthome defines the wire vocabulary of the Smart Home Skill API,
// payload version 2.
//
// Every request travels on one of three namespaces (Discovery, Control and
// System) and carries a request name from a fixed list. Responses are named
// after the request: discovery and system requests answer with the matching
// "...Response" name, control requests answer with the matching
// "...Confirmation" name or one of the control error names.
//
// The rule tables (Requests, ControlErrors, Actions, TemperatureModes, ...)
// are package-level values built once at initialisation. They expose only
// read accessors, so they can be shared by any number of goroutines.
//
//	if smarthome.ControlErrors.Contains(name) {
//		// error response
//	} else if name != smarthome.ConfirmationName(requestName) {
//		// wrong confirmation for this request
//	}
package smarthome
