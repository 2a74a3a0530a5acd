// Package validation checks Smart Home Skill API responses before they are
// returned to the voice platform.
//
// A malformed response rejected by the platform surfaces to the end user as
// an opaque "device is not responding" failure. Validating inside the
// producing service turns the same mistake into an error the service owner
// can see in their own logs.
//
// # Rules
//
// Validate classifies the request by its header namespace and applies the
// matching rule set:
//
//   - Discovery: DiscoverAppliancesResponse with at most 300 discovered
//     appliances, each carrying the nine required appliance fields with their
//     length, character set and type constraints.
//   - Control: the derived Confirmation name or one of the control error
//     names, an empty or non-empty payload depending on that name, the
//     thermostat payload for temperature confirmations and the per-error
//     payload shapes.
//   - System: HealthCheckResponse with a non-empty description and a boolean
//     isHealthy.
//
// All branches check the response header: the four required keys,
// payloadVersion "2" and the messageId format.
//
// # Errors
//
// Validation is fail-fast. The first violated rule is returned as a
// *ValidationError naming the response (or "Request" for request problems),
// the offending field and the data that failed:
//
//	if err := validation.Validate(request, response); err != nil {
//		var violation *validation.ValidationError
//		if errors.As(err, &violation) {
//			log.WithField("subject", violation.Subject).Error(violation.Message)
//		}
//		return nil, err
//	}
//
// Every violation wraps core.ErrInvalidResponse, or core.ErrInvalidRequest
// when the request itself is malformed. What to do with the error (fail the
// invocation or log and continue) is up to the caller; see the middleware
// package.
//
// # Concurrency
//
// The rule tables are read-only package values and a Validator carries no
// per-call state, so Validate may be called from any number of goroutines.
package validation
