package validation

import (
	"context"
	"time"
)

// MaxHandlerBudget is the longest execution budget a handler may run with.
// The platform gives up on a skill after 8 seconds; a handler that times out
// first surfaces the timeout in its own logs.
const MaxHandlerBudget = 7 * time.Second

// ValidateDeadline fails when ctx carries a deadline further away than
// MaxHandlerBudget. A context without a deadline passes.
func ValidateDeadline(ctx context.Context) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	remaining := time.Until(deadline)
	if remaining > MaxHandlerBudget {
		return newViolation(SubjectLambda, "timeout must be 7 seconds or less", map[string]any{
			"remainingMillis": remaining.Milliseconds(),
		})
	}
	return nil
}
