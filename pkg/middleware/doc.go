// Package middleware wraps skill handlers so every response they produce is
// checked before it leaves the process.
//
// Validate checks the caller's execution budget, runs the wrapped handler
// and validates its response against the request. What happens to an
// invalid response depends on the Policy: FailInvocation returns the
// violation instead of the response, BestEffort logs it and returns the
// response anyway.
//
// Example usage:
//
//	handler := middleware.Validate(skill.Handle,
//		middleware.WithLogger(logger),
//		middleware.WithPolicy(middleware.BestEffort),
//	)
//
//	resp, err := handler(ctx, request)
//
// Middleware values compose with Chain:
//
//	handler := middleware.Chain(
//		middleware.Recover(logger),
//		middleware.Validation(middleware.WithLogger(logger)),
//	)(skill.Handle)
package middleware
