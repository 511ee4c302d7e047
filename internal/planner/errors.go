package planner

import "errors"

var (
	// ErrUnavailable indicates the planning service is unreachable.
	ErrUnavailable = errors.New("planning service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("planning request timed out")

	// ErrBadResponse indicates the service answered with a body that could
	// not be decoded into the expected shape.
	ErrBadResponse = errors.New("invalid planning service response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("planning retry attempts exhausted")
)
