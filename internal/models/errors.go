package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrMissingDestination is returned when a generation request is built
	// from preferences without a single destination. Callers are expected
	// to reject that case before reaching the builder.
	ErrMissingDestination = errors.New("at least one destination is required")

	// ErrMissingCredential is returned when trip generation is attempted
	// without a configured generative backend credential. Its absence is a
	// warning at startup and a hard failure only at generation time.
	ErrMissingCredential = errors.New("generative backend credential is not configured")

	// ErrTransportFailure wraps network or backend unavailability during
	// generation. Fatal to the attempt; no automatic retry is performed.
	ErrTransportFailure = errors.New("generative backend is unavailable")

	// ErrSuperseded is returned to a caller whose generation completed
	// after a newer submission had already begun. The stale result is
	// discarded so it cannot clobber the fresher plan.
	ErrSuperseded = errors.New("generation superseded by a newer request")

	// ErrNoPlan is returned when a reader asks for the current plan before
	// any generation has succeeded, or after an explicit reset.
	ErrNoPlan = errors.New("no trip plan is currently loaded")

	// ErrInvalidAccessKey is returned when a token request carries a key
	// that does not match the configured service access key.
	ErrInvalidAccessKey = errors.New("invalid access key")

	// ErrEmailUnavailable is returned when itinerary sharing is requested
	// but no email sender is configured.
	ErrEmailUnavailable = errors.New("email sharing is not configured")
)

// MalformedResponseError reports backend output that failed the structural
// parse, i.e. it was not a JSON document at all.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed backend response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaViolationError reports backend output that parsed but does not
// conform to the plan schema. Path names the offending field, e.g.
// "days[2].activities[0].coordinates.lat".
type SchemaViolationError struct {
	Path   string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation at %q: %s", e.Path, e.Reason)
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
