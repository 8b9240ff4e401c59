package domain

import "errors"

// Domain errors represent failures the search field recovers from locally.
// None of them is ever fatal to the hosting page.
var (
	// ErrNetworkFailure indicates a transport error or a non-success HTTP status.
	ErrNetworkFailure = errors.New("network failure")

	// ErrResponseShape indicates the response body had no records array.
	// It is handled exactly like ErrNetworkFailure.
	ErrResponseShape = errors.New("response shape mismatch")

	// ErrViewRequired indicates a field was attached without a rendering surface.
	// The field stays inert afterwards.
	ErrViewRequired = errors.New("view is required")

	// ErrFieldDestroyed indicates an operation on a destroyed field.
	ErrFieldDestroyed = errors.New("field destroyed")

	// ErrNoSource indicates no remote endpoint is configured.
	ErrNoSource = errors.New("no search source configured")

	// ErrQueryTooShort indicates the query is below the effective minimum length.
	ErrQueryTooShort = errors.New("query too short")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnknownField indicates a field name missing from configuration.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidRule indicates a validation rule that cannot be built.
	ErrInvalidRule = errors.New("invalid validation rule")
)
