package tui

import "errors"

// ErrMissingFieldRegistry is returned when the field registry is not provided.
var ErrMissingFieldRegistry = errors.New("tui: field registry is required")

// ErrNoFields is returned when the registry holds no fields.
var ErrNoFields = errors.New("tui: no fields configured")
