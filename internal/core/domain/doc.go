// Package domain defines the core entities of the search field engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchItem: A normalised result shown in the dropdown
//   - RawRecord: One untyped record returned by the admin API
//   - QueryState: The text being searched and its minimum length
//   - DropdownState: Open/closed state, items and highlighted row
//   - Rule, ValidationState: The validation pipeline vocabulary
//   - FieldOptions, Settings: Per-field and file configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
