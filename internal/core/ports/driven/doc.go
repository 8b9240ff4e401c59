// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for a search field to function:
//
//   - RecordFetcher: Issues the remote search request (HTTP admin API)
//   - Clock: Time source and timers for debounce, blur grace and cache TTL
//   - View: Rendering surface a field is attached to
//
// # Optional Interfaces
//
// These can be nil - the field degrades gracefully:
//
//   - ResultCache: Per-field memoization. Without it every search hits the network.
//   - ErrorSink: The owning form's error map. Without it errors are only shown on the view.
//   - SettingsStore: File configuration. Without it built-in defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
