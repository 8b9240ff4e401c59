// Package services implements the driving port interfaces.
// Services contain the search-field engine and orchestrate
// calls to driven ports (adapters).
//
// Timers come from a driven.Clock, so every service can be driven
// deterministically in tests.
package services
