// Package clock provides driven.Clock implementations: the wall clock and a
// manually advanced fake for deterministic tests of debounce, blur and TTL timing.
package clock

import (
	"time"

	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clock = System{}

// System is the wall clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc.
func (System) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
