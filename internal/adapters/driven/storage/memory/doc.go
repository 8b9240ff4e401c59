// Package memory provides in-memory implementations of driven ports:
// the per-field result cache, the form error map, and a settings store for tests.
package memory
