// Package testutil contains fluent builders for constructing journey graph
// records and raw classification payloads in tests. Internal only; not part
// of the public API surface.
package testutil
