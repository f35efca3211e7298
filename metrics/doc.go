// Package metrics defines the Recorder boundary through which per-call
// generation metadata (generation.Info tagged with a generation.Type) is
// handed to an observability collaborator.
//
// Recording is purely additive: recorders default absent token counts to
// zero and perform no validation. Implementations included here:
//
//   - NoOpRecorder for silent operation
//   - LogRecorder emitting structured log entries
//   - PrometheusRecorder exporting attempt counts, latency histograms and
//     token counters
package metrics
