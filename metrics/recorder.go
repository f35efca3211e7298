package metrics

import (
	"context"

	"github.com/Nunchakus888/parlant-sub001/generation"
	"github.com/Nunchakus888/parlant-sub001/logging"
)

// Recorder consumes one generation.Info per completed generation attempt,
// successful or not. Implementations must be safe for concurrent use.
type Recorder interface {
	Record(ctx context.Context, typ generation.Type, info generation.Info)
}

// NoOpRecorder discards all records. Useful for tests and minimal setups.
type NoOpRecorder struct{}

// Record implements Recorder.
func (NoOpRecorder) Record(context.Context, generation.Type, generation.Info) {}

// LogRecorder emits each record as a structured log entry.
type LogRecorder struct {
	logger logging.Logger
}

// NewLogRecorder creates a LogRecorder; a nil logger falls back to NoOpLogger.
func NewLogRecorder(logger logging.Logger) *LogRecorder {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &LogRecorder{logger: logger}
}

// Record implements Recorder.
func (r *LogRecorder) Record(_ context.Context, typ generation.Type, info generation.Info) {
	var input, output, total int64
	if info.Usage != nil {
		input = info.Usage.InputTokens
		output = info.Usage.OutputTokens
		total = info.Usage.TotalTokens
	}
	r.logger.Info("generation recorded",
		"generation_type", typ.String(),
		"schema", info.SchemaName,
		"model", info.Model,
		"duration", info.Duration,
		"input_tokens", input,
		"output_tokens", output,
		"total_tokens", total,
	)
}
