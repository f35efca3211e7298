package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Nunchakus888/parlant-sub001/generation"
)

// PrometheusRecorder exports generation metadata as Prometheus metrics:
// attempt counts by type/model/schema, call latency histograms and token
// counters split by direction.
type PrometheusRecorder struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
	tokens   *prometheus.CounterVec
}

// NewPrometheusRecorder builds a recorder and registers its collectors with
// reg. Pass prometheus.DefaultRegisterer to use the process-wide registry.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parlant_generation_attempts_total",
				Help: "Total number of generation attempts",
			},
			[]string{"generation_type", "model", "schema"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "parlant_generation_duration_seconds",
				Help:    "Latency of generation calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"generation_type", "model"},
		),
		tokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parlant_generation_tokens_total",
				Help: "Token usage of generation calls",
			},
			[]string{"generation_type", "model", "direction"}, // input | output
		),
	}
	reg.MustRegister(r.attempts, r.duration, r.tokens)
	return r
}

// Record implements Recorder.
func (r *PrometheusRecorder) Record(_ context.Context, typ generation.Type, info generation.Info) {
	t := typ.String()
	r.attempts.WithLabelValues(t, info.Model, info.SchemaName).Inc()
	r.duration.WithLabelValues(t, info.Model).Observe(info.Duration.Seconds())
	if info.Usage != nil {
		r.tokens.WithLabelValues(t, info.Model, "input").Add(float64(info.Usage.InputTokens))
		r.tokens.WithLabelValues(t, info.Model, "output").Add(float64(info.Usage.OutputTokens))
	}
}
