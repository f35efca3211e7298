package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Nunchakus888/parlant-sub001/generation"
	"github.com/Nunchakus888/parlant-sub001/guideline"
	"github.com/Nunchakus888/parlant-sub001/internal/util"
	"github.com/Nunchakus888/parlant-sub001/journey"
	"github.com/Nunchakus888/parlant-sub001/logging"
	"github.com/Nunchakus888/parlant-sub001/metrics"
)

// propositionSchema is derived once from the Proposition struct and used to
// pre-validate decoded payloads before typed decoding.
var propositionSchema = util.CreateSchema(Proposition{})

// Options configure a Classifier.
type Options struct {
	Logger   logging.Logger
	Recorder metrics.Recorder
}

// Classifier turns a normalized guideline into a validated journey structure
// proposition. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	generator generation.Generator
	logger    logging.Logger
	recorder  metrics.Recorder
}

// Result is a validated classification: the proposition as returned by the
// model plus, for journey candidates, the structurally validated graph.
type Result struct {
	Proposition Proposition
	Graph       *journey.Graph
	Generation  *generation.Generation
}

// New creates a Classifier around a generator. Logger and recorder default
// to no-op implementations.
func New(g generation.Generator, optFns ...func(o *Options)) *Classifier {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		Recorder: metrics.NoOpRecorder{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoOpRecorder{}
	}
	return &Classifier{generator: g, logger: opts.Logger, recorder: opts.Recorder}
}

// Classify issues the classification call and validates the proposition.
//
// Malformed output — extraction, decode, schema-shape, confidence range,
// candidate/graph coupling and graph structure violations — is returned as a
// *generation.FormatError tagged with SchemaName, signalling the driver to
// re-issue the call. Generator errors pass through unchanged. One
// generation.Info is recorded per attempt, successful or not.
func (c *Classifier) Classify(ctx context.Context, rep guideline.Representation) (*Result, error) {
	prompt, err := renderPrompt(rep)
	if err != nil {
		return nil, err
	}

	req := generation.Request{
		Type:         generation.TypeJourneyStructureClassification,
		SchemaName:   SchemaName,
		Instructions: classificationInstructions,
		Prompt:       prompt,
	}

	start := time.Now()
	gen, err := c.generator.Generate(ctx, req)
	if err != nil {
		info := generation.Info{
			SchemaName: SchemaName,
			Model:      c.generator.Info().Model,
			Duration:   time.Since(start),
		}
		c.recorder.Record(ctx, req.Type, info)
		c.logger.Error("journey classification generation failed", "error", err)
		return nil, err
	}
	c.recorder.Record(ctx, req.Type, gen.Info)

	prop, err := c.decodeProposition(gen.Raw)
	if err != nil {
		c.logger.Warn("journey classification returned malformed output",
			"generation_id", gen.ID, "error", err)
		return nil, err
	}

	result := &Result{Proposition: *prop, Generation: gen}

	if prop.JourneyGraph != nil {
		graph, err := journey.FromCanonical(prop.JourneyGraph)
		if err != nil {
			c.logger.Warn("proposed journey graph failed validation",
				"generation_id", gen.ID, "error", err)
			return nil, asFormatError(err)
		}
		result.Graph = graph
	}

	c.logger.Info("journey classification completed",
		"generation_id", gen.ID,
		"journey_candidate", prop.IsJourneyCandidate,
		"confidence", prop.Confidence,
	)
	return result, nil
}

// decodeProposition extracts, shape-validates and decodes the raw model
// output, then enforces the proposition invariants.
func (c *Classifier) decodeProposition(raw string) (*Proposition, error) {
	payload, err := generation.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var shape map[string]any
	if err := json.Unmarshal([]byte(payload), &shape); err != nil {
		return nil, generation.NewDecodeError(err)
	}
	if err := util.ValidatePayload(shape, propositionSchema); err != nil {
		return nil, generation.NewSchemaValidationError(SchemaName, err)
	}

	var prop Proposition
	if err := json.Unmarshal([]byte(payload), &prop); err != nil {
		return nil, generation.NewDecodeError(err)
	}

	if prop.Confidence < 0 || prop.Confidence > 1 {
		return nil, asFormatError(&journey.StructureError{
			Kind:   journey.KindConfidenceOutOfRange,
			Detail: "confidence must lie in [0, 1]",
		})
	}
	if prop.IsJourneyCandidate != (prop.JourneyGraph != nil) {
		return nil, asFormatError(&journey.StructureError{
			Kind:   journey.KindInvalidProposition,
			Detail: "journey_graph must be present exactly when is_journey_candidate is true",
		})
	}
	return &prop, nil
}

// asFormatError wraps structural violations as schema-validation format
// errors so the resilience classifier treats them as retry signals. Errors
// that are not structure errors pass through unchanged.
func asFormatError(err error) error {
	var structErr *journey.StructureError
	if errors.As(err, &structErr) {
		return generation.NewSchemaValidationError(SchemaName, err)
	}
	return err
}
