// Package parlant provides a high-level façade over the journey
// classification core: guideline normalization, journey structure
// classification and generation observability. Most applications interact
// with this package by:
//  1. Creating a Core via New() with a concrete generation.Generator
//     (openai, anthropic, or a mock for tests)
//  2. Normalizing guidelines and classifying them into journey propositions
//  3. Driving retries from the tagged outcome of AttemptClassification
//
// The façade delegates validation to the classifier and journey packages
// while keeping setup ergonomics concise. Defaults are safe for local
// development and testing; production deployments typically supply a
// structured logger and a Prometheus recorder.
package parlant

import (
	"context"
	"errors"

	"github.com/Nunchakus888/parlant-sub001/classifier"
	"github.com/Nunchakus888/parlant-sub001/generation"
	"github.com/Nunchakus888/parlant-sub001/guideline"
	"github.com/Nunchakus888/parlant-sub001/logging"
	"github.com/Nunchakus888/parlant-sub001/metrics"
)

// ErrNoGenerator is returned when classification is requested without a
// configured generation.Generator.
var ErrNoGenerator = errors.New("no generator configured")

// Options configures the Core instance.
type Options struct {
	// Generator is the boundary to the language-model collaborator. Required
	// for classification; normalization works without it.
	Generator generation.Generator

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// Recorder receives one generation.Info per model call (defaults to NoOp).
	Recorder metrics.Recorder
}

// Core is the high-level façade aggregating the normalizer and classifier.
type Core struct {
	opts       Options
	classifier *classifier.Classifier
}

// New creates a Core with optional overrides.
func New(optFns ...func(o *Options)) *Core {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		Recorder: metrics.NoOpRecorder{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Core{opts: opts}
	if opts.Generator != nil {
		c.classifier = classifier.New(opts.Generator, func(o *classifier.Options) {
			o.Logger = opts.Logger
			o.Recorder = opts.Recorder
		})
	}
	return c
}

// NormalizeGuideline builds the escaped internal representation of a guideline.
func (c *Core) NormalizeGuideline(g guideline.Guideline) guideline.Representation {
	return guideline.Normalize(g)
}

// ClassifyGuideline normalizes a guideline and classifies its journey
// structure. Errors follow the classifier contract: format-class failures
// are retryable, everything else propagates unchanged.
func (c *Core) ClassifyGuideline(ctx context.Context, g guideline.Guideline) (*classifier.Result, error) {
	if c.classifier == nil {
		return nil, ErrNoGenerator
	}
	return c.classifier.Classify(ctx, guideline.Normalize(g))
}

// AttemptClassification wraps ClassifyGuideline in a tagged outcome so retry
// drivers can branch on the classification kind instead of inspecting error
// types. No retry is performed here.
func (c *Core) AttemptClassification(ctx context.Context, g guideline.Guideline) (*classifier.Result, generation.OutcomeKind, error) {
	result, err := c.ClassifyGuideline(ctx, g)
	if err == nil {
		return result, generation.OutcomeSuccess, nil
	}
	if generation.ClassifyFailure(err, classifier.SchemaName) == generation.Retryable {
		return nil, generation.OutcomeRetryableFailure, err
	}
	return nil, generation.OutcomeFatalFailure, err
}
