package generation

import "context"

// OutcomeKind tags the result of a single generation attempt.
type OutcomeKind int

const (
	// OutcomeSuccess carries a completed generation.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeRetryableFailure carries a failure safe to resolve by reissuing
	// the same call unchanged.
	OutcomeRetryableFailure
	// OutcomeFatalFailure carries a failure that must propagate unchanged.
	OutcomeFatalFailure
)

// String returns the stable name of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryableFailure:
		return "retryable_failure"
	case OutcomeFatalFailure:
		return "fatal_failure"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one generation attempt. Drivers branch on
// Kind instead of pattern-matching error types after the fact. Generation is
// set only on success; Err only on failure.
type Outcome struct {
	Kind       OutcomeKind
	Generation *Generation
	Err        error
}

// Attempt issues a single generation call and classifies its result. The
// failure classification is scoped to req.SchemaName. No retry is performed
// here; the driver owns looping and backoff.
func Attempt(ctx context.Context, g Generator, req Request) Outcome {
	gen, err := g.Generate(ctx, req)
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Generation: gen}
	}
	if ClassifyFailure(err, req.SchemaName) == Retryable {
		return Outcome{Kind: OutcomeRetryableFailure, Err: err}
	}
	return Outcome{Kind: OutcomeFatalFailure, Err: err}
}
