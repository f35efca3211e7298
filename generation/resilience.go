package generation

import "errors"

// Disposition is the retry/fatal decision for a failed generation attempt.
type Disposition int

const (
	// Fatal failures propagate unchanged; the driver must not reissue the call.
	Fatal Disposition = iota
	// Retryable failures are attributable to malformed model output and are
	// safe to resolve by reissuing the same call unchanged.
	Retryable
)

// String returns the stable name of the disposition.
func (d Disposition) String() string {
	if d == Retryable {
		return "retryable"
	}
	return "fatal"
}

// ClassifyFailure decides whether a failed generation attempt may be safely
// retried. It is pure and side-effect free; the same rules apply identically
// regardless of attempt number.
//
// Retryable: decode and extraction format failures always; schema-validation
// failures when the violated schema matches schemaName, or — deliberately
// broad — whenever schemaName is empty. Everything else (network, auth,
// quota, validation against a different schema) is fatal and must propagate
// to the caller unchanged.
func ClassifyFailure(err error, schemaName string) Disposition {
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		return Fatal
	}
	switch formatErr.Kind {
	case FormatDecode, FormatExtraction:
		return Retryable
	case FormatSchemaValidation:
		if schemaName == "" || formatErr.SchemaName == schemaName {
			return Retryable
		}
		return Fatal
	default:
		return Fatal
	}
}
