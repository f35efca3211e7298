package generation

import "fmt"

// FormatErrorKind enumerates the malformed-output failure classes.
type FormatErrorKind int

const (
	// FormatDecode is a low-level decode failure of the model's raw textual
	// output (malformed structured payload).
	FormatDecode FormatErrorKind = iota
	// FormatExtraction means no structured payload could be located in the
	// output at all.
	FormatExtraction
	// FormatSchemaValidation is a validation failure of a decoded payload
	// against a named schema.
	FormatSchemaValidation
)

// String returns the stable name of the kind.
func (k FormatErrorKind) String() string {
	switch k {
	case FormatDecode:
		return "decode"
	case FormatExtraction:
		return "extraction"
	case FormatSchemaValidation:
		return "schema_validation"
	default:
		return "unknown"
	}
}

// FormatError marks a failure attributable to malformed model output. Such
// failures are candidates for resolving by reissuing the same call unchanged;
// everything else is fatal and propagates untouched.
//
// SchemaName is set only for schema-validation failures and names the schema
// that was violated.
type FormatError struct {
	Kind       FormatErrorKind
	SchemaName string
	Err        error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Kind == FormatSchemaValidation && e.SchemaName != "" {
		return fmt.Sprintf("generation format error (%s, schema %s): %v", e.Kind, e.SchemaName, e.Err)
	}
	return fmt.Sprintf("generation format error (%s): %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *FormatError) Unwrap() error { return e.Err }

// NewDecodeError wraps a payload decode failure.
func NewDecodeError(err error) *FormatError {
	return &FormatError{Kind: FormatDecode, Err: err}
}

// NewExtractionError reports that no structured payload was found in the output.
func NewExtractionError(detail string) *FormatError {
	return &FormatError{Kind: FormatExtraction, Err: fmt.Errorf("%s", detail)}
}

// NewSchemaValidationError wraps a validation failure against the named schema.
func NewSchemaValidationError(schemaName string, err error) *FormatError {
	return &FormatError{Kind: FormatSchemaValidation, SchemaName: schemaName, Err: err}
}
