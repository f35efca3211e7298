package util

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldSpec describes one expected top-level field of a decoded JSON object.
type FieldSpec struct {
	Type     string
	Required bool
}

// Schema maps field names to their expected shape. It covers the top level
// of a payload only; nested objects are decoded and validated by their own
// typed unmarshaling.
type Schema map[string]FieldSpec

// ValidationError reports a payload field that violates the expected schema.
type ValidationError struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// CreateSchema derives a Schema from a struct's exported fields using
// reflection. Pointer fields and fields tagged omitempty are optional;
// everything else is required.
func CreateSchema(structType any) Schema {
	t := reflect.TypeOf(structType)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	schema := make(Schema)
	if t.Kind() != reflect.Struct {
		return schema
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		optional := field.Type.Kind() == reflect.Ptr
		if tag := field.Tag.Get("json"); tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					optional = true
				}
			}
		}

		schema[name] = FieldSpec{
			Type:     jsonType(field.Type),
			Required: !optional,
		}
	}
	return schema
}

// ValidatePayload checks a decoded JSON object against a Schema: required
// fields must be present and known fields must carry a value of the expected
// kind. Fields the schema does not name are allowed.
func ValidatePayload(payload map[string]any, schema Schema) error {
	for name, spec := range schema {
		value, present := payload[name]
		if !present {
			if spec.Required {
				return &ValidationError{Field: name, Message: "required field is missing"}
			}
			continue
		}
		if !matchesType(value, spec.Type) {
			return &ValidationError{
				Field:   name,
				Value:   value,
				Message: fmt.Sprintf("expected type %s, got %T", spec.Type, value),
			}
		}
	}
	return nil
}

// jsonType returns the JSON value kind a Go type decodes from.
func jsonType(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

// matchesType checks a decoded JSON value against an expected kind. A null
// value passes: absence and explicit null are treated alike, and required
// presence is handled separately.
func matchesType(value any, kind string) bool {
	if value == nil {
		return true
	}
	switch kind {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "number":
		_, ok := value.(float64) // encoding/json decodes all numbers as float64
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	default:
		return true
	}
}
