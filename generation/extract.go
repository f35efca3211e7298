package generation

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractJSON locates the structured JSON payload inside raw model output.
// Models wrap payloads in markdown fences or surrounding prose; this peels
// both off. Failure to locate any valid payload is an extraction format
// error (retryable).
func ExtractJSON(raw string) (string, error) {
	text := stripFences(strings.TrimSpace(raw))
	if text == "" {
		return "", NewExtractionError("empty model output")
	}

	if (strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[")) && gjson.Valid(text) {
		return text, nil
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", NewExtractionError("no structured payload in model output")
	}
	closer := "}"
	if text[start] == '[' {
		closer = "]"
	}
	// Shrink from the tail until the remainder parses; handles trailing prose.
	for end := strings.LastIndex(text, closer); end > start; end = strings.LastIndex(text[:end], closer) {
		candidate := text[start : end+1]
		if gjson.Valid(candidate) {
			return candidate, nil
		}
	}
	return "", NewExtractionError("no structured payload in model output")
}

// DecodeJSON extracts the payload from raw output and unmarshals it into v.
// Extraction failures and malformed payloads surface as format errors.
func DecodeJSON(raw string, v any) error {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return NewDecodeError(err)
	}
	return nil
}

// stripFences removes a single wrapping markdown code fence, with or without
// a language tag.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	rest := strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	if idx := strings.LastIndex(rest, "```"); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}
