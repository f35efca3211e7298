package guideline

import "strings"

// braceEscaper doubles template-control braces. Shared and stateless, safe
// for concurrent use.
var braceEscaper = strings.NewReplacer("{", "{{", "}", "}}")

// EscapeBraces doubles every literal '{' and '}' in s so the text can be
// embedded into a prompt template verbatim. Applying it twice double-escapes;
// callers own the once-only discipline.
func EscapeBraces(s string) string {
	return braceEscaper.Replace(s)
}

// Normalize builds the internal representation of a guideline.
//
// Override resolution: a non-empty metadata value under
// MetadataAgentIntentionCondition replaces Condition, and a non-empty value
// under MetadataInternalAction replaces Action. Missing fields resolve to the
// empty string, never to an absent value, so downstream template substitution
// is always well-defined. Both fields are brace-escaped exactly once.
func Normalize(g Guideline) Representation {
	condition := g.Condition
	if v := metadataOverride(g.Metadata, MetadataAgentIntentionCondition); v != "" {
		condition = v
	}

	action := g.Action
	if v := metadataOverride(g.Metadata, MetadataInternalAction); v != "" {
		action = v
	}

	return Representation{
		Condition: EscapeBraces(condition),
		Action:    EscapeBraces(action),
	}
}

// metadataOverride returns the string value stored under key, or "" when the
// key is absent, empty or not a string.
func metadataOverride(metadata map[string]any, key string) string {
	if metadata == nil {
		return ""
	}
	v, ok := metadata[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
