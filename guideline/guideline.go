package guideline

// Metadata keys that override the guideline's surface text during
// normalization. Both are optional; empty values are ignored.
const (
	// MetadataAgentIntentionCondition replaces Condition when present and non-empty.
	MetadataAgentIntentionCondition = "agent_intention_condition"
	// MetadataInternalAction replaces Action when present and non-empty.
	MetadataInternalAction = "internal_action"
)

// Guideline is the external condition/action record owned by the guideline
// store. This core only reads it; it is never mutated or persisted here.
type Guideline struct {
	ID        string         `json:"id"`
	Condition string         `json:"condition"`
	Action    string         `json:"action,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Representation is the ephemeral internal form of a guideline: condition and
// action with overrides resolved and braces already escaped. It is created
// fresh per Normalize call and must not be re-normalized, which would
// double-escape the text.
type Representation struct {
	Condition string
	Action    string
}
