package journey

import "fmt"

// NodeType is the closed set of journey node variants.
type NodeType string

const (
	// NodeTypeChat emits a conversational message to the customer.
	NodeTypeChat NodeType = "chat"
	// NodeTypeTool invokes a tool; nodes of this type must carry a tool reference.
	NodeTypeTool NodeType = "tool"
	// NodeTypeFork branches the flow into conditional paths.
	NodeTypeFork NodeType = "fork"
)

// ParseNodeType validates a wire-level type string against the closed variant set.
func ParseNodeType(s string) (NodeType, error) {
	switch NodeType(s) {
	case NodeTypeChat, NodeTypeTool, NodeTypeFork:
		return NodeType(s), nil
	default:
		return "", fmt.Errorf("unknown node type %q", s)
	}
}

// Node is a single typed step in a journey graph. Tool is expected to be set
// exactly when Type is NodeTypeTool; FromCanonical enforces this.
type Node struct {
	ID       string
	Type     NodeType
	Action   string
	Tool     string
	Metadata map[string]any
}

// Edge is a directed, optionally conditioned transition between two nodes.
// Condition is nil when the transition is unconditional.
type Edge struct {
	From      string
	To        string
	Condition *string
}
