package journey

import "fmt"

// StructureErrorKind enumerates the structural violations a graph or
// proposition can exhibit. The set is closed; switch statements over it
// should be exhaustive.
type StructureErrorKind int

const (
	// KindDanglingEdge indicates an edge referencing a nonexistent node id.
	KindDanglingEdge StructureErrorKind = iota
	// KindInvalidProposition indicates a candidate/graph presence mismatch.
	KindInvalidProposition
	// KindConfidenceOutOfRange indicates a confidence outside [0, 1].
	KindConfidenceOutOfRange
	// KindCycleDetected indicates the edge relation contains a cycle.
	KindCycleDetected
	// KindDuplicateNodeID indicates a node id appearing more than once.
	KindDuplicateNodeID
	// KindInvalidNodeType indicates a node type outside the closed variant set.
	KindInvalidNodeType
	// KindMissingField indicates a required canonical field is absent.
	KindMissingField
	// KindToolMismatch indicates a tool reference present on a non-tool node
	// or absent on a tool node.
	KindToolMismatch
)

// String returns the stable name of the kind.
func (k StructureErrorKind) String() string {
	switch k {
	case KindDanglingEdge:
		return "dangling_edge"
	case KindInvalidProposition:
		return "invalid_proposition"
	case KindConfidenceOutOfRange:
		return "confidence_out_of_range"
	case KindCycleDetected:
		return "cycle_detected"
	case KindDuplicateNodeID:
		return "duplicate_node_id"
	case KindInvalidNodeType:
		return "invalid_node_type"
	case KindMissingField:
		return "missing_field"
	case KindToolMismatch:
		return "tool_mismatch"
	default:
		return "unknown"
	}
}

// StructureError describes a structural violation in a journey graph or
// classification proposition. NodeID, EdgeFrom and EdgeTo are populated when
// the violation names a specific node or edge.
type StructureError struct {
	Kind     StructureErrorKind
	NodeID   string
	EdgeFrom string
	EdgeTo   string
	Detail   string
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	switch e.Kind {
	case KindDanglingEdge:
		return fmt.Sprintf("journey structure: edge %q -> %q references unknown node %q", e.EdgeFrom, e.EdgeTo, e.NodeID)
	case KindDuplicateNodeID:
		return fmt.Sprintf("journey structure: duplicate node id %q", e.NodeID)
	case KindCycleDetected:
		return fmt.Sprintf("journey structure: cycle through node %q", e.NodeID)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("journey structure: %s: %s", e.Kind, e.Detail)
		}
		return fmt.Sprintf("journey structure: %s", e.Kind)
	}
}

// newDanglingEdge builds the error for an edge endpoint missing from the node set.
func newDanglingEdge(from, to, missing string) *StructureError {
	return &StructureError{Kind: KindDanglingEdge, EdgeFrom: from, EdgeTo: to, NodeID: missing}
}
