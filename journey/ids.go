package journey

import "fmt"

// guidelineIDPrefix namespaces identifiers minted for journey nodes so the
// external indexing pipeline can distinguish them from stored guidelines.
const guidelineIDPrefix = "journey_node"

// DeriveGuidelineID mints the guideline identifier for a journey node:
// "journey_node:<nodeID>". Callers must namespace node ids per journey so
// derived ids are globally unique; no uniqueness check is performed here.
func DeriveGuidelineID(nodeID string) string {
	return fmt.Sprintf("%s:%s", guidelineIDPrefix, nodeID)
}

// DeriveEdgeGuidelineID mints the guideline identifier for an edge leaving a
// journey node: "journey_node:<nodeID>:<edgeID>". Distinct (node, edge) pairs
// never produce equal ids as long as node ids contain no ':' separator.
func DeriveEdgeGuidelineID(nodeID, edgeID string) string {
	return fmt.Sprintf("%s:%s:%s", guidelineIDPrefix, nodeID, edgeID)
}
