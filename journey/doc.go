// Package journey defines the Journey Graph data model: typed nodes connected
// by conditioned edges describing a multi-step conversation flow compiled from
// a guideline.
//
// Core goals:
//   - Keep node and edge order semantically meaningful (display/persistence)
//   - Round-trip losslessly through the canonical JSON wire shape
//   - Validate structure on the way in: field presence, node type variants,
//     tool references, unique node ids, edge endpoints and acyclicity
//   - Mint derived guideline identifiers for the external indexing pipeline
//
// Validation failures surface as *StructureError values. They are format-class
// failures: a malformed graph proposed by a model is a reason to re-run the
// classification, not to reject the underlying guideline.
package journey
