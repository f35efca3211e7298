// Package classifier decides whether a guideline should be compiled into a
// multi-step Journey. It orchestrates one call to the external language-model
// collaborator, then validates the returned proposition: schema shape,
// confidence range, the candidate/graph coupling invariant and — when a graph
// is proposed — full journey.FromCanonical structural validation.
//
// Every validation failure surfaces as a generation.FormatError tagged with
// the proposition schema, making it a retry-class signal for the external
// driver rather than a terminal rejection of the guideline. Transport and
// provider errors from the generator pass through unchanged.
package classifier
