package classifier

import "github.com/Nunchakus888/parlant-sub001/journey"

// SchemaName identifies the proposition schema in generation requests and
// scopes the retry decision for schema-validation failures.
const SchemaName = "JourneyStructureProposition"

// Proposition is the structured output of the classification call.
// Invariant: JourneyGraph is present if and only if IsJourneyCandidate is
// true; Confidence lies in [0, 1]. Violations are retry-class failures.
type Proposition struct {
	IsJourneyCandidate bool                 `json:"is_journey_candidate"`
	Confidence         float64              `json:"confidence"`
	Reasoning          string               `json:"reasoning"`
	JourneyGraph       *journey.GraphRecord `json:"journey_graph,omitempty"`
}
