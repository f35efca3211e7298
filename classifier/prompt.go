package classifier

import (
	"github.com/Nunchakus888/parlant-sub001/guideline"
	"github.com/Nunchakus888/parlant-sub001/internal/util"
)

// classificationInstructions frame the task for the model. The response
// contract mirrors the Proposition schema and the journey graph wire shape.
const classificationInstructions = `You analyze behavioral guidelines for a conversational agent and decide whether a guideline describes a multi-step conversation flow (a "journey") rather than a single condition/action rule.

Respond with a single JSON object:
{
  "is_journey_candidate": <bool>,
  "confidence": <number between 0 and 1>,
  "reasoning": <string>,
  "journey_graph": <object or null>
}

When is_journey_candidate is true, journey_graph must describe the flow:
{
  "title": <string>, "description": <string>,
  "nodes": [{"id": <string>, "type": "chat"|"tool"|"fork", "action": <string>, "tool": <string or null>, "metadata": {}}],
  "edges": [{"from": <node id>, "to": <node id>, "condition": <string or null>}]
}
Node ids must be unique, every edge must reference existing nodes, "tool" is set exactly on nodes of type "tool", and the edge relation must be acyclic. When is_journey_candidate is false, journey_graph must be null.`

// classificationPrompt is the user-message template. Guideline text is
// brace-escaped before substitution.
const classificationPrompt = `Guideline under review:

When: {{.condition}}
Then: {{.action}}

Decide whether this guideline should become a journey.`

// renderPrompt builds the classification prompt from a normalized guideline
// representation.
func renderPrompt(rep guideline.Representation) (string, error) {
	return util.RenderTemplate(classificationPrompt, map[string]any{
		"condition": rep.Condition,
		"action":    rep.Action,
	})
}
