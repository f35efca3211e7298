package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/Nunchakus888/parlant-sub001/journey"
)

// GraphBuilder provides a fluent helper for constructing canonical graph
// records in tests. Example:
//
//	rec := NewGraphBuilder("Refund flow").
//		ChatNode("n1", "Ask for the order number").
//		ToolNode("n2", "Look up the order", "orders:lookup").
//		Edge("n1", "n2").
//		Build()
//
// Chain only the parts you need; sensible defaults are applied.
type GraphBuilder struct {
	rec journey.GraphRecord
}

// NewGraphBuilder creates a builder with the given title.
func NewGraphBuilder(title string) *GraphBuilder {
	return &GraphBuilder{rec: journey.GraphRecord{Title: title}}
}

// Description sets the graph description (chainable).
func (b *GraphBuilder) Description(d string) *GraphBuilder {
	b.rec.Description = d
	return b
}

// ChatNode appends a chat node (chainable).
func (b *GraphBuilder) ChatNode(id, action string) *GraphBuilder {
	b.rec.Nodes = append(b.rec.Nodes, journey.NodeRecord{
		ID: id, Type: string(journey.NodeTypeChat), Action: action, Metadata: map[string]any{},
	})
	return b
}

// ToolNode appends a tool node with its tool reference (chainable).
func (b *GraphBuilder) ToolNode(id, action, tool string) *GraphBuilder {
	b.rec.Nodes = append(b.rec.Nodes, journey.NodeRecord{
		ID: id, Type: string(journey.NodeTypeTool), Action: action, Tool: &tool, Metadata: map[string]any{},
	})
	return b
}

// ForkNode appends a fork node (chainable).
func (b *GraphBuilder) ForkNode(id, action string) *GraphBuilder {
	b.rec.Nodes = append(b.rec.Nodes, journey.NodeRecord{
		ID: id, Type: string(journey.NodeTypeFork), Action: action, Metadata: map[string]any{},
	})
	return b
}

// Edge appends an unconditional edge (chainable).
func (b *GraphBuilder) Edge(from, to string) *GraphBuilder {
	b.rec.Edges = append(b.rec.Edges, journey.EdgeRecord{From: from, To: to})
	return b
}

// ConditionalEdge appends an edge guarded by a condition (chainable).
func (b *GraphBuilder) ConditionalEdge(from, to, condition string) *GraphBuilder {
	b.rec.Edges = append(b.rec.Edges, journey.EdgeRecord{From: from, To: to, Condition: &condition})
	return b
}

// Build returns the accumulated record.
func (b *GraphBuilder) Build() *journey.GraphRecord {
	rec := b.rec
	return &rec
}

// PropositionJSON renders a raw classification payload the way a model would
// emit it. Graph may be nil for non-candidate propositions.
func PropositionJSON(candidate bool, confidence float64, reasoning string, graph *journey.GraphRecord) string {
	payload := map[string]any{
		"is_journey_candidate": candidate,
		"confidence":           confidence,
		"reasoning":            reasoning,
		"journey_graph":        graph,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal proposition: %v", err))
	}
	return string(raw)
}
