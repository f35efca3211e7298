package journey

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func sampleGraph() *Graph {
	return &Graph{
		Title:       "Refund flow",
		Description: "Walk the customer through a refund request",
		Nodes: []Node{
			{ID: "n1", Type: NodeTypeChat, Action: "Ask for the order number"},
			{ID: "n2", Type: NodeTypeTool, Action: "Look up the order", Tool: "orders:lookup"},
			{ID: "n3", Type: NodeTypeFork, Action: "Decide eligibility"},
			{ID: "n4", Type: NodeTypeChat, Action: "Confirm the refund"},
		},
		Edges: []Edge{
			{From: "n1", To: "n2"},
			{From: "n2", To: "n3"},
			{From: "n3", To: "n4", Condition: strptr("order is eligible")},
		},
	}
}

func TestGraph_CanonicalRoundTrip(t *testing.T) {
	g := sampleGraph()

	rec := g.Canonical()
	back, err := FromCanonical(rec)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestGraph_CanonicalPreservesOrder(t *testing.T) {
	g := sampleGraph()
	rec := g.Canonical()

	for i, n := range g.Nodes {
		assert.Equal(t, n.ID, rec.Nodes[i].ID)
	}
	for i, e := range g.Edges {
		assert.Equal(t, e.From, rec.Edges[i].From)
		assert.Equal(t, e.To, rec.Edges[i].To)
	}
}

func TestGraphRecord_WireShape(t *testing.T) {
	rec := sampleGraph().Canonical()

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	// Absent tool/condition serialize as explicit nulls, not omitted keys.
	assert.Contains(t, string(raw), `"tool":null`)
	assert.Contains(t, string(raw), `"condition":null`)

	var decoded GraphRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, rec, &decoded)
}

func TestFromCanonical_DanglingEdge(t *testing.T) {
	rec := &GraphRecord{
		Title: "t",
		Nodes: []NodeRecord{{ID: "n1", Type: "chat", Action: "a"}},
		Edges: []EdgeRecord{{From: "n1", To: "n2"}},
	}

	_, err := FromCanonical(rec)
	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, KindDanglingEdge, structErr.Kind)
	assert.Equal(t, "n2", structErr.NodeID)
	assert.Equal(t, "n1", structErr.EdgeFrom)
	assert.Equal(t, "n2", structErr.EdgeTo)
}

func TestFromCanonical_Violations(t *testing.T) {
	tests := []struct {
		name string
		rec  *GraphRecord
		kind StructureErrorKind
	}{
		{
			name: "nil record",
			rec:  nil,
			kind: KindMissingField,
		},
		{
			name: "empty node id",
			rec: &GraphRecord{
				Nodes: []NodeRecord{{ID: "", Type: "chat"}},
			},
			kind: KindMissingField,
		},
		{
			name: "unknown node type",
			rec: &GraphRecord{
				Nodes: []NodeRecord{{ID: "n1", Type: "loop"}},
			},
			kind: KindInvalidNodeType,
		},
		{
			name: "tool node without tool",
			rec: &GraphRecord{
				Nodes: []NodeRecord{{ID: "n1", Type: "tool"}},
			},
			kind: KindToolMismatch,
		},
		{
			name: "tool reference on chat node",
			rec: &GraphRecord{
				Nodes: []NodeRecord{{ID: "n1", Type: "chat", Tool: strptr("orders:lookup")}},
			},
			kind: KindToolMismatch,
		},
		{
			name: "duplicate node id",
			rec: &GraphRecord{
				Nodes: []NodeRecord{
					{ID: "n1", Type: "chat"},
					{ID: "n1", Type: "chat"},
				},
			},
			kind: KindDuplicateNodeID,
		},
		{
			name: "self loop",
			rec: &GraphRecord{
				Nodes: []NodeRecord{{ID: "n1", Type: "chat"}},
				Edges: []EdgeRecord{{From: "n1", To: "n1"}},
			},
			kind: KindCycleDetected,
		},
		{
			name: "longer cycle",
			rec: &GraphRecord{
				Nodes: []NodeRecord{
					{ID: "n1", Type: "chat"},
					{ID: "n2", Type: "chat"},
					{ID: "n3", Type: "chat"},
				},
				Edges: []EdgeRecord{
					{From: "n1", To: "n2"},
					{From: "n2", To: "n3"},
					{From: "n3", To: "n1"},
				},
			},
			kind: KindCycleDetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCanonical(tt.rec)
			var structErr *StructureError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, tt.kind, structErr.Kind)
		})
	}
}

func TestFromCanonical_DiamondIsNotACycle(t *testing.T) {
	// Two paths converging on the same node share no cycle.
	rec := &GraphRecord{
		Nodes: []NodeRecord{
			{ID: "a", Type: "fork"},
			{ID: "b", Type: "chat"},
			{ID: "c", Type: "chat"},
			{ID: "d", Type: "chat"},
		},
		Edges: []EdgeRecord{
			{From: "a", To: "b"},
			{From: "a", To: "c"},
			{From: "b", To: "d"},
			{From: "c", To: "d"},
		},
	}

	_, err := FromCanonical(rec)
	assert.NoError(t, err)
}

func TestDeriveGuidelineID(t *testing.T) {
	assert.Equal(t, "journey_node:n1", DeriveGuidelineID("n1"))
	assert.Equal(t, "journey_node:n1:e1", DeriveEdgeGuidelineID("n1", "e1"))

	// Distinct (node, edge) pairs must never collide.
	seen := map[string]struct{}{}
	for _, pair := range [][2]string{{"n1", "e1"}, {"n1", "e2"}, {"n2", "e1"}, {"n12", "e"}} {
		id := DeriveEdgeGuidelineID(pair[0], pair[1])
		_, dup := seen[id]
		assert.False(t, dup, "collision for %v", pair)
		seen[id] = struct{}{}
	}
}

func TestGraph_DOT(t *testing.T) {
	out, err := sampleGraph().DOT()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, `"n2"`)
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "order is eligible")
}
