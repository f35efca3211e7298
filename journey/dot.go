package journey

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// nodeShapes maps node variants to Graphviz shapes for operator inspection.
var nodeShapes = map[NodeType]string{
	NodeTypeChat: "box",
	NodeTypeTool: "component",
	NodeTypeFork: "diamond",
}

// DOT renders the graph in Graphviz DOT form. Nodes are shaped by type and
// labeled with their action; conditioned edges carry the condition as label.
// The export is diagnostic only and performs no structural validation.
func (g *Graph) DOT() (string, error) {
	viz := gographviz.NewGraph()
	if err := viz.SetName("journey"); err != nil {
		return "", fmt.Errorf("dot export: %w", err)
	}
	if err := viz.SetDir(true); err != nil {
		return "", fmt.Errorf("dot export: %w", err)
	}

	for _, n := range g.Nodes {
		label := n.Action
		if n.Type == NodeTypeTool && n.Tool != "" {
			label = fmt.Sprintf("%s [%s]", n.Action, n.Tool)
		}
		attrs := map[string]string{
			"shape": nodeShapes[n.Type],
			"label": fmt.Sprintf("%q", label),
		}
		if err := viz.AddNode("journey", fmt.Sprintf("%q", n.ID), attrs); err != nil {
			return "", fmt.Errorf("dot export: node %q: %w", n.ID, err)
		}
	}

	for _, e := range g.Edges {
		var attrs map[string]string
		if e.Condition != nil && *e.Condition != "" {
			attrs = map[string]string{"label": fmt.Sprintf("%q", *e.Condition)}
		}
		if err := viz.AddEdge(fmt.Sprintf("%q", e.From), fmt.Sprintf("%q", e.To), true, attrs); err != nil {
			return "", fmt.Errorf("dot export: edge %q -> %q: %w", e.From, e.To, err)
		}
	}

	return viz.String(), nil
}
