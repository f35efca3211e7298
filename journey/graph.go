package journey

// Graph is a directed acyclic journey flow. Node and edge order is
// semantically meaningful and preserved through canonicalization.
type Graph struct {
	Title       string
	Description string
	Nodes       []Node
	Edges       []Edge
}

// NodeRecord is the canonical wire shape of a node. Tool serializes as an
// explicit null when absent.
type NodeRecord struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Action   string         `json:"action"`
	Tool     *string        `json:"tool"`
	Metadata map[string]any `json:"metadata"`
}

// EdgeRecord is the canonical wire shape of an edge.
type EdgeRecord struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Condition *string `json:"condition"`
}

// GraphRecord is the canonical, JSON-compatible wire shape of a journey graph.
type GraphRecord struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Nodes       []NodeRecord `json:"nodes"`
	Edges       []EdgeRecord `json:"edges"`
}

// Canonical produces the serializable record for g, preserving node and edge
// order exactly as given.
func (g *Graph) Canonical() *GraphRecord {
	rec := &GraphRecord{
		Title:       g.Title,
		Description: g.Description,
		Nodes:       make([]NodeRecord, len(g.Nodes)),
		Edges:       make([]EdgeRecord, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		nr := NodeRecord{
			ID:       n.ID,
			Type:     string(n.Type),
			Action:   n.Action,
			Metadata: n.Metadata,
		}
		if n.Tool != "" {
			tool := n.Tool
			nr.Tool = &tool
		}
		rec.Nodes[i] = nr
	}
	for i, e := range g.Edges {
		er := EdgeRecord{From: e.From, To: e.To}
		if e.Condition != nil {
			cond := *e.Condition
			er.Condition = &cond
		}
		rec.Edges[i] = er
	}
	return rec
}

// FromCanonical validates a canonical record and builds the graph.
//
// Checks, in order: required node fields, node type variants, tool presence
// exactly on tool nodes, node id uniqueness, edge endpoint existence and
// acyclicity of the edge relation. The first violation is returned as a
// *StructureError.
func FromCanonical(rec *GraphRecord) (*Graph, error) {
	if rec == nil {
		return nil, &StructureError{Kind: KindMissingField, Detail: "graph record is nil"}
	}

	g := &Graph{
		Title:       rec.Title,
		Description: rec.Description,
		Nodes:       make([]Node, 0, len(rec.Nodes)),
		Edges:       make([]Edge, 0, len(rec.Edges)),
	}

	ids := make(map[string]struct{}, len(rec.Nodes))
	for _, nr := range rec.Nodes {
		if nr.ID == "" {
			return nil, &StructureError{Kind: KindMissingField, Detail: "node id is empty"}
		}
		nodeType, err := ParseNodeType(nr.Type)
		if err != nil {
			return nil, &StructureError{Kind: KindInvalidNodeType, NodeID: nr.ID, Detail: err.Error()}
		}
		if err := checkToolReference(nr, nodeType); err != nil {
			return nil, err
		}
		if _, exists := ids[nr.ID]; exists {
			return nil, &StructureError{Kind: KindDuplicateNodeID, NodeID: nr.ID}
		}
		ids[nr.ID] = struct{}{}

		node := Node{ID: nr.ID, Type: nodeType, Action: nr.Action, Metadata: nr.Metadata}
		if nr.Tool != nil {
			node.Tool = *nr.Tool
		}
		g.Nodes = append(g.Nodes, node)
	}

	for _, er := range rec.Edges {
		if _, ok := ids[er.From]; !ok {
			return nil, newDanglingEdge(er.From, er.To, er.From)
		}
		if _, ok := ids[er.To]; !ok {
			return nil, newDanglingEdge(er.From, er.To, er.To)
		}
		edge := Edge{From: er.From, To: er.To}
		if er.Condition != nil {
			cond := *er.Condition
			edge.Condition = &cond
		}
		g.Edges = append(g.Edges, edge)
	}

	if err := checkAcyclic(g); err != nil {
		return nil, err
	}
	return g, nil
}

// checkToolReference enforces that a tool reference is present iff the node
// is a tool node. An empty-string tool counts as absent.
func checkToolReference(nr NodeRecord, nodeType NodeType) error {
	hasTool := nr.Tool != nil && *nr.Tool != ""
	if nodeType == NodeTypeTool && !hasTool {
		return &StructureError{Kind: KindToolMismatch, NodeID: nr.ID, Detail: "tool node without tool reference"}
	}
	if nodeType != NodeTypeTool && hasTool {
		return &StructureError{Kind: KindToolMismatch, NodeID: nr.ID, Detail: "tool reference on non-tool node"}
	}
	return nil
}

// checkAcyclic runs an iterative three-color DFS over the edge relation and
// reports the first node found on a cycle.
func checkAcyclic(g *Graph) error {
	adjacent := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adjacent[e.From] = append(adjacent[e.From], e.To)
	}

	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // fully explored
	)
	color := make(map[string]int, len(g.Nodes))

	var visit func(id string) *StructureError
	visit = func(id string) *StructureError {
		color[id] = gray
		for _, next := range adjacent[id] {
			switch color[next] {
			case gray:
				return &StructureError{Kind: KindCycleDetected, NodeID: next}
			case white:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		color[id] = black
		return nil
	}

	for _, n := range g.Nodes {
		if color[n.ID] == white {
			if err := visit(n.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
