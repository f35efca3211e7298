package classifier

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nunchakus888/parlant-sub001/generation"
	"github.com/Nunchakus888/parlant-sub001/guideline"
	"github.com/Nunchakus888/parlant-sub001/internal/testutil"
	"github.com/Nunchakus888/parlant-sub001/journey"
)

// captureRecorder collects recorded generation info for assertions.
type captureRecorder struct {
	mu    sync.Mutex
	types []generation.Type
	infos []generation.Info
}

func (r *captureRecorder) Record(_ context.Context, typ generation.Type, info generation.Info) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, typ)
	r.infos = append(r.infos, info)
}

func (r *captureRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.infos)
}

const candidateProposition = `{
	"is_journey_candidate": true,
	"confidence": 0.9,
	"reasoning": "the guideline describes a multi-step refund flow",
	"journey_graph": {
		"title": "Refund flow",
		"description": "Walk the customer through a refund",
		"nodes": [
			{"id": "n1", "type": "chat", "action": "Ask for the order number", "tool": null, "metadata": {}},
			{"id": "n2", "type": "tool", "action": "Look up the order", "tool": "orders:lookup", "metadata": {}}
		],
		"edges": [
			{"from": "n1", "to": "n2", "condition": null}
		]
	}
}`

func newClassifier(raw string) (*Classifier, *captureRecorder) {
	mock := generation.NewMockGenerator("mock-model")
	mock.SetFallback(raw)
	rec := &captureRecorder{}
	c := New(mock, func(o *Options) { o.Recorder = rec })
	return c, rec
}

func sampleRep() guideline.Representation {
	return guideline.Normalize(guideline.Guideline{
		Condition: "the customer asks for a refund",
		Action:    "walk them through the refund steps",
	})
}

func TestClassify_JourneyCandidate(t *testing.T) {
	c, rec := newClassifier(candidateProposition)

	result, err := c.Classify(context.Background(), sampleRep())
	require.NoError(t, err)

	assert.True(t, result.Proposition.IsJourneyCandidate)
	assert.InDelta(t, 0.9, result.Proposition.Confidence, 1e-9)
	require.NotNil(t, result.Graph)
	assert.Len(t, result.Graph.Nodes, 2)
	assert.Equal(t, journey.NodeTypeTool, result.Graph.Nodes[1].Type)
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, generation.TypeJourneyStructureClassification, rec.types[0])
	assert.Equal(t, SchemaName, rec.infos[0].SchemaName)
}

func TestClassify_ForkJourney(t *testing.T) {
	rec := testutil.NewGraphBuilder("Order support").
		Description("Route the customer by order state").
		ChatNode("ask", "Ask what the customer needs").
		ToolNode("lookup", "Fetch the order", "orders:lookup").
		ForkNode("route", "Route by order state").
		ChatNode("refund", "Start the refund").
		ChatNode("track", "Share tracking details").
		Edge("ask", "lookup").
		Edge("lookup", "route").
		ConditionalEdge("route", "refund", "order is delivered and damaged").
		ConditionalEdge("route", "track", "order is in transit").
		Build()
	c, _ := newClassifier(testutil.PropositionJSON(true, 0.85, "multi-step flow with branching", rec))

	result, err := c.Classify(context.Background(), sampleRep())
	require.NoError(t, err)
	require.NotNil(t, result.Graph)
	assert.Len(t, result.Graph.Nodes, 5)
	assert.Equal(t, journey.NodeTypeFork, result.Graph.Nodes[2].Type)
	require.NotNil(t, result.Graph.Edges[3].Condition)
	assert.Equal(t, "order is in transit", *result.Graph.Edges[3].Condition)
}

func TestClassify_NotACandidate(t *testing.T) {
	c, _ := newClassifier(`{
		"is_journey_candidate": false,
		"confidence": 0.8,
		"reasoning": "single condition/action rule",
		"journey_graph": null
	}`)

	result, err := c.Classify(context.Background(), sampleRep())
	require.NoError(t, err)
	assert.False(t, result.Proposition.IsJourneyCandidate)
	assert.Nil(t, result.Graph)
}

func TestClassify_FencedOutputIsAccepted(t *testing.T) {
	c, _ := newClassifier("```json\n" + candidateProposition + "\n```")

	result, err := c.Classify(context.Background(), sampleRep())
	require.NoError(t, err)
	assert.True(t, result.Proposition.IsJourneyCandidate)
}

func TestClassify_ConfidenceOutOfRange(t *testing.T) {
	c, _ := newClassifier(`{
		"is_journey_candidate": false,
		"confidence": 1.7,
		"reasoning": "r",
		"journey_graph": null
	}`)

	_, err := c.Classify(context.Background(), sampleRep())

	var formatErr *generation.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, generation.FormatSchemaValidation, formatErr.Kind)
	assert.Equal(t, SchemaName, formatErr.SchemaName)

	var structErr *journey.StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, journey.KindConfidenceOutOfRange, structErr.Kind)

	assert.Equal(t, generation.Retryable, generation.ClassifyFailure(err, SchemaName))
}

func TestClassify_CandidateGraphCoupling(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "graph without candidate flag",
			raw: `{
				"is_journey_candidate": false,
				"confidence": 0.5,
				"reasoning": "r",
				"journey_graph": {"title": "t", "description": "d", "nodes": [], "edges": []}
			}`,
		},
		{
			name: "candidate flag without graph",
			raw: `{
				"is_journey_candidate": true,
				"confidence": 0.5,
				"reasoning": "r",
				"journey_graph": null
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newClassifier(tt.raw)
			_, err := c.Classify(context.Background(), sampleRep())

			var structErr *journey.StructureError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, journey.KindInvalidProposition, structErr.Kind)
			assert.Equal(t, generation.Retryable, generation.ClassifyFailure(err, SchemaName))
		})
	}
}

func TestClassify_DanglingEdgePropagatesAsRetryable(t *testing.T) {
	rec := testutil.NewGraphBuilder("t").
		ChatNode("n1", "a").
		Edge("n1", "n2").
		Build()
	c, _ := newClassifier(testutil.PropositionJSON(true, 0.9, "r", rec))

	_, err := c.Classify(context.Background(), sampleRep())

	var structErr *journey.StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, journey.KindDanglingEdge, structErr.Kind)
	assert.Equal(t, "n2", structErr.NodeID)

	// Retry-scoped to the proposition schema: another schema treats it as fatal.
	assert.Equal(t, generation.Retryable, generation.ClassifyFailure(err, SchemaName))
	assert.Equal(t, generation.Fatal, generation.ClassifyFailure(err, "OtherSchema"))
}

func TestClassify_MalformedOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind generation.FormatErrorKind
	}{
		{
			name: "no payload at all",
			raw:  "I could not produce a structured answer, sorry.",
			kind: generation.FormatExtraction,
		},
		{
			name: "missing required field",
			raw:  `{"is_journey_candidate": false, "reasoning": "r"}`,
			kind: generation.FormatSchemaValidation,
		},
		{
			name: "wrong field type",
			raw:  `{"is_journey_candidate": "yes", "confidence": 0.4, "reasoning": "r"}`,
			kind: generation.FormatSchemaValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newClassifier(tt.raw)
			_, err := c.Classify(context.Background(), sampleRep())

			var formatErr *generation.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.kind, formatErr.Kind)

			// The attempt is still recorded for observability.
			assert.Equal(t, 1, rec.count())
		})
	}
}

func TestClassify_GeneratorErrorPassesThrough(t *testing.T) {
	mock := generation.NewMockGenerator("mock-model")
	transportErr := errors.New("dial tcp: connection refused")
	mock.FailWith(transportErr)
	rec := &captureRecorder{}
	c := New(mock, func(o *Options) { o.Recorder = rec })

	_, err := c.Classify(context.Background(), sampleRep())
	assert.ErrorIs(t, err, transportErr)
	assert.Equal(t, generation.Fatal, generation.ClassifyFailure(err, SchemaName))

	// Failed attempts are recorded too.
	require.Equal(t, 1, rec.count())
	assert.Equal(t, "mock-model", rec.infos[0].Model)
}

func TestRenderPrompt_EmbedsEscapedText(t *testing.T) {
	rep := guideline.Normalize(guideline.Guideline{
		Condition: "customer mentions {product}",
		Action:    "explain the policy",
	})

	prompt, err := renderPrompt(rep)
	require.NoError(t, err)
	assert.Contains(t, prompt, "customer mentions {{product}}")
	assert.Contains(t, prompt, "explain the policy")
}
