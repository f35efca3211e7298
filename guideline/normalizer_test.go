package guideline

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EscapesBraces(t *testing.T) {
	rep := Normalize(Guideline{Condition: "explain {x}", Action: "use {{tool}}"})
	assert.Equal(t, "explain {{x}}", rep.Condition)
	assert.Equal(t, "use {{{{tool}}}}", rep.Action)
}

func TestNormalize_EscapingIsBalanced(t *testing.T) {
	inputs := []string{
		"no braces at all",
		"{pair}",
		"{{already doubled}}",
		"nested {a {b} c}",
		"unmatched { alone",
	}
	for _, in := range inputs {
		rep := Normalize(Guideline{Condition: in})
		assert.Equal(t, strings.Count(in, "{")*2, strings.Count(rep.Condition, "{"), "input %q", in)
		assert.Equal(t, strings.Count(in, "}")*2, strings.Count(rep.Condition, "}"), "input %q", in)
	}
}

func TestNormalize_OverridePrecedence(t *testing.T) {
	tests := []struct {
		name      string
		guideline Guideline
		condition string
		action    string
	}{
		{
			name:      "no metadata keeps originals",
			guideline: Guideline{Condition: "A", Action: "B"},
			condition: "A",
			action:    "B",
		},
		{
			name: "agent intention condition wins",
			guideline: Guideline{
				Condition: "A",
				Metadata:  map[string]any{MetadataAgentIntentionCondition: "B"},
			},
			condition: "B",
		},
		{
			name: "empty override is ignored",
			guideline: Guideline{
				Condition: "A",
				Metadata:  map[string]any{MetadataAgentIntentionCondition: ""},
			},
			condition: "A",
		},
		{
			name: "internal action wins",
			guideline: Guideline{
				Action:   "greet",
				Metadata: map[string]any{MetadataInternalAction: "greet warmly"},
			},
			action: "greet warmly",
		},
		{
			name: "non-string override is ignored",
			guideline: Guideline{
				Condition: "A",
				Metadata:  map[string]any{MetadataAgentIntentionCondition: 42},
			},
			condition: "A",
		},
		{
			name: "overrides are escaped too",
			guideline: Guideline{
				Condition: "plain",
				Metadata:  map[string]any{MetadataAgentIntentionCondition: "ask {name}"},
			},
			condition: "ask {{name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Normalize(tt.guideline)
			assert.Equal(t, tt.condition, rep.Condition)
			assert.Equal(t, tt.action, rep.Action)
		})
	}
}

func TestNormalize_MissingFieldsResolveToEmpty(t *testing.T) {
	rep := Normalize(Guideline{})
	assert.Equal(t, "", rep.Condition)
	assert.Equal(t, "", rep.Action)
}

func TestNormalize_ConcurrentUse(t *testing.T) {
	g := Guideline{Condition: "explain {x}", Action: "do {y}"}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rep := Normalize(g)
			if rep.Condition != "explain {{x}}" || rep.Action != "do {{y}}" {
				t.Errorf("unexpected representation: %+v", rep)
			}
		}()
	}
	wg.Wait()
}
