package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "leading prose",
			raw:  "Here is the result:\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
		{
			name: "trailing prose",
			raw:  `{"a": 1} — hope that helps!`,
			want: `{"a": 1}`,
		},
		{
			name: "nested braces in prose",
			raw:  `The answer {"a": {"b": 2}} as requested`,
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "array payload",
			raw:  "Result: [1, 2, 3]",
			want: "[1, 2, 3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON_Failures(t *testing.T) {
	for _, raw := range []string{"", "   ", "no json here", "{broken", "{\"a\": }"} {
		_, err := ExtractJSON(raw)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr, "raw %q", raw)
		assert.Equal(t, FormatExtraction, formatErr.Kind, "raw %q", raw)
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		A int `json:"a"`
	}
	require.NoError(t, DecodeJSON("```json\n{\"a\": 7}\n```", &out))
	assert.Equal(t, 7, out.A)

	err := DecodeJSON(`{"a": "not a number"}`, &out)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, FormatDecode, formatErr.Kind)
	assert.Equal(t, Retryable, ClassifyFailure(err, "anything"))
}

func TestUsageInfo_Defaults(t *testing.T) {
	var usage UsageInfo
	assert.Zero(t, usage.TotalTokens)
	assert.Zero(t, usage.InputTokens)
	assert.Zero(t, usage.OutputTokens)
	assert.Nil(t, usage.Extra)
}

func TestMockGenerator_ScriptedErrors(t *testing.T) {
	mock := NewMockGenerator("m")
	mock.SetFallback("{}")
	scripted := errors.New("scripted")
	mock.FailWith(scripted)

	_, err := mock.Generate(context.Background(), Request{Prompt: "p"})
	assert.ErrorIs(t, err, scripted)

	gen, err := mock.Generate(context.Background(), Request{Prompt: "p", SchemaName: "S"})
	require.NoError(t, err)
	assert.Equal(t, "{}", gen.Raw)
	assert.Equal(t, "S", gen.Info.SchemaName)
	assert.Equal(t, 2, mock.Calls())
}
