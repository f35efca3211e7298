package generation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InputTokenDetails breaks down prompt-side token usage where the provider
// reports it. Absent counts stay zero.
type InputTokenDetails struct {
	CachedTokens        int64 `json:"cached_tokens,omitempty"`
	CacheCreationTokens int64 `json:"cache_creation_tokens,omitempty"`
	AudioTokens         int64 `json:"audio_tokens,omitempty"`
}

// OutputTokenDetails breaks down completion-side token usage where the
// provider reports it.
type OutputTokenDetails struct {
	ReasoningTokens int64 `json:"reasoning_tokens,omitempty"`
	AudioTokens     int64 `json:"audio_tokens,omitempty"`
}

// UsageInfo captures token accounting for a single generation call.
// TotalTokens defaults to 0 when the provider does not report it; Extra holds
// provider-specific counters that fit no structured field.
type UsageInfo struct {
	InputTokens  int64               `json:"input_tokens"`
	OutputTokens int64               `json:"output_tokens"`
	TotalTokens  int64               `json:"total_tokens"`
	Extra        map[string]int64    `json:"extra,omitempty"`
	Input        *InputTokenDetails  `json:"input_details,omitempty"`
	Output       *OutputTokenDetails `json:"output_details,omitempty"`
}

// Info is the per-call generation metadata handed to the observability
// collaborator. One Info is produced per completed call, successful or not.
type Info struct {
	SchemaName string        `json:"schema_name"`
	Model      string        `json:"model"`
	Duration   time.Duration `json:"duration"`
	Usage      *UsageInfo    `json:"usage,omitempty"`
}

// Generation is the raw result of one model call: the unparsed textual
// output plus call metadata. ID correlates retries of the same logical
// request in logs.
type Generation struct {
	ID   string
	Raw  string
	Info Info
}

// NewID mints a correlation identifier for a generation.
func NewID() string { return uuid.NewString() }

// Request describes one structured generation to perform. SchemaName names
// the schema the caller intends to decode the output into and scopes the
// retry decision for schema-validation failures.
type Request struct {
	Type         Type
	SchemaName   string
	Instructions string
	Prompt       string
}

// ProviderInfo contains metadata about a generator implementation.
type ProviderInfo struct {
	Model    string `json:"model"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Generator is the boundary to the external language-model collaborator.
// Implementations issue exactly one call per Generate invocation; retrying is
// the caller's concern. Cancellation and timeouts ride on ctx.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Generation, error)

	// Info returns information about the generator implementation.
	Info() ProviderInfo
}
