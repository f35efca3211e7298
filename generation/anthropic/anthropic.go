// Package anthropic implements generation.Generator on the Anthropic
// Messages API. Single-shot structured generations only; latency and cache
// token accounting are surfaced through generation.UsageInfo.
package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Nunchakus888/parlant-sub001/generation"
)

// Options configure the Anthropic generator (model id, temperature, max
// tokens, API key).
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Generator wraps the Anthropic Messages API behind generation.Generator.
type Generator struct {
	client *anthropic.Client
	opts   Options
}

// NewGenerator creates a Generator using the official client.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Generator{client: &client, opts: opts}
}

// NewGeneratorFromClient creates a Generator from an existing client.
func NewGeneratorFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Generator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.3,
		MaxTokens:   4096,
	}
}

// Generate implements generation.Generator with a non-streaming message call.
func (g *Generator) Generate(ctx context.Context, req generation.Request) (*generation.Generation, error) {
	params := anthropic.MessageNewParams{
		Model:       g.opts.Model,
		MaxTokens:   g.opts.MaxTokens,
		Temperature: anthropic.Float(g.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.Instructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.Instructions}}
	}

	start := time.Now()
	resp, err := g.client.Messages.New(ctx, params)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	info := generation.Info{
		SchemaName: req.SchemaName,
		Model:      string(g.opts.Model),
		Duration:   duration,
		Usage:      buildUsage(resp.Usage),
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}
	if text.Len() == 0 {
		return nil, generation.NewExtractionError("anthropic returned an empty completion")
	}

	return &generation.Generation{
		ID:   generation.NewID(),
		Raw:  text.String(),
		Info: info,
	}, nil
}

// Info returns metadata describing this Anthropic generator.
func (g *Generator) Info() generation.ProviderInfo {
	return generation.ProviderInfo{Model: string(g.opts.Model), Provider: "anthropic"}
}

// buildUsage maps the Messages API usage record into generation.UsageInfo.
// Anthropic reports no total; it stays 0 per the UsageInfo contract.
func buildUsage(u anthropic.Usage) *generation.UsageInfo {
	usage := &generation.UsageInfo{
		InputTokens:  u.InputTokens,
		OutputTokens: u.OutputTokens,
	}
	if u.CacheReadInputTokens > 0 || u.CacheCreationInputTokens > 0 {
		usage.Input = &generation.InputTokenDetails{
			CachedTokens:        u.CacheReadInputTokens,
			CacheCreationTokens: u.CacheCreationInputTokens,
		}
	}
	return usage
}
