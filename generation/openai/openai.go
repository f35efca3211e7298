// Package openai implements generation.Generator on the OpenAI Chat
// Completions API. It issues single-shot structured generations, measures
// call latency and maps the SDK's usage accounting into generation.UsageInfo.
//
// Transport and API errors are wrapped with %w and left for the resilience
// classifier, which treats them as fatal. An empty completion is reported as
// an extraction format failure.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"

	"github.com/Nunchakus888/parlant-sub001/generation"
)

// Options configure the OpenAI generator. Fields mirror a minimal subset of
// Chat Completion parameters; extend via functional options without breaking
// callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Generator wraps the OpenAI Chat Completions API behind generation.Generator.
type Generator struct {
	client *openai.Client
	opts   Options
}

// NewGenerator creates a Generator using the official client with credentials
// from the environment.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	client := openai.NewClient()
	return NewGeneratorFromClient(&client, optFns...)
}

// NewGeneratorFromClient creates a Generator from an existing client.
func NewGeneratorFromClient(client *openai.Client, optFns ...func(o *Options)) *Generator {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.3,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{client: client, opts: opts}
}

// Generate implements generation.Generator with a non-streaming completion.
func (g *Generator) Generate(ctx context.Context, req generation.Request) (*generation.Generation, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.Instructions != "" {
		messages = append(messages, openai.SystemMessage(req.Instructions))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               g.opts.Model,
		Temperature:         openai.Float(g.opts.Temperature),
		MaxCompletionTokens: openai.Int(g.opts.MaxCompletionTokens),
	}

	start := time.Now()
	resp, err := g.client.Chat.Completions.New(ctx, params)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	info := generation.Info{
		SchemaName: req.SchemaName,
		Model:      g.opts.Model,
		Duration:   duration,
		Usage:      buildUsage(resp.Usage),
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, generation.NewExtractionError("openai returned an empty completion")
	}

	return &generation.Generation{
		ID:   generation.NewID(),
		Raw:  resp.Choices[0].Message.Content,
		Info: info,
	}, nil
}

// Info returns metadata describing this OpenAI generator.
func (g *Generator) Info() generation.ProviderInfo {
	return generation.ProviderInfo{Model: g.opts.Model, Provider: "openai"}
}

// buildUsage maps the SDK usage record, including prompt/completion token
// detail sub-records, into generation.UsageInfo.
func buildUsage(u openai.CompletionUsage) *generation.UsageInfo {
	usage := &generation.UsageInfo{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
	if d := u.PromptTokensDetails; d.CachedTokens > 0 || d.AudioTokens > 0 {
		usage.Input = &generation.InputTokenDetails{
			CachedTokens: d.CachedTokens,
			AudioTokens:  d.AudioTokens,
		}
	}
	if d := u.CompletionTokensDetails; d.ReasoningTokens > 0 || d.AudioTokens > 0 {
		usage.Output = &generation.OutputTokenDetails{
			ReasoningTokens: d.ReasoningTokens,
			AudioTokens:     d.AudioTokens,
		}
	}
	return usage
}
