package generation

import (
	"context"
	"sync"
	"time"
)

// MockGenerator is a lightweight in-memory Generator useful for tests and
// examples. Responses are matched on the request prompt; unmatched prompts
// fall back to a default raw output. Scripted errors take precedence.
type MockGenerator struct {
	mu        sync.Mutex
	model     string
	responses map[string]string
	fallback  string
	errs      []error
	usage     *UsageInfo
	calls     int
}

// NewMockGenerator constructs a MockGenerator reporting the given model name.
func NewMockGenerator(model string) *MockGenerator {
	return &MockGenerator{model: model, responses: make(map[string]string)}
}

// AddResponse registers a canned raw output for an exact prompt.
func (m *MockGenerator) AddResponse(prompt, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = raw
}

// SetFallback sets the raw output returned for unmatched prompts.
func (m *MockGenerator) SetFallback(raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = raw
}

// FailWith queues errors returned by subsequent Generate calls, in order,
// before any canned response is consulted.
func (m *MockGenerator) FailWith(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, errs...)
}

// SetUsage attaches a usage record to every successful generation.
func (m *MockGenerator) SetUsage(u *UsageInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage = u
}

// Info implements Generator.
func (m *MockGenerator) Info() ProviderInfo {
	return ProviderInfo{Model: m.model, Provider: "mock"}
}

// Calls reports how many Generate invocations have been made.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Generate implements Generator.
func (m *MockGenerator) Generate(ctx context.Context, req Request) (*Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return nil, err
	}

	raw, ok := m.responses[req.Prompt]
	if !ok {
		raw = m.fallback
	}

	return &Generation{
		ID:  NewID(),
		Raw: raw,
		Info: Info{
			SchemaName: req.SchemaName,
			Model:      m.model,
			Duration:   time.Millisecond,
			Usage:      m.usage,
		},
	}, nil
}
