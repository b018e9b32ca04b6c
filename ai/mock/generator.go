package mock

import (
	"context"
	"sync"
)

// defaultResponse is a minimal well-formed metadata payload so tests that
// don't care about generation content still parse successfully.
const defaultResponse = `{"title": "", "summary": "", "level_of_government": "", ` +
	`"responsible_province": "", "responsible_city": "", "authors": [], "editors": [], ` +
	`"publisher": "", "publish_date": "", "publisher_location": "", "copyright_year": "", ` +
	`"ISSN": "", "ISBN": "", "languages": [], "category": "", "keywords": []}`

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, returns a minimal well-formed JSON payload.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	mu        sync.Mutex
	callCount int
	prompts   []string
}

// NewMockGenerator creates a mock generator with default behavior.
// Note: returns the concrete type so tests can inject behavior and assert
// call counts.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate records the prompt and returns the injected or default response.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return defaultResponse, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Prompts returns a copy of every prompt Generate received.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears the call count, recorded prompts and injected behavior.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.prompts = nil
	m.GenerateFunc = nil
}
