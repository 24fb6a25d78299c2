// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import (
	"context"
	"sync"
)

// MockTextGenerator is a test double for ai.TextGenerator.
// It allows custom behavior injection via a function field and is safe for
// concurrent use, since pipeline workers call it in parallel.
type MockTextGenerator struct {
	// GenerateTextFunc is called by GenerateText if set.
	// If nil, replies "GREEN" to every prompt.
	GenerateTextFunc func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)

	mu        sync.Mutex
	callCount int
	prompts   []string
}

// NewMockTextGenerator creates a mock generator with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockTextGenerator() *MockTextGenerator {
	return &MockTextGenerator{}
}

// GenerateText records the call and delegates to GenerateTextFunc if set.
func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt, maxTokens, temperature)
	}

	return "GREEN", nil
}

// CallCount returns the number of times GenerateText was called.
func (m *MockTextGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Prompts returns a copy of all prompts seen, in call order.
func (m *MockTextGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears the recorded calls and the custom function.
func (m *MockTextGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.prompts = nil
	m.GenerateTextFunc = nil
}
