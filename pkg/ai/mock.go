package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

var mockTemplates = []string{
	"As %s, I believe this topic requires careful consideration. The evidence clearly shows we must look beyond first impressions and weigh the long-term consequences for everyone involved.",
	"Let me address the previous point. While I understand the concern, the data suggests a different conclusion, and research in this area consistently points the other way.",
	"This is a critical issue. From my perspective, we need to examine the underlying assumptions because they shape every argument made so far.",
	"I respectfully disagree with the previous argument. Here's why: the reasoning rests on a premise that recent studies have called into question.",
	"Building on that point, I'd like to add that research indicates the effects are broader than assumed, for example across sectors nobody has mentioned yet.",
}

// MockGenerator produces canned debate text for demo mode and tests
type MockGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockGenerator creates a mock generator with a random source
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewSeededMockGenerator creates a deterministic mock generator for tests
func NewSeededMockGenerator(seed int64) *MockGenerator {
	return &MockGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a template response flavoured with the speaker name.
// The name is parsed out of the system prompt's first line when present.
func (m *MockGenerator) Generate(_ context.Context, params GenerateParams) (string, error) {
	m.mu.Lock()
	template := mockTemplates[m.rng.Intn(len(mockTemplates))]
	m.mu.Unlock()

	name := speakerName(params.System)
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, name), nil
	}
	return template, nil
}

func speakerName(system string) string {
	// System prompts open with "You are <name>, ..."
	const prefix = "You are "
	if strings.HasPrefix(system, prefix) {
		rest := system[len(prefix):]
		if idx := strings.IndexAny(rest, ",\n"); idx > 0 {
			return rest[:idx]
		}
	}
	return "the speaker"
}
