package reason

import (
	"context"

	"github.com/nyayalegal/nyaya/internal/models"
)

// MockReasoner is a test double. It echoes the fused context's topic as the
// detected intent and records the last call.
type MockReasoner struct {
	LastQuery  string
	LastFused  models.FusedContext
	FormValues map[string]string
	Err        error
}

func (m *MockReasoner) Analyze(_ context.Context, query string, fused models.FusedContext) (*models.Analysis, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastQuery = query
	m.LastFused = fused
	return &models.Analysis{
		IntentDetected:        fused.Topic,
		SimplifiedExplanation: "mock explanation",
		ExtractedUserIssue:    query,
		ContextSource:         fused.ContextSource,
		SourcesUsed:           fused.SourcesUsed,
	}, nil
}

func (m *MockReasoner) ExtractForm(_ context.Context, conversation string, fields []string) (map[string]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make(map[string]string)
	for _, f := range fields {
		if v, ok := m.FormValues[f]; ok {
			out[f] = v
		}
	}
	return out, nil
}

func (m *MockReasoner) Close() error { return nil }
