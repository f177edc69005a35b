package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for task classification.
type Client interface {
	ClassifyTask(ctx context.Context, taskText string) (json.RawMessage, error)
}

// ErrNotConfigured is returned when no provider credential is available.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is wired when no provider is configured; every call
// reports ErrNotConfigured so callers take their fallback path.
type PlaceholderClient struct{}

// ClassifyTask returns ErrNotConfigured.
func (PlaceholderClient) ClassifyTask(ctx context.Context, taskText string) (json.RawMessage, error) {
	_ = ctx
	_ = taskText
	return nil, ErrNotConfigured
}
