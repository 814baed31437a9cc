package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	Explain(ctx context.Context, params ExplainRequest) (ExplainResponse, error)
}

// ExplainRequest holds the paragraph to rewrite in plain English
type ExplainRequest struct {
	Paragraph string `json:"paragraph"`
}

// ExplainResponse carries the raw text content returned by the model.
// The content is expected to be a single JSON object, but nothing is
// validated at this layer.
type ExplainResponse struct {
	Content string
	Usage   Usage
}

// Usage reports token consumption for a single completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

const (
	DefaultMaxRetryAttempts = 3
)
