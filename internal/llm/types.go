package llm

import (
	"context"

	"github.com/openai/openai-go"
)

type Provider interface {
	// Analyze sends one prompt exchange to the model and returns its reply,
	// which is either text content or a tool call
	Analyze(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	Tools       []openai.ChatCompletionToolParam
}

// FunctionResponse represents the structured response from a function call
type FunctionResponse struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Response carries either the model's text content or a requested
// function call, plus token accounting
type Response struct {
	Content      string
	FunctionCall *FunctionResponse
	Usage        Usage
}
