package llm

import (
	"context"
)

type Provider interface {
	// Name identifies the backing service (groq, openai, azure)
	Name() string

	// Complete sends a single chat completion and returns the generated text
	Complete(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error)
}

// Factory builds a Provider bound to a caller-supplied API key.
type Factory func(apiKey string) (Provider, error)

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
}

func WithModel(model string) Option {
	return func(o *Options) {
		if model != "" {
			o.Model = model
		}
	}
}

func WithTemperature(temperature float64) Option {
	return func(o *Options) {
		o.Temperature = temperature
	}
}

func WithMaxTokens(maxTokens int64) Option {
	return func(o *Options) {
		if maxTokens > 0 {
			o.MaxTokens = maxTokens
		}
	}
}

type Response struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}
