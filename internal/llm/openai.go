package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/sozercan/promptlens/internal/config"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"

	groqEndpoint   = "https://api.groq.com/openai/v1/"
	openAIEndpoint = "https://api.openai.com/v1/"

	defaultMaxTokens = 1000
)

var (
	ErrMissingAPIKey = errors.New("api key is required")
	ErrEmptyResponse = errors.New("completion returned no choices")
)

// OpenAI talks to any OpenAI-compatible chat completion endpoint.
type OpenAI struct {
	client   *openai.Client
	cfg      config.LLMConfig
	provider string
}

// NewOpenAI builds a client for cfg.Provider. Extra request options are appended
// after the defaults, so callers can override the HTTP client in tests.
func NewOpenAI(cfg config.LLMConfig, opts ...option.RequestOption) (*OpenAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderGroq
	}

	// the provider call is made exactly once per submission
	reqOpts := []option.RequestOption{option.WithMaxRetries(0)}

	switch provider {
	case ProviderAzure:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("azure provider requires an endpoint")
		}
		reqOpts = append(reqOpts,
			azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	case ProviderGroq, ProviderOpenAI:
		reqOpts = append(reqOpts,
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(baseURL(provider, cfg.Endpoint)),
		)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}

	return &OpenAI{
		client:   openai.NewClient(append(reqOpts, opts...)...),
		cfg:      cfg,
		provider: provider,
	}, nil
}

// NewFactory returns a Factory that builds a fresh client per API key from the
// shared provider settings.
func NewFactory(cfg config.LLMConfig, opts ...option.RequestOption) Factory {
	return func(apiKey string) (Provider, error) {
		c := cfg
		c.APIKey = apiKey
		return NewOpenAI(c, opts...)
	}
}

func (o *OpenAI) Name() string {
	return o.provider
}

func (o *OpenAI) Complete(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:       o.cfg.Model,
		Temperature: 0,
		MaxTokens:   defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(systemMessages)+len(userMessages))
	for _, m := range systemMessages {
		messages = append(messages, openai.SystemMessage(m))
	}
	for _, m := range userMessages {
		messages = append(messages, openai.UserMessage(m))
	}

	slog.Debug("Sending chat completion",
		"provider", o.provider,
		"model", options.Model,
		"temperature", options.Temperature,
		"maxTokens", options.MaxTokens,
	)

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model:       openai.F(options.Model),
			Messages:    openai.F(messages),
			Temperature: openai.F(options.Temperature),
			MaxTokens:   openai.F(options.MaxTokens),
		},
	)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// StatusCode reports the HTTP status carried by a provider error, or 0 when the
// failure happened before a response arrived.
func StatusCode(err error) int {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func baseURL(provider, endpoint string) string {
	if endpoint == "" {
		if provider == ProviderOpenAI {
			return openAIEndpoint
		}
		return groqEndpoint
	}
	// relative paths resolve against the last segment without the slash
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return endpoint
}
