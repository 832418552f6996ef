package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/sozercan/promptlens/apimodels"
	"github.com/sozercan/promptlens/internal/config"
	"github.com/sozercan/promptlens/internal/heuristics"
	"github.com/sozercan/promptlens/internal/llm"
)

type Analyzer struct {
	newProvider  llm.Factory
	provider     string
	defaultModel string
	models       []string
}

func New(newProvider llm.Factory, cfg config.LLMConfig) *Analyzer {
	models := cfg.Models
	if len(models) == 0 && cfg.Model != "" {
		models = []string{cfg.Model}
	}
	provider := strings.ToLower(cfg.Provider)
	if provider == "" {
		provider = llm.ProviderGroq
	}
	return &Analyzer{
		newProvider:  newProvider,
		provider:     provider,
		defaultModel: cfg.Model,
		models:       models,
	}
}

// Analyze validates the submission, runs the local heuristics and asks the
// provider for a refined prompt. It returns a *ValidationError when the input is
// rejected, in which case no provider is contacted, and a *ProviderError when
// the completion call fails.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	startTime := time.Now()
	requestID := middleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	model, err := a.validate(req)
	if err != nil {
		slog.Warn("Rejected analysis request", "requestId", requestID, "reason", err.Kind)
		return nil, err
	}

	analysis := heuristics.Analyze(req.Prompt)
	slog.Info("Starting analysis",
		"requestId", requestID,
		"domain", analysis.Domain,
		"pattern", analysis.Pattern,
		"score", analysis.Quality.Score,
		"temperature", analysis.Sampling.Temperature,
	)

	analysisPrompt, renderErr := RenderAnalysisPrompt(analysis.Domain, analysis.Pattern, analysis.Sampling)
	if renderErr != nil {
		return nil, fmt.Errorf("render analysis prompt: %w", renderErr)
	}

	llmResp, callErr := a.complete(ctx, req.APIKey, model, analysis, analysisPrompt, req.Prompt)
	if callErr != nil {
		slog.Error("Provider call failed", "requestId", requestID, "provider", a.provider, "error", callErr)
		return nil, callErr
	}

	html, mdErr := renderMarkdown(llmResp.Content)
	if mdErr != nil {
		// the verbatim text is still returned
		slog.Warn("Failed to render result markdown", "requestId", requestID, "error", mdErr)
	}

	slog.Info("Analysis completed", "requestId", requestID, "tokens", llmResp.Usage.TotalTokens, "duration", time.Since(startTime))

	return &apimodels.AnalysisResponse{
		Analysis:   analysis,
		Result:     llmResp.Content,
		ResultHTML: html,
		Metadata: apimodels.AnalysisMetadata{
			RequestID:    requestID,
			Duration:     time.Since(startTime).String(),
			Model:        model,
			Provider:     a.provider,
			FinishReason: llmResp.FinishReason,
			TokensUsed:   llmResp.Usage.TotalTokens,
		},
	}, nil
}

// Inspect runs only the local heuristics.
func (a *Analyzer) Inspect(req apimodels.InspectRequest) (*apimodels.InspectResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, newValidationError(EmptyPrompt)
	}
	return &apimodels.InspectResponse{Analysis: heuristics.Analyze(req.Prompt)}, nil
}

// Models reports the selectable models and the default.
func (a *Analyzer) Models() apimodels.ModelsResponse {
	return apimodels.ModelsResponse{
		Default: a.defaultModel,
		Models:  slices.Clone(a.models),
	}
}

func (a *Analyzer) validate(req apimodels.AnalysisRequest) (string, *ValidationError) {
	if strings.TrimSpace(req.APIKey) == "" {
		return "", newValidationError(MissingAPIKey)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", newValidationError(EmptyPrompt)
	}
	model := req.Model
	if model == "" {
		model = a.defaultModel
	}
	if !slices.Contains(a.models, model) {
		verr := newValidationError(UnsupportedModel)
		verr.Message = fmt.Sprintf("Unsupported model %q.", model)
		return "", verr
	}
	return model, nil
}

func (a *Analyzer) complete(ctx context.Context, apiKey, model string, analysis heuristics.Result, analysisPrompt, userPrompt string) (*llm.Response, error) {
	provider, err := a.newProvider(apiKey)
	if err != nil {
		return nil, &ProviderError{Provider: a.provider, Err: err}
	}

	resp, err := provider.Complete(
		ctx,
		[]string{SystemPrompt},
		[]string{BuildUserMessage(analysisPrompt, userPrompt)},
		llm.WithModel(model),
		llm.WithTemperature(analysis.Sampling.Temperature),
		llm.WithMaxTokens(analysis.Sampling.MaxTokens),
	)
	if err != nil {
		return nil, &ProviderError{Provider: provider.Name(), StatusCode: llm.StatusCode(err), Err: err}
	}
	return resp, nil
}
