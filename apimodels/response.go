package apimodels

import "github.com/sozercan/promptlens/internal/heuristics"

type AnalysisResponse struct {
	// Local heuristic analysis of the prompt
	Analysis heuristics.Result `json:"analysis" yaml:"analysis"`

	// The provider's output, verbatim
	Result string `json:"result" yaml:"result"`

	// Result rendered from markdown to HTML for display
	ResultHTML string `json:"resultHtml" yaml:"-"`

	// Metadata about the provider call
	Metadata AnalysisMetadata `json:"metadata" yaml:"metadata"`
}

type AnalysisMetadata struct {
	RequestID string `json:"requestId" yaml:"request_id"`

	// Time taken for analysis, including the provider call
	Duration string `json:"duration" yaml:"duration"`

	// Model requested for the completion
	Model string `json:"model" yaml:"model"`

	Provider     string `json:"provider" yaml:"provider"`
	FinishReason string `json:"finishReason,omitempty" yaml:"finish_reason,omitempty"`

	// Tokens used by the completion
	TokensUsed int64 `json:"tokensUsed" yaml:"tokens_used"`
}

type InspectResponse struct {
	Analysis heuristics.Result `json:"analysis" yaml:"analysis"`
}

type ModelsResponse struct {
	Default string   `json:"default"`
	Models  []string `json:"models"`
}

type ErrorResponse struct {
	Error string `json:"error"`

	// Kind is missing_api_key, empty_prompt, unsupported_model, provider or internal
	Kind string `json:"kind"`

	// Severity is error or warning
	Severity string `json:"severity"`
}
