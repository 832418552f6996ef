package analyzer

import (
	"fmt"

	"github.com/sozercan/promptlens/internal/llm"
)

type ValidationKind string

const (
	MissingAPIKey    ValidationKind = "missing_api_key"
	EmptyPrompt      ValidationKind = "empty_prompt"
	UnsupportedModel ValidationKind = "unsupported_model"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationError rejects a submission before any analysis or provider call.
type ValidationError struct {
	Kind     ValidationKind
	Severity string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ValidationKind) *ValidationError {
	switch kind {
	case MissingAPIKey:
		return &ValidationError{Kind: kind, Severity: SeverityError, Message: "Please enter your Groq API key."}
	case EmptyPrompt:
		return &ValidationError{Kind: kind, Severity: SeverityWarning, Message: "Please enter a prompt."}
	default:
		return &ValidationError{Kind: kind, Severity: SeverityError, Message: "Unsupported model."}
	}
}

// ProviderError wraps any failure of the outbound completion call: network,
// authentication, quota or a malformed response.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API Error: %v", providerDisplayName(e.Provider), e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func providerDisplayName(provider string) string {
	switch provider {
	case llm.ProviderOpenAI:
		return "OpenAI"
	case llm.ProviderAzure:
		return "Azure OpenAI"
	default:
		return "Groq"
	}
}
