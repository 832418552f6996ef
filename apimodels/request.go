package apimodels

type AnalysisRequest struct {
	// Prompt is the raw user-written prompt to analyze and refine
	Prompt string `json:"prompt"`

	// APIKey authenticates the provider call; it is never stored or logged
	APIKey string `json:"apiKey"`

	// Model selects one of the configured models; empty means the default
	Model string `json:"model,omitempty"`
}

type InspectRequest struct {
	// Prompt is analyzed locally without contacting the provider
	Prompt string `json:"prompt"`
}
