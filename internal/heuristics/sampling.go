package heuristics

import "math"

const (
	// MaxTokens is the fixed output budget sent with every completion.
	MaxTokens int64 = 3000

	fallbackTemperature = 0.5
)

// SamplingConfig holds the generation parameters forwarded to the provider.
type SamplingConfig struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	MaxTokens   int64   `json:"maxTokens" yaml:"max_tokens"`
}

// BuildSamplingConfig averages the domain and pattern temperatures, rounded to
// two decimals. Unknown names contribute 0.5.
func BuildSamplingConfig(domain, pattern string) SamplingConfig {
	base := fallbackTemperature
	if d, ok := lookupDomain(domain); ok {
		base = d.Temperature
	}
	pat := fallbackTemperature
	if p, ok := lookupPattern(pattern); ok {
		pat = p.Temperature
	}
	return SamplingConfig{
		Temperature: roundTo(2, (base+pat)/2),
		MaxTokens:   MaxTokens,
	}
}

func roundTo(places int, v float64) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
