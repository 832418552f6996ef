// Package heuristics holds the keyword-based prompt classification: domain
// detection, quality scoring, pattern recommendation and sampling configuration.
// Every function here is pure and safe for concurrent use.
package heuristics

// Result is the complete local analysis of a single prompt.
type Result struct {
	Domain      string         `json:"domain" yaml:"domain"`
	DomainLabel string         `json:"domainLabel" yaml:"domain_label"`
	Confidence  float64        `json:"confidence" yaml:"confidence"`
	Quality     QualityReport  `json:"quality" yaml:"quality"`
	Pattern     string         `json:"pattern" yaml:"pattern"`
	Sampling    SamplingConfig `json:"sampling" yaml:"sampling"`
}

// Analyze runs every heuristic over the prompt in order.
func Analyze(prompt string) Result {
	domain, confidence := DetectDomain(prompt)
	pattern := RecommendPattern(domain, prompt)
	return Result{
		Domain:      domain,
		DomainLabel: DomainLabel(domain),
		Confidence:  confidence,
		Quality:     AnalyzeQuality(prompt),
		Pattern:     pattern,
		Sampling:    BuildSamplingConfig(domain, pattern),
	}
}
