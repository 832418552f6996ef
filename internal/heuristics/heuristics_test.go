package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDomain(t *testing.T) {
	tests := []struct {
		name           string
		prompt         string
		wantDomain     string
		wantConfidence float64
	}{
		{
			name:           "no keywords falls back to general",
			prompt:         "Tell me about the weather tomorrow",
			wantDomain:     DomainGeneral,
			wantConfidence: 0.5,
		},
		{
			name:           "empty prompt",
			prompt:         "",
			wantDomain:     DomainGeneral,
			wantConfidence: 0.5,
		},
		{
			name:           "single coding keyword",
			prompt:         "fix this code",
			wantDomain:     DomainCoding,
			wantConfidence: 1.0 / 3,
		},
		{
			name:           "two coding keywords",
			prompt:         "debug my python script",
			wantDomain:     DomainCoding,
			wantConfidence: 2.0 / 3,
		},
		{
			name:           "confidence capped at one",
			prompt:         "debug the python code in this function",
			wantDomain:     DomainCoding,
			wantConfidence: 1.0,
		},
		{
			name:           "matching is case insensitive",
			prompt:         "Write a POEM",
			wantDomain:     DomainCreative,
			wantConfidence: 2.0 / 3,
		},
		{
			name:           "keywords match as substrings",
			prompt:         "summarize the trending topics",
			wantDomain:     DomainDataAnalysis,
			wantConfidence: 1.0 / 3,
		},
		{
			name:           "highest count wins",
			prompt:         "write a story and compare it",
			wantDomain:     DomainCreative,
			wantConfidence: 2.0 / 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, confidence := DetectDomain(tt.prompt)
			assert.Equal(t, tt.wantDomain, domain)
			assert.InDelta(t, tt.wantConfidence, confidence, 1e-9)
		})
	}
}

func TestDetectDomainTieKeepsTableOrder(t *testing.T) {
	// Table order is coding, data_analysis, creative, research.
	order := make([]string, 0, len(Domains()))
	for _, d := range Domains() {
		order = append(order, d.Name)
	}
	assert.Equal(t, []string{DomainCoding, DomainDataAnalysis, DomainCreative, DomainResearch}, order)

	tests := []struct {
		prompt string
		want   string
	}{
		{prompt: "debug this story", want: DomainCoding},
		{prompt: "write a study", want: DomainCreative},
		{prompt: "statistics research", want: DomainDataAnalysis},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			domain, confidence := DetectDomain(tt.prompt)
			assert.Equal(t, tt.want, domain)
			assert.InDelta(t, 1.0/3, confidence, 1e-9)
		})
	}
}

func TestDetectDomainDottedCapitalI(t *testing.T) {
	domain, confidence := DetectDomain("FUNCTİON")
	assert.Equal(t, DomainGeneral, domain)
	assert.InDelta(t, 0.5, confidence, 1e-9)

	domain, _ = DetectDomain("FUNCTION")
	assert.Equal(t, DomainCoding, domain)

	assert.Equal(t, "i̇stanbul", foldText("İSTANBUL"))
}

func TestTablesReturnCopies(t *testing.T) {
	d := Domains()
	d[0].Name = "mutated"
	d[0].Keywords[0] = "mutated"
	p := Patterns()
	p[0].Temperature = 9

	assert.Equal(t, DomainCoding, Domains()[0].Name)
	assert.Equal(t, "code", Domains()[0].Keywords[0])
	assert.InDelta(t, 0.3, Patterns()[0].Temperature, 1e-9)

	domain, _ := DetectDomain("some code")
	assert.Equal(t, DomainCoding, domain)
}

func TestDomainLabel(t *testing.T) {
	assert.Equal(t, "Data Analysis", DomainLabel(DomainDataAnalysis))
	assert.Equal(t, "Coding", DomainLabel(DomainCoding))
	assert.Equal(t, "General", DomainLabel(DomainGeneral))
}

func TestAnalyzeQuality(t *testing.T) {
	t.Run("short prompt without format", func(t *testing.T) {
		report := AnalyzeQuality("hi")
		assert.Equal(t, []string{IssueTooShort, IssueNoFormat}, report.Issues)
		assert.Equal(t, 6, report.Score)
	})

	t.Run("long prompt with format", func(t *testing.T) {
		report := AnalyzeQuality("Explain anomaly detection in machine learning using a clear format")
		assert.Empty(t, report.Issues)
		assert.Equal(t, 10, report.Score)
	})

	t.Run("long prompt without format", func(t *testing.T) {
		report := AnalyzeQuality("Explain anomaly detection in machine learning")
		assert.Equal(t, []string{IssueNoFormat}, report.Issues)
		assert.Equal(t, 8, report.Score)
	})

	t.Run("short prompt with format", func(t *testing.T) {
		report := AnalyzeQuality("JSON FORMAT please")
		assert.Equal(t, []string{IssueTooShort}, report.Issues)
		assert.Equal(t, 8, report.Score)
	})

	t.Run("words are whitespace delimited", func(t *testing.T) {
		report := AnalyzeQuality("  one\ttwo\nthree   four five  format")
		assert.Empty(t, report.Issues)
	})

	t.Run("information separators split words", func(t *testing.T) {
		report := AnalyzeQuality("\x1c Step By Step compare")
		assert.Equal(t, []string{IssueTooShort, IssueNoFormat}, report.Issues)
		assert.Equal(t, 6, report.Score)

		report = AnalyzeQuality("one\x1ftwo\x1dthree\x1efour\x1cfive format")
		assert.Empty(t, report.Issues)
	})

	t.Run("issues never nil", func(t *testing.T) {
		report := AnalyzeQuality("Explain anomaly detection in machine learning using a clear format")
		assert.NotNil(t, report.Issues)
	})
}

func TestScoreFor(t *testing.T) {
	assert.Equal(t, 10, ScoreFor(0))
	assert.Equal(t, 8, ScoreFor(1))
	assert.Equal(t, 6, ScoreFor(2))
	// Not reachable from AnalyzeQuality, which reports at most two issues.
	assert.Equal(t, 2, ScoreFor(4))
	assert.Equal(t, 1, ScoreFor(5))
	assert.Equal(t, 1, ScoreFor(12))
}

func TestRecommendPattern(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{prompt: "Give me an example first", want: PatternFewShot},
		{prompt: "solve step by step", want: PatternChainOfThought},
		{prompt: "Show an EXAMPLE and work Step By Step", want: PatternChainOfThought},
		{prompt: "Summarize this article", want: PatternZeroShot},
		{prompt: "", want: PatternZeroShot},
		{prompt: "step-by-step guide", want: PatternZeroShot},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			for _, d := range []string{DomainCoding, DomainGeneral, ""} {
				assert.Equal(t, tt.want, RecommendPattern(d, tt.prompt))
			}
		})
	}
}

func TestBuildSamplingConfig(t *testing.T) {
	tests := []struct {
		domain  string
		pattern string
		want    float64
	}{
		{domain: DomainCoding, pattern: PatternStructuredOutput, want: 0.10},
		{domain: DomainCoding, pattern: PatternZeroShot, want: 0.20},
		{domain: DomainDataAnalysis, pattern: PatternFewShot, want: 0.20},
		{domain: DomainResearch, pattern: PatternChainOfThought, want: 0.25},
		{domain: DomainCreative, pattern: PatternMetaPrompting, want: 0.65},
		{domain: DomainCreative, pattern: PatternRolePlay, want: 0.60},
		{domain: DomainGeneral, pattern: PatternZeroShot, want: 0.40},
		{domain: "unknown", pattern: "unknown", want: 0.50},
		{domain: DomainCoding, pattern: PatternFewShot, want: 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.domain+"/"+tt.pattern, func(t *testing.T) {
			cfg := BuildSamplingConfig(tt.domain, tt.pattern)
			assert.InDelta(t, tt.want, cfg.Temperature, 1e-9)
			assert.Equal(t, int64(3000), cfg.MaxTokens)
		})
	}
}

func TestAnalyze(t *testing.T) {
	res := Analyze("Write a short story, step by step")
	assert.Equal(t, DomainCreative, res.Domain)
	assert.Equal(t, "Creative", res.DomainLabel)
	assert.InDelta(t, 2.0/3, res.Confidence, 1e-9)
	assert.Equal(t, PatternChainOfThought, res.Pattern)
	assert.InDelta(t, 0.5, res.Sampling.Temperature, 1e-9)
	assert.Equal(t, MaxTokens, res.Sampling.MaxTokens)
	assert.Equal(t, []string{IssueNoFormat}, res.Quality.Issues)
	assert.Equal(t, 8, res.Quality.Score)
}
