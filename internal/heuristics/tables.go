package heuristics

import "slices"

// DomainProfile is a topic category with its trigger keywords and default
// sampling temperature.
type DomainProfile struct {
	Name        string
	Keywords    []string
	Temperature float64
}

// PatternProfile is a named prompting style with its default sampling temperature.
type PatternProfile struct {
	Name        string
	Temperature float64
}

const (
	DomainCoding       = "coding"
	DomainDataAnalysis = "data_analysis"
	DomainCreative     = "creative"
	DomainResearch     = "research"
	DomainGeneral      = "general"
)

const (
	PatternZeroShot         = "Zero-Shot"
	PatternFewShot          = "Few-Shot"
	PatternChainOfThought   = "Chain-of-Thought"
	PatternRolePlay         = "Role-Play"
	PatternStructuredOutput = "Structured Output"
	PatternMetaPrompting    = "Meta-Prompting"
)

// domains is scored in slice order; on equal keyword counts the earlier entry wins.
var domains = []DomainProfile{
	{
		Name:        DomainCoding,
		Keywords:    []string{"code", "function", "debug", "python", "program"},
		Temperature: 0.1,
	},
	{
		Name:        DomainDataAnalysis,
		Keywords:    []string{"data", "analyze", "statistics", "trend"},
		Temperature: 0.2,
	},
	{
		Name:        DomainCreative,
		Keywords:    []string{"story", "write", "creative", "poem"},
		Temperature: 0.8,
	},
	{
		Name:        DomainResearch,
		Keywords:    []string{"research", "compare", "study", "analysis"},
		Temperature: 0.3,
	},
}

// patterns lists every known prompting pattern. Only Zero-Shot, Few-Shot and
// Chain-of-Thought can be produced by RecommendPattern; the rest are reachable
// through BuildSamplingConfig alone.
var patterns = []PatternProfile{
	{Name: PatternZeroShot, Temperature: 0.3},
	{Name: PatternFewShot, Temperature: 0.2},
	{Name: PatternChainOfThought, Temperature: 0.2},
	{Name: PatternRolePlay, Temperature: 0.4},
	{Name: PatternStructuredOutput, Temperature: 0.1},
	{Name: PatternMetaPrompting, Temperature: 0.5},
}

func lookupDomain(name string) (DomainProfile, bool) {
	for _, d := range domains {
		if d.Name == name {
			return d, true
		}
	}
	return DomainProfile{}, false
}

func lookupPattern(name string) (PatternProfile, bool) {
	for _, p := range patterns {
		if p.Name == name {
			return p, true
		}
	}
	return PatternProfile{}, false
}

// Domains returns a copy of the domain table in scoring order.
func Domains() []DomainProfile {
	out := make([]DomainProfile, len(domains))
	for i, d := range domains {
		d.Keywords = slices.Clone(d.Keywords)
		out[i] = d
	}
	return out
}

// Patterns returns a copy of the pattern table.
func Patterns() []PatternProfile {
	return slices.Clone(patterns)
}
