package heuristics

import "strings"

// RecommendPattern picks a prompting pattern from literal phrases in the prompt.
// The domain is accepted for future rules but does not affect the result today.
func RecommendPattern(_ string, prompt string) string {
	lowered := foldText(prompt)
	switch {
	case strings.Contains(lowered, "step by step"):
		return PatternChainOfThought
	case strings.Contains(lowered, "example"):
		return PatternFewShot
	default:
		return PatternZeroShot
	}
}
