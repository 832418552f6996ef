package heuristics

import "strings"

const (
	IssueTooShort = "Too short – add more context."
	IssueNoFormat = "No output format specified."

	minWords      = 5
	maxScore      = 10
	minScore      = 1
	issuePenalty  = 2
	formatKeyword = "format"
)

// QualityReport lists the deficiencies found in a prompt and the resulting score.
type QualityReport struct {
	Issues []string `json:"issues" yaml:"issues"`
	Score  int      `json:"score" yaml:"score"`
}

// AnalyzeQuality applies the fixed textual checks to a prompt.
func AnalyzeQuality(prompt string) QualityReport {
	issues := []string{}
	if countWords(prompt) < minWords {
		issues = append(issues, IssueTooShort)
	}
	if !strings.Contains(foldText(prompt), formatKeyword) {
		issues = append(issues, IssueNoFormat)
	}
	return QualityReport{
		Issues: issues,
		Score:  ScoreFor(len(issues)),
	}
}

// ScoreFor maps an issue count to a score in [1,10]. With only two checks the
// lower clamp never triggers from AnalyzeQuality.
func ScoreFor(issueCount int) int {
	return max(minScore, maxScore-issuePenalty*issueCount)
}
