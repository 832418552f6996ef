package analyzer

import (
	_ "embed"
	"strconv"
	"strings"
	"text/template"

	"github.com/sozercan/promptlens/internal/heuristics"
)

const (
	SystemPrompt = "You are an expert Prompt Engineer."

	userPromptSeparator = "\n\nUSER PROMPT:\n"
)

//go:embed templates/refine.tmpl
var refineTemplateText string

var refineTemplate = template.Must(template.New("refine").Option("missingkey=error").Parse(refineTemplateText))

type refineData struct {
	Domain      string
	Pattern     string
	Temperature string
}

// RenderAnalysisPrompt fills the refinement instructions with the computed
// domain, pattern and temperature.
func RenderAnalysisPrompt(domain, pattern string, cfg heuristics.SamplingConfig) (string, error) {
	var b strings.Builder
	err := refineTemplate.Execute(&b, refineData{
		Domain:      domain,
		Pattern:     pattern,
		Temperature: FormatTemperature(cfg.Temperature),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// BuildUserMessage appends the raw prompt to the rendered instructions.
func BuildUserMessage(analysisPrompt, userPrompt string) string {
	return analysisPrompt + userPromptSeparator + userPrompt
}

// FormatTemperature prints the shortest decimal form, e.g. 0.1 or 0.15.
func FormatTemperature(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
