package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/sozercan/promptlens/apimodels"
	"github.com/sozercan/promptlens/internal/analyzer"
	"github.com/sozercan/promptlens/internal/heuristics"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0a800"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#28a745"))
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", format)
	}
}

func writeInspect(w io.Writer, format string, resp *apimodels.InspectResponse) error {
	if format != formatTable {
		return encode(w, format, resp)
	}
	_, err := io.WriteString(w, renderAnalysis(resp.Analysis))
	return err
}

func writeAnalysis(w io.Writer, format string, resp *apimodels.AnalysisResponse) error {
	if format != formatTable {
		return encode(w, format, resp)
	}

	var b strings.Builder
	b.WriteString(renderAnalysis(resp.Analysis))
	b.WriteString("\n")
	b.WriteString(headingStyle.Render("🎯 AI Analysis & Optimized Prompt") + "\n\n")
	b.WriteString(strings.TrimSpace(resp.Result) + "\n\n")
	b.WriteString(successStyle.Render(fmt.Sprintf("✔ Completed using %s | Pattern: %s | Domain: %s",
		resp.Metadata.Model, resp.Analysis.Pattern, resp.Analysis.Domain)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderAnalysis(res heuristics.Result) string {
	rows := [][]string{
		{"Domain", res.DomainLabel},
		{"Confidence", strconv.FormatFloat(res.Confidence, 'f', 2, 64)},
		{"Pattern", res.Pattern},
		{"Quality", fmt.Sprintf("%d/10", res.Quality.Score)},
		{"Temperature", analyzer.FormatTemperature(res.Sampling.Temperature)},
		{"Max tokens", strconv.FormatInt(res.Sampling.MaxTokens, 10)},
	}

	var b strings.Builder
	b.WriteString(renderTable([]string{"Metric", "Value"}, rows))
	b.WriteString("\n")
	if len(res.Quality.Issues) > 0 {
		b.WriteString(warningStyle.Render("⚠️ Issues detected:") + "\n")
		for _, issue := range res.Quality.Issues {
			b.WriteString("- " + issue + "\n")
		}
	}
	return b.String()
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validateFormat(format)
	}
}
