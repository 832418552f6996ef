package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sozercan/promptlens/internal/analyzer"
	"github.com/sozercan/promptlens/internal/heuristics"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the domain and pattern tables used for classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), renderProfiles())
		return err
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func renderProfiles() string {
	domains := heuristics.Domains()
	domainRows := make([][]string, 0, len(domains))
	for _, d := range domains {
		domainRows = append(domainRows, []string{
			d.Name,
			strings.Join(d.Keywords, ", "),
			analyzer.FormatTemperature(d.Temperature),
		})
	}

	patterns := heuristics.Patterns()
	patternRows := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		patternRows = append(patternRows, []string{p.Name, analyzer.FormatTemperature(p.Temperature)})
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Domains") + "\n")
	b.WriteString(renderTable([]string{"Domain", "Keywords", "Temperature"}, domainRows, 3))
	b.WriteString("\n\n")
	b.WriteString(headingStyle.Render("Patterns") + "\n")
	b.WriteString(renderTable([]string{"Pattern", "Temperature"}, patternRows, 2))
	b.WriteString("\n")
	return b.String()
}
