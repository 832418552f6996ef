package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sozercan/promptlens/apimodels"
	"github.com/sozercan/promptlens/internal/analyzer"
	"github.com/sozercan/promptlens/internal/llm"
)

var analyzeFlags struct {
	apiKey string
	model  string
	dryRun bool
	output string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [prompt...]",
	Short: "Analyze a prompt and request a refined version",
	Long: `Analyze a prompt and request a refined version from the configured provider.

The prompt is taken from the arguments, or read from stdin when stdin is not a
terminal. With --dry-run only the local heuristics run and no API key is needed.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.apiKey, "api-key", "", "provider API key (default from GROQ_API_KEY or config)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.model, "model", "", "model to use (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.dryRun, "dry-run", false, "run local analysis only")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.output, "output", "o", formatTable, "output format: table, json, yaml")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := validateFormat(analyzeFlags.output); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prompt, err := readPrompt(args, cmd.InOrStdin(), stdinIsTerminal())
	if err != nil {
		return err
	}

	a := analyzer.New(llm.NewFactory(cfg.LLM), cfg.LLM)
	out := cmd.OutOrStdout()

	if analyzeFlags.dryRun {
		resp, err := a.Inspect(apimodels.InspectRequest{Prompt: prompt})
		if err != nil {
			return err
		}
		return writeInspect(out, analyzeFlags.output, resp)
	}

	apiKey := analyzeFlags.apiKey
	if apiKey == "" {
		apiKey = cfg.LLM.APIKey
	}

	resp, err := a.Analyze(cmd.Context(), apimodels.AnalysisRequest{
		Prompt: prompt,
		APIKey: apiKey,
		Model:  analyzeFlags.model,
	})
	if err != nil {
		return err
	}
	return writeAnalysis(out, analyzeFlags.output, resp)
}

func readPrompt(args []string, stdin io.Reader, interactive bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if interactive {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read prompt from stdin: %w", err)
	}
	return string(data), nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
