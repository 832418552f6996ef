package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sozercan/promptlens/internal/analyzer"
	"github.com/sozercan/promptlens/internal/llm"
	"github.com/sozercan/promptlens/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser UI and JSON API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a := analyzer.New(llm.NewFactory(cfg.LLM), cfg.LLM)

	srv, err := server.New(*cfg, a)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	return srv.Run()
}
