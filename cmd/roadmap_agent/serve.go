package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerpilot/roadmap-agent/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating roadmaps and inspecting persisted runs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Both integrations are optional: without a database nothing is
	// persisted, and without a Gemini key every generative stage uses
	// its deterministic fallback.
	databaseURL := os.Getenv("DATABASE_URL")
	apiKey := os.Getenv("GEMINI_API_KEY")

	if databaseURL == "" {
		fmt.Println("Warning: DATABASE_URL not set, run persistence disabled")
	}
	if apiKey == "" {
		fmt.Println("Warning: GEMINI_API_KEY not set, running with deterministic fallbacks")
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		APIKey:      apiKey,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
