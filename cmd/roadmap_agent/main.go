// Package main provides the entry point for the career roadmap planner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roadmap_agent",
	Short: "Career Roadmap Planner",
	Long:  "Career Roadmap Planner turns a student intake quiz into a multi-path education roadmap with transfer pathways, cost breakdowns, and salary outlook, served via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
