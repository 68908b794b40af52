package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerpilot/roadmap-agent/internal/llm"
	"github.com/careerpilot/roadmap-agent/internal/observability"
	"github.com/careerpilot/roadmap-agent/internal/profiling"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract a student profile from a quiz",
	Long:  "Runs only the profiling stage: quiz answers in, structured profile with constraints, preferences, and advisory flags out.",
	RunE:  runProfileCmd,
}

var (
	profileQuizPath string
	profileAPIKey   string
	profileJSON     bool
)

func init() {
	profileCmd.Flags().StringVarP(&profileQuizPath, "quiz", "q", "", "Path to quiz answers JSON file (required)")
	profileCmd.Flags().StringVar(&profileAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Print the profile as JSON instead of formatted output")

	if err := profileCmd.MarkFlagRequired("quiz"); err != nil {
		panic(fmt.Sprintf("failed to mark quiz flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfileCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(profileQuizPath)
	if err != nil {
		return fmt.Errorf("failed to read quiz file: %w", err)
	}

	var quiz types.QuizInput
	if err := json.Unmarshal(data, &quiz); err != nil {
		return fmt.Errorf("failed to parse quiz JSON: %w", err)
	}
	if err := quiz.Validate(); err != nil {
		return fmt.Errorf("quiz validation failed: %w", err)
	}

	client := optionalLLMClient(ctx, profileAPIKey)

	profile, err := profiling.ExtractProfile(ctx, client, &quiz)
	if err != nil {
		return fmt.Errorf("profiling failed: %w", err)
	}

	if profileJSON {
		out, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintProfile(profile)
	return nil
}

// optionalLLMClient builds a Gemini client when a key is available.
// Stage commands degrade to their deterministic fallbacks without one.
func optionalLLMClient(ctx context.Context, apiKey string) llm.Client {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		fmt.Printf("Warning: Failed to create Gemini client: %v\n", err)
		return nil
	}
	return client
}
