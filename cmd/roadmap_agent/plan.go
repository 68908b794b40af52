package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerpilot/roadmap-agent/internal/config"
	"github.com/careerpilot/roadmap-agent/internal/pipeline"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the full roadmap pipeline end-to-end",
	Long: `Runs every pipeline stage for one quiz: profiling -> pathway research -> cost estimation -> salary outlook -> recommendation -> synthesis.

The quiz can come from a JSON file (--quiz) or be assembled from flags. Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runPlanCmd,
}

var (
	planConfigPath      string
	planQuizPath        string
	planCareer          string
	planEducation       string
	planGPA             float64
	planBudget          string
	planTimeline        string
	planLocation        string
	planGoals           []string
	planWorkSchedule    string
	planOutput          string
	planAPIKey          string
	planDatabaseURL     string
	planVerbose         bool
	planEnrichCitations bool
	planRenderJS        bool
)

func init() {
	// Config file flag (processed first)
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	planCmd.Flags().StringVarP(&planQuizPath, "quiz", "q", "", "Path to quiz answers JSON file (mutually exclusive with the quiz flags below)")
	planCmd.Flags().StringVar(&planCareer, "career", "", "Target career (e.g. \"software engineer\")")
	planCmd.Flags().StringVar(&planEducation, "education", "hs", "Current education level (hs, some_college, aa, ba)")
	planCmd.Flags().Float64Var(&planGPA, "gpa", 0, "Current GPA on a 4.0 scale")
	planCmd.Flags().StringVar(&planBudget, "budget", "medium", "Budget band (low, medium, high)")
	planCmd.Flags().StringVar(&planTimeline, "timeline", "normal", "Timeline preference (fast, normal, flexible)")
	planCmd.Flags().StringVar(&planLocation, "location", "miami", "Location preference (miami, florida, anywhere)")
	planCmd.Flags().StringSliceVar(&planGoals, "goals", nil, "Optional goals (e.g. masters, phd, internship, research)")
	planCmd.Flags().StringVar(&planWorkSchedule, "work-schedule", "", "Study schedule (full-time-student, part-time-student)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Write the roadmap JSON to this path instead of stdout")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed debug information")
	planCmd.Flags().BoolVar(&planEnrichCitations, "enrich-citations", false, "Fetch cited pages to resolve their titles")
	planCmd.Flags().BoolVar(&planRenderJS, "render-js", false, "Render JavaScript-heavy catalog pages in a headless browser (requires Chrome)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	planCmd.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	planCmd.Flags().StringVar(&planDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(planCmd)
}

func runPlanCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if planConfigPath != "" {
		loadedCfg, err := config.LoadConfig(planConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if planVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", planConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("quiz") {
		cfg.Quiz = planQuizPath
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = planOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = planAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = planDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = planVerbose
	}
	if cmd.Flags().Changed("enrich-citations") {
		cfg.EnrichCitations = planEnrichCitations
	}
	if cmd.Flags().Changed("render-js") {
		cfg.RenderJS = planRenderJS
	}

	// Step 3: Fall back to environment for credentials
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 4: Assemble the quiz
	quiz, err := loadQuiz(cfg.Quiz)
	if err != nil {
		return err
	}

	// Step 5: Run the pipeline
	deps := pipeline.NewDeps()
	roadmap, err := pipeline.Run(ctx, deps, quiz, pipeline.RunOptions{
		APIKey:          cfg.APIKey,
		DatabaseURL:     cfg.DatabaseURL,
		Verbose:         cfg.Verbose,
		EnrichCitations: cfg.EnrichCitations,
		RenderJS:        cfg.RenderJS,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	return writeRoadmap(roadmap, cfg.Output)
}

// loadQuiz builds the quiz input from a JSON file or from the quiz flags.
func loadQuiz(quizPath string) (*types.QuizInput, error) {
	if quizPath != "" {
		data, err := os.ReadFile(quizPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read quiz file: %w", err)
		}
		var quiz types.QuizInput
		if err := json.Unmarshal(data, &quiz); err != nil {
			return nil, fmt.Errorf("failed to parse quiz JSON: %w", err)
		}
		return &quiz, nil
	}

	if planCareer == "" {
		return nil, fmt.Errorf("either --quiz or --career is required")
	}

	quiz := &types.QuizInput{
		Career:           planCareer,
		CurrentEducation: planEducation,
		GPA:              planGPA,
		Budget:           planBudget,
		Timeline:         planTimeline,
		Location:         planLocation,
		Goals:            planGoals,
		WorkSchedule:     planWorkSchedule,
	}
	return quiz, nil
}

// writeRoadmap writes the roadmap JSON to a file or stdout.
func writeRoadmap(roadmap *types.Roadmap, output string) error {
	data, err := json.MarshalIndent(roadmap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write roadmap: %w", err)
	}
	fmt.Printf("Roadmap written to %s\n", output)
	return nil
}
