package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/careerpilot/roadmap-agent/internal/pipeline"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [quiz files...]",
	Short: "Generate roadmaps for multiple quizzes concurrently",
	Long: `Runs the full pipeline once per quiz file. Each pipeline run is sequential internally; runs for different quizzes execute concurrently up to --concurrency.

Quiz files can be given as arguments or discovered with --dir (every .json file in the directory).`,
	RunE: runBatchCmd,
}

var (
	batchDir         string
	batchOutDir      string
	batchConcurrency int
	batchAPIKey      string
	batchDatabaseURL string
)

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "Directory of quiz JSON files (alternative to positional arguments)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", ".", "Directory to write roadmap JSON files to")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum concurrent pipeline runs")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(_ *cobra.Command, args []string) error {
	files, err := collectQuizFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no quiz files found (pass files as arguments or use --dir)")
	}

	if batchConcurrency <= 0 {
		return fmt.Errorf("concurrency must be greater than 0, got %d", batchConcurrency)
	}

	apiKey := batchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	databaseURL := batchDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// One dependency set is shared across all runs; none of its fields
	// hold per-request state.
	deps := pipeline.NewDeps()
	ctx := context.Background()

	// A failed quiz must not abort the others, so goroutines report
	// failures through the channel instead of returning errors.
	failures := make(chan string, len(files))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	for _, file := range files {
		g.Go(func() error {
			if err := runOneQuiz(ctx, deps, file, apiKey, databaseURL); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				failures <- file
			}
			return nil
		})
	}

	_ = g.Wait()
	close(failures)

	failed := 0
	for range failures {
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d quizzes failed", failed, len(files))
	}
	return nil
}

func runOneQuiz(ctx context.Context, deps *pipeline.Deps, file, apiKey, databaseURL string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	var quiz types.QuizInput
	if err := json.Unmarshal(data, &quiz); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}

	roadmap, err := pipeline.Run(ctx, deps, &quiz, pipeline.RunOptions{
		APIKey:      apiKey,
		DatabaseURL: databaseURL,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed for %s: %w", file, err)
	}

	outPath := filepath.Join(batchOutDir, outputName(file))
	out, err := json.MarshalIndent(roadmap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap for %s: %w", file, err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Roadmap written to %s\n", outPath)
	return nil
}

// collectQuizFiles merges positional arguments with --dir discovery.
func collectQuizFiles(args []string) ([]string, error) {
	files := append([]string{}, args...)

	if batchDir != "" {
		entries, err := os.ReadDir(batchDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", batchDir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			files = append(files, filepath.Join(batchDir, entry.Name()))
		}
	}

	return files, nil
}

// outputName derives the output filename from the quiz filename.
func outputName(quizFile string) string {
	base := filepath.Base(quizFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".roadmap.json"
}
