package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerpilot/roadmap-agent/internal/datasource"
	"github.com/careerpilot/roadmap-agent/internal/observability"
	"github.com/careerpilot/roadmap-agent/internal/pathway"
	"github.com/careerpilot/roadmap-agent/internal/profiling"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

var pathwaysCmd = &cobra.Command{
	Use:   "pathways",
	Short: "Research education pathways for a career",
	Long:  "Runs only the pathway research stage: seed tables first, then live search when credentials are configured, then the category fallback. Prints the ranked transfer options.",
	RunE:  runPathwaysCmd,
}

var (
	pathwaysCareer          string
	pathwaysLocation        string
	pathwaysAPIKey          string
	pathwaysJSON            bool
	pathwaysEnrichCitations bool
	pathwaysRenderJS        bool
)

func init() {
	pathwaysCmd.Flags().StringVar(&pathwaysCareer, "career", "", "Target career (required)")
	pathwaysCmd.Flags().StringVar(&pathwaysLocation, "location", "miami", "Location preference (miami, florida, anywhere)")
	pathwaysCmd.Flags().StringVar(&pathwaysAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	pathwaysCmd.Flags().BoolVar(&pathwaysJSON, "json", false, "Print the pathway result as JSON instead of formatted output")
	pathwaysCmd.Flags().BoolVar(&pathwaysEnrichCitations, "enrich-citations", false, "Fetch cited pages to resolve their titles")
	pathwaysCmd.Flags().BoolVar(&pathwaysRenderJS, "render-js", false, "Render JavaScript-heavy catalog pages in a headless browser (requires Chrome)")

	if err := pathwaysCmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}

	rootCmd.AddCommand(pathwaysCmd)
}

func runPathwaysCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profile := &types.Profile{
		Career:   pathwaysCareer,
		Category: profiling.Categorize(pathwaysCareer),
		Constraints: types.Constraints{
			Location: pathwaysLocation,
		},
	}

	tables := seed.MustLoad()
	client := optionalLLMClient(ctx, pathwaysAPIKey)

	researcher := pathway.NewResearcher(tables, datasource.NewSearchClient(), client)
	researcher.EnrichCitations = pathwaysEnrichCitations
	researcher.RenderJS = pathwaysRenderJS

	result, err := researcher.Research(ctx, profile)
	if err != nil {
		return fmt.Errorf("pathway research failed: %w", err)
	}

	if pathwaysJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal pathway result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintPathway(result)
	return nil
}
