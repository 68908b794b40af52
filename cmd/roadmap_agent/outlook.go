package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerpilot/roadmap-agent/internal/datasource"
	"github.com/careerpilot/roadmap-agent/internal/observability"
	"github.com/careerpilot/roadmap-agent/internal/salary"
	"github.com/careerpilot/roadmap-agent/internal/seed"
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Estimate salary outlook for a career",
	Long:  "Runs only the salary outlook stage: live Bureau of Labor Statistics data when reachable, seed tables otherwise. Optionally reports years to recoup an education cost.",
	RunE:  runOutlookCmd,
}

var (
	outlookCareer string
	outlookCost   float64
	outlookYears  float64
	outlookJSON   bool
)

func init() {
	outlookCmd.Flags().StringVar(&outlookCareer, "career", "", "Target career (required)")
	outlookCmd.Flags().Float64Var(&outlookCost, "cost", 0, "Education cost to compute a payback horizon for")
	outlookCmd.Flags().Float64Var(&outlookYears, "years", 4, "Years in school while earning nothing")
	outlookCmd.Flags().BoolVar(&outlookJSON, "json", false, "Print the salary result as JSON instead of formatted output")

	if err := outlookCmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}

	rootCmd.AddCommand(outlookCmd)
}

func runOutlookCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	estimator := salary.NewEstimator(seed.MustLoad(), datasource.NewBLSClient())
	result := estimator.Estimate(ctx, outlookCareer)

	if outlookCost > 0 {
		result.ROIYears = salary.ROIYears(result.MedianSalary, outlookCost, outlookYears)
	}

	if outlookJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal salary result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintSalary(result)
	return nil
}
