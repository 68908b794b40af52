package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careerpilot/roadmap-agent/internal/cost"
	"github.com/careerpilot/roadmap-agent/internal/datasource"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Estimate the cost of attendance for one institution",
	Long:  "Runs only the cost estimation stage for a single institution and degree level, using seed tables and the College Scorecard when an API key is configured.",
	RunE:  runCostsCmd,
}

var (
	costsInstitution string
	costsResidency   string
	costsYears       float64
	costsFeederYears float64
	costsLevel       string
	costsAccelerated bool
)

func init() {
	costsCmd.Flags().StringVar(&costsInstitution, "institution", "", "Institution name (required)")
	costsCmd.Flags().StringVar(&costsResidency, "residency", cost.ResidencyInState, "Residency (in-state, out-of-state)")
	costsCmd.Flags().Float64Var(&costsYears, "years", 2, "Years at the institution")
	costsCmd.Flags().Float64Var(&costsFeederYears, "feeder-years", 0, "Years at the community college feeder first")
	costsCmd.Flags().StringVar(&costsLevel, "level", string(types.DegreeBachelor), "Degree level (bachelor, master, doctorate)")
	costsCmd.Flags().BoolVar(&costsAccelerated, "accelerated", false, "Apply the accelerated timeline premium")

	if err := costsCmd.MarkFlagRequired("institution"); err != nil {
		panic(fmt.Sprintf("failed to mark institution flag as required: %v", err))
	}

	rootCmd.AddCommand(costsCmd)
}

func runCostsCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	calc := cost.NewCalculator(seed.MustLoad(), datasource.NewScorecardClient())

	breakdown, err := calc.Estimate(ctx, cost.Request{
		Institution: costsInstitution,
		Residency:   costsResidency,
		Years:       costsYears,
		FeederYears: costsFeederYears,
		Level:       types.DegreeLevel(costsLevel),
		Accelerated: costsAccelerated,
	})
	if err != nil {
		return fmt.Errorf("cost estimation failed: %w", err)
	}

	out, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cost breakdown: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
