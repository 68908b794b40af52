// Package synthesis assembles the outputs of every pipeline stage into the
// final roadmap: three step-chain paths, a visualization graph, citations,
// and metadata.
package synthesis

import (
	"context"
	"fmt"
	"time"

	"github.com/careerpilot/roadmap-agent/internal/cost"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// Fixed synthesis parameters.
const (
	// Confidence reported in roadmap metadata.
	confidence = 0.85

	// Step sums that exceed the calculator total by more than this
	// fraction win the reconciliation.
	reconcileTolerance = 0.10

	// ROI scaling per archetype relative to the baseline path.
	fastestROIFactor  = 0.8
	prestigeROIFactor = 1.5
)

// Input collects every stage output the synthesizer needs.
type Input struct {
	Profile        *types.Profile
	Pathway        *types.PathwayResult
	Costs          *types.CostResult
	Salary         *types.SalaryResult
	Recommendation *types.Recommendation
}

// Synthesizer builds roadmaps. The calculator is used to price graduate
// degree steps requested via profile goals.
type Synthesizer struct {
	calc *cost.Calculator
}

// New builds a synthesizer.
func New(calc *cost.Calculator) *Synthesizer {
	return &Synthesizer{calc: calc}
}

// Build assembles the roadmap. Failures here are internal errors; every
// upstream degradation has already been absorbed by earlier stages.
func (s *Synthesizer) Build(ctx context.Context, in Input) (*types.Roadmap, error) {
	if in.Profile == nil || in.Pathway == nil || in.Costs == nil || in.Salary == nil {
		return nil, &SynthesisError{Message: "missing stage output"}
	}

	cheapest, err := s.buildPath(ctx, in, types.PathCheapest, "Most Affordable Path",
		&in.Costs.Cheapest, in.Salary.ROIYears)
	if err != nil {
		return nil, err
	}
	fastest, err := s.buildPath(ctx, in, types.PathFastest, "Fastest Path",
		&in.Costs.Fastest, in.Salary.ROIYears*fastestROIFactor)
	if err != nil {
		return nil, err
	}
	prestige, err := s.buildPath(ctx, in, types.PathPrestige, "Prestige Path",
		&in.Costs.Prestige, in.Salary.ROIYears*prestigeROIFactor)
	if err != nil {
		return nil, err
	}

	nodes, edges := buildGraph(in.Profile, in.Pathway)

	return &types.Roadmap{
		Paths: map[string]types.Path{
			types.PathCheapest: *cheapest,
			types.PathFastest:  *fastest,
			types.PathPrestige: *prestige,
		},
		Nodes:     nodes,
		Edges:     edges,
		Citations: in.Pathway.Citations,
		Metadata: types.Metadata{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Confidence:  confidence,
			Career:      in.Profile.Career,
			Category:    in.Profile.Category,
			SalaryOutlook: types.SalaryOutlook{
				MedianSalary: in.Salary.MedianSalary,
				GrowthRate:   in.Salary.GrowthRate,
				Outlook:      in.Salary.Outlook,
			},
		},
	}, nil
}

// buildPath assembles one path: the step chain, the reconciled total, and
// the summed duration.
func (s *Synthesizer) buildPath(ctx context.Context, in Input, pathID, name string, breakdown *types.CostBreakdown, roi float64) (*types.Path, error) {
	institution := breakdown.Institution
	if in.Recommendation != nil {
		if pick, ok := in.Recommendation.Picks()[pathID]; ok && pick.University != "" {
			institution = pick.University
		}
	}

	steps, err := s.buildSteps(ctx, in, pathID, institution, breakdown)
	if err != nil {
		return nil, err
	}

	// Prefer the step sum when goals added after cost calculation push it
	// well past the calculator total.
	var stepSum float64
	for _, step := range steps {
		stepSum += step.Cost
	}
	total := breakdown.Total
	if stepSum > total*(1+reconcileTolerance) {
		total = stepSum
	}

	duration := sumDurations(steps)
	if duration <= 0 {
		duration = 4
	}

	return &types.Path{
		ID:        pathID,
		Name:      name,
		TotalCost: total,
		Duration:  formatYears(duration),
		Steps:     steps,
		ROIYears:  roi,
	}, nil
}

// SynthesisError is an unexpected failure during final assembly. It is the
// only pipeline error surfaced to callers as an internal error.
type SynthesisError struct {
	Message string
	Cause   error
}

func (e *SynthesisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("synthesis failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("synthesis failed: %s", e.Message)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}
