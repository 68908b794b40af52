// Package advisor selects one university per path archetype. The generative
// advisor asks the LLM to pick; its output is accepted only after schema and
// semantic validation. The deterministic fallback ranks and picks directly
// from the candidate list and is always available.
package advisor

import (
	"context"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

// maxCandidates caps how many ranked institutions are offered to an advisor.
const maxCandidates = 8

// maxEstimatedCost bounds an acceptable per-path cost estimate.
const maxEstimatedCost = 500000.0

// Candidate is one ranked institution offered to an advisor, with its cost
// components already resolved.
type Candidate struct {
	University    string  `json:"university"`
	Tier          int     `json:"tier"`
	Score         int     `json:"score"`
	InRegion      bool    `json:"in_region"`
	TuitionYear   float64 `json:"tuition_per_year"`
	EstimatedCost float64 `json:"estimated_cost"`
	DurationYears float64 `json:"duration_years"`
}

// Advisor proposes a recommendation of three distinct universities.
type Advisor interface {
	Propose(ctx context.Context, profile *types.Profile, candidates []Candidate) (*types.Recommendation, error)
}

// capCandidates trims the candidate list to the advisor budget.
func capCandidates(candidates []Candidate) []Candidate {
	if len(candidates) > maxCandidates {
		return candidates[:maxCandidates]
	}
	return candidates
}
