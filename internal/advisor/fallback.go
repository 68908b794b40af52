package advisor

import (
	"context"
	"fmt"
	"sort"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

// FallbackAdvisor picks universities deterministically from the candidate
// list. It satisfies the same acceptance rules as the generative advisor and
// is used whenever the model is unavailable or its output is rejected.
type FallbackAdvisor struct{}

// NewFallbackAdvisor returns the deterministic advisor.
func NewFallbackAdvisor() *FallbackAdvisor {
	return &FallbackAdvisor{}
}

// Propose assigns the cheapest in-region candidate, the top-scored candidate,
// and the best remaining distinct candidate to the three archetypes.
func (a *FallbackAdvisor) Propose(_ context.Context, _ *types.Profile, candidates []Candidate) (*types.Recommendation, error) {
	candidates = dedupCandidates(capCandidates(candidates))
	if len(candidates) < 3 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("need at least 3 distinct candidates, have %d", len(candidates)),
		}
	}

	cheapest := pickCheapest(candidates)
	prestige := pickPrestige(candidates, cheapest.University)
	fastest := pickFastest(candidates, cheapest.University, prestige.University)

	rec := &types.Recommendation{
		Cheapest: toPick(cheapest, "Lowest resolved total cost among in-region options."),
		Fastest:  toPick(fastest, "Strongest remaining program for an accelerated schedule."),
		Prestige: toPick(prestige, "Highest ranking score among candidates."),
		Source:   "fallback",
	}
	if err := ValidateRecommendation(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func dedupCandidates(candidates []Candidate) []Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.University == "" || seen[c.University] {
			continue
		}
		seen[c.University] = true
		out = append(out, c)
	}
	return out
}

// pickCheapest prefers in-region candidates by lowest estimated cost, falling
// back to the overall cheapest.
func pickCheapest(candidates []Candidate) Candidate {
	best := candidates[0]
	found := false
	for _, c := range candidates {
		if !c.InRegion {
			continue
		}
		if !found || c.EstimatedCost < best.EstimatedCost {
			best = c
			found = true
		}
	}
	if found {
		return best
	}
	best = candidates[0]
	for _, c := range candidates[1:] {
		if c.EstimatedCost < best.EstimatedCost {
			best = c
		}
	}
	return best
}

// pickPrestige returns the highest-scored candidate distinct from the given
// name.
func pickPrestige(candidates []Candidate, exclude string) Candidate {
	ordered := byScore(candidates)
	for _, c := range ordered {
		if c.University != exclude {
			return c
		}
	}
	return ordered[0]
}

// pickFastest returns the highest-scored candidate distinct from both prior
// picks.
func pickFastest(candidates []Candidate, excludeA, excludeB string) Candidate {
	ordered := byScore(candidates)
	for _, c := range ordered {
		if c.University != excludeA && c.University != excludeB {
			return c
		}
	}
	return ordered[0]
}

func byScore(candidates []Candidate) []Candidate {
	ordered := append([]Candidate(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].University < ordered[j].University
	})
	return ordered
}

func toPick(c Candidate, rationale string) types.PathPick {
	return types.PathPick{
		University:    c.University,
		Tier:          c.Tier,
		Score:         c.Score,
		EstimatedCost: c.EstimatedCost,
		DurationYears: c.DurationYears,
		Rationale:     rationale,
	}
}
