package advisor

import (
	"context"
	"encoding/json"

	"github.com/careerpilot/roadmap-agent/internal/llm"
	"github.com/careerpilot/roadmap-agent/internal/prompts"
	"github.com/careerpilot/roadmap-agent/internal/schemas"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// LLMAdvisor asks the model to pick universities. Its output must pass both
// JSON Schema validation and the semantic checks before acceptance; a caller
// that sees an error is expected to fall back to the deterministic advisor.
type LLMAdvisor struct {
	client llm.Client
}

// NewLLMAdvisor wraps an LLM client.
func NewLLMAdvisor(client llm.Client) *LLMAdvisor {
	return &LLMAdvisor{client: client}
}

// Propose requests a recommendation from the model and validates it.
func (a *LLMAdvisor) Propose(ctx context.Context, profile *types.Profile, candidates []Candidate) (*types.Recommendation, error) {
	candidates = capCandidates(candidates)

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, &ParseError{Message: "failed to encode profile", Cause: err}
	}
	candidatesJSON, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return nil, &ParseError{Message: "failed to encode candidates", Cause: err}
	}

	template := prompts.MustGet("advisor.json", "recommend-paths")
	prompt := prompts.Format(template, map[string]string{
		"ProfileJSON":    string(profileJSON),
		"CandidatesJSON": string(candidatesJSON),
	})

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate recommendation", Cause: err}
	}
	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateRecommendation(responseText); err != nil {
		return nil, &ValidationError{Message: "recommendation failed schema validation", Cause: err}
	}

	var rec types.Recommendation
	if err := json.Unmarshal([]byte(responseText), &rec); err != nil {
		return nil, &ParseError{Message: "failed to parse recommendation JSON", Cause: err}
	}

	if err := ValidateRecommendation(&rec); err != nil {
		return nil, err
	}
	rec.Source = "llm"
	return &rec, nil
}

// ValidateRecommendation applies the semantic acceptance rules: three
// pairwise distinct universities and every estimated cost in (0, 500000].
func ValidateRecommendation(rec *types.Recommendation) error {
	picks := rec.Picks()

	names := make(map[string]string, len(picks))
	for path, pick := range picks {
		if pick.University == "" {
			return &ValidationError{Message: "missing university for path " + path}
		}
		if other, dup := names[pick.University]; dup {
			return &ValidationError{
				Message: "university " + pick.University + " assigned to both " + other + " and " + path,
			}
		}
		names[pick.University] = path

		if pick.EstimatedCost <= 0 || pick.EstimatedCost > maxEstimatedCost {
			return &ValidationError{
				Message: "estimated cost out of range for path " + path,
			}
		}
		if pick.DurationYears <= 0 {
			return &ValidationError{
				Message: "duration must be positive for path " + path,
			}
		}
	}
	return nil
}
