package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/roadmap-agent/internal/llm"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// scriptedClient returns a fixed response for every generation call.
type scriptedClient struct {
	response string
	err      error
	prompts  []string
}

func (c *scriptedClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, c.err
}

func (c *scriptedClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, c.err
}

func (c *scriptedClient) GetModel(llm.ModelTier) string { return "scripted" }

func (c *scriptedClient) Close() error { return nil }

func llmTestProfile() *types.Profile {
	return &types.Profile{
		Career:   "Civil Engineer",
		Category: "STEM-Engineering",
		Constraints: types.Constraints{
			Budget:   "medium",
			Timeline: "normal",
			Location: "florida",
		},
	}
}

func llmTestCandidates() []Candidate {
	return []Candidate{
		{University: "Florida Atlantic University", Tier: 3, Score: 191, InRegion: true, EstimatedCost: 52000, DurationYears: 4},
		{University: "Florida International University", Tier: 2, Score: 276, InRegion: true, EstimatedCost: 62000, DurationYears: 4},
		{University: "University of Florida", Tier: 1, Score: 472, InRegion: true, EstimatedCost: 68000, DurationYears: 4},
	}
}

const validLLMResponse = `{
	"cheapest": {"university": "Florida Atlantic University", "tier": 3, "score": 191, "estimated_cost": 52000, "duration_years": 4, "rationale": "Lowest resolved total cost."},
	"fastest": {"university": "Florida International University", "tier": 2, "score": 276, "estimated_cost": 62000, "duration_years": 3.5, "rationale": "Accelerated track available."},
	"prestige": {"university": "University of Florida", "tier": 1, "score": 472, "estimated_cost": 68000, "duration_years": 4, "rationale": "Highest ranked program."}
}`

func TestLLMAdvisor_AcceptsValidResponse(t *testing.T) {
	client := &scriptedClient{response: validLLMResponse}
	advisor := NewLLMAdvisor(client)

	rec, err := advisor.Propose(context.Background(), llmTestProfile(), llmTestCandidates())
	require.NoError(t, err)

	assert.Equal(t, "llm", rec.Source)
	assert.Equal(t, "Florida Atlantic University", rec.Cheapest.University)
	assert.Equal(t, "University of Florida", rec.Prestige.University)
	assert.Equal(t, 3.5, rec.Fastest.DurationYears)
}

func TestLLMAdvisor_StripsMarkdownFences(t *testing.T) {
	client := &scriptedClient{response: "```json\n" + validLLMResponse + "\n```"}
	advisor := NewLLMAdvisor(client)

	rec, err := advisor.Propose(context.Background(), llmTestProfile(), llmTestCandidates())
	require.NoError(t, err)
	assert.Equal(t, "Florida Atlantic University", rec.Cheapest.University)
}

func TestLLMAdvisor_PromptCarriesCandidates(t *testing.T) {
	client := &scriptedClient{response: validLLMResponse}
	advisor := NewLLMAdvisor(client)

	_, err := advisor.Propose(context.Background(), llmTestProfile(), llmTestCandidates())
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Florida Atlantic University")
	assert.Contains(t, client.prompts[0], "Civil Engineer")
	assert.NotContains(t, client.prompts[0], "{{.ProfileJSON}}")
}

func TestLLMAdvisor_RejectsSchemaViolation(t *testing.T) {
	// estimated_cost of 0 fails the schema's exclusive minimum.
	bad := `{
		"cheapest": {"university": "FAU", "tier": 3, "score": 191, "estimated_cost": 0, "duration_years": 4, "rationale": "x"},
		"fastest": {"university": "FIU", "tier": 2, "score": 276, "estimated_cost": 62000, "duration_years": 3.5, "rationale": "x"},
		"prestige": {"university": "UF", "tier": 1, "score": 472, "estimated_cost": 68000, "duration_years": 4, "rationale": "x"}
	}`
	advisor := NewLLMAdvisor(&scriptedClient{response: bad})

	_, err := advisor.Propose(context.Background(), llmTestProfile(), llmTestCandidates())
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestLLMAdvisor_RejectsDuplicatePicks(t *testing.T) {
	dup := `{
		"cheapest": {"university": "Florida Atlantic University", "tier": 3, "score": 191, "estimated_cost": 52000, "duration_years": 4, "rationale": "x"},
		"fastest": {"university": "Florida Atlantic University", "tier": 3, "score": 191, "estimated_cost": 52000, "duration_years": 4, "rationale": "x"},
		"prestige": {"university": "University of Florida", "tier": 1, "score": 472, "estimated_cost": 68000, "duration_years": 4, "rationale": "x"}
	}`
	advisor := NewLLMAdvisor(&scriptedClient{response: dup})

	_, err := advisor.Propose(context.Background(), llmTestProfile(), llmTestCandidates())
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestLLMAdvisor_WrapsGenerationFailure(t *testing.T) {
	advisor := NewLLMAdvisor(&scriptedClient{err: errors.New("quota exceeded")})

	_, err := advisor.Propose(context.Background(), llmTestProfile(), llmTestCandidates())
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}
