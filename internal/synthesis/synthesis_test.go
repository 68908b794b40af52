package synthesis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/roadmap-agent/internal/cost"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

func newTestSynthesizer() *Synthesizer {
	return New(cost.NewCalculator(seed.MustLoad(), nil))
}

func engineerInput() Input {
	pathway := &types.PathwayResult{
		Programs: []types.Program{
			{Code: "AS.EGR", Name: "Engineering Associate in Science", Credits: 60, URL: "https://www.mdc.edu/engineering/"},
		},
		TransferOptions: []types.TransferOption{
			{University: "Florida International University", Program: "BS Civil Engineering", Articulation: "2+2 agreement", InRegion: true, Metro: true, Score: 276},
			{University: "University of Florida", Program: "BS Civil Engineering", InRegion: true, Score: 472},
		},
		Certifications: []types.Certification{
			{Name: "FE Exam", Required: true, Timing: "final year of bachelor's"},
		},
		Licenses: []types.License{
			{Name: "PE License", Required: true, Timing: "after 4 years of experience", State: "Florida"},
		},
		Citations: []types.Citation{
			{ID: "c1", Title: "FIU transfer guide", URL: "https://www.fiu.edu/transfer"},
		},
	}

	costs := &types.CostResult{
		Cheapest: types.CostBreakdown{
			Institution: "Florida International University",
			Residency:   cost.ResidencyInState,
			Years:       2, FeederYears: 2,
			Feeder: 6800, Tuition: 13130, Housing: 22800, Food: 9600,
			Transport: 2880, Books: 4800, Fees: 2391.6, Addons: 500,
			Total: 62901.6,
		},
		Fastest: types.CostBreakdown{
			Institution: "Florida International University",
			Residency:   cost.ResidencyInState,
			Years:       2, FeederYears: 2, Accelerated: true,
			Feeder: 6800, Tuition: 13130, Housing: 22800, Food: 9600,
			Transport: 2880, Books: 4800, Fees: 2391.6, Addons: 500,
			Total: 72261.84,
		},
		Prestige: types.CostBreakdown{
			Institution: "University of Florida",
			Residency:   cost.ResidencyInState,
			Years:       2, FeederYears: 2,
			Feeder: 6800, Tuition: 12760, Housing: 15600, Food: 8400,
			Transport: 1920, Books: 4800, Fees: 2347.2, Addons: 500,
			Total: 53127.2,
		},
	}

	salary := &types.SalaryResult{
		Occupation:   "civil engineer",
		SOCCode:      "17-2051",
		MedianSalary: 89000,
		GrowthRate:   "6%",
		Outlook:      "Faster than average",
		ROIYears:     2.4,
	}

	return Input{
		Profile: &types.Profile{
			Career:   "civil engineer",
			Category: "STEM-Engineering",
			Constraints: types.Constraints{
				Budget: "low", Timeline: "normal", Location: "miami",
			},
		},
		Pathway: pathway,
		Costs:   costs,
		Salary:  salary,
	}
}

func TestBuild_ThreePaths(t *testing.T) {
	roadmap, err := newTestSynthesizer().Build(context.Background(), engineerInput())
	require.NoError(t, err)

	require.Len(t, roadmap.Paths, 3)
	assert.Equal(t, "Most Affordable Path", roadmap.Paths[types.PathCheapest].Name)
	assert.Equal(t, "Fastest Path", roadmap.Paths[types.PathFastest].Name)
	assert.Equal(t, "Prestige Path", roadmap.Paths[types.PathPrestige].Name)

	assert.Equal(t, 0.85, roadmap.Metadata.Confidence)
	assert.Equal(t, "civil engineer", roadmap.Metadata.Career)
	assert.Equal(t, 89000.0, roadmap.Metadata.SalaryOutlook.MedianSalary)
	assert.NotEmpty(t, roadmap.Metadata.GeneratedAt)
	require.Len(t, roadmap.Citations, 1)
}

func TestBuild_StepChainIntegrity(t *testing.T) {
	roadmap, err := newTestSynthesizer().Build(context.Background(), engineerInput())
	require.NoError(t, err)

	for id, path := range roadmap.Paths {
		require.NotEmpty(t, path.Steps, "path %s has no steps", id)
		assert.Empty(t, path.Steps[0].Prerequisites)
		for i := 1; i < len(path.Steps); i++ {
			require.Len(t, path.Steps[i].Prerequisites, 1)
			assert.Equal(t, path.Steps[i-1].ID, path.Steps[i].Prerequisites[0])
		}
	}
}

func TestBuild_StepKindsAndCosts(t *testing.T) {
	roadmap, err := newTestSynthesizer().Build(context.Background(), engineerInput())
	require.NoError(t, err)

	steps := roadmap.Paths[types.PathCheapest].Steps
	require.Len(t, steps, 4)

	assert.Equal(t, types.StepProgram, steps[0].Kind)
	assert.Equal(t, seed.FeederInstitution, steps[0].Institution)
	assert.Equal(t, 6800.0, steps[0].Cost)

	assert.Equal(t, types.StepProgram, steps[1].Kind)
	assert.Equal(t, "Florida International University", steps[1].Institution)
	assert.Equal(t, "BS Civil Engineering", steps[1].Description)

	assert.Equal(t, types.StepCertification, steps[2].Kind)
	assert.Equal(t, 200.0, steps[2].Cost)

	assert.Equal(t, types.StepLicense, steps[3].Kind)
	assert.Equal(t, 300.0, steps[3].Cost)
	assert.Equal(t, "Florida Board", steps[3].Institution)
}

func TestBuild_RecommendationOverridesInstitution(t *testing.T) {
	in := engineerInput()
	in.Recommendation = &types.Recommendation{
		Cheapest: types.PathPick{University: "Florida Atlantic University", EstimatedCost: 52000, DurationYears: 4},
		Fastest:  types.PathPick{University: "Florida International University", EstimatedCost: 60000, DurationYears: 3},
		Prestige: types.PathPick{University: "University of Florida", EstimatedCost: 61000, DurationYears: 4},
	}

	roadmap, err := newTestSynthesizer().Build(context.Background(), in)
	require.NoError(t, err)

	steps := roadmap.Paths[types.PathCheapest].Steps
	// The university step follows the feeder step.
	assert.Equal(t, "Florida Atlantic University", steps[1].Institution)
}

func TestBuild_GraduateGoalsAddSteps(t *testing.T) {
	in := engineerInput()
	in.Profile.Preferences = []string{"masters", "phd"}

	roadmap, err := newTestSynthesizer().Build(context.Background(), in)
	require.NoError(t, err)

	steps := roadmap.Paths[types.PathCheapest].Steps
	kinds := make([]string, 0, len(steps))
	for _, s := range steps {
		kinds = append(kinds, s.Kind)
	}
	assert.Contains(t, kinds, types.StepMasters)
	assert.Contains(t, kinds, types.StepPhD)

	// Graduate steps carry priced totals, not zero.
	for _, s := range steps {
		if s.Kind == types.StepMasters || s.Kind == types.StepPhD {
			assert.Greater(t, s.Cost, 0.0)
		}
	}

	// The fastest path compresses graduate phases.
	var fastMasters, baseMasters types.Step
	for _, s := range roadmap.Paths[types.PathFastest].Steps {
		if s.Kind == types.StepMasters {
			fastMasters = s
		}
	}
	for _, s := range roadmap.Paths[types.PathCheapest].Steps {
		if s.Kind == types.StepMasters {
			baseMasters = s
		}
	}
	assert.Equal(t, "1.7 years", fastMasters.Duration)
	assert.Equal(t, "2 years", baseMasters.Duration)
}

func TestBuild_ReconciliationPrefersStepSum(t *testing.T) {
	in := engineerInput()
	in.Profile.Preferences = []string{"masters"}

	roadmap, err := newTestSynthesizer().Build(context.Background(), in)
	require.NoError(t, err)

	path := roadmap.Paths[types.PathCheapest]
	var stepSum float64
	for _, s := range path.Steps {
		stepSum += s.Cost
	}
	// The master's step pushes the chain past the calculator total by
	// more than the tolerance, so the step sum wins.
	assert.Greater(t, stepSum, in.Costs.Cheapest.Total*1.1)
	assert.InDelta(t, stepSum, path.TotalCost, 0.01)
}

func TestBuild_TotalKeptWhenStepsWithinTolerance(t *testing.T) {
	roadmap, err := newTestSynthesizer().Build(context.Background(), engineerInput())
	require.NoError(t, err)

	path := roadmap.Paths[types.PathCheapest]
	assert.InDelta(t, 62901.6, path.TotalCost, 0.01)
}

func TestBuild_ROIScaling(t *testing.T) {
	roadmap, err := newTestSynthesizer().Build(context.Background(), engineerInput())
	require.NoError(t, err)

	assert.InDelta(t, 2.4, roadmap.Paths[types.PathCheapest].ROIYears, 0.001)
	assert.InDelta(t, 2.4*0.8, roadmap.Paths[types.PathFastest].ROIYears, 0.001)
	assert.InDelta(t, 2.4*1.5, roadmap.Paths[types.PathPrestige].ROIYears, 0.001)
}

func TestBuild_MissingStageOutput(t *testing.T) {
	in := engineerInput()
	in.Salary = nil

	_, err := newTestSynthesizer().Build(context.Background(), in)
	require.Error(t, err)

	var serr *SynthesisError
	assert.ErrorAs(t, err, &serr)
}
