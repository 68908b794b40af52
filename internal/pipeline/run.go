// Package pipeline provides the high-level orchestration for roadmap
// generation. Stages run strictly in sequence; each request builds its own
// state and shares nothing with concurrent requests.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/careerpilot/roadmap-agent/internal/advisor"
	"github.com/careerpilot/roadmap-agent/internal/cost"
	"github.com/careerpilot/roadmap-agent/internal/datasource"
	"github.com/careerpilot/roadmap-agent/internal/llm"
	"github.com/careerpilot/roadmap-agent/internal/observability"
	"github.com/careerpilot/roadmap-agent/internal/pathway"
	"github.com/careerpilot/roadmap-agent/internal/profiling"
	"github.com/careerpilot/roadmap-agent/internal/salary"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/store"
	"github.com/careerpilot/roadmap-agent/internal/synthesis"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// bachelorTrackYears is the default total years in school used for the
// baseline ROI figure.
const bachelorTrackYears = 4.0

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	APIKey          string
	DatabaseURL     string
	Verbose         bool
	EnrichCitations bool
	RenderJS        bool
	OnProgress      ProgressCallback
}

// Deps holds the long-lived components a pipeline run uses. Build one per
// process with NewDeps and share it across requests; none of its fields hold
// per-request state.
type Deps struct {
	Tables     *seed.Tables
	Scorecard  *datasource.ScorecardClient
	BLS        *datasource.BLSClient
	Search     *datasource.SearchClient
	Calculator *cost.Calculator
	Estimator  *salary.Estimator
}

// NewDeps constructs the shared dependency set from the environment.
func NewDeps() *Deps {
	tables := seed.MustLoad()
	scorecard := datasource.NewScorecardClient()
	bls := datasource.NewBLSClient()
	return &Deps{
		Tables:     tables,
		Scorecard:  scorecard,
		BLS:        bls,
		Search:     datasource.NewSearchClient(),
		Calculator: cost.NewCalculator(tables, scorecard),
		Estimator:  salary.NewEstimator(tables, bls),
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// Run executes the full roadmap pipeline for a validated quiz. The only
// errors it returns are input validation failures and synthesis failures;
// every external degradation is absorbed by stage-level fallbacks.
func Run(ctx context.Context, deps *Deps, quiz *types.QuizInput, opts RunOptions) (*types.Roadmap, error) {
	if err := quiz.Validate(); err != nil {
		return nil, fmt.Errorf("quiz validation failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)

	// Optional persistence. A failed connection downgrades to a warning.
	var database *store.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = store.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without persistence...\n")
			database = nil
		} else {
			defer database.Close()
		}
	}

	// Optional LLM client. Without one, every generative stage uses its
	// deterministic fallback.
	var client llm.Client
	if opts.APIKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			fmt.Printf("Warning: Failed to create LLM client: %v\n", err)
			fmt.Printf("Continuing with deterministic fallbacks...\n")
			client = nil
		} else {
			defer func() { _ = client.Close() }()
		}
	}

	fmt.Printf("Step 1/6: Extracting student profile for %q...\n", quiz.Career)
	profile, err := profiling.ExtractProfile(ctx, client, quiz)
	if err != nil {
		return nil, fmt.Errorf("profiling failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintProfile(profile)
	}
	emitProgress(&opts, store.StepProfile,
		fmt.Sprintf("Profiled %s (%s)", profile.Career, profile.Category), profile)

	if database != nil {
		runID, err = database.CreateRun(ctx, profile.Career, profile.Category, profile.Constraints.Location)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else {
			_ = database.SaveArtifact(ctx, runID, store.StepQuiz, store.CategoryInput, quiz)
			_ = database.SaveArtifact(ctx, runID, store.StepProfile, store.CategoryStage, profile)
		}
	}

	fmt.Printf("Step 2/6: Researching education pathways...\n")
	researcher := pathway.NewResearcher(deps.Tables, deps.Search, client)
	researcher.EnrichCitations = opts.EnrichCitations
	researcher.RenderJS = opts.RenderJS
	pathwayResult, err := researcher.Research(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("pathway research failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintPathway(pathwayResult)
	}
	emitProgress(&opts, store.StepPathway,
		fmt.Sprintf("Found %d transfer options", len(pathwayResult.TransferOptions)), pathwayResult)
	saveArtifact(ctx, database, runID, store.StepPathway, pathwayResult)

	fmt.Printf("Step 3/6: Estimating costs...\n")
	costResult, err := deps.Calculator.EstimatePaths(ctx, profile, pathwayResult)
	if err != nil {
		return nil, fmt.Errorf("cost estimation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintCosts(costResult)
	}
	emitProgress(&opts, store.StepCosts,
		fmt.Sprintf("Cheapest path $%.0f", costResult.Cheapest.Total), costResult)
	saveArtifact(ctx, database, runID, store.StepCosts, costResult)

	fmt.Printf("Step 4/6: Analyzing salary outlook...\n")
	salaryResult := deps.Estimator.Estimate(ctx, profile.Career)
	salaryResult.ROIYears = salary.ROIYears(salaryResult.MedianSalary, costResult.Cheapest.Total, bachelorTrackYears)
	if opts.Verbose {
		printer.PrintSalary(salaryResult)
	}
	emitProgress(&opts, store.StepSalary,
		fmt.Sprintf("Median salary $%.0f", salaryResult.MedianSalary), salaryResult)
	saveArtifact(ctx, database, runID, store.StepSalary, salaryResult)

	fmt.Printf("Step 5/6: Selecting universities per path...\n")
	recommendation := recommend(ctx, deps, client, profile, pathwayResult, costResult)
	if recommendation != nil {
		emitProgress(&opts, store.StepRecommendation,
			fmt.Sprintf("Recommendation source: %s", recommendation.Source), recommendation)
		saveArtifact(ctx, database, runID, store.StepRecommendation, recommendation)
	}

	fmt.Printf("Step 6/6: Synthesizing roadmap...\n")
	synthesizer := synthesis.New(deps.Calculator)
	roadmap, err := synthesizer.Build(ctx, synthesis.Input{
		Profile:        profile,
		Pathway:        pathwayResult,
		Costs:          costResult,
		Salary:         salaryResult,
		Recommendation: recommendation,
	})
	if err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, store.StatusFailed)
		}
		return nil, err
	}
	if opts.Verbose {
		printer.PrintRoadmap(roadmap)
	}

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, store.StepRoadmap, store.CategoryOutput, roadmap)
		_ = database.CompleteRun(ctx, runID, store.StatusCompleted)
	}
	emitProgress(&opts, store.StepRoadmap, "Roadmap complete", nil)

	return roadmap, nil
}

// recommend runs the generative advisor when available and falls back to the
// deterministic one on any failure. A nil return means even the fallback had
// too few candidates; synthesis then uses the cost-stage institutions.
func recommend(ctx context.Context, deps *Deps, client llm.Client, profile *types.Profile, pathwayResult *types.PathwayResult, costResult *types.CostResult) *types.Recommendation {
	candidates := buildCandidates(ctx, deps, profile, pathwayResult)
	if len(candidates) == 0 {
		return nil
	}

	if client != nil {
		llmAdvisor := advisor.NewLLMAdvisor(client)
		rec, err := llmAdvisor.Propose(ctx, profile, candidates)
		if err == nil {
			return rec
		}
		fmt.Printf("Warning: advisor output rejected: %v\n", err)
	}

	rec, err := advisor.NewFallbackAdvisor().Propose(ctx, profile, candidates)
	if err != nil {
		fmt.Printf("Warning: fallback advisor unavailable: %v\n", err)
		return nil
	}
	return rec
}

// buildCandidates resolves cost components for each ranked transfer option.
func buildCandidates(ctx context.Context, deps *Deps, profile *types.Profile, pathwayResult *types.PathwayResult) []advisor.Candidate {
	feederYears := 2.0
	if profile.Constraints.HasAA {
		feederYears = 0
	}

	var candidates []advisor.Candidate
	for _, opt := range pathwayResult.TransferOptions {
		inst, ok := deps.Tables.LookupInstitution(opt.University)
		if !ok {
			continue
		}
		residency := cost.ResidencyOutOfState
		tuition := inst.OutOfStateTuition
		if opt.InRegion {
			residency = cost.ResidencyInState
			tuition = inst.InStateTuition
		}
		breakdown, err := deps.Calculator.Estimate(ctx, cost.Request{
			Institution: opt.University,
			Residency:   residency,
			Years:       2,
			FeederYears: feederYears,
			Level:       types.DegreeBachelor,
		})
		if err != nil {
			continue
		}
		candidates = append(candidates, advisor.Candidate{
			University:    opt.University,
			Tier:          inst.Tier,
			Score:         opt.Score,
			InRegion:      opt.InRegion,
			TuitionYear:   tuition,
			EstimatedCost: breakdown.Total,
			DurationYears: feederYears + breakdown.Years,
		})
	}
	return candidates
}

func saveArtifact(ctx context.Context, database *store.DB, runID uuid.UUID, step string, content any) {
	if database == nil || runID == uuid.Nil {
		return
	}
	_ = database.SaveArtifact(ctx, runID, step, store.CategoryStage, content)
}
