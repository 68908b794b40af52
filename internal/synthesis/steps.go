package synthesis

import (
	"context"
	"fmt"

	"github.com/careerpilot/roadmap-agent/internal/cost"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// Flat per-credential step costs, matching the calculator's add-on fees.
const (
	certificationStepCost = 200.0
	licenseStepCost       = 300.0
)

// Graduate phase lengths in years before acceleration.
const (
	masterYears    = 2.0
	doctorateYears = 4.0
)

// Acceleration factors applied to graduate phase lengths on the fastest path.
const (
	masterAccelFactor    = 0.85
	doctorateAccelFactor = 0.9
)

// buildSteps constructs the linear step chain for one path. Each step's sole
// prerequisite is the preceding step's id.
func (s *Synthesizer) buildSteps(ctx context.Context, in Input, pathID, institution string, breakdown *types.CostBreakdown) ([]types.Step, error) {
	var steps []types.Step

	appendStep := func(step types.Step) {
		step.ID = fmt.Sprintf("step-%d", len(steps))
		if len(steps) > 0 {
			step.Prerequisites = []string{steps[len(steps)-1].ID}
		} else {
			step.Prerequisites = []string{}
		}
		steps = append(steps, step)
	}

	// Feeder phase, skipped for students who already transferred past it.
	if breakdown.Feeder > 0 && len(in.Pathway.Programs) > 0 {
		program := in.Pathway.Programs[0]
		appendStep(types.Step{
			Kind:        types.StepProgram,
			Institution: seed.FeederInstitution,
			Duration:    formatYears(breakdown.FeederYears),
			Cost:        breakdown.Feeder,
			Description: fmt.Sprintf("%s (%s)", program.Name, program.Code),
			URL:         program.URL,
		})
	}

	// Zero-cost enrichment steps requested via goals.
	if hasPreference(in.Profile, "internship") {
		appendStep(types.Step{
			Kind:        types.StepInternship,
			Institution: institution,
			Duration:    "1 summer",
			Cost:        0,
			Description: fmt.Sprintf("Industry internship in %s", in.Profile.Career),
		})
	}
	if hasPreference(in.Profile, "research") {
		appendStep(types.Step{
			Kind:        types.StepResearch,
			Institution: institution,
			Duration:    "1 year",
			Cost:        0,
			Description: "Undergraduate research experience",
		})
	}

	// University phase carries every cost component except the feeder
	// phase and credential add-ons.
	universityCost := breakdown.Tuition + breakdown.Housing + breakdown.Food +
		breakdown.Transport + breakdown.Books + breakdown.Fees
	appendStep(types.Step{
		Kind:        types.StepProgram,
		Institution: institution,
		Duration:    formatYears(breakdown.Years),
		Cost:        universityCost,
		Description: programDescription(in.Pathway, institution),
		URL:         transferURL(in.Pathway, institution),
	})

	for _, cert := range in.Pathway.RequiredCertifications() {
		appendStep(types.Step{
			Kind:        types.StepCertification,
			Institution: "Professional Board",
			Duration:    cert.Timing,
			Cost:        certificationStepCost,
			Description: cert.Name,
			URL:         cert.URL,
		})
	}
	for _, lic := range in.Pathway.RequiredLicenses() {
		appendStep(types.Step{
			Kind:        types.StepLicense,
			Institution: lic.State + " Board",
			Duration:    lic.Timing,
			Cost:        licenseStepCost,
			Description: lic.Name,
			URL:         lic.URL,
		})
	}

	// Graduate degrees requested via goals are priced on demand because
	// the cost stage only covers the bachelor track.
	if hasPreference(in.Profile, "masters") || hasPreference(in.Profile, "phd") {
		if hasPreference(in.Profile, "masters") {
			years := masterYears
			if pathID == types.PathFastest {
				years *= masterAccelFactor
			}
			est, err := s.calc.Estimate(ctx, cost.Request{
				Institution: institution,
				Residency:   breakdown.Residency,
				Years:       years,
				Level:       types.DegreeMaster,
				Accelerated: pathID == types.PathFastest,
			})
			if err != nil {
				return nil, &SynthesisError{Message: "failed to price master's step", Cause: err}
			}
			appendStep(types.Step{
				Kind:        types.StepMasters,
				Institution: institution,
				Duration:    formatYears(years),
				Cost:        est.Total,
				Description: fmt.Sprintf("Master's degree in %s", in.Profile.Career),
			})
		}
		if hasPreference(in.Profile, "phd") {
			years := doctorateYears
			if pathID == types.PathFastest {
				years *= doctorateAccelFactor
			}
			est, err := s.calc.Estimate(ctx, cost.Request{
				Institution: institution,
				Residency:   breakdown.Residency,
				Years:       years,
				Level:       types.DegreeDoctorate,
				Accelerated: pathID == types.PathFastest,
			})
			if err != nil {
				return nil, &SynthesisError{Message: "failed to price doctorate step", Cause: err}
			}
			appendStep(types.Step{
				Kind:        types.StepPhD,
				Institution: institution,
				Duration:    formatYears(years),
				Cost:        est.Total,
				Description: fmt.Sprintf("Doctorate in %s (funded)", in.Profile.Career),
			})
		}
	}

	return steps, nil
}

// hasPreference checks both profile preferences and flags for a goal.
func hasPreference(profile *types.Profile, goal string) bool {
	for _, p := range profile.Preferences {
		if p == goal {
			return true
		}
	}
	return profile.HasFlag(goal)
}

// programDescription finds the transfer program name for the chosen
// university, falling back to a generic bachelor's label.
func programDescription(pathway *types.PathwayResult, institution string) string {
	for _, opt := range pathway.TransferOptions {
		if opt.University == institution {
			return opt.Program
		}
	}
	return "Bachelor's degree program"
}

func transferURL(pathway *types.PathwayResult, institution string) string {
	for _, opt := range pathway.TransferOptions {
		if opt.University == institution {
			return opt.URL
		}
	}
	return ""
}
