package cost

import (
	"context"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

// Default phase lengths for a transfer-track bachelor's.
const (
	defaultFeederYears     = 2.0
	defaultUniversityYears = 2.0
)

// EstimatePaths produces the three path breakdowns for a profile: the
// cheapest in-region option, the same option accelerated, and the
// highest-ranked remaining option at its applicable residency. Credential
// fees are included in each.
func (c *Calculator) EstimatePaths(ctx context.Context, profile *types.Profile, pathway *types.PathwayResult) (*types.CostResult, error) {
	feederYears := defaultFeederYears
	if profile.Constraints.HasAA {
		feederYears = 0
	}

	cheapestUni := c.cheapestOption(pathway.TransferOptions)
	prestigeUni, prestigeResidency := c.prestigeOption(pathway.TransferOptions, cheapestUni)

	cheapest, err := c.Estimate(ctx, Request{
		Institution: cheapestUni,
		Residency:   ResidencyInState,
		Years:       defaultUniversityYears,
		FeederYears: feederYears,
		Level:       types.DegreeBachelor,
	})
	if err != nil {
		return nil, err
	}

	fastest, err := c.Estimate(ctx, Request{
		Institution: cheapestUni,
		Residency:   ResidencyInState,
		Years:       defaultUniversityYears,
		FeederYears: feederYears,
		Level:       types.DegreeBachelor,
		Accelerated: true,
	})
	if err != nil {
		return nil, err
	}

	prestige, err := c.Estimate(ctx, Request{
		Institution: prestigeUni,
		Residency:   prestigeResidency,
		Years:       defaultUniversityYears,
		FeederYears: feederYears,
		Level:       types.DegreeBachelor,
	})
	if err != nil {
		return nil, err
	}

	AddCredentialFees(cheapest, pathway)
	AddCredentialFees(fastest, pathway)
	AddCredentialFees(prestige, pathway)

	return &types.CostResult{
		Cheapest: *cheapest,
		Fastest:  *fastest,
		Prestige: *prestige,
	}, nil
}

// cheapestOption returns the in-region transfer option with the lowest
// in-state tuition, defaulting to FIU when the list resolves nothing.
func (c *Calculator) cheapestOption(options []types.TransferOption) string {
	best := "Florida International University"
	bestRate := -1.0
	for _, opt := range options {
		if !opt.InRegion {
			continue
		}
		inst, ok := c.tables.LookupInstitution(opt.University)
		if !ok || inst.InStateTuition <= 0 {
			continue
		}
		if bestRate < 0 || inst.InStateTuition < bestRate {
			best = opt.University
			bestRate = inst.InStateTuition
		}
	}
	return best
}

// prestigeOption returns the highest-scored option distinct from the cheapest
// pick so the two paths diverge, and the residency that applies to it.
// Out-of-region institutions always charge the out-of-state rate. When the
// cheapest pick is the only resolvable option it is reused as-is.
func (c *Calculator) prestigeOption(options []types.TransferOption, exclude string) (string, string) {
	best := "Georgia Institute of Technology"
	bestScore := -1
	bestResidency := ResidencyOutOfState
	excludedOnly := ""
	excludedResidency := ResidencyOutOfState

	for _, opt := range options {
		inst, ok := c.tables.LookupInstitution(opt.University)
		if !ok {
			continue
		}
		residency := ResidencyOutOfState
		if inst.State == "FL" {
			residency = ResidencyInState
		}
		if opt.University == exclude {
			excludedOnly = opt.University
			excludedResidency = residency
			continue
		}
		if score := inst.Score(); score > bestScore {
			best = opt.University
			bestScore = score
			bestResidency = residency
		}
	}

	if bestScore < 0 && excludedOnly != "" {
		return excludedOnly, excludedResidency
	}
	return best, bestResidency
}
