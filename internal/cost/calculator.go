// Package cost estimates total education cost per path. Tuition resolution
// follows a fixed precedence: exact seed ranking entry, then the College
// Scorecard API, then a fuzzy seed match with a floor, then a generic
// constant. The calculator itself is pure arithmetic over resolved rates.
package cost

import (
	"context"
	"fmt"
	"log"

	"github.com/careerpilot/roadmap-agent/internal/datasource"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// Residency values accepted by the calculator.
const (
	ResidencyInState    = "in-state"
	ResidencyOutOfState = "out-of-state"
)

// Request describes one cost estimate.
type Request struct {
	Institution string
	Residency   string
	Years       float64
	FeederYears float64
	Level       types.DegreeLevel
	Accelerated bool
}

// Calculator resolves tuition and living rates and applies the degree-level
// cost formulas. The scorecard client may be nil.
type Calculator struct {
	tables    *seed.Tables
	scorecard *datasource.ScorecardClient
}

// NewCalculator builds a calculator over the seed tables. scorecard may be
// nil to disable live tuition lookups.
func NewCalculator(tables *seed.Tables, scorecard *datasource.ScorecardClient) *Calculator {
	return &Calculator{tables: tables, scorecard: scorecard}
}

// Estimate produces a cost breakdown for one institution and degree level.
// It never returns a non-positive total for a resolvable institution.
func (c *Calculator) Estimate(ctx context.Context, req Request) (*types.CostBreakdown, error) {
	if req.Years <= 0 {
		return nil, fmt.Errorf("cost estimate requires positive years, got %v", req.Years)
	}

	rate, city, warnings := c.resolveTuition(ctx, req.Institution, req.Residency)

	b := &types.CostBreakdown{
		Institution: req.Institution,
		City:        city,
		Years:       req.Years,
		FeederYears: req.FeederYears,
		Residency:   req.Residency,
		Warnings:    warnings,
	}

	housing, matched := c.tables.LookupHousing(city)
	if !matched {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no living-cost data for %q, using %s baseline", city, seed.BaselineMetro))
	}

	switch req.Level {
	case types.DegreeMaster:
		c.applyMaster(b, rate, housing, req)
	case types.DegreeDoctorate:
		c.applyDoctorate(b, housing, req)
	default:
		c.applyBachelor(b, rate, housing, req)
	}

	b.Total = b.ComponentSum()
	if req.Accelerated {
		b.Accelerated = true
		b.Total *= acceleratedPremium
	}
	return b, nil
}

// applyBachelor fills the bachelor-track components: feeder years at the
// community college, then university tuition plus living costs, books per
// year across both phases, and fees on the tuition component.
func (c *Calculator) applyBachelor(b *types.CostBreakdown, rate float64, housing seed.Housing, req Request) {
	feederRate := feederInStatePerYear
	if req.Residency == ResidencyOutOfState {
		feederRate = feederOutOfStatePerYear
	}
	b.Feeder = feederRate * req.FeederYears
	b.Tuition = rate * req.Years
	b.Housing = housing.SharedRent * monthsPerYear * req.Years
	b.Food = housing.Food * monthsPerYear * req.Years
	b.Transport = housing.Transport * monthsPerYear * req.Years
	b.Books = booksPerYear * (req.FeederYears + req.Years)
	b.Fees = (b.Feeder + b.Tuition) * bachelorFeeRate
}

// applyMaster fills the master components: the undergraduate rate with a
// graduate premium, living costs, one flat book allowance, and fees.
func (c *Calculator) applyMaster(b *types.CostBreakdown, rate float64, housing seed.Housing, req Request) {
	b.Tuition = rate * masterTuitionPremium * req.Years
	b.Housing = housing.SharedRent * monthsPerYear * req.Years
	b.Food = housing.Food * monthsPerYear * req.Years
	b.Transport = housing.Transport * monthsPerYear * req.Years
	b.Books = booksPerYear
	b.Fees = b.Tuition * masterFeeRate
}

// applyDoctorate fills the doctorate components. Tuition is assumed funded,
// leaving a fraction of living costs plus research and conference expenses.
func (c *Calculator) applyDoctorate(b *types.CostBreakdown, housing seed.Housing, req Request) {
	b.Housing = housing.SharedRent * monthsPerYear * req.Years * doctorateLivingFraction
	b.Food = housing.Food * monthsPerYear * req.Years * doctorateLivingFraction
	b.Transport = housing.Transport * monthsPerYear * req.Years * doctorateLivingFraction
	b.Books = doctorateResearchFee
	b.Fees = doctorateConferenceFee
}

// AddCredentialFees adds the flat exam and license fees for every required
// credential to the breakdown.
func AddCredentialFees(b *types.CostBreakdown, pathway *types.PathwayResult) {
	var addons float64
	addons += float64(len(pathway.RequiredCertifications())) * certificationFee
	addons += float64(len(pathway.RequiredLicenses())) * licenseFee
	b.Addons += addons
	b.Total += addons
}

// resolveTuition walks the lookup precedence and returns the per-year rate,
// the institution's city, and any warnings raised along the way.
func (c *Calculator) resolveTuition(ctx context.Context, institution, residency string) (float64, string, []string) {
	var warnings []string

	// Exact seed ranking entry.
	canonical := seed.CanonicalInstitution(institution)
	if inst, ok := c.tables.Rankings[canonical]; ok {
		if rate := tuitionFor(inst, residency); rate > 0 {
			return rate, inst.City, warnings
		}
	}

	// Live cost API.
	if c.scorecard != nil && c.scorecard.Enabled() {
		costs, err := c.scorecard.LookupCosts(ctx, canonical)
		if err != nil {
			log.Printf("cost: scorecard lookup failed for %q: %v", canonical, err)
		} else {
			rate := costs.InStateTuition
			if residency == ResidencyOutOfState {
				rate = costs.OutOfStateTuition
			}
			if rate > 0 {
				return rate, costs.City, warnings
			}
		}
	}

	// Fuzzy seed match with an enforced floor.
	if inst, ok := c.tables.LookupInstitution(institution); ok {
		rate := tuitionFor(inst, residency)
		if rate > 0 {
			if rate < tuitionFloor {
				rate = tuitionFloor
			}
			return rate, inst.City, warnings
		}
	}

	// Generic constant.
	warnings = append(warnings,
		fmt.Sprintf("no tuition data for %q, using generic estimate", institution))
	rate := genericInStateTuition
	if residency == ResidencyOutOfState {
		rate = genericOutOfStateTuition
	}
	return rate, "", warnings
}

func tuitionFor(inst seed.Institution, residency string) float64 {
	if residency == ResidencyOutOfState {
		return inst.OutOfStateTuition
	}
	return inst.InStateTuition
}
