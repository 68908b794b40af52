// Package salary maps a career to an occupation code, retrieves compensation
// figures with the wage statistics API when reachable, and computes return
// on investment for an education path.
package salary

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/careerpilot/roadmap-agent/internal/datasource"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// ROI model constants.
const (
	// Regional pay runs below the national median.
	regionalDiscount = 0.90

	// Effective tax rate applied to the median salary.
	taxRate = 0.25

	// Forgone annual earnings while in school, roughly full-time at the
	// Florida minimum wage.
	forgoneWagePerYear = 25000.0
)

// categoryDefault is the compensation estimate used when a career maps to no
// occupation code at all.
type categoryDefault struct {
	median   float64
	regional float64
	growth   string
}

var categoryDefaults = []struct {
	keywords []string
	value    categoryDefault
}{
	{
		keywords: []string{"engineer", "tech", "software", "developer"},
		value:    categoryDefault{median: 95000, regional: 88000, growth: "Average"},
	},
	{
		keywords: []string{"nurse", "medical", "health"},
		value:    categoryDefault{median: 82000, regional: 78000, growth: "Faster than average"},
	},
	{
		keywords: []string{"business", "finance", "accounting"},
		value:    categoryDefault{median: 76000, regional: 71000, growth: "Average"},
	},
}

var genericDefault = categoryDefault{median: 65000, regional: 60000, growth: "Average"}

// Estimator resolves salary outlooks. The BLS client may be nil, in which
// case the seed table answers directly.
type Estimator struct {
	tables *seed.Tables
	bls    *datasource.BLSClient
}

// NewEstimator builds an estimator over the seed tables. bls may be nil.
func NewEstimator(tables *seed.Tables, bls *datasource.BLSClient) *Estimator {
	return &Estimator{tables: tables, bls: bls}
}

// Estimate resolves the salary outlook for a career. A live median from the
// wage API wins; otherwise the seed table's figures are used verbatim; a
// career with no occupation code falls back to category defaults.
func (e *Estimator) Estimate(ctx context.Context, career string) *types.SalaryResult {
	code, ok := e.tables.LookupOccupationCode(career)
	if !ok {
		def := defaultFor(career)
		return &types.SalaryResult{
			Occupation:     career,
			SOCCode:        "unknown",
			MedianSalary:   def.median,
			RegionalSalary: def.regional,
			GrowthRate:     def.growth,
			Outlook:        "Data not available, using industry averages",
		}
	}

	result := &types.SalaryResult{Occupation: career, SOCCode: code}

	fallback, haveFallback := e.tables.LookupSalary(code)

	if e.bls != nil {
		wages, err := e.bls.LookupWages(ctx, code)
		if err != nil {
			log.Printf("salary: wage lookup failed for %s: %v", code, err)
		} else if wages.MedianAnnual > 0 {
			result.MedianSalary = wages.MedianAnnual
			result.RegionalSalary = wages.MedianAnnual * regionalDiscount
		}
	}

	if result.MedianSalary <= 0 {
		if haveFallback {
			result.MedianSalary = fallback.Median
			result.RegionalSalary = fallback.Regional
		} else {
			def := defaultFor(career)
			result.MedianSalary = def.median
			result.RegionalSalary = def.regional
		}
	}

	if haveFallback {
		result.GrowthRate = fallback.GrowthRate
		result.Outlook = fallback.Outlook
	} else {
		def := defaultFor(career)
		result.GrowthRate = def.growth
		result.Outlook = def.growth + " job growth expected"
	}

	return result
}

// ROIYears computes the years of post-graduation net earnings needed to
// offset the education cost plus forgone wages. Returns +Inf when net salary
// is not positive.
func ROIYears(medianSalary, educationCost, yearsInSchool float64) float64 {
	netSalary := medianSalary * (1 - taxRate)
	if netSalary <= 0 {
		return math.Inf(1)
	}
	investment := educationCost + forgoneWagePerYear*yearsInSchool
	return investment / netSalary
}

func defaultFor(career string) categoryDefault {
	lower := strings.ToLower(career)
	for _, entry := range categoryDefaults {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.value
			}
		}
	}
	return genericDefault
}
