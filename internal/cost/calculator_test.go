package cost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

func newTestCalculator() *Calculator {
	// No scorecard client; tuition resolution stays on seed tables.
	return NewCalculator(seed.MustLoad(), nil)
}

func TestEstimate_BachelorTransferTrack(t *testing.T) {
	calc := newTestCalculator()

	b, err := calc.Estimate(context.Background(), Request{
		Institution: "Florida International University",
		Residency:   ResidencyInState,
		Years:       2,
		FeederYears: 2,
		Level:       types.DegreeBachelor,
	})
	require.NoError(t, err)

	// Seed rates: FIU in-state 6565/yr, feeder 3400/yr, Miami housing
	// 950+400+120 monthly.
	assert.Equal(t, 6800.0, b.Feeder)
	assert.Equal(t, 13130.0, b.Tuition)
	assert.Equal(t, 950.0*12*2, b.Housing)
	assert.Equal(t, 400.0*12*2, b.Food)
	assert.Equal(t, 120.0*12*2, b.Transport)
	assert.Equal(t, 1200.0*4, b.Books)
	assert.InDelta(t, (6800.0+13130.0)*0.12, b.Fees, 0.01)

	assert.InDelta(t, b.ComponentSum(), b.Total, 0.01)
	assert.Greater(t, b.Total, 0.0)
	assert.Empty(t, b.Warnings)
	assert.Equal(t, "Miami", b.City)
}

func TestEstimate_OutOfStateUsesHigherRates(t *testing.T) {
	calc := newTestCalculator()
	ctx := context.Background()

	inState, err := calc.Estimate(ctx, Request{
		Institution: "University of Florida",
		Residency:   ResidencyInState,
		Years:       2,
		FeederYears: 2,
	})
	require.NoError(t, err)

	outOfState, err := calc.Estimate(ctx, Request{
		Institution: "University of Florida",
		Residency:   ResidencyOutOfState,
		Years:       2,
		FeederYears: 2,
	})
	require.NoError(t, err)

	assert.Greater(t, outOfState.Tuition, inState.Tuition)
	assert.Greater(t, outOfState.Feeder, inState.Feeder)
	assert.Greater(t, outOfState.Total, inState.Total)
}

func TestEstimate_AcceleratedPremium(t *testing.T) {
	calc := newTestCalculator()
	ctx := context.Background()

	base, err := calc.Estimate(ctx, Request{
		Institution: "Florida International University",
		Residency:   ResidencyInState,
		Years:       2,
	})
	require.NoError(t, err)

	accel, err := calc.Estimate(ctx, Request{
		Institution: "Florida International University",
		Residency:   ResidencyInState,
		Years:       2,
		Accelerated: true,
	})
	require.NoError(t, err)

	assert.True(t, accel.Accelerated)
	assert.InDelta(t, base.Total*1.15, accel.Total, 0.01)
}

func TestEstimate_MasterFormula(t *testing.T) {
	calc := newTestCalculator()

	b, err := calc.Estimate(context.Background(), Request{
		Institution: "Florida International University",
		Residency:   ResidencyInState,
		Years:       2,
		Level:       types.DegreeMaster,
	})
	require.NoError(t, err)

	// Graduate premium on the undergraduate rate, flat book allowance,
	// fees on tuition only.
	assert.InDelta(t, 6565.0*1.2*2, b.Tuition, 0.01)
	assert.Equal(t, 1200.0, b.Books)
	assert.InDelta(t, b.Tuition*0.10, b.Fees, 0.01)
	assert.Equal(t, 0.0, b.Feeder)
}

func TestEstimate_DoctorateAssumesFunding(t *testing.T) {
	calc := newTestCalculator()

	b, err := calc.Estimate(context.Background(), Request{
		Institution: "University of Florida",
		Residency:   ResidencyInState,
		Years:       4,
		Level:       types.DegreeDoctorate,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.Tuition)
	// Gainesville rent 650/month, 30% of living costs out of pocket.
	assert.InDelta(t, 650.0*12*4*0.3, b.Housing, 0.01)
	assert.Equal(t, 3000.0, b.Books)
	assert.Equal(t, 2000.0, b.Fees)
	assert.Greater(t, b.Total, 0.0)
}

func TestEstimate_UnknownInstitutionGenericRate(t *testing.T) {
	calc := newTestCalculator()

	b, err := calc.Estimate(context.Background(), Request{
		Institution: "Acme School of Welding",
		Residency:   ResidencyInState,
		Years:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, 8000.0*2, b.Tuition)
	require.NotEmpty(t, b.Warnings)
	assert.Contains(t, b.Warnings[0], "no tuition data")
	// Missing city falls back to the baseline metro with a warning.
	assert.Contains(t, b.Warnings[1], "baseline")
}

func TestEstimate_RejectsNonPositiveYears(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Estimate(context.Background(), Request{
		Institution: "Florida International University",
		Residency:   ResidencyInState,
		Years:       0,
	})
	assert.Error(t, err)
}

func TestAddCredentialFees(t *testing.T) {
	b := &types.CostBreakdown{Total: 10000}
	pathway := &types.PathwayResult{
		Certifications: []types.Certification{
			{Name: "FE Exam", Required: true},
			{Name: "Optional Cert", Required: false},
		},
		Licenses: []types.License{
			{Name: "PE License", Required: true},
		},
	}

	AddCredentialFees(b, pathway)
	assert.Equal(t, 500.0, b.Addons)
	assert.Equal(t, 10500.0, b.Total)
}
