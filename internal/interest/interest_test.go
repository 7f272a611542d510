package interest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateThreeYears(t *testing.T) {
	res := Calculate(10000, 5, 3, UnitYears)

	assert.InDelta(t, 1500.00, res.SimpleInterest, 0.001)
	assert.InDelta(t, 1576.25, res.CompoundInterest, 0.01)
	assert.InDelta(t, 11500.00, res.TotalSimple, 0.001)
	assert.InDelta(t, 11576.25, res.TotalCompound, 0.01)
}

func TestCalculateEighteenMonths(t *testing.T) {
	res := Calculate(5000, 3.5, 18, UnitMonths)

	assert.InDelta(t, 262.50, res.SimpleInterest, 0.001)
	assert.InDelta(t, 267.68, res.CompoundInterest, 0.01)
}

func TestSimpleFormula(t *testing.T) {
	cases := []struct {
		principal, rate, years float64
		want                   float64
	}{
		{10000, 5, 3, 1500},
		{5000, 3.5, 1.5, 262.5},
		{1000, 0, 10, 0},
		{100, 100, 1, 100},
	}

	for _, tc := range cases {
		got := Simple(tc.principal, tc.rate, tc.years)
		assert.InDelta(t, tc.want, got, 1e-9,
			"Simple(%v, %v, %v)", tc.principal, tc.rate, tc.years)
	}
}

func TestCompoundDominatesOverMultiplePeriods(t *testing.T) {
	cases := []struct {
		principal, rate, years float64
	}{
		{10000, 5, 3},
		{5000, 3.5, 2},
		{1000, 12, 10},
		{250, 1, 1.5},
	}

	for _, tc := range cases {
		simple := Simple(tc.principal, tc.rate, tc.years)
		compound := Compound(tc.principal, tc.rate, tc.years)
		assert.GreaterOrEqual(t, compound, simple,
			"compound should dominate for P=%v R=%v T=%v", tc.principal, tc.rate, tc.years)
	}
}

func TestCompoundApproachesSimpleForShortHorizons(t *testing.T) {
	simple := Simple(10000, 5, 0.001)
	compound := Compound(10000, 5, 0.001)

	assert.InDelta(t, simple, compound, 0.01)
}

func TestUnitConversionEquivalence(t *testing.T) {
	fromMonths := Calculate(5000, 3.5, 12, UnitMonths)
	fromYears := Calculate(5000, 3.5, 1, UnitYears)
	assert.InDelta(t, fromYears.SimpleInterest, fromMonths.SimpleInterest, 1e-9)
	assert.InDelta(t, fromYears.CompoundInterest, fromMonths.CompoundInterest, 1e-9)

	fromDays := Calculate(5000, 3.5, 365, UnitDays)
	assert.InDelta(t, fromYears.SimpleInterest, fromDays.SimpleInterest, 1e-9)
	assert.InDelta(t, fromYears.CompoundInterest, fromDays.CompoundInterest, 1e-9)
}

func TestYearsUnknownUnitPassesThrough(t *testing.T) {
	assert.Equal(t, 2.5, Years(2.5, Unit("fortnights")))
	assert.Equal(t, 2.5, Years(2.5, UnitYears))
	assert.InDelta(t, 0.5, Years(6, UnitMonths), 1e-12)
	assert.InDelta(t, 0.2, Years(73, UnitDays), 1e-12)
}

func TestZeroRateYieldsZeroInterest(t *testing.T) {
	res := Calculate(10000, 0, 5, UnitYears)

	assert.Zero(t, res.SimpleInterest)
	assert.InDelta(t, 0, res.CompoundInterest, 1e-9)
	assert.InDelta(t, 10000, res.TotalSimple, 1e-9)
	assert.InDelta(t, 10000, res.TotalCompound, 1e-9)
}
