package interest

import (
	"math"
)

// Calculation constants. The 365-day year and 12-month year are deliberate
// simplifications carried over from every prior version of the app; do not
// add leap-year or month-length handling.
const (
	DaysPerYear   = 365.0
	MonthsPerYear = 12.0
)

// Input bounds enforced by callers before invoking the engine.
const (
	MinPrincipal = 0.01
	MinRate      = 0.0
	MaxRate      = 1000.0
	MinTime      = 0.01
	MaxTime      = 1000.0
)

// Unit is the unit of an elapsed-time value.
type Unit string

const (
	UnitYears  Unit = "years"
	UnitMonths Unit = "months"
	UnitDays   Unit = "days"
)

// Result holds the computed interest figures for one investment.
type Result struct {
	SimpleInterest   float64 `json:"simple_interest"`
	CompoundInterest float64 `json:"compound_interest"`
	TotalSimple      float64 `json:"total_simple"`
	TotalCompound    float64 `json:"total_compound"`
}

// Years converts an elapsed-time value in the given unit to years.
// Unknown units are treated as years.
func Years(value float64, unit Unit) float64 {
	switch unit {
	case UnitMonths:
		return value / MonthsPerYear
	case UnitDays:
		return value / DaysPerYear
	default:
		return value
	}
}

// Simple returns simple interest on the principal: P * (R/100) * T.
func Simple(principal, rate, years float64) float64 {
	return principal * (rate / 100) * years
}

// Compound returns compound interest: P * ((1 + R/100)^T - 1).
func Compound(principal, rate, years float64) float64 {
	return principal * (math.Pow(1+rate/100, years) - 1)
}

// Calculate computes both interest figures and totals for the given
// principal, percentage rate, and elapsed time. No rounding is applied;
// callers round at presentation time.
func Calculate(principal, rate, timeValue float64, unit Unit) Result {
	years := Years(timeValue, unit)
	simple := Simple(principal, rate, years)
	compound := Compound(principal, rate, years)

	return Result{
		SimpleInterest:   simple,
		CompoundInterest: compound,
		TotalSimple:      principal + simple,
		TotalCompound:    principal + compound,
	}
}
