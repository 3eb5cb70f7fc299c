package engine

import (
	"fmt"
	"math"

	"forecast-engine/internal/model"
	"forecast-engine/internal/scenario"
)

// Horizon is the fixed number of years between the base year (2025) and
// the target year (2030).
const Horizon = 5

// Future compounds amount by ratePct percent per year over years.
func Future(amount, ratePct float64, years int) float64 {
	return amount * math.Pow(1+ratePct/100, float64(years))
}

// RelativeChange returns the percentage change from base to value, with
// the strict ratio semantics: a zero base is ErrUndefinedRatio.
func RelativeChange(value, base float64) (float64, error) {
	if base == 0 {
		return 0, ErrUndefinedRatio
	}
	return (value - base) / base * 100, nil
}

// CategoryFor maps an income source to its growth-rate category. The
// mapping is total over the closed enumeration: employment income grows
// with the employment rate, self-employment with the mixed-income rate,
// and both pension sources with the non-labour rate.
func CategoryFor(src model.IncomeSource) (scenario.Category, error) {
	switch src {
	case model.EmploymentIncome:
		return scenario.CategoryEmployment, nil
	case model.SelfEmploymentIncome:
		return scenario.CategoryMixed, nil
	case model.PrivatePensionIncome, model.StatePension:
		return scenario.CategoryNonLabour, nil
	default:
		return 0, fmt.Errorf("%w: unknown income source %q", ErrInvalidInput, src)
	}
}
