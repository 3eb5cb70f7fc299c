package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"forecast-engine/internal/model"
	"forecast-engine/internal/scenario"
)

// CustomScenario is the name the result uses for a caller-supplied
// growth-factor set.
const CustomScenario = "custom"

// Process validates the household and projects its income to the target
// year under both official forecast vintages, plus the custom scenario
// when one is supplied. The base-income snapshot is fixed before any
// scenario is evaluated, so every projection in one result compares
// against an identical baseline. All-or-nothing: on a critical message
// the result carries no projections.
func Process(h *model.Household, rates scenario.Config) *model.ForecastResponse {
	start := time.Now()

	outcome := model.OutcomeSuccess
	var result model.ForecastResult
	var msgs []model.ForecastMessage

	if critical := validate(h); len(critical) > 0 {
		outcome = model.OutcomeFailure
		msgs = critical
	} else {
		result, msgs = evaluate(h, rates)
	}

	for i := range msgs {
		msgs[i].ID = i
	}
	if msgs == nil {
		msgs = []model.ForecastMessage{}
	}
	result.Messages = msgs

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.ForecastResponse{
		ForecastMetadata: model.ForecastMetadata{
			ForecastID:          uuid.New().String(),
			ForecastStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			ForecastCompletedAt: now.Format(time.RFC3339),
			ForecastDurationMs:  elapsed.Milliseconds(),
			ForecastOutcome:     outcome,
		},
		ForecastResult: result,
	}
}

func validate(h *model.Household) []model.ForecastMessage {
	if h.Age < 16 {
		return []model.ForecastMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_AGE",
			Message: "Age must be at least 16",
		}}
	}

	if h.IncomeAmount < 0 {
		return []model.ForecastMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_INCOME_AMOUNT",
			Message: "Income amount must be non-negative",
		}}
	}

	if h.NumChildren < 0 || h.NumChildren > 10 {
		return []model.ForecastMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_NUM_CHILDREN",
			Message: "Number of children must be between 0 and 10",
		}}
	}

	if _, err := CategoryFor(h.IncomeSource); err != nil {
		return []model.ForecastMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_INCOME_SOURCE",
			Message: fmt.Sprintf("Unknown income source: %s", h.IncomeSource),
		}}
	}

	return nil
}

func evaluate(h *model.Household, rates scenario.Config) (model.ForecastResult, []model.ForecastMessage) {
	cat, _ := CategoryFor(h.IncomeSource)
	base := h.IncomeAmount

	var msgs []model.ForecastMessage
	if base == 0 {
		msgs = append(msgs, model.ForecastMessage{
			Level:   model.LevelWarning,
			Code:    "ZERO_BASE_INCOME",
			Message: "Base income is 0; all percentage fields report 0",
		})
	}

	earlier := project(rates.Earlier.Name, base, rates.Earlier.Rate(cat), rates.Earlier.ConsumerPriceIndexYoY)
	later := project(rates.Later.Name, base, rates.Later.Rate(cat), rates.Later.ConsumerPriceIndexYoY)

	vintageCmp := compare(earlier, later)
	result := model.ForecastResult{
		BaseIncome:        base,
		Scenarios:         []model.ScenarioOutcome{earlier, later},
		VintageComparison: &vintageCmp,
	}

	if gf := h.CustomGrowthFactors; gf != nil {
		// Nil custom fields fall back to the earlier official vintage,
		// which is the table the custom scenario is built from.
		rate := customRate(cat, gf, rates.Earlier)
		cpi := rates.Earlier.ConsumerPriceIndexYoY
		if gf.ConsumerPriceIndexYoY != nil {
			cpi = *gf.ConsumerPriceIndexYoY
		}

		custom := project(CustomScenario, base, rate, cpi)
		result.Scenarios = append(result.Scenarios, custom)

		customCmp := compare(later, custom)
		result.CustomComparison = &customCmp
	}

	return result, msgs
}

func project(name string, base, rate, cpi float64) model.ScenarioOutcome {
	projected := Future(base, rate, Horizon)
	return model.ScenarioOutcome{
		Scenario:            name,
		RateApplied:         rate,
		ProjectedIncome:     projected,
		RealProjectedIncome: projected / math.Pow(1+cpi/100, Horizon),
		AbsoluteChange:      projected - base,
		PercentageChange:    pctOrZero(projected-base, base),
	}
}

// compare computes comparison minus baseline; the percentage is taken
// over the baseline's projected income.
func compare(baseline, comparison model.ScenarioOutcome) model.ScenarioComparison {
	diff := comparison.ProjectedIncome - baseline.ProjectedIncome
	return model.ScenarioComparison{
		Baseline:             baseline.Scenario,
		Comparison:           comparison.Scenario,
		Difference:           diff,
		PercentageDifference: pctOrZero(diff, baseline.ProjectedIncome),
	}
}

func customRate(cat scenario.Category, gf *model.GrowthFactors, fallback scenario.Vintage) float64 {
	var override *float64
	switch cat {
	case scenario.CategoryEmployment:
		override = gf.EmploymentIncomeYoY
	case scenario.CategoryMixed:
		override = gf.MixedIncomeYoY
	default:
		override = gf.NonLabourIncomeYoY
	}
	if override != nil {
		return *override
	}
	return fallback.Rate(cat)
}

// pctOrZero is the engine's zero-base policy: ratios against a zero base
// report 0 rather than failing.
func pctOrZero(delta, base float64) float64 {
	if base == 0 {
		return 0
	}
	return delta / base * 100
}
