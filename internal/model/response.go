package model

type ForecastResponse struct {
	ForecastMetadata ForecastMetadata `json:"forecast_metadata"`
	ForecastResult   ForecastResult   `json:"forecast_result"`
}

type ForecastMetadata struct {
	ForecastID          string `json:"forecast_id"`
	ForecastStartedAt   string `json:"forecast_started_at"`
	ForecastCompletedAt string `json:"forecast_completed_at"`
	ForecastDurationMs  int64  `json:"forecast_duration_ms"`
	ForecastOutcome     string `json:"forecast_outcome"`
}

type ForecastResult struct {
	BaseIncome        float64             `json:"base_income"`
	Messages          []ForecastMessage   `json:"messages"`
	Scenarios         []ScenarioOutcome   `json:"scenarios"`
	VintageComparison *ScenarioComparison `json:"vintage_comparison,omitempty"`
	CustomComparison  *ScenarioComparison `json:"custom_comparison,omitempty"`
}

// ScenarioOutcome is the projection of the household income under one
// growth scenario. RealProjectedIncome is the nominal projection deflated
// into base-year prices by the scenario's consumer price index rate.
type ScenarioOutcome struct {
	Scenario            string  `json:"scenario"`
	RateApplied         float64 `json:"rate_applied"`
	ProjectedIncome     float64 `json:"projected_income"`
	RealProjectedIncome float64 `json:"real_projected_income"`
	AbsoluteChange      float64 `json:"absolute_change"`
	PercentageChange    float64 `json:"percentage_change"`
}

// ScenarioComparison is a pairwise delta between two evaluated scenarios.
// Difference is always comparison minus baseline; PercentageDifference is
// taken over the baseline's projected income.
type ScenarioComparison struct {
	Baseline             string  `json:"baseline"`
	Comparison           string  `json:"comparison"`
	Difference           float64 `json:"difference"`
	PercentageDifference float64 `json:"percentage_difference"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
