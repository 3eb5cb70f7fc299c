package model

// IncomeSource is the closed set of income streams a household can declare.
// Exactly one source and one amount describe the household as a whole.
type IncomeSource string

const (
	EmploymentIncome     IncomeSource = "employment_income"
	SelfEmploymentIncome IncomeSource = "self_employment_income"
	PrivatePensionIncome IncomeSource = "private_pension_income"
	StatePension         IncomeSource = "state_pension"
)

type Household struct {
	Age                 int            `json:"age"`
	IsMarried           bool           `json:"is_married"`
	IncomeSource        IncomeSource   `json:"income_source"`
	IncomeAmount        float64        `json:"income_amount"`
	NumChildren         int            `json:"num_children"`
	CustomGrowthFactors *GrowthFactors `json:"custom_growth_factors,omitempty"`
}

// GrowthFactors carries user-chosen annual growth rates (percent per year)
// for a custom scenario. A nil field means "use the published default".
type GrowthFactors struct {
	EmploymentIncomeYoY   *float64 `json:"employment_income_yoy,omitempty"`
	MixedIncomeYoY        *float64 `json:"mixed_income_yoy,omitempty"`
	NonLabourIncomeYoY    *float64 `json:"non_labour_income_yoy,omitempty"`
	ConsumerPriceIndexYoY *float64 `json:"consumer_price_index_yoy,omitempty"`
}
