package scenario

// Category selects which growth-rate series applies to an income stream.
type Category int

const (
	CategoryEmployment Category = iota
	CategoryMixed
	CategoryNonLabour
)

func (c Category) String() string {
	switch c {
	case CategoryEmployment:
		return "employment"
	case CategoryMixed:
		return "mixed"
	case CategoryNonLabour:
		return "non_labour"
	default:
		return "unknown"
	}
}

// Vintage is a named, dated release of official growth-rate projections,
// expressed as annual percentages (2.6 means +2.6%/year). Rates compound
// over the projection horizon; they are never summed.
type Vintage struct {
	Name                  string  `json:"name"`
	EmploymentIncomeYoY   float64 `json:"employment_income_yoy"`
	MixedIncomeYoY        float64 `json:"mixed_income_yoy"`
	NonLabourIncomeYoY    float64 `json:"non_labour_income_yoy"`
	ConsumerPriceIndexYoY float64 `json:"consumer_price_index_yoy"`
}

// Rate returns the vintage's annual rate for the given growth category.
func (v Vintage) Rate(c Category) float64 {
	switch c {
	case CategoryEmployment:
		return v.EmploymentIncomeYoY
	case CategoryMixed:
		return v.MixedIncomeYoY
	default:
		return v.NonLabourIncomeYoY
	}
}

// Config is the full rate configuration evaluated for every request: the
// two official vintages plus the boundary guard range for custom rates.
// Earlier is the baseline of the vintage comparison; Later is the reference
// vintage being compared against it.
type Config struct {
	Earlier Vintage
	Later   Vintage

	// Guard range for user-supplied rates, percent per year. Enforced at
	// the HTTP boundary only; the engine accepts any finite rate.
	RateFloor   float64
	RateCeiling float64
}

// Defaults returns the built-in vintage tables. The rates are the compound
// annual growth implied by the published index series between the base and
// target year, rounded to a tenth of a percent.
func Defaults() Config {
	return Config{
		Earlier: Vintage{
			Name:                  "autumn_2024",
			EmploymentIncomeYoY:   2.6,
			MixedIncomeYoY:        5.5,
			NonLabourIncomeYoY:    5.0,
			ConsumerPriceIndexYoY: 2.0,
		},
		Later: Vintage{
			Name:                  "spring_2025",
			EmploymentIncomeYoY:   2.3,
			MixedIncomeYoY:        5.3,
			NonLabourIncomeYoY:    4.9,
			ConsumerPriceIndexYoY: 2.4,
		},
		RateFloor:   -2.0,
		RateCeiling: 10.0,
	}
}
