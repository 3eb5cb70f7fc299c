package scenario

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	RateFloor   *float64                 `toml:"rate_floor"`
	RateCeiling *float64                 `toml:"rate_ceiling"`
	Vintages    map[string]ratesOverride `toml:"vintages"`
}

type ratesOverride struct {
	EmploymentIncomeYoY   *float64 `toml:"employment_income_yoy"`
	MixedIncomeYoY        *float64 `toml:"mixed_income_yoy"`
	NonLabourIncomeYoY    *float64 `toml:"non_labour_income_yoy"`
	ConsumerPriceIndexYoY *float64 `toml:"consumer_price_index_yoy"`
}

// LoadFile reads a TOML rates file and merges it over the built-in
// defaults. Vintages are keyed by name; only the fields present in the
// file are overridden.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, fmt.Errorf("decode rates file: %w", err)
	}

	if fc.RateFloor != nil {
		cfg.RateFloor = *fc.RateFloor
	}
	if fc.RateCeiling != nil {
		cfg.RateCeiling = *fc.RateCeiling
	}

	applyOverride(&cfg.Earlier, fc.Vintages)
	applyOverride(&cfg.Later, fc.Vintages)

	return cfg, nil
}

func applyOverride(v *Vintage, overrides map[string]ratesOverride) {
	o, ok := overrides[v.Name]
	if !ok {
		return
	}
	if o.EmploymentIncomeYoY != nil {
		v.EmploymentIncomeYoY = *o.EmploymentIncomeYoY
	}
	if o.MixedIncomeYoY != nil {
		v.MixedIncomeYoY = *o.MixedIncomeYoY
	}
	if o.NonLabourIncomeYoY != nil {
		v.NonLabourIncomeYoY = *o.NonLabourIncomeYoY
	}
	if o.ConsumerPriceIndexYoY != nil {
		v.ConsumerPriceIndexYoY = *o.ConsumerPriceIndexYoY
	}
}
