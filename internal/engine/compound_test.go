package engine

import (
	"errors"
	"math"
	"testing"

	"forecast-engine/internal/model"
	"forecast-engine/internal/scenario"
)

func closeTo(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < 1e-9
	}
	return math.Abs(got-want)/math.Abs(want) < 1e-9
}

func TestFutureZeroGrowthIsNoOp(t *testing.T) {
	for _, amount := range []float64{0, 1, 30000, 123456.78} {
		if got := Future(amount, 0, Horizon); got != amount {
			t.Fatalf("Future(%v, 0, %d) = %v, want %v", amount, Horizon, got, amount)
		}
	}
}

func TestFutureMatchesCompoundFormula(t *testing.T) {
	cases := []struct {
		amount, rate, want float64
	}{
		{30000, 2.6, 34108.14170284128},
		{50000, 2.0, 55204.040160000004},
		{1000, -2.0, 903.9207968},
	}

	for _, c := range cases {
		got := Future(c.amount, c.rate, Horizon)
		if !closeTo(got, c.want) {
			t.Fatalf("Future(%v, %v, %d) = %v, want %v", c.amount, c.rate, Horizon, got, c.want)
		}
	}
}

func TestFutureMonotonicInRate(t *testing.T) {
	rates := []float64{-2.0, -0.5, 0, 1.3, 2.6, 5.5, 10.0}

	prev := math.Inf(-1)
	for _, r := range rates {
		got := Future(10000, r, Horizon)
		if got <= prev {
			t.Fatalf("Future(10000, %v, %d) = %v, not greater than %v", r, Horizon, got, prev)
		}
		prev = got
	}
}

func TestRelativeChange(t *testing.T) {
	got, err := RelativeChange(110, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closeTo(got, 10) {
		t.Fatalf("RelativeChange(110, 100) = %v, want 10", got)
	}

	got, err = RelativeChange(90, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closeTo(got, -10) {
		t.Fatalf("RelativeChange(90, 100) = %v, want -10", got)
	}
}

func TestRelativeChangeZeroBase(t *testing.T) {
	_, err := RelativeChange(100, 0)
	if !errors.Is(err, ErrUndefinedRatio) {
		t.Fatalf("expected ErrUndefinedRatio, got %v", err)
	}
}

func TestCategoryForClosedEnumeration(t *testing.T) {
	cases := map[model.IncomeSource]scenario.Category{
		model.EmploymentIncome:     scenario.CategoryEmployment,
		model.SelfEmploymentIncome: scenario.CategoryMixed,
		model.PrivatePensionIncome: scenario.CategoryNonLabour,
		model.StatePension:         scenario.CategoryNonLabour,
	}

	for src, want := range cases {
		got, err := CategoryFor(src)
		if err != nil {
			t.Fatalf("CategoryFor(%s): unexpected error: %v", src, err)
		}
		if got != want {
			t.Fatalf("CategoryFor(%s) = %s, want %s", src, got, want)
		}

		// Deterministic on repeated calls.
		again, _ := CategoryFor(src)
		if again != got {
			t.Fatalf("CategoryFor(%s) not deterministic", src)
		}
	}
}

func TestCategoryForUnknownSource(t *testing.T) {
	_, err := CategoryFor(model.IncomeSource("dividend_income"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
