package handler

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"forecast-engine/internal/engine"
	"forecast-engine/internal/model"
	"forecast-engine/internal/scenario"
)

type Handler struct {
	rates    scenario.Config
	registry *scenario.Registry
}

// New builds the HTTP adapter. registry may be nil, in which case the
// configured rate tables are used as-is.
func New(rates scenario.Config, registry *scenario.Registry) *Handler {
	return &Handler{rates: rates, registry: registry}
}

func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"message": "Household income forecast engine"})
	case "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/calculate":
		h.handleCalculate(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var household model.Household
	if err := json.Unmarshal(ctx.PostBody(), &household); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if msg, ok := h.checkCustomRates(household.CustomGrowthFactors); !ok {
		writeError(ctx, fasthttp.StatusBadRequest, msg)
		return
	}

	rates := h.rates
	if h.registry != nil {
		rates = h.registry.Resolve(rates)
	}

	resp := engine.Process(&household, rates)

	status := fasthttp.StatusOK
	if resp.ForecastMetadata.ForecastOutcome == model.OutcomeFailure {
		status = fasthttp.StatusBadRequest
	}
	writeJSON(ctx, status, resp)
}

// checkCustomRates enforces the boundary guard on user-chosen rates: each
// must be finite and inside the configured floor/ceiling. The engine
// itself stays total over finite rates.
func (h *Handler) checkCustomRates(gf *model.GrowthFactors) (string, bool) {
	if gf == nil {
		return "", true
	}

	fields := []struct {
		name string
		rate *float64
	}{
		{"employment_income_yoy", gf.EmploymentIncomeYoY},
		{"mixed_income_yoy", gf.MixedIncomeYoY},
		{"non_labour_income_yoy", gf.NonLabourIncomeYoY},
		{"consumer_price_index_yoy", gf.ConsumerPriceIndexYoY},
	}

	for _, f := range fields {
		if f.rate == nil {
			continue
		}
		if math.IsNaN(*f.rate) || math.IsInf(*f.rate, 0) {
			return fmt.Sprintf("%s must be a finite number", f.name), false
		}
		if *f.rate < h.rates.RateFloor || *f.rate > h.rates.RateCeiling {
			return fmt.Sprintf("%s must be between %.1f and %.1f", f.name, h.rates.RateFloor, h.rates.RateCeiling), false
		}
	}

	return "", true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	b, _ := json.Marshal(v)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
