package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"forecast-engine/internal/config"
	"forecast-engine/internal/handler"
	"forecast-engine/internal/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	rates := scenario.Defaults()
	if cfg.ForecastsPath != "" {
		loaded, err := scenario.LoadFile(cfg.ForecastsPath)
		if err != nil {
			log.Printf("Using built-in forecast rates (reason: %v)", err)
		} else {
			rates = loaded
		}
	}

	var registry *scenario.Registry
	if cfg.ForecastRegistryURL != "" {
		registry = scenario.NewRegistry(cfg.ForecastRegistryURL)
	}

	h := handler.New(rates, registry)

	log.Printf("Forecast engine starting on %s", cfg.ListenAddr())
	if err := fasthttp.ListenAndServe(cfg.ListenAddr(), h.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
