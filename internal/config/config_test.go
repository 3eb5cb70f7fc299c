package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("ADDR", ":7070")
	t.Setenv("FORECASTS_PATH", "/etc/forecasts.toml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("Addr = %s, want :7070", cfg.Addr)
	}
	if cfg.ForecastsPath != "/etc/forecasts.toml" {
		t.Fatalf("ForecastsPath = %s, want /etc/forecasts.toml", cfg.ForecastsPath)
	}
}

func TestListenAddrPrefersPort(t *testing.T) {
	cfg := Config{Addr: ":8080", Port: "9090"}
	if got := cfg.ListenAddr(); got != ":9090" {
		t.Fatalf("ListenAddr = %s, want :9090", got)
	}

	cfg.Port = ""
	if got := cfg.ListenAddr(); got != ":8080" {
		t.Fatalf("ListenAddr = %s, want :8080", got)
	}
}
