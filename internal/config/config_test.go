package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":3000")
	}
	if cfg.CatalogURL != "https://swapi.dev/api/planets/" {
		t.Errorf("CatalogURL = %q, want default catalog URL", cfg.CatalogURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.RefreshInterval != 0 {
		t.Errorf("RefreshInterval = %v, want 0 (disabled)", cfg.RefreshInterval)
	}
	if !cfg.IsDev() {
		t.Errorf("IsDev() = false for default env %q", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("CATALOG_URL", "http://localhost:8000/api/planets/")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("REFRESH_INTERVAL", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerAddr != ":9090" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":9090")
	}
	if cfg.CatalogURL != "http://localhost:8000/api/planets/" {
		t.Errorf("CatalogURL = %q, want override", cfg.CatalogURL)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if cfg.RefreshInterval != 15*time.Minute {
		t.Errorf("RefreshInterval = %v, want 15m", cfg.RefreshInterval)
	}
	if cfg.IsDev() {
		t.Error("IsDev() = true for production env")
	}
}
