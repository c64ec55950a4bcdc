package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("USERDESK_ADDR", "")
	t.Setenv("USERDESK_API_URL", "")
	t.Setenv("USERDESK_CONFIG", "")
	t.Setenv("USERDESK_HTTP_TIMEOUT", "")

	cfg := Load()

	if cfg.Env != "dev" {
		t.Errorf("Expected env %q, got %q", "dev", cfg.Env)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Expected addr %q, got %q", ":8080", cfg.Addr)
	}
	if cfg.ApiURL != "http://localhost:8081" {
		t.Errorf("Expected api url %q, got %q", "http://localhost:8081", cfg.ApiURL)
	}
	if cfg.HttpTimeout != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %v", cfg.HttpTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("USERDESK_API_URL", "http://api.internal")
	t.Setenv("USERDESK_HTTP_TIMEOUT", "3s")

	cfg := Load()

	if cfg.Env != "prod" {
		t.Errorf("Expected env %q, got %q", "prod", cfg.Env)
	}
	if cfg.ApiURL != "http://api.internal" {
		t.Errorf("Expected api url %q, got %q", "http://api.internal", cfg.ApiURL)
	}
	if cfg.HttpTimeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %v", cfg.HttpTimeout)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("USERDESK_HTTP_TIMEOUT", "soon")

	cfg := Load()

	if cfg.HttpTimeout != 10*time.Second {
		t.Errorf("Expected fallback timeout 10s, got %v", cfg.HttpTimeout)
	}
}
