package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/taskvault_test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	if cfg.AppPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.AppPort)
	}
	if cfg.TokenTTL != 10*time.Minute {
		t.Fatalf("expected default token ttl 10m, got %v", cfg.TokenTTL)
	}
	if !cfg.CookieSecure {
		t.Fatal("secure cookies must default to on")
	}
	if cfg.AuthRateLimit != 5 || cfg.AuthRateWindow != time.Minute {
		t.Fatalf("unexpected auth rate defaults: %d/%v", cfg.AuthRateLimit, cfg.AuthRateWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/taskvault_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("TOKEN_TTL_MINUTES", "30")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("AUTH_RATE_LIMIT", "20")

	cfg := Load()

	if cfg.AppPort != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.AppPort)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected token ttl 30m, got %v", cfg.TokenTTL)
	}
	if cfg.CookieSecure {
		t.Fatal("COOKIE_SECURE=false must disable secure cookies")
	}
	if cfg.AuthRateLimit != 20 {
		t.Fatalf("expected auth rate limit 20, got %d", cfg.AuthRateLimit)
	}
}
