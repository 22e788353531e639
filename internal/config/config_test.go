package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DOCVAULT_BASE_URL", "")
	t.Setenv("DOCVAULT_RPS", "")
	t.Setenv("DOCVAULT_USER_ID", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("RETRY_MAX_ATTEMPTS", "")

	cfg := Load()
	if cfg.RemoteBaseURL != "https://apis.allsoft.co/api/documentManagement" {
		t.Fatalf("unexpected default base url %q", cfg.RemoteBaseURL)
	}
	if cfg.RemoteRPS != 5 {
		t.Fatalf("expected default rps 5, got %v", cfg.RemoteRPS)
	}
	if cfg.RetryMaxAttempts != 3 {
		t.Fatalf("expected default retry attempts 3, got %d", cfg.RetryMaxAttempts)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors default, got %v", cfg.CORSOrigins)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("DOCVAULT_BASE_URL", "https://example.test/api")
	t.Setenv("DOCVAULT_RPS", "2.5")
	t.Setenv("CORS_ORIGINS", "https://app.example.test, https://admin.example.test")
	t.Setenv("BREAKER_ENABLED", "false")

	cfg := Load()
	if cfg.RemoteBaseURL != "https://example.test/api" {
		t.Fatalf("expected base url override, got %q", cfg.RemoteBaseURL)
	}
	if cfg.RemoteRPS != 2.5 {
		t.Fatalf("expected rps 2.5, got %v", cfg.RemoteRPS)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.test" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.BreakerEnabled {
		t.Fatalf("expected breaker disabled")
	}
}

func TestLoadFallsBackOnBadNumbers(t *testing.T) {
	t.Setenv("DOCVAULT_RPS", "not-a-number")
	t.Setenv("RETRY_MAX_ATTEMPTS", "many")

	cfg := Load()
	if cfg.RemoteRPS != 5 {
		t.Fatalf("expected fallback rps 5, got %v", cfg.RemoteRPS)
	}
	if cfg.RetryMaxAttempts != 3 {
		t.Fatalf("expected fallback retry attempts 3, got %d", cfg.RetryMaxAttempts)
	}
}
