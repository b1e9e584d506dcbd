package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LLM_PROVIDER", "NARRATIVE_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.LLMProvider != "openai" {
		t.Fatalf("expected default provider openai, got %q", cfg.LLMProvider)
	}
	if cfg.NarrativeTimeout != 60*time.Second {
		t.Fatalf("expected default narrative timeout 60s, got %v", cfg.NarrativeTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "PROD")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("NARRATIVE_TIMEOUT_SECONDS", "15")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected normalized production env, got %q", cfg.Env)
	}
	if cfg.LLMProvider != "googleai" {
		t.Fatalf("expected gemini normalized to googleai, got %q", cfg.LLMProvider)
	}
	if cfg.NarrativeTimeout != 15*time.Second {
		t.Fatalf("expected 15s narrative timeout, got %v", cfg.NarrativeTimeout)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("NARRATIVE_TIMEOUT_SECONDS", "not-a-number")
	cfg := Load()
	if cfg.NarrativeTimeout != 60*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.NarrativeTimeout)
	}
}
