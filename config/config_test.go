package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: test-secret
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Store.Driver != StoreDriverSQLite {
		t.Errorf("expected sqlite driver by default, got %q", cfg.Store.Driver)
	}
	if cfg.Support.Provider != SupportProviderKeyword {
		t.Errorf("expected keyword provider by default, got %q", cfg.Support.Provider)
	}
	if cfg.Catalog.PlaceholderUserID != "user-123" {
		t.Errorf("expected placeholder user-123, got %q", cfg.Catalog.PlaceholderUserID)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("expected 30m session ttl, got %v", cfg.Session.TTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadFile_LLMProviders(t *testing.T) {
	t.Setenv("TEST_GROK_KEY", "xai-123")
	path := writeConfig(t, `
auth:
  jwt_secret: test-secret
support:
  provider: llm
llm:
  providers:
    - name: grok
      enabled: true
      priority: 1
      api_key: ${TEST_GROK_KEY}
      model: grok-3-mini
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.LLM.Providers) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(cfg.LLM.Providers))
	}
	if got := cfg.LLM.Providers[0].APIKey; got != "xai-123" {
		t.Errorf("expected expanded api key, got %q", got)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing secret", body: "store:\n  driver: sqlite\n"},
		{name: "unknown driver", body: "auth:\n  jwt_secret: s\nstore:\n  driver: mongo\n"},
		{name: "unknown provider", body: "auth:\n  jwt_secret: s\nsupport:\n  provider: oracle\n"},
		{name: "llm without providers", body: "auth:\n  jwt_secret: s\nsupport:\n  provider: llm\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			if _, err := LoadFile(writeConfig(t, tt.body)); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestValidateLLMConfig(t *testing.T) {
	cfg := &LLMConfig{Providers: []ProviderConfig{
		{Name: "grok", Enabled: true, Priority: 1, Model: "grok-3-mini"},
		{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
	}}
	if err := validateLLMConfig(cfg); err == nil {
		t.Errorf("expected duplicate priority error")
	}
}
