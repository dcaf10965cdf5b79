package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"holistic-daily/config"
	"holistic-daily/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g-key", Model: "gemini-2.5-flash"},
			{Name: "grok", Enabled: true, Priority: 1, APIKey: "x-key", Model: "grok-3-mini", Timeout: "5s"},
			{Name: "grok", Enabled: false, Priority: 3, APIKey: "x-key", Model: "grok-3"},
			{Name: "mystery", Enabled: true, Priority: 4, APIKey: "k", Model: "m"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers (unknown one skipped), got %d", len(providers))
	}
	if providers[0].Name() != "grok" || providers[1].Name() != "gemini" {
		t.Errorf("providers not sorted by priority: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.LLMConfig
		want error
	}{
		{name: "empty", cfg: &config.LLMConfig{}, want: ErrNoProvidersConfigured},
		{name: "all disabled", cfg: &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "grok", APIKey: "k", Model: "m"}}}, want: ErrNoProvidersConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "grok", Enabled: true, Priority: 1, Model: "m"}},
	}, log.NewNop()); err == nil {
		t.Error("expected error when the only provider has no API key")
	}
}

func TestManagerConfig(t *testing.T) {
	mc := ManagerConfig(&config.LLMConfig{FallbackEnabled: true, RetryDelay: "250ms", MaxTotalTimeout: "bogus"})
	if mc.RetryAttempts != 1 {
		t.Errorf("retry attempts should floor at 1, got %d", mc.RetryAttempts)
	}
	if mc.RetryDelay != 250*time.Millisecond {
		t.Errorf("retry delay = %v", mc.RetryDelay)
	}
	if mc.MaxTotalTimeout != 0 {
		t.Errorf("invalid timeout should fall back to 0, got %v", mc.MaxTotalTimeout)
	}
}
