package llm

import (
	"os"
	"testing"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"AIGUA_LLM_PROVIDER", "AIGUA_GEMINI_API_KEY", "AIGUA_OPENAI_API_KEY",
		"AIGUA_ANTHROPIC_API_KEY", "AIGUA_OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearKeys(t)

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultConfig()
	if cfg.Provider != want.Provider || cfg.Gemini.Model != want.Gemini.Model {
		t.Fatalf("unexpected provider defaults: %+v", cfg)
	}
	if cfg.Retry != want.Retry {
		t.Fatalf("retry = %+v, want %+v", cfg.Retry, want.Retry)
	}
	if cfg.OpenRouter.BaseURL != defaultOpenRouterBaseURL {
		t.Fatalf("openrouter base URL = %q", cfg.OpenRouter.BaseURL)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeys(t)
	t.Setenv("AIGUA_LLM_PROVIDER", "openai")
	t.Setenv("AIGUA_OPENAI_API_KEY", "sk-test")
	t.Setenv("AIGUA_OPENAI_MODEL", "gpt-4o")
	t.Setenv("AIGUA_LLM_RETRY_MAX_ATTEMPTS", "3")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected config %+v", cfg.OpenAI)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("max attempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
		found    bool
	}{
		{"nothing", nil, "gemini", false},
		{"hosted API_KEY", map[string]string{"API_KEY": "g"}, "gemini", true},
		{"API_KEY wins", map[string]string{"API_KEY": "g", "OPENAI_API_KEY": "o"}, "gemini", true},
		{"openai", map[string]string{"OPENAI_API_KEY": "o"}, "openai", true},
		{"anthropic", map[string]string{"ANTHROPIC_API_KEY": "a"}, "anthropic", true},
		{"openrouter", map[string]string{"OPENROUTER_API_KEY": "r"}, "openrouter", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKeys(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, ok := DiscoverConfig(DefaultConfig())
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if cfg.Provider != tt.provider {
				t.Fatalf("provider = %q, want %q", cfg.Provider, tt.provider)
			}
			if ok {
				if err := cfg.Validate(); err != nil {
					t.Fatalf("discovered config should validate: %v", err)
				}
			}
		})
	}
}

func TestLoadConfig_MissingCredentialIsError(t *testing.T) {
	clearKeys(t)
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error without any API key")
	}
}
