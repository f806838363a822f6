package config

import (
	"github.com/thcsdongtra/examgen/internal/examgen"
	"github.com/thcsdongtra/examgen/internal/llm"
)

// Config holds all application configuration.
type Config struct {
	LLM   LLMConfig   `mapstructure:"llm"`
	Log   LogConfig   `mapstructure:"log"`
	Store StoreConfig `mapstructure:"store"`
}

// LLMConfig selects and tunes the generation provider.
type LLMConfig struct {
	Provider    string       `mapstructure:"provider" validate:"required,oneof=gemini openai anthropic openrouter"`
	Gemini      VendorConfig `mapstructure:"gemini"`
	OpenAI      VendorConfig `mapstructure:"openai"`
	Anthropic   VendorConfig `mapstructure:"anthropic"`
	OpenRouter  VendorConfig `mapstructure:"openrouter"`
	MaxTokens   int          `mapstructure:"max_tokens" validate:"gte=0"`
	Temperature float64      `mapstructure:"temperature" validate:"gte=0,lte=2"`
}

// VendorConfig is the per-provider connection block.
type VendorConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// StoreConfig locates the request audit database.
type StoreConfig struct {
	// Enabled turns on recording of every provider request, including the
	// full prompt and reply. Off by default.
	Enabled bool `mapstructure:"enabled"`

	// Path to the SQLite file. Empty means store.DefaultDBPath.
	Path string `mapstructure:"path"`
}

// Provider converts the LLM block into the provider factory's config.
func (c Config) Provider() llm.Config {
	return llm.Config{
		Provider:   c.LLM.Provider,
		Gemini:     llm.GeminiConfig(c.LLM.Gemini),
		OpenAI:     llm.OpenAIConfig(c.LLM.OpenAI),
		Anthropic:  llm.AnthropicConfig(c.LLM.Anthropic),
		OpenRouter: llm.OpenRouterConfig(c.LLM.OpenRouter),
	}
}

// Generation returns the request tuning for examgen.Generator.
func (c Config) Generation() examgen.Config {
	return examgen.Config{
		MaxTokens:   c.LLM.MaxTokens,
		Temperature: c.LLM.Temperature,
	}
}
