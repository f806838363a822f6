package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/thcsdongtra/examgen/internal/examgen"
	"github.com/thcsdongtra/examgen/internal/llm"
)

// EnvPrefix prefixes every environment override, e.g. EXAMGEN_LOG_LEVEL.
const EnvPrefix = "EXAMGEN"

// apiKeyEnv lists the environment variables read for each provider key, in
// priority order.
var apiKeyEnv = map[string][]string{
	"llm.gemini.api_key":     {"API_KEY", "GEMINI_API_KEY", "EXAMGEN_LLM_GEMINI_API_KEY"},
	"llm.openai.api_key":     {"OPENAI_API_KEY", "EXAMGEN_LLM_OPENAI_API_KEY"},
	"llm.anthropic.api_key":  {"ANTHROPIC_API_KEY", "EXAMGEN_LLM_ANTHROPIC_API_KEY"},
	"llm.openrouter.api_key": {"OPENROUTER_API_KEY", "EXAMGEN_LLM_OPENROUTER_API_KEY"},
}

// LoadDotEnv loads .env from the working directory when present. Variables
// already set in the environment are left alone.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// Load resolves configuration from defaults, the optional file at path and
// the environment. Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range apiKeyEnv {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", d.Provider)
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.gemini.base_url", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.anthropic.base_url", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.max_tokens", 0)
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("store.path", "")
	v.SetDefault("store.enabled", false)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field formats. Provider credentials are checked later by
// llm.Config.Validate so that commands not calling a provider still run
// without a key.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// LoadExam reads an exam configuration from a YAML, JSON or TOML file. Keys
// use the JSON field names (subject, grade, scopeType, ...). The result is not
// validated; call ExamConfig.Validate.
func LoadExam(path string) (examgen.ExamConfig, error) {
	var cfg examgen.ExamConfig

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read exam %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode exam %s: %w", path, err)
	}
	return cfg, nil
}
