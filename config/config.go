package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported model providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Model provider selection
	ModelProvider string `mapstructure:"MODEL_PROVIDER"` // openai, anthropic or gemini

	// OpenAI
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // optional, for proxies and compatible servers

	// Anthropic
	AnthropicKey     string `mapstructure:"ANTHROPIC_API_KEY"`
	AnthropicModel   string `mapstructure:"ANTHROPIC_MODEL"`
	AnthropicBaseURL string `mapstructure:"ANTHROPIC_BASE_URL"`

	// Gemini
	GeminiKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel string `mapstructure:"GEMINI_MODEL"`

	// Sampling
	Temperature float32 `mapstructure:"TEMPERATURE"`
	MaxTokens   int     `mapstructure:"MAX_TOKENS"`
	MaxRetries  int     `mapstructure:"MAX_RETRIES"`

	// Output
	ProjectOutputDir string        `mapstructure:"PROJECT_OUTPUT_DIR"` // parent of generated project directories
	CommandTimeout   time.Duration `mapstructure:"COMMAND_TIMEOUT"`    // 0 disables the limit
	ShellPath        string        `mapstructure:"SHELL_PATH"`

	// Server / logging
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., "127.0.0.1:8080"
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"MODEL_PROVIDER":     ProviderOpenAI,
	"OPENAI_MODEL":       "gpt-4-0125-preview",
	"ANTHROPIC_MODEL":    "claude-3-sonnet-20240229",
	"GEMINI_MODEL":       "gemini-1.5-pro",
	"TEMPERATURE":        0.7,
	"MAX_TOKENS":         4096,
	"MAX_RETRIES":        3,
	"PROJECT_OUTPUT_DIR": "generated_projects",
	"COMMAND_TIMEOUT":    "0s",
	"SHELL_PATH":         "sh",
	"SERVER_ADDRESS":     "127.0.0.1:8080",
	"LOG_LEVEL":          "info",
}

// LoadConfig reads configuration from .env, config.yaml in path, and the
// environment. Environment variables win over the file.
func LoadConfig(path string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Bind every key explicitly so Unmarshal sees env-only values.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_BASE_URL", "ANTHROPIC_API_KEY", "ANTHROPIC_BASE_URL", "GEMINI_API_KEY"} {
		v.SetDefault(key, "")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.ModelProvider = strings.ToLower(strings.TrimSpace(cfg.ModelProvider))
	return cfg, nil
}

// Model returns the model name configured for the active provider.
func (c Config) Model() string {
	switch c.ModelProvider {
	case ProviderAnthropic:
		return c.AnthropicModel
	case ProviderGemini:
		return c.GeminiModel
	default:
		return c.OpenAIModel
	}
}

// APIKey returns the key configured for the active provider.
func (c Config) APIKey() string {
	switch c.ModelProvider {
	case ProviderAnthropic:
		return c.AnthropicKey
	case ProviderGemini:
		return c.GeminiKey
	default:
		return c.OpenAIKey
	}
}

// Validate checks the settings needed to talk to a model provider.
func (c Config) Validate() error {
	switch c.ModelProvider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unsupported model provider %q (want openai, anthropic or gemini)", c.ModelProvider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("no API key configured for provider %s: set %s", c.ModelProvider, strings.ToUpper(c.ModelProvider)+"_API_KEY")
	}
	if c.Model() == "" {
		return fmt.Errorf("no model configured for provider %s", c.ModelProvider)
	}
	if c.MaxRetries < 0 {
		return errors.New("MAX_RETRIES must not be negative")
	}
	return nil
}
