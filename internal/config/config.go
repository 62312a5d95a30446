// Package config provides configuration loading for the bot.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pennywise-bot/pennywise/internal/common"
	"github.com/pennywise-bot/pennywise/internal/llm"
)

// Config is the full runtime configuration, populated from the config file
// and PENNYWISE_* environment variables.
type Config struct {
	Telegram TelegramConfig
	LLM      LLMConfig
	Database DatabaseConfig
}

// TelegramConfig holds the chat transport settings.
type TelegramConfig struct {
	Token string
}

// LLMConfig holds the language-model settings.
type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// DatabaseConfig holds the sqlite settings.
type DatabaseConfig struct {
	Path string
}

// SetDefaults registers defaults for everything that is not a secret.
func SetDefaults() {
	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("llm.rate_limit", 60)
	viper.SetDefault("database.path", "~/.local/share/pennywise/pennywise.db")
}

// Load reads the configuration out of viper.
func Load() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Token: viper.GetString("telegram.token"),
		},
		LLM: LLMConfig{
			Provider:    viper.GetString("llm.provider"),
			APIKey:      viper.GetString("llm.api_key"),
			Model:       viper.GetString("llm.model"),
			Timeout:     viper.GetDuration("llm.timeout"),
			RateLimit:   viper.GetInt("llm.rate_limit"),
			Temperature: viper.GetFloat64("llm.temperature"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
		},
		Database: DatabaseConfig{
			Path: ExpandPath(viper.GetString("database.path")),
		},
	}
}

// Validate checks for the two required secrets. Absence of either is a
// fatal startup error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return fmt.Errorf("%w: telegram.token (PENNYWISE_TELEGRAM_TOKEN)", common.ErrMissingConfig)
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("%w: llm.api_key (PENNYWISE_LLM_API_KEY)", common.ErrMissingConfig)
	}
	return nil
}

// ExtractorConfig converts the LLM section into the extractor's config.
func (c *Config) ExtractorConfig() llm.Config {
	return llm.Config{
		Provider:    c.LLM.Provider,
		APIKey:      c.LLM.APIKey,
		Model:       c.LLM.Model,
		Timeout:     c.LLM.Timeout,
		RateLimit:   c.LLM.RateLimit,
		Temperature: c.LLM.Temperature,
		MaxTokens:   c.LLM.MaxTokens,
	}
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
