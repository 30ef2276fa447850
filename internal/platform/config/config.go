package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	IsProduction bool
	LogLevel     string `validate:"oneof=debug info warn error"`

	// Assistant intent classification collaborator.
	IntentProvider string
	IntentModel    string
	IntentTimeout  time.Duration

	// Assistant write execution policy.
	AutoExecuteConfidenceThreshold float64 `validate:"gte=0,lte=1"`

	// Merchant alias fuzzy matching.
	AliasSimilarityThreshold float64 `validate:"gte=0,lte=100"`

	// Scheduled alert checks.
	AlertWindowHours int `validate:"gte=1"`
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Defaults mirror the production settings; every loaded value is
// validated before use.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AI_INTENT_PROVIDER", "openrouter")
	viper.SetDefault("AI_INTENT_MODEL", "anthropic/sonnet")
	viper.SetDefault("AI_INTENT_TIMEOUT", "30s")
	viper.SetDefault("WRITE_AUTO_EXECUTE_CONFIDENCE_THRESHOLD", 0.9)
	viper.SetDefault("MERCHANT_ALIAS_SIMILARITY_THRESHOLD", 55.0)
	viper.SetDefault("ALERT_WINDOW_HOURS", 24)

	viper.AutomaticEnv()

	timeoutStr := viper.GetString("AI_INTENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AI_INTENT_TIMEOUT %q: %w", timeoutStr, err)
	}

	cfg := &Config{
		IsProduction:                   viper.GetBool("IS_PRODUCTION"),
		LogLevel:                       viper.GetString("LOG_LEVEL"),
		IntentProvider:                 viper.GetString("AI_INTENT_PROVIDER"),
		IntentModel:                    viper.GetString("AI_INTENT_MODEL"),
		IntentTimeout:                  timeout,
		AutoExecuteConfidenceThreshold: viper.GetFloat64("WRITE_AUTO_EXECUTE_CONFIDENCE_THRESHOLD"),
		AliasSimilarityThreshold:       viper.GetFloat64("MERCHANT_ALIAS_SIMILARITY_THRESHOLD"),
		AlertWindowHours:               viper.GetInt("ALERT_WINDOW_HOURS"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
