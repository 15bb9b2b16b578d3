package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv seeds the environment from ./.env if it exists. Variables that
// are already set win over the file.
func loadDotEnv() {
	_ = godotenv.Load()
}

// parseEnv overlays Config with non-empty environment variables.
func parseEnv(cfg *Config) error {
	setString(&cfg.DatabaseDSN, "AUTHMASTER_DATABASE_DSN")
	setString(&cfg.Storage, "AUTHMASTER_STORAGE")
	setString(&cfg.Hasher, "AUTHMASTER_HASHER")
	setString(&cfg.TokenSecret, "AUTHMASTER_TOKEN_SECRET")
	setString(&cfg.LogLevel, "AUTHMASTER_LOG_LEVEL")
	setString(&cfg.LLMAPIKey, "API_KEY")
	setString(&cfg.LLMBaseURL, "LLM_BASE_URL")
	setString(&cfg.LLMModel, "LLM_MODEL")

	if err := setDuration(&cfg.RegisterDelay, "AUTHMASTER_REGISTER_DELAY"); err != nil {
		return err
	}
	if err := setDuration(&cfg.LoginDelay, "AUTHMASTER_LOGIN_DELAY"); err != nil {
		return err
	}
	return setDuration(&cfg.LLMTimeout, "LLM_TIMEOUT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
