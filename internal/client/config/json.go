package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authmaster/internal/flagx"
	"github.com/dmitrijs2005/authmaster/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from an explicit zero value.
type JSONConfig struct {
	DatabaseDSN   *string         `json:"database_dsn"`
	Storage       *string         `json:"storage"`
	Hasher        *string         `json:"hasher"`
	RegisterDelay *timex.Duration `json:"register_delay"`
	LoginDelay    *timex.Duration `json:"login_delay"`
	TokenSecret   *string         `json:"token_secret"`
	LLMBaseURL    *string         `json:"llm_base_url"`
	LLMModel      *string         `json:"llm_model"`
	LLMAPIKey     *string         `json:"llm_api_key"`
	LLMTimeout    *timex.Duration `json:"llm_timeout"`
	LogLevel      *string         `json:"log_level"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JSONConfig) apply(cfg *Config) {
	copyString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	copyString(&cfg.Storage, jc.Storage)
	copyString(&cfg.Hasher, jc.Hasher)
	copyString(&cfg.TokenSecret, jc.TokenSecret)
	copyString(&cfg.LLMBaseURL, jc.LLMBaseURL)
	copyString(&cfg.LLMModel, jc.LLMModel)
	copyString(&cfg.LLMAPIKey, jc.LLMAPIKey)
	copyString(&cfg.LogLevel, jc.LogLevel)

	if jc.RegisterDelay != nil {
		cfg.RegisterDelay = jc.RegisterDelay.Duration
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.LLMTimeout != nil {
		cfg.LLMTimeout = jc.LLMTimeout.Duration
	}
}

func copyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
