package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/llm/openaicompat"
	"github.com/dmitrijs2005/authmaster/internal/cryptox"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds runtime settings for the AuthMaster CLI.
//
// RegisterDelay and LoginDelay simulate the latency of a remote backend.
// An empty TokenSecret makes the CLI generate a random one per process.
type Config struct {
	DatabaseDSN   string
	Storage       string
	Hasher        string
	RegisterDelay time.Duration
	LoginDelay    time.Duration
	TokenSecret   string
	LLMBaseURL    string
	LLMModel      string
	LLMAPIKey     string
	LLMTimeout    time.Duration
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "authmaster.db"
	c.Storage = StorageSQLite
	c.Hasher = cryptox.HasherArgon2id
	c.RegisterDelay = 800 * time.Millisecond
	c.LoginDelay = 1000 * time.Millisecond
	c.LLMBaseURL = openaicompat.DefaultBaseURL
	c.LLMModel = openaicompat.DefaultModel
	c.LLMTimeout = 60 * time.Second
	c.LogLevel = "info"
}

// Validate rejects values the CLI cannot start with.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("database dsn is required for %s storage", StorageSQLite)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.RegisterDelay < 0 || c.LoginDelay < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones. args excludes the program
// name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	loadDotEnv()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
