// Package config loads runtime configuration for the AuthMaster CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, optionally seeded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string              SQLite database DSN
//	-s string              storage backend: sqlite or memory
//	-k string              password hasher: argon2id or bcrypt
//	-l string              log level: debug, info, warn, error
//	-u string              base URL of the OpenAI-compatible explain endpoint
//	-m string              model used for explanations
//	-register-delay value  simulated registration latency, e.g. 800ms
//	-login-delay value     simulated login latency, e.g. 1s
//
// Secrets (token secret, API key) are read from the environment or the JSON
// file only, never from the command line.
//
// Environment
//
//	AUTHMASTER_DATABASE_DSN, AUTHMASTER_STORAGE, AUTHMASTER_HASHER,
//	AUTHMASTER_REGISTER_DELAY, AUTHMASTER_LOGIN_DELAY, AUTHMASTER_TOKEN_SECRET,
//	AUTHMASTER_LOG_LEVEL, API_KEY, LLM_BASE_URL, LLM_MODEL, LLM_TIMEOUT
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "800ms" or
// integer nanoseconds. Absent keys keep the value of the earlier layers:
//
//	{
//	  "database_dsn": "authmaster.db",
//	  "storage": "sqlite",
//	  "hasher": "argon2id",
//	  "register_delay": "800ms",
//	  "login_delay": "1s",
//	  "token_secret": "change-me",
//	  "llm_base_url": "https://generativelanguage.googleapis.com/v1beta/openai",
//	  "llm_model": "gemini-2.5-flash",
//	  "llm_api_key": "...",
//	  "llm_timeout": "60s",
//	  "log_level": "info"
//	}
package config
