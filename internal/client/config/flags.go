package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/authmaster/internal/flagx"
)

var knownFlags = []string{
	"-d", "-s", "-k", "-l", "-u", "-m",
	"-register-delay", "-login-delay",
}

// parseFlags populates selected Config fields from command-line flags.
// args is filtered with flagx.FilterArgs first, so flags owned by other
// layers (-c, -config) do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("authmaster", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database DSN")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite|memory)")
	fs.StringVar(&cfg.Hasher, "k", cfg.Hasher, "password hasher (argon2id|bcrypt)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LLMBaseURL, "u", cfg.LLMBaseURL, "explain endpoint base URL")
	fs.StringVar(&cfg.LLMModel, "m", cfg.LLMModel, "explain model")
	fs.DurationVar(&cfg.RegisterDelay, "register-delay", cfg.RegisterDelay, "simulated registration latency")
	fs.DurationVar(&cfg.LoginDelay, "login-delay", cfg.LoginDelay, "simulated login latency")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
