package cliparse

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/himanshu-sugha/voteaarch/voting"
)

type Config struct {
	AdminAddress voting.Address
	LogLevel     slog.Level
	JSONLogs     bool
}

// DefaultAdmin is the bootstrap admin used when none is configured: a
// single zero byte, formatted as 0x00.
const DefaultAdmin = "0x00"

// ParseFlags validates flags and resolves the bootstrap configuration
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Optional .env file; real env vars win over its contents.
	_ = godotenv.Load()

	var adminHex, levelStr string

	fs := flag.NewFlagSet("voteaarch", flag.ContinueOnError)
	fs.StringVar(&adminHex, "admin", "", "Bootstrap admin address (0x-prefixed hex)")
	fs.StringVar(&levelStr, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.JSONLogs, "json-logs", false, "Force JSON log output")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if adminHex == "" {
		adminHex = os.Getenv("ADMIN_ADDRESS")
	}
	if adminHex == "" {
		adminHex = DefaultAdmin
	}

	admin, err := voting.ParseAddress(adminHex)
	if err != nil {
		return Config{}, fmt.Errorf("bad bootstrap admin: %w", err)
	}
	cfg.AdminAddress = admin

	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	cfg.LogLevel, err = parseLevel(levelStr)
	if err != nil {
		return Config{}, err
	}

	if !cfg.JSONLogs {
		if v := os.Getenv("JSON_LOGS"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid JSON_LOGS env variable: %w", err)
			}
			cfg.JSONLogs = b
		}
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
