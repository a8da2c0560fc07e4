// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - AdminAddress: bootstrap admin identity (default: 0x00)
  - LogLevel: slog level for the demo shell (default: info)
  - JSONLogs: force JSON log output (default: false; text on a terminal)

# CLI Flags

	-admin       Bootstrap admin address, 0x-prefixed hex
	-log-level   Log level (debug, info, warn, error)
	-json-logs   Force JSON log output

# Environment Variables

Flags fall back to environment variables:

	ADMIN_ADDRESS → -admin
	LOG_LEVEL     → -log-level
	JSON_LOGS     → -json-logs

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first (via godotenv); real environment
variables win over its contents.

# Validation

ParseFlags returns an error if a value does not parse:

  - the admin address must be valid hex
  - the log level must be one of debug, info, warn, error

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	reg := voting.NewRegistry(cfg.AdminAddress)
*/
package cliparse
