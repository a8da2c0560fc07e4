package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/himanshu-sugha/voteaarch/cliparse"
	"github.com/himanshu-sugha/voteaarch/repl"
	"github.com/himanshu-sugha/voteaarch/voting"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Structured logs: text on a terminal, JSON otherwise (or when forced)
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.JSONLogs || !isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	// Create the registry with its bootstrap admin
	reg := voting.NewRegistry(cfg.AdminAddress)
	slog.Info("registry ready", "bootstrap_admin", cfg.AdminAddress.String())

	fmt.Println("Voting Registry Demo")
	fmt.Printf("Default admin: %s\n", reg.Admins()[0])

	// Drive the registry from stdin until quit or EOF
	shell := repl.New(reg, cfg.AdminAddress, os.Stdout)
	if err := shell.Run(os.Stdin); err != nil {
		slog.Error("Shell closed", "error", err)
		os.Exit(1)
	}
}
