// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/himanshu-sugha/voteaarch/voting"
)

// Shell drives a voting.Registry from a line-oriented command stream.
// It tracks a current identity used as the caller for admin operations
// and as the voter for votes.
type Shell struct {
	reg      *voting.Registry
	identity voting.Address
	out      io.Writer
}

// command pairs a usage line with its implementation. args is the input
// line with the command word already stripped.
type command struct {
	usage string
	help  string
	run   func(s *Shell, args string)
}

// commandNames fixes the help listing order.
var commandNames = []string{
	"whoami", "use", "new-id",
	"admins", "add-admin",
	"create-poll", "end-poll", "vote",
	"polls", "results", "details", "participation",
	"help", "quit",
}

// Filled in init: cmdHelp reads the table, so a literal initializer
// would form an initialization cycle.
var commands map[string]command

func init() {
	commands = map[string]command{
		"whoami":        {"whoami", "Show the current identity", (*Shell).cmdWhoami},
		"use":           {"use <addr>", "Switch to the given identity", (*Shell).cmdUse},
		"new-id":        {"new-id", "Generate and switch to a fresh random identity", (*Shell).cmdNewID},
		"admins":        {"admins", "List the admin set in append order", (*Shell).cmdAdmins},
		"add-admin":     {"add-admin <addr>", "Append an admin (requires admin identity)", (*Shell).cmdAddAdmin},
		"create-poll":   {"create-poll <title> | <description> | <duration> | <opt>, <opt>, ...", "Create a poll (requires admin identity)", (*Shell).cmdCreatePoll},
		"end-poll":      {"end-poll <id>", "End a poll (requires admin or creator identity)", (*Shell).cmdEndPoll},
		"vote":          {"vote <id> <option-index>", "Cast a vote as the current identity", (*Shell).cmdVote},
		"polls":         {"polls", "List active polls", (*Shell).cmdPolls},
		"results":       {"results <id>", "Show per-option vote counts", (*Shell).cmdResults},
		"details":       {"details <id>", "Show a poll's full state", (*Shell).cmdDetails},
		"participation": {"participation [addr]", "Count polls an address has voted on", (*Shell).cmdParticipation},
		"help":          {"help", "Show this help", (*Shell).cmdHelp},
	}
}

// New creates a shell over reg writing output to out. identity is the
// initial caller/voter identity.
func New(reg *voting.Registry, identity voting.Address, out io.Writer) *Shell {
	return &Shell{reg: reg, identity: identity, out: out}
}

// Run reads commands from in until quit or EOF.
func (s *Shell) Run(in io.Reader) error {
	s.printf("Type 'help' for commands.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if s.Execute(scanner.Text()) {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the shell
// should quit.
func (s *Shell) Execute(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	name, args, _ := strings.Cut(line, " ")
	if name == "quit" || name == "exit" {
		return true
	}

	cmd, ok := commands[name]
	if !ok {
		s.errorf("unknown command %q (try 'help')", name)
		return false
	}

	slog.Debug("dispatching command", "command", name)
	cmd.run(s, strings.TrimSpace(args))
	return false
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintf(s.out, "error: "+format+"\n", args...)
}

func (s *Shell) cmdHelp(string) {
	for _, name := range commandNames {
		if name == "quit" {
			s.printf("  %-68s %s", "quit", "Leave the shell")
			continue
		}
		cmd := commands[name]
		s.printf("  %-68s %s", cmd.usage, cmd.help)
	}
}
