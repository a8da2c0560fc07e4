// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the voteaarch demo shell.

voteaarch is an in-memory poll/voting registry: admins create polls with
a fixed option set, any address votes at most once per poll, and
per-option tallies are queryable. The binary wraps the library in an
interactive shell for poking at the rules.

# Starting the Shell

	go run . -admin 0x0102

Or with environment variables (a .env file is also honored):

	ADMIN_ADDRESS=0x0102 go run .

On startup the shell prints the bootstrap admin, e.g.:

	Voting Registry Demo
	Default admin: 0x00

# Configuration

Optional settings:

  - ADMIN_ADDRESS (-admin): bootstrap admin address (default: 0x00)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - JSON_LOGS (-json-logs): force JSON logs (default: text on a terminal)

# Architecture

The binary wires a handful of packages around the core library:

  - voting: the registry — admin set, polls, votes, lifecycle rules
  - repl: interactive command shell driving a registry
  - cliparse: configuration parsing
  - testutil: shared test fixtures

See package documentation for each component.
*/
package main
