// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package repl provides the interactive demonstration shell over a voting
registry. It is a thin wrapper: every rule lives in the voting package,
and the shell only parses lines, calls the registry, and renders the
outcome.

# Identity

The shell acts as one Address at a time. Switch with:

	use 0x0102
	new-id

new-id generates a random 20-byte address. Admin-only commands
(add-admin, create-poll) fail with "unauthorized" under a non-admin
identity; that is registry behavior, not shell policy.

# Commands

	whoami
	use <addr>
	new-id
	admins
	add-admin <addr>
	create-poll <title> | <description> | <duration> | <opt>, <opt>, ...
	end-poll <id>
	vote <id> <option-index>
	polls
	results <id>
	details <id>
	participation [addr]
	help
	quit

create-poll fields are pipe-separated so titles, descriptions, and
options may contain spaces; options are comma-separated within the last
field. The duration is stored verbatim as the poll's deadline value and
shown, not enforced.

# Output

Registry errors are printed as "error: ..." lines; mutations are also
logged through slog. The shell never exits on a command failure.
*/
package repl
