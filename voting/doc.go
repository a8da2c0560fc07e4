// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements an in-memory poll/voting registry: an admin set
plus a collection of polls, with single-vote-per-voter enforcement and a
two-state poll lifecycle (active → ended, one-way).

# Model

Actors are identified by Address, an opaque byte sequence rendered as
0x-prefixed lowercase hex (Address{1, 2, 3} formats as "0x010203").
A poll holds an ordered option list, per-option counters, and one vote
entry per voter. The registry starts with a single bootstrap admin and
assigns poll ids sequentially from 1.

# Operations

	reg := voting.NewRegistry(admin)
	reg.AddAdmin(admin, other)
	id, _ := reg.CreatePoll(admin, "Best Language", "Vote!", []string{"Rust", "Go"}, 86400)
	reg.CastVote(voter, id, 0)
	results, _ := reg.PollResults(id)

Ending a poll requires an admin or the poll's creator and is idempotent:

	reg.EndPoll(admin, id)

# Authorization

Creating polls and adding admins require admin membership. Anyone may
vote, once per poll. The admin list only grows; duplicates are allowed
and harmless.

# Errors

Every fallible operation returns one of the package's sentinel errors
(ErrUnauthorized, ErrPollNotFound, ErrPollInactive, ErrAlreadyVoted,
ErrInvalidOption), discriminated with errors.Is. CastVote checks in a
fixed order — existence, activity, duplicate vote, option bounds — so the
first violated condition decides which error surfaces.

# Concurrency

A single coarse lock serializes all registry operations; no finer
granularity is needed because every operation is cheap and non-blocking.

# Limits

The registry is purely in-memory: no persistence, no wire protocol, no
clock. A poll's EndTime is stored verbatim and never enforced against
wall-clock time; callers that want expiry decide when to call EndPoll.
*/
package voting
