// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

var (
	// ErrUnauthorized means the caller lacks the admin or creator
	// privilege the operation requires.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidOption means the option index is out of range for the
	// poll's option list.
	ErrInvalidOption = errors.New("invalid option index")

	// ErrPollNotFound means no poll exists with the given id.
	ErrPollNotFound = errors.New("poll not found")

	// ErrAlreadyVoted means the voter already has a recorded choice on
	// this poll.
	ErrAlreadyVoted = errors.New("already voted")

	// ErrPollInactive means the poll exists but has been ended.
	ErrPollInactive = errors.New("poll is inactive")

	// ErrPollEnded is an alias of ErrPollInactive. The registry never
	// distinguishes "ended by an admin" from general inactivity; the
	// separate name exists so callers that do can switch on it later
	// without an API change.
	ErrPollEnded = ErrPollInactive
)
