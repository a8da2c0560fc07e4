// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"testing"

	"github.com/himanshu-sugha/voteaarch/voting"
)

// Addr builds a 20-byte test address whose first byte is val.
func Addr(val byte) voting.Address {
	b := make([]byte, 20)
	b[0] = val
	return voting.Address(b)
}

// NewRegistry creates a registry and returns it with its bootstrap admin.
func NewRegistry(t *testing.T) (*voting.Registry, voting.Address) {
	t.Helper()
	bootstrap := voting.Address{0}
	return voting.NewRegistry(bootstrap), bootstrap
}

// CreatePoll creates a poll as creator and returns its id. creator must
// already be an admin.
func CreatePoll(t *testing.T, reg *voting.Registry, creator voting.Address, options ...string) uint64 {
	t.Helper()

	id, err := reg.CreatePoll(creator, "Test Poll", "A test poll", options, 86400)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return id
}

// CastVote records a vote and fails the test on any error.
func CastVote(t *testing.T, reg *voting.Registry, voter voting.Address, pollID uint64, option int) {
	t.Helper()

	if err := reg.CastVote(voter, pollID, option); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// EndPoll ends a poll and fails the test on any error.
func EndPoll(t *testing.T, reg *voting.Registry, caller voting.Address, pollID uint64) {
	t.Helper()

	if err := reg.EndPoll(caller, pollID); err != nil {
		t.Fatalf("Failed to end test poll: %v", err)
	}
}
