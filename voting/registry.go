// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds the admin set and the poll collection and enforces every
// authorization and lifecycle rule. It is both the data store and the
// authority: all mutation goes through its methods.
//
// A single coarse lock serializes all operations, so a Registry is safe
// for concurrent callers. Poll pointers handed out by read methods must
// be treated as read-only.
type Registry struct {
	mu     sync.RWMutex
	admins []Address
	polls  map[uint64]*Poll
	nextID uint64
}

// ActivePoll pairs a poll id with its poll for listing.
type ActivePoll struct {
	ID   uint64
	Poll *Poll
}

// NewRegistry creates a registry whose admin set contains exactly the
// bootstrap admin. Poll ids start at 1.
func NewRegistry(bootstrap Address) *Registry {
	return &Registry{
		admins: []Address{bootstrap.clone()},
		polls:  make(map[uint64]*Poll),
		nextID: 1,
	}
}

// AddAdmin appends newAdmin to the admin set. The caller must already be
// an admin. Duplicates are permitted; the admin list only ever grows.
func (r *Registry) AddAdmin(caller, newAdmin Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAdmin(caller) {
		return ErrUnauthorized
	}
	r.admins = append(r.admins, newAdmin.clone())
	return nil
}

// CreatePoll stores a new active poll and returns its id. Only admins may
// create polls. duration is stored verbatim as the poll's EndTime.
//
// No validation is applied to title, description, or options: degenerate
// polls (empty title, zero options) are created without error.
func (r *Registry) CreatePoll(caller Address, title, description string, options []string, duration uint64) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAdmin(caller) {
		return 0, ErrUnauthorized
	}

	id := r.nextID
	r.nextID++

	r.polls[id] = &Poll{
		Title:       title,
		Description: description,
		Options:     slices.Clone(options),
		EndTime:     duration,
		Creator:     caller.clone(),
		Active:      true,
		votes:       make(map[string]int),
		voteCounts:  make([]int, len(options)),
	}
	return id, nil
}

// EndPoll deactivates a poll. The caller must be an admin or the poll's
// creator. Ending an already-ended poll succeeds silently; deactivation
// is one-way.
func (r *Registry) EndPoll(caller Address, pollID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, ok := r.polls[pollID]
	if !ok {
		return ErrPollNotFound
	}
	if !r.isAdmin(caller) && !poll.Creator.Equal(caller) {
		return ErrUnauthorized
	}
	poll.Active = false
	return nil
}

// CastVote records a single vote for the voter on the given poll. Checks
// run in a fixed order: the poll must exist, be active, not already hold
// a vote from this voter, and the option index must be in range. The
// first failed check decides the error.
func (r *Registry) CastVote(voter Address, pollID uint64, option int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, ok := r.polls[pollID]
	if !ok {
		return ErrPollNotFound
	}
	if !poll.Active {
		return ErrPollInactive
	}
	if _, voted := poll.votes[voter.key()]; voted {
		return ErrAlreadyVoted
	}
	if option < 0 || option >= len(poll.Options) {
		return ErrInvalidOption
	}

	poll.votes[voter.key()] = option
	poll.voteCounts[option]++
	return nil
}

// PollResults pairs each of the poll's options with its vote count, in
// option order.
func (r *Registry) PollResults(pollID uint64) ([]OptionCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	poll, ok := r.polls[pollID]
	if !ok {
		return nil, ErrPollNotFound
	}
	return poll.Results(), nil
}

// ActivePolls returns every poll still accepting votes, ordered by
// ascending id.
func (r *Registry) ActivePolls() []ActivePoll {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []ActivePoll
	for id, poll := range r.polls {
		if poll.Active {
			active = append(active, ActivePoll{ID: id, Poll: poll})
		}
	}
	slices.SortFunc(active, func(a, b ActivePoll) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return active
}

// VoterParticipation counts the polls, active or ended, on which the
// voter has a recorded vote.
func (r *Registry) VoterParticipation(voter Address) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, poll := range r.polls {
		if poll.HasVoted(voter) {
			count++
		}
	}
	return count
}

// PollDetails returns the poll with the given id.
func (r *Registry) PollDetails(pollID uint64) (*Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	poll, ok := r.polls[pollID]
	if !ok {
		return nil, ErrPollNotFound
	}
	return poll, nil
}

// Admins returns a copy of the admin list in append order. The first
// entry is always the bootstrap admin.
func (r *Registry) Admins() []Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admins := make([]Address, len(r.admins))
	for i, a := range r.admins {
		admins[i] = a.clone()
	}
	return admins
}

// IsAdmin reports whether the address is in the admin set.
func (r *Registry) IsAdmin(addr Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isAdmin(addr)
}

// isAdmin checks admin membership. Callers must hold the lock.
func (r *Registry) isAdmin(addr Address) bool {
	for _, a := range r.admins {
		if a.Equal(addr) {
			return true
		}
	}
	return false
}
