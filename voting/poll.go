// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Poll is a ballot with a fixed, ordered option list. It stays open
// (active) until explicitly ended; ending is one-way.
//
// votes holds one entry per voter that has cast a ballot, keyed by the
// raw address bytes; presence means "has voted". voteCounts is
// index-aligned with Options and counts exactly the voters mapped to
// each index.
type Poll struct {
	Title       string
	Description string
	Options     []string

	// EndTime is an opaque deadline value. The registry stores it
	// verbatim and never compares it against the clock; enforcement is
	// the caller's business.
	EndTime uint64

	Creator Address
	Active  bool

	votes      map[string]int
	voteCounts []int
}

// OptionCount pairs an option's text with its running vote count.
type OptionCount struct {
	Option string
	Count  int
}

// HasVoted reports whether the voter has a recorded choice on this poll.
func (p *Poll) HasVoted(voter Address) bool {
	_, ok := p.votes[voter.key()]
	return ok
}

// VoterChoice returns the option index the voter picked. The second
// return is false if the voter has not voted.
func (p *Poll) VoterChoice(voter Address) (int, bool) {
	idx, ok := p.votes[voter.key()]
	return idx, ok
}

// VoteCount returns the number of ballots cast on this poll.
func (p *Poll) VoteCount() int {
	return len(p.votes)
}

// Results pairs each option with its counter, in option order.
func (p *Poll) Results() []OptionCount {
	results := make([]OptionCount, len(p.Options))
	for i, opt := range p.Options {
		results[i] = OptionCount{Option: opt, Count: p.voteCounts[i]}
	}
	return results
}
