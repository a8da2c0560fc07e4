// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repl

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/himanshu-sugha/voteaarch/voting"
)

// identityByteLen is the size of generated identities, matching the
// usual account-address width.
const identityByteLen = 20

func (s *Shell) cmdWhoami(string) {
	role := "voter"
	if s.reg.IsAdmin(s.identity) {
		role = "admin"
	}
	s.printf("%s (%s)", s.identity, role)
}

func (s *Shell) cmdUse(args string) {
	if args == "" {
		s.errorf("usage: use <addr>")
		return
	}
	addr, err := voting.ParseAddress(args)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.identity = addr
	s.printf("now acting as %s", s.identity)
}

func (s *Shell) cmdNewID(string) {
	addr, err := voting.GenerateAddress(identityByteLen)
	if err != nil {
		slog.Error("failed to generate identity", "error", err)
		s.errorf("could not generate identity")
		return
	}
	s.identity = addr
	s.printf("now acting as %s", s.identity)
}

func (s *Shell) cmdAdmins(string) {
	for i, admin := range s.reg.Admins() {
		s.printf("%d. %s", i+1, admin)
	}
}

func (s *Shell) cmdAddAdmin(args string) {
	if args == "" {
		s.errorf("usage: add-admin <addr>")
		return
	}
	addr, err := voting.ParseAddress(args)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	if err := s.reg.AddAdmin(s.identity, addr); err != nil {
		s.errorf("%v", err)
		return
	}
	slog.Info("admin added", "admin", addr.String(), "caller", s.identity.String())
	s.printf("admin added: %s", addr)
}

// cmdCreatePoll parses "title | description | duration | opt, opt, ...".
// Pipes separate the fields so titles and options may contain spaces.
func (s *Shell) cmdCreatePoll(args string) {
	fields := strings.Split(args, "|")
	if len(fields) != 4 {
		s.errorf("usage: create-poll <title> | <description> | <duration> | <opt>, <opt>, ...")
		return
	}

	title := strings.TrimSpace(fields[0])
	description := strings.TrimSpace(fields[1])

	duration, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		s.errorf("invalid duration %q", strings.TrimSpace(fields[2]))
		return
	}

	var options []string
	for _, opt := range strings.Split(fields[3], ",") {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}

	id, err := s.reg.CreatePoll(s.identity, title, description, options, duration)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	slog.Info("poll created", "poll_id", id, "creator", s.identity.String(), "options", len(options))
	s.printf("poll #%d created", id)
}

func (s *Shell) cmdEndPoll(args string) {
	id, ok := s.parsePollID(args, "usage: end-poll <id>")
	if !ok {
		return
	}
	if err := s.reg.EndPoll(s.identity, id); err != nil {
		s.errorf("%v", err)
		return
	}
	slog.Info("poll ended", "poll_id", id, "caller", s.identity.String())
	s.printf("poll #%d ended", id)
}

func (s *Shell) cmdVote(args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		s.errorf("usage: vote <id> <option-index>")
		return
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		s.errorf("invalid poll id %q", fields[0])
		return
	}
	option, err := strconv.Atoi(fields[1])
	if err != nil {
		s.errorf("invalid option index %q", fields[1])
		return
	}

	if err := s.reg.CastVote(s.identity, id, option); err != nil {
		s.errorf("%v", err)
		return
	}
	slog.Info("vote cast", "poll_id", id, "option", option, "voter", s.identity.String())
	s.printf("vote recorded on poll #%d", id)
}

func (s *Shell) cmdPolls(string) {
	active := s.reg.ActivePolls()
	if len(active) == 0 {
		s.printf("no active polls")
		return
	}
	for _, entry := range active {
		p := entry.Poll
		s.printf("#%d %q — %d options, %s votes, deadline %s",
			entry.ID, p.Title, len(p.Options),
			humanize.Comma(int64(p.VoteCount())),
			humanize.Time(time.Unix(int64(p.EndTime), 0)))
	}
}

func (s *Shell) cmdResults(args string) {
	id, ok := s.parsePollID(args, "usage: results <id>")
	if !ok {
		return
	}
	results, err := s.reg.PollResults(id)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	if len(results) == 0 {
		s.printf("poll #%d has no options", id)
		return
	}
	for i, res := range results {
		s.printf("%d. %s: %s", i, res.Option, humanize.Comma(int64(res.Count)))
	}
}

func (s *Shell) cmdDetails(args string) {
	id, ok := s.parsePollID(args, "usage: details <id>")
	if !ok {
		return
	}
	poll, err := s.reg.PollDetails(id)
	if err != nil {
		s.errorf("%v", err)
		return
	}

	state := "active"
	if !poll.Active {
		state = "ended"
	}
	s.printf("title:       %s", poll.Title)
	s.printf("description: %s", poll.Description)
	s.printf("creator:     %s", poll.Creator)
	s.printf("state:       %s", state)
	s.printf("deadline:    %d", poll.EndTime)
	s.printf("votes:       %s", humanize.Comma(int64(poll.VoteCount())))
	for i, opt := range poll.Options {
		s.printf("option %d:    %s", i, opt)
	}
}

func (s *Shell) cmdParticipation(args string) {
	addr := s.identity
	if args != "" {
		parsed, err := voting.ParseAddress(args)
		if err != nil {
			s.errorf("%v", err)
			return
		}
		addr = parsed
	}
	count := s.reg.VoterParticipation(addr)
	s.printf("%s has voted on %d poll(s)", addr, count)
}

func (s *Shell) parsePollID(args, usage string) (uint64, bool) {
	if args == "" {
		s.errorf("%s", usage)
		return 0, false
	}
	id, err := strconv.ParseUint(args, 10, 64)
	if err != nil {
		s.errorf("invalid poll id %q", args)
		return 0, false
	}
	return id, true
}
