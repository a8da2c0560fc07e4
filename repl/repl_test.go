// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/himanshu-sugha/voteaarch/testutil"
	"github.com/himanshu-sugha/voteaarch/voting"
)

// run executes the lines against a fresh shell and returns its output.
// The shell starts as the bootstrap admin.
func run(t *testing.T, lines ...string) string {
	t.Helper()

	reg, bootstrap := testutil.NewRegistry(t)
	var out bytes.Buffer
	s := New(reg, bootstrap, &out)
	for _, line := range lines {
		if s.Execute(line) {
			break
		}
	}
	return out.String()
}

func TestExecuteUnknownCommand(t *testing.T) {
	out := run(t, "frobnicate")
	if !strings.Contains(out, `unknown command "frobnicate"`) {
		t.Errorf("output = %q, want unknown command error", out)
	}
}

func TestExecuteBlankLine(t *testing.T) {
	if out := run(t, "", "   "); out != "" {
		t.Errorf("blank lines should produce no output, got %q", out)
	}
}

func TestQuit(t *testing.T) {
	reg, bootstrap := testutil.NewRegistry(t)
	s := New(reg, bootstrap, &bytes.Buffer{})

	for _, line := range []string{"quit", "exit"} {
		if !s.Execute(line) {
			t.Errorf("Execute(%q) = false, want true", line)
		}
	}
	if s.Execute("whoami") {
		t.Error("Execute(whoami) = true, want false")
	}
}

func TestWhoami(t *testing.T) {
	out := run(t, "whoami")
	if !strings.Contains(out, "0x00 (admin)") {
		t.Errorf("whoami output = %q, want bootstrap admin identity", out)
	}
}

func TestUseSwitchesIdentity(t *testing.T) {
	out := run(t, "use 0x0102", "whoami")
	if !strings.Contains(out, "now acting as 0x0102") {
		t.Errorf("use output = %q, want identity switch", out)
	}
	if !strings.Contains(out, "0x0102 (voter)") {
		t.Errorf("whoami output = %q, want voter role", out)
	}
}

func TestUseBadAddress(t *testing.T) {
	out := run(t, "use 0xzz")
	if !strings.Contains(out, "error:") {
		t.Errorf("output = %q, want parse error", out)
	}
}

func TestNewID(t *testing.T) {
	reg, bootstrap := testutil.NewRegistry(t)
	var out bytes.Buffer
	s := New(reg, bootstrap, &out)

	s.Execute("new-id")
	if s.identity.Equal(bootstrap) {
		t.Error("new-id should switch away from the bootstrap identity")
	}
	if len(s.identity) != identityByteLen {
		t.Errorf("generated identity length = %d, want %d", len(s.identity), identityByteLen)
	}
	if !strings.Contains(out.String(), "now acting as 0x") {
		t.Errorf("output = %q, want identity announcement", out.String())
	}
}

func TestAddAdmin(t *testing.T) {
	out := run(t, "add-admin 0x01", "admins")
	if !strings.Contains(out, "admin added: 0x01") {
		t.Errorf("output = %q, want admin added", out)
	}
	if !strings.Contains(out, "1. 0x00") || !strings.Contains(out, "2. 0x01") {
		t.Errorf("admins output = %q, want both admins listed in order", out)
	}
}

func TestAddAdminUnauthorized(t *testing.T) {
	out := run(t, "use 0x09", "add-admin 0x01")
	if !strings.Contains(out, "error: unauthorized") {
		t.Errorf("output = %q, want unauthorized error", out)
	}
}

func TestCreatePollAndResults(t *testing.T) {
	out := run(t,
		"create-poll Best Programming Language | Vote for your favorite | 86400 | Rust, Go",
		"use 0x02",
		"vote 1 0",
		"results 1",
	)

	if !strings.Contains(out, "poll #1 created") {
		t.Errorf("output = %q, want poll created", out)
	}
	if !strings.Contains(out, "vote recorded on poll #1") {
		t.Errorf("output = %q, want vote recorded", out)
	}
	if !strings.Contains(out, "0. Rust: 1") || !strings.Contains(out, "1. Go: 0") {
		t.Errorf("results output = %q, want Rust 1 / Go 0", out)
	}
}

func TestCreatePollUsage(t *testing.T) {
	out := run(t, "create-poll too few fields")
	if !strings.Contains(out, "usage: create-poll") {
		t.Errorf("output = %q, want usage message", out)
	}
}

func TestCreatePollBadDuration(t *testing.T) {
	out := run(t, "create-poll T | D | soon | A, B")
	if !strings.Contains(out, `invalid duration "soon"`) {
		t.Errorf("output = %q, want duration error", out)
	}
}

func TestVoteErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			"missing poll",
			[]string{"vote 9 0"},
			"error: poll not found",
		},
		{
			"invalid option",
			[]string{"create-poll T | D | 1 | A", "vote 1 5"},
			"error: invalid option index",
		},
		{
			"double vote",
			[]string{"create-poll T | D | 1 | A", "vote 1 0", "vote 1 0"},
			"error: already voted",
		},
		{
			"ended poll",
			[]string{"create-poll T | D | 1 | A", "end-poll 1", "vote 1 0"},
			"error: poll is inactive",
		},
		{
			"bad index arg",
			[]string{"vote 1 first"},
			`invalid option index "first"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, tt.lines...)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestPollsListing(t *testing.T) {
	out := run(t,
		"create-poll First | D | 86400 | A",
		"create-poll Second | D | 86400 | A, B",
		"end-poll 2",
		"polls",
	)

	if !strings.Contains(out, `#1 "First"`) {
		t.Errorf("output = %q, want first poll listed", out)
	}
	if strings.Contains(out, `#2 "Second"`) {
		t.Errorf("output = %q, ended poll should not be listed", out)
	}
}

func TestPollsEmpty(t *testing.T) {
	out := run(t, "polls")
	if !strings.Contains(out, "no active polls") {
		t.Errorf("output = %q, want empty notice", out)
	}
}

func TestDetails(t *testing.T) {
	out := run(t,
		"create-poll Snacks | Pick one | 3600 | Chips, Fruit",
		"details 1",
	)

	for _, want := range []string{
		"title:       Snacks",
		"description: Pick one",
		"creator:     0x00",
		"state:       active",
		"deadline:    3600",
		"option 0:    Chips",
		"option 1:    Fruit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("details output = %q, want line %q", out, want)
		}
	}
}

func TestParticipation(t *testing.T) {
	out := run(t,
		"create-poll A | | 1 | X",
		"create-poll B | | 1 | X",
		"use 0x02",
		"vote 1 0",
		"vote 2 0",
		"participation",
		"participation 0x00",
	)

	if !strings.Contains(out, "0x02 has voted on 2 poll(s)") {
		t.Errorf("output = %q, want own participation", out)
	}
	if !strings.Contains(out, "0x00 has voted on 0 poll(s)") {
		t.Errorf("output = %q, want explicit-address participation", out)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	out := run(t, "help")
	for _, name := range commandNames {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing command %q", name)
		}
	}
}

func TestRunReadsUntilQuit(t *testing.T) {
	reg, bootstrap := testutil.NewRegistry(t)
	var out bytes.Buffer
	s := New(reg, bootstrap, &out)

	in := strings.NewReader("whoami\nquit\nwhoami\n")
	if err := s.Run(in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// The trailing whoami comes after quit and must not execute.
	if got := strings.Count(out.String(), "(admin)"); got != 1 {
		t.Errorf("whoami executed %d times, want 1", got)
	}
}

func TestShellDrivesSharedRegistry(t *testing.T) {
	reg, bootstrap := testutil.NewRegistry(t)
	s := New(reg, bootstrap, &bytes.Buffer{})

	s.Execute("create-poll T | D | 1 | A, B")
	testutil.CastVote(t, reg, testutil.Addr(2), 1, 1)

	results, err := reg.PollResults(1)
	if err != nil {
		t.Fatalf("PollResults() error = %v", err)
	}
	if results[1] != (voting.OptionCount{Option: "B", Count: 1}) {
		t.Errorf("results[1] = %+v, want B with 1 vote", results[1])
	}
}
