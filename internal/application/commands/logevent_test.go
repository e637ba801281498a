package commands

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLogEvent_WeavesAndDelegates(t *testing.T) {
	repo := newFakeRepo()
	repo.nowNote = "Current focus: [[Deck Renovation]]"
	repo.categoryNotes["People"] = []string{"jane-smith.md"}
	cli := &fakeCLI{available: true}

	cmd := NewLogEventCommand(repo, cli, "social", "Coffee with Jane Smith", "planning deck renovation", "friends,home")
	cmd.now = func() time.Time { return time.Date(2025, 3, 1, 14, 5, 0, 0, time.UTC) }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := "- **14:05** [social] Coffee with [[Jane Smith]]: planning [[deck renovation]] #friends #home"
	if result.Line != want {
		t.Errorf("line = %q, want %q", result.Line, want)
	}
	if !result.Delegated {
		t.Error("expected CLI delegation")
	}
	if len(cli.appended) != 1 || cli.appended[0] != "\n"+want {
		t.Errorf("CLI append = %q", cli.appended)
	}
	if len(repo.daily) != 0 {
		t.Error("fallback append used despite available CLI")
	}
}

func TestLogEvent_FallsBackToRepository(t *testing.T) {
	repo := newFakeRepo()
	cli := &fakeCLI{available: false}

	cmd := NewLogEventCommand(repo, cli, "misc", "Walked the dog", "", "")
	cmd.now = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Delegated {
		t.Error("unexpected delegation")
	}

	lines := repo.daily["2025-03-01"]
	if len(lines) != 1 || lines[0] != "- **08:00** [misc] Walked the dog" {
		t.Errorf("daily append = %v", lines)
	}
}

func TestLogEvent_Validation(t *testing.T) {
	repo := newFakeRepo()

	if _, err := NewLogEventCommand(repo, nil, "", "x", "", "").Execute(context.Background()); err == nil {
		t.Error("expected error for empty category")
	}
	if _, err := NewLogEventCommand(repo, nil, "misc", "  ", "", "").Execute(context.Background()); err == nil {
		t.Error("expected error for empty event")
	}
}

func TestLogEvent_ExistingLinksUntouched(t *testing.T) {
	repo := newFakeRepo()
	repo.categoryNotes["People"] = []string{"jane-smith.md"}

	cmd := NewLogEventCommand(repo, nil, "social", "Saw [[Jane Smith]] again", "", "")
	cmd.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(result.Line, "[[[[") {
		t.Errorf("double-wrapped link in %q", result.Line)
	}
}
