package commands

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestDistill(t *testing.T) {
	repo := newFakeRepo()
	repo.notes["Daily/2025-03-01.md"] = strings.Join([]string{
		"# 2025-03-01",
		"",
		"## Events",
		"- **09:00** [work] standup meeting",
		"- **12:00** [food] lunch",
		"- **15:00** [money] paid the plumber",
		"## Notes",
		"- unrelated",
	}, "\n")

	cmd := NewDistillCommand(repo, "2025-03-01")
	cmd.now = func() time.Time { return time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC) }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != DistillDistilled {
		t.Fatalf("outcome = %v", result.Outcome)
	}
	if result.Kept != 2 || result.Total != 3 {
		t.Errorf("kept %d/%d, want 2/3", result.Kept, result.Total)
	}

	if len(repo.memory) != 1 {
		t.Fatalf("expected one memory block, got %d", len(repo.memory))
	}
	block := repo.memory[0]
	for _, want := range []string{
		"## Distilled 2025-03-01",
		"- Source: [[Daily/2025-03-01]]",
		"- Updated: 2025-03-02 09:30",
		"- Kept: 2/3 events",
		"- **09:00** [work] standup meeting",
		"- **15:00** [money] paid the plumber",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("block missing %q:\n%s", want, block)
		}
	}
	if strings.Contains(block, "lunch") {
		t.Errorf("low-signal line kept:\n%s", block)
	}
}

func TestDistill_NoEvents(t *testing.T) {
	repo := newFakeRepo()
	repo.notes["Daily/2025-03-01.md"] = "# 2025-03-01\n\n## Notes\n- nothing logged"

	result, err := NewDistillCommand(repo, "2025-03-01").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != DistillNoEvents {
		t.Errorf("outcome = %v, want DistillNoEvents", result.Outcome)
	}
	if len(repo.memory) != 0 {
		t.Error("memory file written for a no-events day")
	}
}

func TestDistill_MissingDailyNoteIsHardError(t *testing.T) {
	repo := newFakeRepo()
	if _, err := NewDistillCommand(repo, "2025-03-01").Execute(context.Background()); err == nil {
		t.Error("expected error for missing daily note")
	}
}

func TestDistill_InvalidDate(t *testing.T) {
	repo := newFakeRepo()
	if _, err := NewDistillCommand(repo, "March 1st").Execute(context.Background()); err == nil {
		t.Error("expected error for invalid date")
	}
}
