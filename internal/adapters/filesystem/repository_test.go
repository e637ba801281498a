package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	dir := t.TempDir()
	return NewRepository(dir), dir
}

func writeNote(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readNote(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestReadNowNote(t *testing.T) {
	t.Run("missing note is empty not error", func(t *testing.T) {
		repo, _ := newTestRepo(t)
		got, err := repo.ReadNowNote()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})

	t.Run("root location", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "NOW.md", "focus: [[Deck]]")
		got, err := repo.ReadNowNote()
		if err != nil {
			t.Fatal(err)
		}
		if got != "focus: [[Deck]]" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("context location preferred", func(t *testing.T) {
		repo, dir := newTestRepo(t)
		writeNote(t, dir, "NOW.md", "root")
		writeNote(t, dir, "Context/NOW.md", "context")
		got, err := repo.ReadNowNote()
		if err != nil {
			t.Fatal(err)
		}
		if got != "context" {
			t.Errorf("expected Context/NOW.md to win, got %q", got)
		}
	})
}

func TestListCategoryNotes(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeNote(t, dir, "People/jane-smith.md", "")
	writeNote(t, dir, "People/bob.md", "")
	writeNote(t, dir, "People/notes.txt", "")
	if err := os.MkdirAll(filepath.Join(dir, "People", "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListCategoryNotes("People")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"bob.md", "jane-smith.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListCategoryNotes = %v, want %v", got, want)
	}

	missing, err := repo.ListCategoryNotes("Vendors")
	if err != nil {
		t.Fatalf("missing folder should not error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing folder, got %v", missing)
	}
}

func TestAppendDaily(t *testing.T) {
	repo, dir := newTestRepo(t)

	if err := repo.AppendDaily("2025-03-01", "- **09:00** [work] standup meeting"); err != nil {
		t.Fatal(err)
	}
	got := readNote(t, dir, "Daily/2025-03-01.md")
	want := "# 2025-03-01\n\n## Events\n- **09:00** [work] standup meeting\n"
	if got != want {
		t.Errorf("new daily note =\n%q\nwant\n%q", got, want)
	}

	if err := repo.AppendDaily("2025-03-01", "- **12:00** [food] lunch"); err != nil {
		t.Fatal(err)
	}
	got = readNote(t, dir, "Daily/2025-03-01.md")
	if !strings.HasSuffix(got, "- **09:00** [work] standup meeting\n- **12:00** [food] lunch\n") {
		t.Errorf("second append misplaced:\n%q", got)
	}
}

func TestAppendMemory(t *testing.T) {
	repo, dir := newTestRepo(t)

	if err := repo.AppendMemory("## Distilled 2025-03-01\n- paid rent"); err != nil {
		t.Fatal(err)
	}
	got := readNote(t, dir, "MEMORY.md")
	want := "# MEMORY\n\n## Distilled 2025-03-01\n- paid rent\n"
	if got != want {
		t.Errorf("new memory file =\n%q\nwant\n%q", got, want)
	}

	if err := repo.AppendMemory("## Distilled 2025-03-02\n- booked flights"); err != nil {
		t.Fatal(err)
	}
	got = readNote(t, dir, "MEMORY.md")
	if !strings.Contains(got, "- paid rent\n\n## Distilled 2025-03-02\n- booked flights\n") {
		t.Errorf("blocks not separated by blank line:\n%q", got)
	}
}

func TestMemoryPathPrefersContextFolder(t *testing.T) {
	repo, dir := newTestRepo(t)
	if repo.MemoryPath() != "MEMORY.md" {
		t.Errorf("expected root MEMORY.md, got %s", repo.MemoryPath())
	}

	writeNote(t, dir, "Context/MEMORY.md", "# MEMORY\n")
	if repo.MemoryPath() != filepath.Join("Context", "MEMORY.md") {
		t.Errorf("expected Context/MEMORY.md, got %s", repo.MemoryPath())
	}

	if err := repo.AppendMemory("## Distilled 2025-03-01\n- x"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(readNote(t, dir, "Context/MEMORY.md"), "## Distilled 2025-03-01") {
		t.Error("append did not target Context/MEMORY.md")
	}
}

func TestListDailyNotes(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeNote(t, dir, "Daily/2025-03-02.md", "")
	writeNote(t, dir, "Daily/2025-03-01.md", "")
	writeNote(t, dir, "Daily/scratch.md", "")

	got, err := repo.ListDailyNotes()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2025-03-01.md", "2025-03-02.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListDailyNotes = %v, want %v", got, want)
	}
}

func TestOrganizeDryRun(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeNote(t, dir, "SOUL.md", "")
	writeNote(t, dir, "MEMORY.md", "")
	writeNote(t, dir, "2025-03-01.md", "")
	writeNote(t, dir, "memory/2025-02-01.md", "")
	writeNote(t, dir, "keep.md", "")

	report, err := repo.Organize(false)
	if err != nil {
		t.Fatal(err)
	}
	if report.Applied {
		t.Error("dry run reported as applied")
	}
	if len(report.Moves) != 4 {
		t.Fatalf("expected 4 moves, got %d: %v", len(report.Moves), report.Moves)
	}

	// Nothing moved, nothing written.
	if _, err := os.Stat(filepath.Join(dir, "SOUL.md")); err != nil {
		t.Error("dry run moved a file")
	}
	if _, err := os.Stat(filepath.Join(dir, ".obsidianignore")); !os.IsNotExist(err) {
		t.Error("dry run wrote the ignore file")
	}
}

func TestOrganizeApply(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeNote(t, dir, "SOUL.md", "soul")
	writeNote(t, dir, "LIFE_CONTEXT.md", "ctx")
	writeNote(t, dir, "2025-03-01.md", "day")
	writeNote(t, dir, "memory/2025-02-01.md", "old day")
	writeNote(t, dir, ".obsidianignore", "custom/\nvenv/\n")

	report, err := repo.Organize(true)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Applied {
		t.Error("apply run not reported as applied")
	}

	for _, rel := range []string{
		"Identity/SOUL.md",
		"Context/LIFE_CONTEXT.md",
		"Daily/2025-03-01.md",
		"Daily/2025-02-01.md",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	ignore := readNote(t, dir, ".obsidianignore")
	if !strings.Contains(ignore, "custom/") {
		t.Error("existing ignore rule dropped")
	}
	if strings.Count(ignore, "venv/\n") != 2 { // venv/ and .venv/
		t.Errorf("expected venv/ and .venv/ exactly once each:\n%s", ignore)
	}
	rules := strings.Split(strings.TrimSpace(ignore), "\n")
	if !sort.StringsAreSorted(rules) {
		t.Errorf("ignore rules not sorted:\n%s", ignore)
	}
	if report.IgnoreRules != len(rules) {
		t.Errorf("reported %d rules, file has %d", report.IgnoreRules, len(rules))
	}
}

func TestOrganizeMissingVault(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope"))
	if _, err := repo.Organize(false); err == nil {
		t.Error("expected error for missing vault path")
	}
}
