package commands

import (
	"fmt"
	"path/filepath"

	"lifememory/internal/domain"
	"lifememory/internal/ports"
)

// fakeRepo is an in-memory ports.VaultRepository.
type fakeRepo struct {
	nowNote       string
	categoryNotes map[string][]string
	notes         map[string]string // rel path -> content
	memory        []string          // appended blocks
	daily         map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categoryNotes: map[string][]string{},
		notes:         map[string]string{},
		daily:         map[string][]string{},
	}
}

func (r *fakeRepo) Root() string { return "/vault" }

func (r *fakeRepo) ReadNote(rel string) (string, error) {
	content, ok := r.notes[rel]
	if !ok {
		return "", fmt.Errorf("note not found: %s", rel)
	}
	return content, nil
}

func (r *fakeRepo) NoteExists(rel string) bool {
	_, ok := r.notes[rel]
	return ok
}

func (r *fakeRepo) ReadNowNote() (string, error) { return r.nowNote, nil }

func (r *fakeRepo) ListCategoryNotes(folder string) ([]string, error) {
	return r.categoryNotes[folder], nil
}

func (r *fakeRepo) DailyNotePath(date string) string {
	return filepath.Join(domain.DailyFolder, domain.DailyNoteName(date))
}

func (r *fakeRepo) ListDailyNotes() ([]string, error) { return nil, nil }

func (r *fakeRepo) AppendDaily(date, line string) error {
	r.daily[date] = append(r.daily[date], line)
	return nil
}

func (r *fakeRepo) MemoryPath() string { return domain.MemoryFileName }

func (r *fakeRepo) AppendMemory(block string) error {
	r.memory = append(r.memory, block)
	return nil
}

func (r *fakeRepo) Organize(apply bool) (*ports.OrganizeReport, error) {
	return &ports.OrganizeReport{Applied: apply}, nil
}

// fakeCLI is a scriptable ports.NoteCLI.
type fakeCLI struct {
	available bool
	appended  []string
	searchOut string
	checkOut  map[string]string
	checkErr  map[string]error
	err       error
}

func (c *fakeCLI) IsAvailable() bool { return c.available }

func (c *fakeCLI) Search(query string) (string, error) {
	return c.searchOut, c.err
}

func (c *fakeCLI) ReadFile(name string) (string, error) {
	return "cli file:" + name, c.err
}

func (c *fakeCLI) ReadPath(path string) (string, error) {
	return "cli path:" + path, c.err
}

func (c *fakeCLI) DailyAppend(content string) error {
	if c.err != nil {
		return c.err
	}
	c.appended = append(c.appended, content)
	return nil
}

func (c *fakeCLI) Check(name string) (string, error) {
	if err := c.checkErr[name]; err != nil {
		return "", err
	}
	return c.checkOut[name], nil
}

// fakeIndex is a canned ports.LinkIndex.
type fakeIndex struct {
	hits       []domain.SearchHit
	unresolved []domain.Edge
	orphans    []string
	deadends   []string
	err        error
}

func (i *fakeIndex) Open(vaultPath string) error { return nil }
func (i *fakeIndex) Close() error                { return nil }

func (i *fakeIndex) Rebuild() (*domain.SyncStats, error) { return &domain.SyncStats{}, nil }

func (i *fakeIndex) Search(query string) ([]domain.SearchHit, error) { return i.hits, i.err }

func (i *fakeIndex) Unresolved() ([]domain.Edge, error) { return i.unresolved, i.err }
func (i *fakeIndex) Orphans() ([]string, error)         { return i.orphans, i.err }
func (i *fakeIndex) Deadends() ([]string, error)        { return i.deadends, i.err }
