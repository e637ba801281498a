package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lifememory/internal/domain"
	"lifememory/internal/ports"
)

// ignoreRules are always merged into the vault's .obsidianignore.
var ignoreRules = []string{
	".git/",
	"node_modules/",
	"__pycache__/",
	"*.pyc",
	"*.sqlite",
	"*.db",
	"*_env/",
	"venv/",
	".venv/",
	"Archives/",
}

const ignoreFileName = ".obsidianignore"

// Repository implements ports.VaultRepository on the local filesystem.
type Repository struct {
	vaultPath string
}

// Ensure Repository implements VaultRepository
var _ ports.VaultRepository = (*Repository)(nil)

// NewRepository creates a filesystem repository rooted at vaultPath.
func NewRepository(vaultPath string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Repository{vaultPath: vaultPath}
}

// Root returns the absolute vault root path.
func (r *Repository) Root() string {
	return r.vaultPath
}

// ReadNote reads a note by vault-relative path.
func (r *Repository) ReadNote(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(r.vaultPath, rel))
	if err != nil {
		return "", fmt.Errorf("failed to read note %s: %w", rel, err)
	}
	return string(data), nil
}

// NoteExists reports whether a vault-relative path exists.
func (r *Repository) NoteExists(rel string) bool {
	_, err := os.Stat(filepath.Join(r.vaultPath, rel))
	return err == nil
}

// ReadNowNote returns the NOW context note, checking Context/ first and the
// vault root second. A missing note is not an error: it returns "".
func (r *Repository) ReadNowNote() (string, error) {
	for _, rel := range []string{
		filepath.Join(domain.ContextFolder, domain.NowNoteName),
		domain.NowNoteName,
	} {
		data, err := os.ReadFile(filepath.Join(r.vaultPath, rel))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read NOW note: %w", err)
		}
	}
	return "", nil
}

// ListCategoryNotes returns the markdown file base names in a category
// folder. A missing folder yields nil, not an error.
func (r *Repository) ListCategoryNotes(folder string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.vaultPath, folder))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// DailyNotePath returns the vault-relative path of a date's daily note.
func (r *Repository) DailyNotePath(date string) string {
	return filepath.Join(domain.DailyFolder, domain.DailyNoteName(date))
}

// ListDailyNotes returns the daily note file names in ascending date order.
func (r *Repository) ListDailyNotes() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.vaultPath, domain.DailyFolder))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read daily folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && domain.IsDailyNote(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// AppendDaily appends one event line to a date's daily note, creating the
// note with a date header and Events section on first write.
func (r *Repository) AppendDaily(date, line string) error {
	path := filepath.Join(r.vaultPath, r.DailyNotePath(date))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create daily folder: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		header := fmt.Sprintf("# %s\n\n## Events\n", date)
		return writeFile(path, header+line+"\n")
	}
	return appendLine(path, line)
}

// MemoryPath returns the vault-relative path of the memory file:
// Context/MEMORY.md when it already exists, the vault root otherwise.
func (r *Repository) MemoryPath() string {
	rel := filepath.Join(domain.ContextFolder, domain.MemoryFileName)
	if r.NoteExists(rel) {
		return rel
	}
	return domain.MemoryFileName
}

// AppendMemory appends a distilled block to the memory file, creating it
// with the standard header when absent.
func (r *Repository) AppendMemory(block string) error {
	path := filepath.Join(r.vaultPath, r.MemoryPath())
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return writeFile(path, domain.MemoryFileHeader+"\n"+block+"\n")
	}
	// Blank line between distilled blocks.
	return appendLine(path, "\n"+block)
}

// Organize normalizes the vault layout: root-level identity, context, and
// daily notes move into their folders, stray daily notes under memory/ move
// to Daily/, and the ignore file picks up the standard rules. With apply
// false nothing is written; the report lists what would change.
func (r *Repository) Organize(apply bool) (*ports.OrganizeReport, error) {
	if _, err := os.Stat(r.vaultPath); err != nil {
		return nil, fmt.Errorf("vault path does not exist: %s", r.vaultPath)
	}

	report := &ports.OrganizeReport{Applied: apply}

	if apply {
		for _, folder := range []string{domain.IdentityFolder, domain.ContextFolder, domain.DailyFolder, domain.ArchivesFolder} {
			if err := os.MkdirAll(filepath.Join(r.vaultPath, folder), 0755); err != nil {
				return nil, fmt.Errorf("failed to create folder %s: %w", folder, err)
			}
		}
	}

	entries, err := os.ReadDir(r.vaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		var dst string
		switch {
		case domain.IdentityFiles[name]:
			dst = filepath.Join(domain.IdentityFolder, name)
		case domain.ContextFiles[name]:
			dst = filepath.Join(domain.ContextFolder, name)
		case domain.IsDailyNote(name):
			dst = filepath.Join(domain.DailyFolder, name)
		default:
			continue
		}
		if err := r.move(report, name, dst, apply); err != nil {
			return nil, err
		}
	}

	// Legacy layout kept daily notes under memory/.
	legacy, err := os.ReadDir(filepath.Join(r.vaultPath, "memory"))
	if err == nil {
		for _, entry := range legacy {
			if entry.IsDir() || !domain.IsDailyNote(entry.Name()) {
				continue
			}
			src := filepath.Join("memory", entry.Name())
			dst := filepath.Join(domain.DailyFolder, entry.Name())
			if err := r.move(report, src, dst, apply); err != nil {
				return nil, err
			}
		}
	}

	rules, err := r.mergeIgnoreFile(apply)
	if err != nil {
		return nil, err
	}
	report.IgnoreRules = rules

	return report, nil
}

func (r *Repository) move(report *ports.OrganizeReport, src, dst string, apply bool) error {
	report.Moves = append(report.Moves, ports.Move{From: src, To: dst})
	if !apply {
		return nil
	}
	from := filepath.Join(r.vaultPath, src)
	to := filepath.Join(r.vaultPath, dst)
	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return fmt.Errorf("failed to create folder for %s: %w", dst, err)
	}
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("failed to move %s: %w", src, err)
	}
	return nil
}

// mergeIgnoreFile unions the standard rules into .obsidianignore and returns
// the merged rule count.
func (r *Repository) mergeIgnoreFile(apply bool) (int, error) {
	path := filepath.Join(r.vaultPath, ignoreFileName)

	seen := make(map[string]struct{})
	var merged []string
	add := func(rule string) {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			return
		}
		if _, ok := seen[rule]; ok {
			return
		}
		seen[rule] = struct{}{}
		merged = append(merged, rule)
	}

	if data, err := os.ReadFile(path); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			add(line)
		}
	}
	for _, rule := range ignoreRules {
		add(rule)
	}
	sort.Strings(merged)

	if apply {
		if err := writeFile(path, strings.Join(merged, "\n")+"\n"); err != nil {
			return 0, err
		}
	}
	return len(merged), nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// appendLine appends content to an existing file, inserting a separating
// newline when the file does not end with one.
func appendLine(path, content string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := string(data)
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return writeFile(path, text+content+"\n")
}
