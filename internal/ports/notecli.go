package ports

// NoteCLI wraps the external note-taking CLI. Callers are expected to fall
// back to direct VaultRepository operations when IsAvailable reports false.
type NoteCLI interface {
	IsAvailable() bool

	Search(query string) (string, error)
	ReadFile(name string) (string, error)
	ReadPath(path string) (string, error)

	// DailyAppend appends content to today's daily note.
	DailyAppend(content string) error

	// Check runs a graph health check (unresolved, orphans, deadends)
	// and returns its report.
	Check(name string) (string, error)
}
