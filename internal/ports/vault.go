package ports

// Move is one planned or applied file relocation inside the vault.
type Move struct {
	From string // relative to the vault root
	To   string
}

// OrganizeReport summarises an organize run.
type OrganizeReport struct {
	Moves       []Move
	IgnoreRules int // rule count in the merged ignore file
	Applied     bool
}

// VaultRepository defines direct filesystem access to the vault. All note
// paths are relative to the vault root.
type VaultRepository interface {
	// Root returns the absolute vault root path.
	Root() string

	// Note access
	ReadNote(rel string) (string, error)
	NoteExists(rel string) bool

	// Entity index sources. ReadNowNote returns "" when the NOW note is
	// absent; ListCategoryNotes returns nil for a missing folder.
	ReadNowNote() (string, error)
	ListCategoryNotes(folder string) ([]string, error)

	// Daily notes
	DailyNotePath(date string) string
	ListDailyNotes() ([]string, error)
	AppendDaily(date, line string) error

	// Memory file
	MemoryPath() string
	AppendMemory(block string) error

	// Layout maintenance
	Organize(apply bool) (*OrganizeReport, error)
}
