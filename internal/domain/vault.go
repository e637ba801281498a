package domain

import "regexp"

// Well-known folders inside the vault.
const (
	DailyFolder    = "Daily"
	IdentityFolder = "Identity"
	ContextFolder  = "Context"
	ArchivesFolder = "Archives"
)

// CategoryFolders are the entity source folders scanned by the entity index,
// in scan order.
var CategoryFolders = []string{"Projects", "People", "Places", "Vendors", "Events"}

// IdentityFiles are root-level notes that belong under Identity/.
var IdentityFiles = map[string]bool{
	"SOUL.md":     true,
	"IDENTITY.md": true,
	"USER.md":     true,
}

// ContextFiles are root-level notes that belong under Context/.
var ContextFiles = map[string]bool{
	"LIFE_CONTEXT.md": true,
	"TOOLS.md":        true,
	"AGENTS.md":       true,
	"HEARTBEAT.md":    true,
	"MEMORY.md":       true,
	"NOW.md":          true,
}

const (
	// NowNoteName is the context note scanned for entity wikilinks.
	NowNoteName = "NOW.md"

	// MemoryFileName is the long-term memory file fed by distill.
	MemoryFileName = "MEMORY.md"

	// MemoryFileHeader seeds the memory file when it is first created.
	MemoryFileHeader = "# MEMORY\n"
)

var dailyNoteRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)

// IsDailyNote reports whether name looks like a daily note file (YYYY-MM-DD.md).
func IsDailyNote(name string) bool {
	return dailyNoteRe.MatchString(name)
}

// DailyNoteName returns the file name of the daily note for a date string.
func DailyNoteName(date string) string {
	return date + ".md"
}
