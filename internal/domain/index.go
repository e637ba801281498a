package domain

// IndexNode is one markdown note tracked by the link index.
type IndexNode struct {
	Path  string // path relative to the vault root
	Name  string // base file name without extension
	Title string // first H1 heading, if any
	Mtime int64
}

// Edge is one wikilink recorded by the link index.
type Edge struct {
	SourcePath string // note containing the link, relative to the vault root
	Target     string // link target as written (alias stripped)
	LinkText   string // raw [[...]] span
}

// SearchHit is one match from the local index search fallback.
type SearchHit struct {
	Path        string
	Name        string
	MatchedText string
}

// SyncStats summarises one index rebuild.
type SyncStats struct {
	Notes int
	Links int
}
