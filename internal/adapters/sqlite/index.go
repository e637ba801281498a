// Package sqlite keeps a local note/link-graph cache for the vault. It backs
// keyword search and the audit graph checks when the external CLI is not
// installed.
package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"lifememory/internal/domain"
	"lifememory/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.LinkIndex using SQLite.
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure Index implements LinkIndex
var _ ports.LinkIndex = (*Index)(nil)

// NewIndex creates a new SQLite index.
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given vault path.
func (idx *Index) Open(vaultPath string) error {
	// Expand ~ in path
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	idx.vaultPath = vaultPath
	idx.dbPath = databasePath(vaultPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			stem TEXT NOT NULL,
			slug TEXT NOT NULL,
			relslug TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			source_path TEXT NOT NULL,
			target TEXT NOT NULL,
			slug TEXT NOT NULL,
			link_text TEXT NOT NULL,
			PRIMARY KEY (source_path, link_text)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notes_slug ON notes(slug);
		CREATE INDEX IF NOT EXISTS idx_links_slug ON links(slug);
		CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_path);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// databasePath returns the path for the SQLite database under the XDG data
// directory, keyed by a hash of the vault path.
func databasePath(vaultPath string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lifememory", hashVaultPath(vaultPath)+".db")
}

// hashVaultPath returns a short hash of the vault path.
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8])
}

func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path_hash', ?);
	`, schemaVersion, hashVaultPath(idx.vaultPath))
	return err
}

// Search matches note names, titles, and link texts case-insensitively.
func (idx *Index) Search(query string) ([]domain.SearchHit, error) {
	pattern := "%" + query + "%"
	rows, err := idx.db.Query(`
		SELECT path, stem, title FROM notes
		WHERE stem LIKE ? OR title LIKE ? OR path IN (
			SELECT source_path FROM links WHERE link_text LIKE ?
		)
		ORDER BY path
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []domain.SearchHit
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.Path, &h.Name, &h.MatchedText); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Unresolved returns links whose target matches no indexed note, by base
// name or by vault-relative path. Targets and note names compare through
// Slug, so [[Jane Smith]] resolves to jane-smith.md.
func (idx *Index) Unresolved() ([]domain.Edge, error) {
	rows, err := idx.db.Query(`
		SELECT l.source_path, l.target, l.link_text
		FROM links l
		WHERE NOT EXISTS (
			SELECT 1 FROM notes n
			WHERE n.slug = l.slug OR n.relslug = l.slug
		)
		ORDER BY l.source_path, l.target
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []domain.Edge
	for rows.Next() {
		var e domain.Edge
		if err := rows.Scan(&e.SourcePath, &e.Target, &e.LinkText); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// Orphans returns notes no other note links to.
func (idx *Index) Orphans() ([]string, error) {
	return idx.pathQuery(`
		SELECT path FROM notes n
		WHERE NOT EXISTS (
			SELECT 1 FROM links l
			WHERE l.slug = n.slug OR l.slug = n.relslug
		)
		ORDER BY path
	`)
}

// Deadends returns notes that link to nothing.
func (idx *Index) Deadends() ([]string, error) {
	return idx.pathQuery(`
		SELECT path FROM notes n
		WHERE NOT EXISTS (
			SELECT 1 FROM links l WHERE l.source_path = n.path
		)
		ORDER BY path
	`)
}

func (idx *Index) pathQuery(query string) ([]string, error) {
	rows, err := idx.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
