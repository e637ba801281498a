package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lifememory/internal/domain"
)

// Rebuild performs a complete rescan of the vault's markdown notes, storing
// one node per note and one edge per wikilink.
func (idx *Index) Rebuild() (*domain.SyncStats, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM links`); err != nil {
		return nil, err
	}

	stats := &domain.SyncStats{}

	err = filepath.Walk(idx.vaultPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") || info.Name() == domain.ArchivesFolder {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		relPath, relErr := filepath.Rel(idx.vaultPath, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		text := string(data)

		node := domain.IndexNode{
			Path:  relPath,
			Name:  strings.TrimSuffix(info.Name(), ".md"),
			Title: firstHeading(text),
			Mtime: info.ModTime().Unix(),
		}
		relstem := strings.TrimSuffix(relPath, ".md")
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO notes (path, stem, slug, relslug, title, mtime)
			VALUES (?, ?, ?, ?, ?, ?)
		`, node.Path, node.Name, slug(node.Name), slug(relstem), node.Title, node.Mtime); err != nil {
			return fmt.Errorf("failed to insert note %s: %w", relPath, err)
		}
		stats.Notes++

		for _, target := range domain.WikilinkTargets(text) {
			if _, err := tx.Exec(`
				INSERT OR IGNORE INTO links (source_path, target, slug, link_text)
				VALUES (?, ?, ?, ?)
			`, relPath, target, slug(target), "[["+target+"]]"); err != nil {
				return fmt.Errorf("failed to insert link from %s: %w", relPath, err)
			}
			stats.Links++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stats, nil
}

// slug normalises a note name or link target for resolution: lowercase,
// hyphens as spaces. [[Jane Smith]] and jane-smith.md share a slug.
func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", " "))
}

// firstHeading returns the first H1 heading text, if any.
func firstHeading(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
