package commands

import (
	"context"
	"fmt"

	"lifememory/internal/ports"
)

// ReadCommand reads one note, by file name or by path. Exactly one selector
// must be set. The filesystem fallback treats both as vault-relative paths.
type ReadCommand struct {
	repo ports.VaultRepository
	cli  ports.NoteCLI

	File string
	Path string
}

// NewReadCommand creates a new ReadCommand.
func NewReadCommand(repo ports.VaultRepository, cli ports.NoteCLI, file, path string) *ReadCommand {
	return &ReadCommand{
		repo: repo,
		cli:  cli,
		File: file,
		Path: path,
	}
}

// Execute returns the note's raw text.
func (c *ReadCommand) Execute(ctx context.Context) (string, error) {
	if (c.File == "") == (c.Path == "") {
		return "", fmt.Errorf("provide exactly one of --file or --path")
	}

	if c.cli != nil && c.cli.IsAvailable() {
		if c.File != "" {
			return c.cli.ReadFile(c.File)
		}
		return c.cli.ReadPath(c.Path)
	}

	rel := c.File
	if rel == "" {
		rel = c.Path
	}
	return c.repo.ReadNote(rel)
}
