package commands

import (
	"context"
	"fmt"
	"strings"

	"lifememory/internal/ports"
)

// SearchCommand searches the vault, preferring the external CLI and falling
// back to the local link index.
type SearchCommand struct {
	cli   ports.NoteCLI
	index ports.LinkIndex

	Query string
}

// NewSearchCommand creates a new SearchCommand.
func NewSearchCommand(cli ports.NoteCLI, index ports.LinkIndex, query string) *SearchCommand {
	return &SearchCommand{
		cli:   cli,
		index: index,
		Query: query,
	}
}

// Execute returns the search report as display-ready text.
func (c *SearchCommand) Execute(ctx context.Context) (string, error) {
	query := strings.TrimSpace(c.Query)
	if query == "" {
		return "", fmt.Errorf("query is required")
	}

	if c.cli != nil && c.cli.IsAvailable() {
		return c.cli.Search(query)
	}
	if c.index == nil {
		return "", fmt.Errorf("no search backend available")
	}

	hits, err := c.index.Search(query)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "no matches", nil
	}

	var sb strings.Builder
	for _, h := range hits {
		if h.MatchedText != "" {
			fmt.Fprintf(&sb, "%s  %s\n", h.Path, h.MatchedText)
		} else {
			fmt.Fprintln(&sb, h.Path)
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
