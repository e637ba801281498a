package commands

import (
	"context"
	"fmt"
	"strings"

	"lifememory/internal/ports"
)

// AuditChecks are the graph health checks, in report order.
var AuditChecks = []string{"unresolved", "orphans", "deadends"}

// AuditSection is the outcome of one health check.
type AuditSection struct {
	Name      string
	Report    string
	Available bool
}

// AuditCommand runs the vault graph health checks via the external CLI,
// falling back to the local link index. A failing check is reported as
// unavailable, never fatal.
type AuditCommand struct {
	cli   ports.NoteCLI
	index ports.LinkIndex
}

// NewAuditCommand creates a new AuditCommand.
func NewAuditCommand(cli ports.NoteCLI, index ports.LinkIndex) *AuditCommand {
	return &AuditCommand{cli: cli, index: index}
}

// Execute returns one section per check.
func (c *AuditCommand) Execute(ctx context.Context) []AuditSection {
	sections := make([]AuditSection, 0, len(AuditChecks))
	for _, name := range AuditChecks {
		sections = append(sections, c.runCheck(name))
	}
	return sections
}

func (c *AuditCommand) runCheck(name string) AuditSection {
	if c.cli != nil && c.cli.IsAvailable() {
		report, err := c.cli.Check(name)
		if err != nil {
			return AuditSection{Name: name, Report: err.Error()}
		}
		return AuditSection{Name: name, Report: report, Available: true}
	}

	if c.index == nil {
		return AuditSection{Name: name, Report: "no index available"}
	}

	report, err := c.indexCheck(name)
	if err != nil {
		return AuditSection{Name: name, Report: err.Error()}
	}
	return AuditSection{Name: name, Report: report, Available: true}
}

func (c *AuditCommand) indexCheck(name string) (string, error) {
	switch name {
	case "unresolved":
		edges, err := c.index.Unresolved()
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "total: %d", len(edges))
		for _, e := range edges {
			fmt.Fprintf(&sb, "\n%s -> %s", e.SourcePath, e.Target)
		}
		return sb.String(), nil
	case "orphans":
		paths, err := c.index.Orphans()
		if err != nil {
			return "", err
		}
		return formatPathReport(paths), nil
	case "deadends":
		paths, err := c.index.Deadends()
		if err != nil {
			return "", err
		}
		return formatPathReport(paths), nil
	default:
		return "", fmt.Errorf("unknown check: %s", name)
	}
}

func formatPathReport(paths []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "total: %d", len(paths))
	for _, p := range paths {
		fmt.Fprintf(&sb, "\n%s", p)
	}
	return sb.String()
}
