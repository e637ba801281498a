package commands

import (
	"context"

	"lifememory/internal/ports"
)

// OrganizeCommand normalizes the vault layout. Dry-run unless Apply is set.
type OrganizeCommand struct {
	repo ports.VaultRepository

	Apply bool
}

// NewOrganizeCommand creates a new OrganizeCommand.
func NewOrganizeCommand(repo ports.VaultRepository, apply bool) *OrganizeCommand {
	return &OrganizeCommand{repo: repo, Apply: apply}
}

// Execute plans (and with Apply, performs) the layout moves.
func (c *OrganizeCommand) Execute(ctx context.Context) (*ports.OrganizeReport, error) {
	return c.repo.Organize(c.Apply)
}
