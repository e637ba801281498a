package ports

import "lifememory/internal/domain"

// LinkIndex is the local note/link-graph cache used when the external CLI is
// unavailable: keyword search and the audit graph checks run against it.
type LinkIndex interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// Rebuild rescans every markdown note in the vault.
	Rebuild() (*domain.SyncStats, error)

	// Search matches note names, titles, and link texts.
	Search(query string) ([]domain.SearchHit, error)

	// Graph health checks
	Unresolved() ([]domain.Edge, error)
	Orphans() ([]string, error)
	Deadends() ([]string, error)
}
