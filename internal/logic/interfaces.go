package logic

import (
	"context"

	"orgstars/internal/domain"
)

// DataSource is the transport-independent view of the repository API
type DataSource interface {
	// FetchRepositories returns the configured organization's repositories in API order
	FetchRepositories(ctx context.Context) ([]domain.Repository, error)
	// MutateStar runs the star operation and returns the confirmed viewerHasStarred value
	MutateStar(ctx context.Context, id string, op domain.StarOp) (bool, error)
}

// RepositoryStore provides access to the last query result
type RepositoryStore interface {
	Replace(repos []domain.Repository)
	All() []domain.Repository
	Get(id string) (domain.Repository, bool)
	ApplyStar(id string, starred bool) bool
	IDs() map[string]bool
	Len() int
}
