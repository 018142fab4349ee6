package github

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shurcooL/githubv4"

	"orgstars/internal/domain"
)

// repositoryNode mirrors the fields selected for every repository
type repositoryNode struct {
	ID               githubv4.ID
	Name             githubv4.String
	URL              githubv4.String
	ViewerHasStarred githubv4.Boolean
	ForkCount        githubv4.Int
	Stargazers       struct {
		TotalCount githubv4.Int
	}
}

// repositoriesQuery fetches the first page of an organization's repositories.
// Organization is a pointer so an absent payload can be told apart from an
// organization without repositories.
type repositoriesQuery struct {
	Organization *struct {
		Repositories struct {
			Edges []struct {
				Node repositoryNode
			}
		} `graphql:"repositories(first: $first)"`
	} `graphql:"organization(login: $login)"`
}

// FetchRepositories runs the organization query and returns the repositories in
// the order the API returned them. No pagination is performed beyond the
// configured page size.
func (s *Source) FetchRepositories(ctx context.Context) ([]domain.Repository, error) {
	var q repositoriesQuery
	variables := map[string]interface{}{
		"login": githubv4.String(s.organization),
		"first": githubv4.Int(s.first),
	}

	log.Debug().Str("organization", s.organization).Int("first", s.first).Msg("querying repositories")

	if err := s.client.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("query repositories of %s: %w", s.organization, err)
	}
	if q.Organization == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrganizationNotFound, s.organization)
	}

	edges := q.Organization.Repositories.Edges
	repos := make([]domain.Repository, 0, len(edges))
	for _, edge := range edges {
		repos = append(repos, toDomain(edge.Node))
	}

	log.Debug().Str("organization", s.organization).Int("count", len(repos)).Msg("repositories received")
	return repos, nil
}

func toDomain(n repositoryNode) domain.Repository {
	return domain.Repository{
		ID:               idString(n.ID),
		Name:             string(n.Name),
		URL:              string(n.URL),
		ViewerHasStarred: bool(n.ViewerHasStarred),
		ForkCount:        int(n.ForkCount),
		StarCount:        int(n.Stargazers.TotalCount),
	}
}
