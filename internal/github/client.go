// Package github implements the repository data source on top of the GitHub
// GraphQL API.
package github

import (
	"context"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// GitHubV4Client defines the methods used from the githubv4 client.
// This allows for mocking the client in tests.
type GitHubV4Client interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
	Mutate(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error
}

// NewClient returns a githubv4 client authenticated with a static token.
// An empty endpoint or the public endpoint selects api.github.com.
func NewClient(ctx context.Context, token, endpoint string) *githubv4.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, src)

	if endpoint == "" || endpoint == publicEndpoint {
		return githubv4.NewClient(httpClient)
	}
	return githubv4.NewEnterpriseClient(endpoint, httpClient)
}

const publicEndpoint = "https://api.github.com/graphql"

var _ GitHubV4Client = (*githubv4.Client)(nil)
