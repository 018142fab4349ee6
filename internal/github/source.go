package github

import "fmt"

// Source serves one organization's repositories and star mutations
type Source struct {
	client       GitHubV4Client
	organization string
	first        int
}

// NewSource creates a data source for the given organization login,
// requesting the first n repositories.
func NewSource(client GitHubV4Client, organization string, first int) *Source {
	return &Source{
		client:       client,
		organization: organization,
		first:        first,
	}
}

// Organization returns the organization login the source queries
func (s *Source) Organization() string {
	return s.organization
}

// idString converts a GraphQL ID into its string form
func idString(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
