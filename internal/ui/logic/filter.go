package logic

import (
	"strings"

	"orgstars/internal/domain"
)

// MatchesFilter checks if a repo matches the given filter query.
// "starred:yes" and "starred:no" filter on the viewer's star; anything else
// is a case-insensitive substring match on the name.
func MatchesFilter(repo domain.Repository, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}

	query := strings.ToLower(strings.TrimSpace(filterQuery))

	if strings.HasPrefix(query, "starred:") {
		switch strings.TrimPrefix(query, "starred:") {
		case "yes", "true", "y":
			return repo.ViewerHasStarred
		case "no", "false", "n":
			return !repo.ViewerHasStarred
		default:
			return false
		}
	}

	return strings.Contains(strings.ToLower(repo.Name), query)
}

// FilterRepositories returns the repos matching filterQuery in input order
func FilterRepositories(repos []domain.Repository, filterQuery string) []domain.Repository {
	if filterQuery == "" {
		return repos
	}
	var result []domain.Repository
	for _, r := range repos {
		if MatchesFilter(r, filterQuery) {
			result = append(result, r)
		}
	}
	return result
}
