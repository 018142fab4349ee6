package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orgstars/internal/domain"
)

func ids(repos []domain.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.ID)
	}
	return out
}

func TestSortRepositories(t *testing.T) {
	repos := []domain.Repository{
		{ID: "1", Name: "beta", StarCount: 5, ForkCount: 1},
		{ID: "2", Name: "Alpha", StarCount: 9, ForkCount: 1},
		{ID: "3", Name: "gamma", StarCount: 5, ForkCount: 7},
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(SortRepositories(repos, SortByQuery)))
	assert.Equal(t, []string{"2", "1", "3"}, ids(SortRepositories(repos, SortByName)))
	assert.Equal(t, []string{"2", "1", "3"}, ids(SortRepositories(repos, SortByStars)))
	assert.Equal(t, []string{"3", "1", "2"}, ids(SortRepositories(repos, SortByForks)))

	assert.Equal(t, "1", repos[0].ID, "input must not be reordered")
}

func TestSortModeCycles(t *testing.T) {
	m := SortByQuery
	seen := []string{}
	for i := 0; i < 5; i++ {
		seen = append(seen, m.String())
		m = m.Next()
	}
	assert.Equal(t, []string{"query", "name", "stars", "forks", "query"}, seen)
}
