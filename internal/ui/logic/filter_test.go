package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orgstars/internal/domain"
)

func TestMatchesFilter(t *testing.T) {
	starred := domain.Repository{Name: "react-redux-tutorial", ViewerHasStarred: true}
	plain := domain.Repository{Name: "hackernews-client"}

	tests := []struct {
		query string
		repo  domain.Repository
		want  bool
	}{
		{"", plain, true},
		{"REDUX", starred, true},
		{"redux", plain, false},
		{"starred:yes", starred, true},
		{"starred:yes", plain, false},
		{"starred:no", plain, true},
		{"starred:maybe", plain, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesFilter(tt.repo, tt.query), "query %q on %s", tt.query, tt.repo.Name)
	}
}

func TestFilterRepositoriesKeepsOrder(t *testing.T) {
	repos := []domain.Repository{
		{ID: "1", Name: "road-to-react"},
		{ID: "2", Name: "graphql"},
		{ID: "3", Name: "react-graphql"},
	}

	assert.Equal(t, []string{"1", "3"}, ids(FilterRepositories(repos, "react")))
	assert.Len(t, FilterRepositories(repos, ""), 3)
	assert.Empty(t, FilterRepositories(repos, "vue"))
}
