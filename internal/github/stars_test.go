package github

import (
	"context"
	"errors"
	"testing"

	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgstars/internal/domain"
)

func starPayload(field, id string, starred bool) map[string]interface{} {
	return map[string]interface{}{
		field: map[string]interface{}{
			"starrable": map[string]interface{}{"id": id, "viewerHasStarred": starred},
		},
	}
}

func TestMutateStar_AddIssuesOnlyAddStar(t *testing.T) {
	mock := &MockGitHubV4Client{MutationResponse: starPayload("addStar", "R1", true)}
	src := NewSource(mock, "acme", 20)

	starred, err := src.MutateStar(context.Background(), "R1", domain.StarAdd)

	require.NoError(t, err)
	assert.True(t, starred)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.IsType(t, &addStarMutation{}, calls[0].Mutation)
	assert.Equal(t, githubv4.AddStarInput{StarrableID: githubv4.ID("R1")}, calls[0].Input)
}

func TestMutateStar_RemoveIssuesOnlyRemoveStar(t *testing.T) {
	mock := &MockGitHubV4Client{MutationResponse: starPayload("removeStar", "R9", false)}
	src := NewSource(mock, "acme", 20)

	starred, err := src.MutateStar(context.Background(), "R9", domain.StarRemove)

	require.NoError(t, err)
	assert.False(t, starred)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.IsType(t, &removeStarMutation{}, calls[0].Mutation)
	assert.Equal(t, githubv4.RemoveStarInput{StarrableID: githubv4.ID("R9")}, calls[0].Input)
}

func TestMutateStar_Failure(t *testing.T) {
	mock := &MockGitHubV4Client{}
	boom := errors.New("rate limited")
	mock.SetError(boom)

	_, err := NewSource(mock, "acme", 20).MutateStar(context.Background(), "R1", domain.StarAdd)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "addStar")
}

func TestMutateStar_EmptyID(t *testing.T) {
	mock := &MockGitHubV4Client{}

	_, err := NewSource(mock, "acme", 20).MutateStar(context.Background(), "", domain.StarAdd)

	assert.ErrorIs(t, err, domain.ErrEmptyRepositoryID)
	assert.Empty(t, mock.Calls())
}

func TestMutateStar_MismatchedStarrable(t *testing.T) {
	mock := &MockGitHubV4Client{MutationResponse: starPayload("addStar", "OTHER", true)}

	_, err := NewSource(mock, "acme", 20).MutateStar(context.Background(), "R1", domain.StarAdd)

	assert.ErrorIs(t, err, domain.ErrStarrableMismatch)
}
