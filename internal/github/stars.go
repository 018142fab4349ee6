package github

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shurcooL/githubv4"

	"orgstars/internal/domain"
)

// starrable is the part of the mutation payload the UI reconciles against
type starrable struct {
	ID               githubv4.ID
	ViewerHasStarred githubv4.Boolean
}

type addStarMutation struct {
	AddStar struct {
		Starrable starrable
	} `graphql:"addStar(input: $input)"`
}

type removeStarMutation struct {
	RemoveStar struct {
		Starrable starrable
	} `graphql:"removeStar(input: $input)"`
}

// MutateStar stars or unstars the repository with the given id and returns the
// viewerHasStarred value confirmed by the API.
func (s *Source) MutateStar(ctx context.Context, id string, op domain.StarOp) (bool, error) {
	if id == "" {
		return false, domain.ErrEmptyRepositoryID
	}

	logger := log.With().Str("repo_id", id).Str("op", op.String()).Logger()
	logger.Debug().Msg("sending star mutation")

	var result starrable
	switch op {
	case domain.StarAdd:
		var m addStarMutation
		input := githubv4.AddStarInput{StarrableID: githubv4.ID(id)}
		if err := s.client.Mutate(ctx, &m, input, nil); err != nil {
			return false, fmt.Errorf("%s %s: %w", op, id, err)
		}
		result = m.AddStar.Starrable
	case domain.StarRemove:
		var m removeStarMutation
		input := githubv4.RemoveStarInput{StarrableID: githubv4.ID(id)}
		if err := s.client.Mutate(ctx, &m, input, nil); err != nil {
			return false, fmt.Errorf("%s %s: %w", op, id, err)
		}
		result = m.RemoveStar.Starrable
	default:
		return false, fmt.Errorf("unknown star operation %d", op)
	}

	if got := idString(result.ID); got != id {
		return false, fmt.Errorf("%w: requested %s, got %q", domain.ErrStarrableMismatch, id, got)
	}

	logger.Debug().Bool("starred", bool(result.ViewerHasStarred)).Msg("star mutation applied")
	return bool(result.ViewerHasStarred), nil
}
