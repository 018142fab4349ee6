package starring

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"orgstars/internal/domain"
	"orgstars/internal/eventbus"
	"orgstars/internal/logic"
)

// StarService runs star mutations requested by the UI
type StarService interface {
	Apply(ctx context.Context, repoID string, op domain.StarOp) (bool, error)
}

// starService is the concrete implementation
type starService struct {
	bus        eventbus.EventBus
	source     logic.DataSource
	timeout    time.Duration
	workerPool chan struct{} // Semaphore for limiting concurrent mutations
}

// NewStarService creates a star service and subscribes it to star requests
func NewStarService(bus eventbus.EventBus, source logic.DataSource, timeout time.Duration) StarService {
	s := &starService{
		bus:        bus,
		source:     source,
		timeout:    timeout,
		workerPool: make(chan struct{}, 4),
	}

	bus.Subscribe(eventbus.EventStarRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.StarRequestedEvent); ok {
			_, _ = s.Apply(context.Background(), event.RepoID, event.Op)
		}
	})

	return s
}

// Apply runs one mutation and publishes StarApplied or StarFailed.
// The caller's state is not touched on failure.
func (s *starService) Apply(ctx context.Context, repoID string, op domain.StarOp) (bool, error) {
	s.workerPool <- struct{}{}
	defer func() { <-s.workerPool }()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	starred, err := s.source.MutateStar(ctx, repoID, op)
	if err != nil {
		log.Error().Err(err).Str("repo_id", repoID).Str("op", op.String()).Msg("star mutation failed")
		s.bus.Publish(eventbus.StarFailedEvent{RepoID: repoID, Op: op, Err: err})
		return false, err
	}

	if starred != op.Starred() {
		log.Warn().Str("repo_id", repoID).Str("op", op.String()).Bool("starred", starred).Msg("star mutation confirmed a different state")
	}
	log.Info().Str("repo_id", repoID).Str("op", op.String()).Bool("starred", starred).Msg("star mutation confirmed")
	s.bus.Publish(eventbus.StarAppliedEvent{RepoID: repoID, Starred: starred})
	return starred, nil
}
