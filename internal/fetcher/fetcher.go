package fetcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"orgstars/internal/eventbus"
	"orgstars/internal/logic"
)

// ErrFetchInProgress is returned when a query is already running
var ErrFetchInProgress = errors.New("fetch already in progress")

// Fetcher runs the repository query and reports the outcome on the bus
type Fetcher interface {
	Fetch(ctx context.Context) error
}

// fetcher is the concrete implementation
type fetcher struct {
	bus          eventbus.EventBus
	source       logic.DataSource
	organization string
	timeout      time.Duration

	mu       sync.Mutex
	inFlight bool
	seq      uint64
}

// NewFetcher creates a fetcher and subscribes it to refresh requests
func NewFetcher(bus eventbus.EventBus, source logic.DataSource, organization string, timeout time.Duration) Fetcher {
	f := &fetcher{
		bus:          bus,
		source:       source,
		organization: organization,
		timeout:      timeout,
	}

	bus.Subscribe(eventbus.EventRefreshRequested, func(e eventbus.DomainEvent) {
		if _, ok := e.(eventbus.RefreshRequestedEvent); ok {
			if err := f.Fetch(context.Background()); err != nil && !errors.Is(err, ErrFetchInProgress) {
				log.Debug().Err(err).Msg("refresh finished with error")
			}
		}
	})

	return f
}

// Fetch runs one query. Only one query runs at a time; overlapping calls
// return ErrFetchInProgress.
func (f *fetcher) Fetch(ctx context.Context) error {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return ErrFetchInProgress
	}
	f.inFlight = true
	f.seq++
	seq := f.seq
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	f.bus.Publish(eventbus.RepositoriesLoadingEvent{Organization: f.organization, Seq: seq})

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()
	repos, err := f.source.FetchRepositories(ctx)
	if err != nil {
		log.Error().Err(err).Str("organization", f.organization).Msg("repository query failed")
		f.bus.Publish(eventbus.RepositoriesFailedEvent{Organization: f.organization, Seq: seq, Err: err})
		return err
	}

	log.Info().
		Str("organization", f.organization).
		Int("count", len(repos)).
		Dur("took", time.Since(start)).
		Msg("repositories loaded")
	f.bus.Publish(eventbus.RepositoriesLoadedEvent{Organization: f.organization, Seq: seq, Repositories: repos})
	return nil
}
