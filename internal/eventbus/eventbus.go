package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"

	"orgstars/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventRefreshRequested    = domain.EventRefreshRequested
	EventRepositoriesLoading = domain.EventRepositoriesLoading
	EventRepositoriesLoaded  = domain.EventRepositoriesLoaded
	EventRepositoriesFailed  = domain.EventRepositoriesFailed
	EventStarRequested       = domain.EventStarRequested
	EventStarApplied         = domain.EventStarApplied
	EventStarFailed          = domain.EventStarFailed
)

// Re-export domain event types
type RefreshRequestedEvent = domain.RefreshRequestedEvent
type RepositoriesLoadingEvent = domain.RepositoriesLoadingEvent
type RepositoriesLoadedEvent = domain.RepositoriesLoadedEvent
type RepositoriesFailedEvent = domain.RepositoriesFailedEvent
type StarRequestedEvent = domain.StarRequestedEvent
type StarAppliedEvent = domain.StarAppliedEvent
type StarFailedEvent = domain.StarFailedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	onDrop    func(DomainEvent)
}

// Option configures a bus
type Option func(*bus)

// WithDropHandler registers fn to run when Publish drops an event because
// the queue is full. fn runs on the publisher's goroutine and must not block.
func WithDropHandler(fn func(DomainEvent)) Option {
	return func(b *bus) {
		b.onDrop = fn
	}
}

// New creates a new event bus
func New(opts ...Option) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	log.Debug().Str("event", string(event.Type())).Msg("eventbus: publishing")

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		log.Warn().Str("event", string(event.Type())).Msg("eventbus: channel full, dropping event")
		if b.onDrop != nil {
			b.onDrop(event)
		}
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards pending events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Make a copy to avoid holding lock during handler execution
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Error().
								Str("event", string(eventType)).
								Interface("panic", r).
								Bytes("stack", debug.Stack()).
								Msg("eventbus: handler panic")
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
