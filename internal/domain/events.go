package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRefreshRequested    EventType = "RefreshRequested"
	EventRepositoriesLoading EventType = "RepositoriesLoading"
	EventRepositoriesLoaded  EventType = "RepositoriesLoaded"
	EventRepositoriesFailed  EventType = "RepositoriesFailed"
	EventStarRequested       EventType = "StarRequested"
	EventStarApplied         EventType = "StarApplied"
	EventStarFailed          EventType = "StarFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RefreshRequestedEvent asks the fetcher to run the repository query
type RefreshRequestedEvent struct{}

func (e RefreshRequestedEvent) Type() EventType { return EventRefreshRequested }

// RepositoriesLoadingEvent is emitted when a query starts. Seq increases
// with every query so late deliveries can be told apart.
type RepositoriesLoadingEvent struct {
	Organization string
	Seq          uint64
}

func (e RepositoriesLoadingEvent) Type() EventType { return EventRepositoriesLoading }

// RepositoriesLoadedEvent carries a complete query result
type RepositoriesLoadedEvent struct {
	Organization string
	Seq          uint64
	Repositories []Repository
}

func (e RepositoriesLoadedEvent) Type() EventType { return EventRepositoriesLoaded }

// RepositoriesFailedEvent is emitted when the query fails or returns no organization
type RepositoriesFailedEvent struct {
	Organization string
	Seq          uint64
	Err          error
}

func (e RepositoriesFailedEvent) Type() EventType { return EventRepositoriesFailed }

// StarRequestedEvent is emitted when the user activates a star control
type StarRequestedEvent struct {
	RepoID string
	Op     StarOp
}

func (e StarRequestedEvent) Type() EventType { return EventStarRequested }

// StarAppliedEvent carries the starrable state confirmed by a mutation response
type StarAppliedEvent struct {
	RepoID  string
	Starred bool
}

func (e StarAppliedEvent) Type() EventType { return EventStarApplied }

// StarFailedEvent is emitted when a star mutation fails
type StarFailedEvent struct {
	RepoID string
	Op     StarOp
	Err    error
}

func (e StarFailedEvent) Type() EventType { return EventStarFailed }
