package state

import (
	"errors"
	"fmt"

	"orgstars/internal/domain"
	"orgstars/internal/ui/logic"
)

// AppState contains the UI state that is not owned by a service
type AppState struct {
	Organization string
	Load         domain.LoadState

	// Status bar
	StatusMessage string
	StatusIsError bool

	// Filter and sort
	FilterQuery string
	SortMode    logic.SortMode

	ShowFullHelp bool
}

// NewAppState creates a new application state. Nothing has loaded yet, so
// the loading placeholder shows until the first query resolves.
func NewAppState(organization string) *AppState {
	return &AppState{
		Organization: organization,
		SortMode:     logic.SortByQuery,
	}
}

// ShowPlaceholder reports whether the body collapses into the loading placeholder
func (s *AppState) ShowPlaceholder() bool {
	return s.Load.Loading || !s.Load.Loaded
}

// BeginLoading marks a query as in flight
func (s *AppState) BeginLoading() {
	s.Load.Loading = true
	s.Load.Err = nil
}

// FinishLoading marks the collection as available
func (s *AppState) FinishLoading(count int) {
	s.Load = domain.LoadState{Loaded: true}
	s.SetStatus(fmt.Sprintf("Loaded %d repositories", count))
}

// FailLoading records a failed query. Any previous collection is discarded.
func (s *AppState) FailLoading(err error) {
	s.Load = domain.LoadState{Err: err}
	if errors.Is(err, domain.ErrOrganizationNotFound) {
		s.SetError(fmt.Sprintf("Organization %q not found (r to retry)", s.Organization))
		return
	}
	s.SetError(fmt.Sprintf("Query failed: %v (r to retry)", err))
}

// SetStatus sets an informational status message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError sets an error status message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus clears the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
