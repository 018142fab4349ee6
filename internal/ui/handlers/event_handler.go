package handlers

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"orgstars/internal/eventbus"
	"orgstars/internal/logic"
	"orgstars/internal/ui/services/selection"
	"orgstars/internal/ui/state"
)

// StatusTimeout is how long informational status messages stay visible
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears an informational status message
type ClearStatusMsg struct{}

var errResultDropped = errors.New("result was dropped")

// EventHandler handles domain events and updates state
type EventHandler struct {
	state      *state.AppState
	store      logic.RepositoryStore
	selection  *selection.Service
	pruneStale bool
	onChange   func()

	// Bus delivery is unordered. loadingSeq is the newest query seen
	// starting, doneSeq the newest one applied.
	loadingSeq uint64
	doneSeq    uint64
	done       bool

	// Confirmed star results that a query started earlier must not undo
	applied map[string]appliedStar
}

type appliedStar struct {
	starred  bool
	afterSeq uint64 // results from queries up to this seq predate the mutation
}

// NewEventHandler creates a new event handler. onChange runs after the
// visible collection may have changed.
func NewEventHandler(appState *state.AppState, store logic.RepositoryStore, sel *selection.Service, pruneStale bool, onChange func()) *EventHandler {
	if onChange == nil {
		onChange = func() {}
	}
	return &EventHandler{
		state:      appState,
		store:      store,
		selection:  sel,
		pruneStale: pruneStale,
		onChange:   onChange,
		applied:    make(map[string]appliedStar),
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.RepositoriesLoadingEvent:
		if h.done && e.Seq <= h.doneSeq {
			return nil
		}
		if e.Seq > h.loadingSeq {
			h.loadingSeq = e.Seq
		}
		h.state.BeginLoading()
		h.state.ClearStatus()

	case eventbus.RepositoriesLoadedEvent:
		if h.stale(e.Seq) {
			return nil
		}
		h.store.Replace(e.Repositories)
		h.reapplyStars(e.Seq)
		if h.pruneStale {
			if pruned := h.selection.Prune(h.store.IDs()); len(pruned) > 0 {
				log.Debug().Strs("ids", pruned).Msg("Pruned stale selection")
			}
		}
		h.state.FinishLoading(h.store.Len())
		h.onChange()
		return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{} })

	case eventbus.RepositoriesFailedEvent:
		if h.stale(e.Seq) {
			return nil
		}
		h.store.Replace(nil)
		h.state.FailLoading(e.Err)
		h.onChange()

	case eventbus.StarAppliedEvent:
		h.applied[e.RepoID] = appliedStar{starred: e.Starred, afterSeq: h.loadingSeq}
		if !h.store.ApplyStar(e.RepoID, e.Starred) {
			log.Debug().Str("repo_id", e.RepoID).Msg("Star result for repository outside current collection")
		}
		h.onChange()

	case eventbus.StarFailedEvent:
		h.state.SetError(fmt.Sprintf("%s failed for %s: %v", e.Op, h.repoName(e.RepoID), e.Err))
	}

	return nil
}

// HandleDropped reports an event the bus could not queue. Nothing else will
// arrive for it, so the status line tells the user what to retry.
func (h *EventHandler) HandleDropped(event eventbus.DomainEvent) {
	log.Warn().Str("event", string(event.Type())).Msg("Event dropped before reaching the UI")

	switch e := event.(type) {
	case eventbus.RefreshRequestedEvent:
		h.state.SetError("Refresh request was dropped (r to retry)")

	case eventbus.RepositoriesLoadedEvent:
		h.dropQuery(e.Seq)

	case eventbus.RepositoriesFailedEvent:
		h.dropQuery(e.Seq)

	case eventbus.StarRequestedEvent:
		h.state.SetError(fmt.Sprintf("%s request for %s was dropped (s to retry)", e.Op, h.repoName(e.RepoID)))

	case eventbus.StarAppliedEvent:
		h.state.SetError(fmt.Sprintf("Star result for %s was dropped (r to refresh)", h.repoName(e.RepoID)))

	case eventbus.StarFailedEvent:
		h.state.SetError(fmt.Sprintf("%s result for %s was dropped (r to refresh)", e.Op, h.repoName(e.RepoID)))
	}
}

// dropQuery ends the query seq as failed unless a newer one superseded it
func (h *EventHandler) dropQuery(seq uint64) {
	if h.stale(seq) {
		return
	}
	h.store.Replace(nil)
	h.state.FailLoading(errResultDropped)
	h.onChange()
}

func (h *EventHandler) repoName(id string) string {
	if repo, ok := h.store.Get(id); ok {
		return repo.Name
	}
	return id
}

// stale reports whether a finished query is older than one already applied
// or than one still in flight, and records seq otherwise
func (h *EventHandler) stale(seq uint64) bool {
	if h.done && seq < h.doneSeq {
		return true
	}
	if seq < h.loadingSeq {
		log.Debug().Uint64("seq", seq).Uint64("in_flight", h.loadingSeq).Msg("Discarded result of superseded query")
		return true
	}
	h.done = true
	h.doneSeq = seq
	if seq > h.loadingSeq {
		h.loadingSeq = seq
	}
	return false
}

// reapplyStars restores confirmed star results over a query that may have
// been answered before the mutation. Results from later queries win.
func (h *EventHandler) reapplyStars(seq uint64) {
	for id, a := range h.applied {
		if seq > a.afterSeq {
			delete(h.applied, id)
			continue
		}
		h.store.ApplyStar(id, a.starred)
	}
}
