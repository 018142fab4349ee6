package logic

import (
	"orgstars/internal/domain"
	"orgstars/internal/eventbus"
)

// Label is the text on a row's star control
type Label string

const (
	LabelStar   Label = "Star"
	LabelUnstar Label = "UnStar"
)

// StarState is the state of a row's star control. It is derived from
// viewerHasStarred on every render and never cached.
type StarState int

const (
	Unstarred StarState = iota
	Starred
)

// StateOf returns the star state for a repository
func StateOf(repo domain.Repository) StarState {
	if repo.ViewerHasStarred {
		return Starred
	}
	return Unstarred
}

// Label returns the text shown on a control in this state
func (s StarState) Label() Label {
	return NextLabel(s == Starred)
}

// NextLabel returns the label shown for the given starred flag
func NextLabel(starred bool) Label {
	if starred {
		return LabelUnstar
	}
	return LabelStar
}

// OpFor returns the mutation a click on the control issues
func OpFor(starred bool) domain.StarOp {
	if starred {
		return domain.StarRemove
	}
	return domain.StarAdd
}

// StarController turns activations of a star control into mutation requests
type StarController struct {
	bus eventbus.EventBus
}

// NewStarController creates a controller publishing to bus
func NewStarController(bus eventbus.EventBus) *StarController {
	return &StarController{bus: bus}
}

// Activate publishes exactly one star request for repo, chosen from its
// current viewerHasStarred flag, and returns it.
func (c *StarController) Activate(repo domain.Repository) domain.StarRequestedEvent {
	req := domain.StarRequestedEvent{
		RepoID: repo.ID,
		Op:     OpFor(repo.ViewerHasStarred),
	}
	c.bus.Publish(req)
	return req
}
