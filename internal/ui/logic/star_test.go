package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgstars/internal/domain"
	"orgstars/internal/eventbus"
)

// recordingBus records published events synchronously
type recordingBus struct {
	published []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.published = append(b.published, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func TestNextLabel(t *testing.T) {
	assert.Equal(t, LabelStar, NextLabel(false))
	assert.Equal(t, LabelUnstar, NextLabel(true))
	assert.Equal(t, "UnStar", string(NextLabel(true)))
}

func TestOpFor(t *testing.T) {
	assert.Equal(t, domain.StarAdd, OpFor(false))
	assert.Equal(t, domain.StarRemove, OpFor(true))
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, Starred, StateOf(domain.Repository{ViewerHasStarred: true}))
	assert.Equal(t, Unstarred, StateOf(domain.Repository{}))
}

func TestStateLabel(t *testing.T) {
	assert.Equal(t, LabelStar, Unstarred.Label())
	assert.Equal(t, LabelUnstar, Starred.Label())
}

func TestActivateUnstarredIssuesSingleAdd(t *testing.T) {
	bus := &recordingBus{}
	c := NewStarController(bus)

	req := c.Activate(domain.Repository{ID: "R1", ViewerHasStarred: false})

	require.Len(t, bus.published, 1)
	assert.Equal(t, domain.StarRequestedEvent{RepoID: "R1", Op: domain.StarAdd}, bus.published[0])
	assert.Equal(t, req, bus.published[0])
}

func TestActivateStarredIssuesRemove(t *testing.T) {
	bus := &recordingBus{}
	c := NewStarController(bus)

	c.Activate(domain.Repository{ID: "R7", ViewerHasStarred: true})

	require.Len(t, bus.published, 1)
	assert.Equal(t, domain.StarRequestedEvent{RepoID: "R7", Op: domain.StarRemove}, bus.published[0])
}
