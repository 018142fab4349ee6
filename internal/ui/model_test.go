package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgstars/internal/config"
	"orgstars/internal/domain"
	"orgstars/internal/eventbus"
	"orgstars/internal/logic"
	"orgstars/internal/ui/views"
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

func (b *recordingBus) starRequests() []domain.StarRequestedEvent {
	var reqs []domain.StarRequestedEvent
	for _, e := range b.published {
		if r, ok := e.(domain.StarRequestedEvent); ok {
			reqs = append(reqs, r)
		}
	}
	return reqs
}

var testRepos = []domain.Repository{
	{ID: "R1", Name: "road-to-graphql", URL: "https://github.com/acme/road-to-graphql", ForkCount: 3, StarCount: 10},
	{ID: "R2", Name: "road-to-react", URL: "https://github.com/acme/road-to-react", ViewerHasStarred: true, ForkCount: 1, StarCount: 99},
}

func newTestModel(t *testing.T, mutate func(*config.Config)) (*Model, *recordingBus) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Organization = "acme"
	if mutate != nil {
		mutate(cfg)
	}
	bus := &recordingBus{}
	m := NewModel(bus, cfg, logic.NewMemoryRepositoryStore())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, bus
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(m *Model, repos []domain.Repository) {
	send(m, EventMsg{Event: eventbus.RepositoriesLoadedEvent{Organization: "acme", Repositories: repos}})
}

func TestInitRequestsRefresh(t *testing.T) {
	m, bus := newTestModel(t, nil)

	cmd := m.Init()
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, bus.published, 1)
	assert.Equal(t, eventbus.RefreshRequestedEvent{}, bus.published[0])
}

func TestPlaceholderUntilLoaded(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.Contains(t, m.View(), views.LoadingPlaceholder)

	send(m, EventMsg{Event: eventbus.RepositoriesLoadingEvent{Organization: "acme"}})
	assert.Contains(t, m.View(), views.LoadingPlaceholder)

	loaded(m, testRepos)
	out := m.View()
	assert.NotContains(t, out, views.LoadingPlaceholder)
	assert.Contains(t, out, "road-to-graphql")
	assert.Contains(t, out, "FORKED: 3")
	assert.Contains(t, out, "10 ★")
}

func TestPlaceholderOnFailure(t *testing.T) {
	m, bus := newTestModel(t, nil)
	loaded(m, testRepos)

	send(m, EventMsg{Event: eventbus.RepositoriesFailedEvent{Organization: "acme", Err: domain.ErrOrganizationNotFound}})

	out := m.View()
	assert.Contains(t, out, views.LoadingPlaceholder)
	assert.NotContains(t, out, "road-to-graphql")

	// Row keys do nothing while the placeholder shows
	send(m, keyPress("s"))
	assert.Empty(t, bus.starRequests())

	cmd := send(m, keyPress("r"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, eventbus.RefreshRequestedEvent{}, bus.published[len(bus.published)-1])
}

func TestToggleSelection(t *testing.T) {
	m, _ := newTestModel(t, nil)
	loaded(m, testRepos)

	send(m, keyPress(" "))
	assert.True(t, m.selection.IsSelected("R1"))
	assert.Contains(t, m.View(), "Unselect")

	send(m, keyPress(" "))
	assert.False(t, m.selection.IsSelected("R1"))
	assert.NotContains(t, m.View(), "Unselect")
}

func TestStarKeyPublishesSingleRequest(t *testing.T) {
	m, bus := newTestModel(t, nil)
	loaded(m, testRepos)

	send(m, keyPress("s"))

	reqs := bus.starRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, domain.StarRequestedEvent{RepoID: "R1", Op: domain.StarAdd}, reqs[0])

	// No intermediate state while the mutation is in flight
	repo, _ := m.store.Get("R1")
	assert.False(t, repo.ViewerHasStarred)
}

func TestStarredRowRequestsRemove(t *testing.T) {
	m, bus := newTestModel(t, nil)
	loaded(m, testRepos)

	send(m, keyPress("down"))
	send(m, keyPress("enter"))

	reqs := bus.starRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, domain.StarRequestedEvent{RepoID: "R2", Op: domain.StarRemove}, reqs[0])
}

func TestStarAppliedFlipsLabel(t *testing.T) {
	m, bus := newTestModel(t, nil)
	loaded(m, testRepos[:1])
	assert.NotContains(t, m.View(), "UnStar")

	send(m, EventMsg{Event: eventbus.StarAppliedEvent{RepoID: "R1", Starred: true}})
	assert.Contains(t, m.View(), "UnStar")

	send(m, keyPress("s"))
	reqs := bus.starRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, domain.StarRemove, reqs[0].Op)
}

func TestStarFailedLeavesRowAndReportsStatus(t *testing.T) {
	m, _ := newTestModel(t, nil)
	loaded(m, testRepos[:1])

	send(m, EventMsg{Event: eventbus.StarFailedEvent{RepoID: "R1", Op: domain.StarAdd, Err: errors.New("rate limited")}})

	out := m.View()
	assert.NotContains(t, out, "UnStar")
	assert.Contains(t, out, "rate limited")
}

func TestDroppedStarResultReportsStatus(t *testing.T) {
	m, _ := newTestModel(t, nil)
	loaded(m, testRepos[:1])

	send(m, DroppedEventMsg{Event: eventbus.StarAppliedEvent{RepoID: "R1", Starred: true}})

	out := m.View()
	assert.NotContains(t, out, "UnStar", "row keeps its last known state")
	assert.Contains(t, out, "Star result for road-to-graphql was dropped (r to refresh)")
	assert.True(t, m.state.StatusIsError)
}

func TestFilterNarrowsRows(t *testing.T) {
	m, _ := newTestModel(t, nil)
	loaded(m, testRepos)

	send(m, keyPress("/"))
	for _, r := range "react" {
		send(m, keyPress(string(r)))
	}
	send(m, keyPress("enter"))

	assert.Equal(t, "react", m.state.FilterQuery)
	require.Len(t, m.visible, 1)
	assert.Equal(t, "R2", m.visible[0].ID)

	send(m, keyPress("esc"))
	assert.Empty(t, m.state.FilterQuery)
	assert.Len(t, m.visible, 2)
}

func TestCycleSort(t *testing.T) {
	m, _ := newTestModel(t, nil)
	loaded(m, testRepos)

	send(m, keyPress("S")) // name
	send(m, keyPress("S")) // stars
	require.Len(t, m.visible, 2)
	assert.Equal(t, "R2", m.visible[0].ID)
}

func TestSelectAllAndClear(t *testing.T) {
	m, _ := newTestModel(t, nil)
	loaded(m, testRepos)

	send(m, keyPress("a"))
	assert.Equal(t, 2, m.selection.Count())
	assert.Contains(t, m.View(), "2 selected")

	send(m, keyPress("esc"))
	assert.Equal(t, 0, m.selection.Count())
}

func TestStaleSelectionPruneConfig(t *testing.T) {
	keep, _ := newTestModel(t, nil)
	loaded(keep, testRepos)
	send(keep, keyPress("a"))
	loaded(keep, testRepos[:1])
	assert.True(t, keep.selection.IsSelected("R2"))

	prune, _ := newTestModel(t, func(c *config.Config) { c.UISettings.PruneStaleSelection = true })
	loaded(prune, testRepos)
	send(prune, keyPress("a"))
	loaded(prune, testRepos[:1])
	assert.False(t, prune.selection.IsSelected("R2"))
	assert.True(t, prune.selection.IsSelected("R1"))
}

func TestOpenURL(t *testing.T) {
	m, _ := newTestModel(t, nil)
	var opened string
	m.SetURLOpener(func(url string) error {
		opened = url
		return nil
	})
	loaded(m, testRepos)

	cmd := send(m, keyPress("o"))
	require.NotNil(t, cmd)
	send(m, cmd())

	assert.Equal(t, "https://github.com/acme/road-to-graphql", opened)
	assert.False(t, m.state.StatusIsError)
}

func TestOpenURLFailureSetsStatus(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.SetURLOpener(func(string) error { return errors.New("no browser") })
	loaded(m, testRepos)

	cmd := send(m, keyPress("o"))
	require.NotNil(t, cmd)
	send(m, cmd())

	assert.True(t, m.state.StatusIsError)
}

func TestHelpWithoutProgramExpandsFooter(t *testing.T) {
	m, _ := newTestModel(t, nil)

	send(m, keyPress("?"))
	assert.True(t, m.state.ShowFullHelp)
}
