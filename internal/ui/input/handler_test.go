package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgstars/internal/ui/input/types"
)

type fakeContext struct {
	index    int
	total    int
	selected int
	repoID   string
	filter   string
}

func (c fakeContext) CurrentIndex() int           { return c.index }
func (c fakeContext) TotalItems() int             { return c.total }
func (c fakeContext) HasSelection() bool          { return c.selected > 0 }
func (c fakeContext) SelectedCount() int          { return c.selected }
func (c fakeContext) CurrentRepositoryID() string { return c.repoID }
func (c fakeContext) FilterQuery() string         { return c.filter }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeKeys(t *testing.T) {
	ctx := fakeContext{total: 2, repoID: "R1"}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, types.NavigateAction{Direction: "down"}},
		{"j", runes("j"), types.NavigateAction{Direction: "down"}},
		{"k", runes("k"), types.NavigateAction{Direction: "up"}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, types.NavigateAction{Direction: "pagedown"}},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, types.NavigateAction{Direction: "end"}},
		{"space selects", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, types.ToggleSelectAction{RepoID: "R1"}},
		{"s stars", runes("s"), types.ToggleStarAction{RepoID: "R1"}},
		{"enter stars", tea.KeyMsg{Type: tea.KeyEnter}, types.ToggleStarAction{RepoID: "R1"}},
		{"o opens", runes("o"), types.OpenURLAction{RepoID: "R1"}},
		{"r refreshes", runes("r"), types.RefreshAction{}},
		{"a selects all", runes("a"), types.SelectAllAction{}},
		{"A clears", runes("A"), types.ClearSelectionAction{}},
		{"S sorts", runes("S"), types.CycleSortAction{}},
		{"? help", runes("?"), types.ToggleHelpAction{}},
		{"q quits", runes("q"), types.QuitAction{}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestRowKeysIgnoredWithoutRepository(t *testing.T) {
	h := New()

	for _, msg := range []tea.KeyMsg{runes("s"), runes("o"), tea.KeyMsg{Type: tea.KeyEnter}} {
		actions, _ := h.HandleKey(msg, fakeContext{})
		assert.Empty(t, actions, msg.String())
	}
}

func TestEscClearsSelectionBeforeFilter(t *testing.T) {
	h := New()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	actions, _ := h.HandleKey(esc, fakeContext{selected: 1, filter: "x"})
	assert.Equal(t, []types.Action{types.ClearSelectionAction{}}, actions)

	actions, _ = h.HandleKey(esc, fakeContext{filter: "x"})
	assert.Equal(t, []types.Action{types.ClearFilterAction{}}, actions)

	actions, _ = h.HandleKey(esc, fakeContext{})
	assert.Empty(t, actions)
}

func TestFilterModeTypingAndSubmit(t *testing.T) {
	h := New()
	ctx := fakeContext{total: 1}

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeFilter, h.CurrentMode())
	require.NotNil(t, h.TextInput())

	actions, _ := h.HandleKey(runes("g"), ctx)
	assert.Contains(t, actions, types.UpdateTextAction{Text: "g"})

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Contains(t, actions, types.UpdateTextAction{Text: "gq"}, "q types instead of quitting")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Contains(t, actions, types.SubmitTextAction{Text: "gq", Mode: types.ModeFilter})
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestFilterModeCancel(t *testing.T) {
	h := New()
	ctx := fakeContext{filter: "old"}

	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "old", h.TextInput().Value())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Contains(t, actions, types.CancelTextAction{Mode: types.ModeFilter})
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestKeyMapHelp(t *testing.T) {
	keys := types.DefaultKeyMap()

	assert.NotEmpty(t, keys.ShortHelp())
	assert.Len(t, keys.FullHelp(), 4)
}
