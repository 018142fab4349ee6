package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"orgstars/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Esc clears the selection first, then an active filter
	if msg.Type == tea.KeyEsc {
		switch {
		case ctx.HasSelection():
			return []types.Action{types.ClearSelectionAction{}}, true
		case ctx.FilterQuery() != "":
			return []types.Action{types.ClearFilterAction{}}, true
		default:
			return nil, false
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: msg.Type == tea.KeyCtrlC}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.ToggleSelect):
		if id := ctx.CurrentRepositoryID(); id != "" {
			return []types.Action{types.ToggleSelectAction{RepoID: id}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.SelectAll):
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.SelectAllAction{}}, true

	case key.Matches(msg, m.keys.ClearSelection):
		return []types.Action{types.ClearSelectionAction{}}, true

	case key.Matches(msg, m.keys.ToggleStar):
		if id := ctx.CurrentRepositoryID(); id != "" {
			return []types.Action{types.ToggleStarAction{RepoID: id}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.OpenURL):
		if id := ctx.CurrentRepositoryID(); id != "" {
			return []types.Action{types.OpenURLAction{RepoID: id}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Refresh):
		return []types.Action{types.RefreshAction{}}, true

	case key.Matches(msg, m.keys.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true

	case key.Matches(msg, m.keys.CycleSort):
		return []types.Action{types.CycleSortAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
