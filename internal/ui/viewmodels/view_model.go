package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"orgstars/internal/domain"
	"orgstars/internal/ui/input/types"
	"orgstars/internal/ui/logic"
	"orgstars/internal/ui/services/selection"
	"orgstars/internal/ui/state"
	"orgstars/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	selection *selection.Service
	navigator *logic.Navigator
	keys      types.KeyMap
	help      help.Model
	width     int
	height    int
	inputMode types.Mode
	inputText string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, sel *selection.Service, nav *logic.Navigator, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state:     appState,
		selection: sel,
		navigator: nav,
		keys:      keys,
		help:      help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInput records the active input mode and its text
func (vm *ViewModel) SetInput(mode types.Mode, text string) {
	vm.inputMode = mode
	vm.inputText = text
}

// BuildViewState creates a ViewState for rendering the visible repositories
func (vm *ViewModel) BuildViewState(visible []domain.Repository) views.ViewState {
	vm.help.ShowAll = vm.state.ShowFullHelp

	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Organization:   vm.state.Organization,
		Loading:        vm.state.ShowPlaceholder(),
		Repositories:   visible,
		IsSelected:     vm.selection.IsSelected,
		SelectedCount:  vm.selection.Count(),
		CursorIndex:    vm.navigator.SelectedIndex(),
		ViewportOffset: vm.navigator.ViewportOffset(),
		ViewportHeight: vm.navigator.ViewportHeight(),
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		FilterQuery:    vm.state.FilterQuery,
		SortLabel:      vm.state.SortMode.String(),
		HelpView:       vm.help.View(vm.keys),
	}
	if vm.inputMode != types.ModeNormal {
		vs.InputMode = vm.inputMode.String()
		vs.TextInput = vm.inputText
	}
	return vs
}
