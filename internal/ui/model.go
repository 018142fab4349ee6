package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"orgstars/internal/config"
	"orgstars/internal/domain"
	"orgstars/internal/eventbus"
	"orgstars/internal/logic"
	"orgstars/internal/ui/handlers"
	"orgstars/internal/ui/input"
	inputtypes "orgstars/internal/ui/input/types"
	uilogic "orgstars/internal/ui/logic"
	"orgstars/internal/ui/services/selection"
	"orgstars/internal/ui/state"
	"orgstars/internal/ui/viewmodels"
	"orgstars/internal/ui/views"
)

// Rows taken by the title, status, help and padding around the list
const chromeHeight = 10

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// visible is the filtered and sorted view of the store
	visible []domain.Repository

	store        logic.RepositoryStore
	selection    *selection.Service
	stars        *uilogic.StarController
	navigator    *uilogic.Navigator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	openURL      URLOpener

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.RepositoryStore) *Model {
	appState := state.NewAppState(cfg.Organization)
	inputHandler := input.New()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		store:        store,
		selection:    selection.NewService(),
		stars:        uilogic.NewStarController(bus),
		navigator:    uilogic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowForkCount),
		inputHandler: inputHandler,
		helpRenderer: NewHelpRenderer(inputHandler.Keys()),
		openURL:      openInBrowser,
	}

	m.eventHandler = handlers.NewEventHandler(appState, store, m.selection, cfg.UISettings.PruneStaleSelection, m.refreshVisible)
	m.viewModel = viewmodels.NewViewModel(appState, m.selection, m.navigator, inputHandler.Keys())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetURLOpener replaces the function used to open repository links
func (m *Model) SetURLOpener(open URLOpener) {
	m.openURL = open
}

// Init requests the first repository query
func (m *Model) Init() tea.Cmd {
	return m.requestRefresh()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink for the filter input; everything else is ours
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	text := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		text = ti.View()
	}
	m.viewModel.SetInput(m.inputHandler.CurrentMode(), text)

	return m.renderer.Render(m.viewModel.BuildViewState(m.visible))
}

// refreshVisible rebuilds the filtered and sorted row list from the store
func (m *Model) refreshVisible() {
	repos := uilogic.FilterRepositories(m.store.All(), m.state.FilterQuery)
	m.visible = uilogic.SortRepositories(repos, m.state.SortMode)
	m.navigator.SetTotal(len(m.visible))
}

func (m *Model) updateViewportHeight() {
	height := m.height - chromeHeight
	if m.state.ShowFullHelp {
		height -= 4
	}
	m.navigator.SetViewportHeight(height)
}

// currentRepository returns the repository under the cursor
func (m *Model) currentRepository() (domain.Repository, bool) {
	if m.state.ShowPlaceholder() {
		return domain.Repository{}, false
	}
	idx := m.navigator.SelectedIndex()
	if idx < 0 || idx >= len(m.visible) {
		return domain.Repository{}, false
	}
	return m.visible[idx], true
}

func (m *Model) requestRefresh() tea.Cmd {
	return func() tea.Msg {
		m.bus.Publish(eventbus.RefreshRequestedEvent{})
		return nil
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) openRepositoryURL(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return urlOpenedMsg{url: url, err: open(url)}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(a.Direction)

	case inputtypes.ToggleSelectAction:
		m.selection.Toggle(a.RepoID)

	case inputtypes.SelectAllAction:
		if m.state.ShowPlaceholder() {
			return nil
		}
		ids := make([]string, 0, len(m.visible))
		for _, repo := range m.visible {
			ids = append(ids, repo.ID)
		}
		m.selection.SelectAll(ids)

	case inputtypes.ClearSelectionAction:
		m.selection.Clear()

	case inputtypes.ToggleStarAction:
		// Read the row from the store so the op follows the latest applied result
		repo, ok := m.store.Get(a.RepoID)
		if !ok {
			return nil
		}
		req := m.stars.Activate(repo)
		log.Debug().Str("repo", repo.Name).Str("op", req.Op.String()).Msg("Star requested")

	case inputtypes.OpenURLAction:
		repo, ok := m.store.Get(a.RepoID)
		if !ok || repo.URL == "" {
			return nil
		}
		return m.openRepositoryURL(repo.URL)

	case inputtypes.RefreshAction:
		return m.requestRefresh()

	case inputtypes.CycleSortAction:
		m.state.SortMode = m.state.SortMode.Next()
		m.refreshVisible()

	case inputtypes.UpdateTextAction:
		m.state.FilterQuery = a.Text
		m.refreshVisible()

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.state.FilterQuery = a.Text
			m.refreshVisible()
		}

	case inputtypes.CancelTextAction, inputtypes.ClearFilterAction:
		m.state.FilterQuery = ""
		m.refreshVisible()

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.ShowFullHelp = !m.state.ShowFullHelp
			m.updateViewportHeight()
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case DroppedEventMsg:
		m.eventHandler.HandleDropped(msg.Event)
		return m, nil

	case handlers.ClearStatusMsg:
		if !m.state.StatusIsError {
			m.state.ClearStatus()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Fall back to the expanded footer
			log.Warn().Err(msg.err).Msg("Help pager failed")
			m.state.ShowFullHelp = true
			m.updateViewportHeight()
		}
		return m, nil

	case urlOpenedMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Str("url", msg.url).Msg("Open URL failed")
			m.state.SetError(fmt.Sprintf("Could not open %s", msg.url))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, nil
}

// modelContext exposes model state to the input handler
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentIndex() int {
	return c.m.navigator.SelectedIndex()
}

func (c *modelContext) TotalItems() int {
	if c.m.state.ShowPlaceholder() {
		return 0
	}
	return len(c.m.visible)
}

func (c *modelContext) HasSelection() bool {
	return c.m.selection.Count() > 0
}

func (c *modelContext) SelectedCount() int {
	return c.m.selection.Count()
}

func (c *modelContext) CurrentRepositoryID() string {
	if repo, ok := c.m.currentRepository(); ok {
		return repo.ID
	}
	return ""
}

func (c *modelContext) FilterQuery() string {
	return c.m.state.FilterQuery
}
