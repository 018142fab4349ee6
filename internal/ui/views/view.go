package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orgstars/internal/domain"
)

// LoadingPlaceholder is the whole body while no organization payload is available
const LoadingPlaceholder = "Loading ..."

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Organization   string
	Loading        bool // query in flight or no organization payload yet
	Repositories   []domain.Repository
	IsSelected     func(id string) bool
	SelectedCount  int
	CursorIndex    int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	StatusIsError  bool
	FilterQuery    string
	InputMode      string
	TextInput      string
	SortLabel      string
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	repoRender *RepositoryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showForkCount bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		repoRender: NewRepositoryRenderer(styles, showForkCount),
	}
}

// Rows describes the rows of the current collection
func (r *Renderer) Rows(state ViewState) []Row {
	isSelected := state.IsSelected
	if isSelected == nil {
		isSelected = func(string) bool { return false }
	}
	return r.repoRender.RenderList(state.Repositories, isSelected)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	if state.InputMode != "" {
		content.WriteString(r.styles.Filter.Render(state.InputMode + ": " + state.TextInput))
		content.WriteString("\n\n")
	}

	// Loading and absent payload collapse into one placeholder
	switch {
	case state.Loading:
		content.WriteString(LoadingPlaceholder)
	case len(state.Repositories) == 0 && state.FilterQuery != "":
		content.WriteString(r.styles.Dim.Render("No repositories match the filter."))
	case len(state.Repositories) == 0:
		content.WriteString(r.styles.Dim.Render("No repositories found."))
	default:
		content.WriteString(r.renderRepositoryList(state))
	}

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n\n")
		content.WriteString(status)
	}

	if state.HelpView != "" {
		// Push help to the bottom of the screen
		currentLines := strings.Count(content.String(), "\n") + 1
		helpLines := strings.Count(state.HelpView, "\n") + 1
		availableLines := state.Height - 2 // Main padding
		if padding := availableLines - currentLines - helpLines; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the title with right-aligned sort and filter indicators
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("orgstars")
	if state.Organization != "" {
		logo = r.styles.Title.Render("orgstars · " + state.Organization)
	}

	var indicators []string
	if state.SortLabel != "" {
		indicators = append(indicators, r.styles.Dim.Render("sort: "+state.SortLabel))
	}
	if state.FilterQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderRepositoryList renders the rows inside the viewport
func (r *Renderer) renderRepositoryList(state ViewState) string {
	rows := r.Rows(state)

	start := state.ViewportOffset
	if start < 0 || start >= len(rows) {
		start = 0
	}
	end := len(rows)
	if state.ViewportHeight > 0 && start+state.ViewportHeight < end {
		end = start + state.ViewportHeight
	}

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.repoRender.Render(rows[i], i == state.CursorIndex))
	}
	if end < len(rows) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(rows)-end)))
	}
	return strings.Join(lines, "\n")
}

// renderStatus renders the selection count followed by the status message
func (r *Renderer) renderStatus(state ViewState) string {
	var parts []string
	if !state.Loading && state.SelectedCount > 0 {
		parts = append(parts, r.styles.Status.Render(fmt.Sprintf("%d selected", state.SelectedCount)))
	}
	if state.StatusMessage != "" {
		if state.StatusIsError {
			parts = append(parts, r.styles.StatusError.Render(state.StatusMessage))
		} else {
			parts = append(parts, r.styles.Status.Render(state.StatusMessage))
		}
	}
	return strings.Join(parts, r.styles.Dim.Render(" · "))
}
