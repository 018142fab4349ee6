package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orgstars/internal/domain"
	"orgstars/internal/ui/logic"
)

// StarIcon follows the star count on every row
const StarIcon = "★"

// Row is the description of one rendered repository row
type Row struct {
	ID          string
	Name        string
	URL         string
	Selected    bool
	SelectLabel string
	StarLabel   logic.Label
	Forks       int
	Stars       int
}

// RepositoryRenderer handles rendering of repository rows
type RepositoryRenderer struct {
	styles        *Styles
	showForkCount bool
}

// NewRepositoryRenderer creates a new repository renderer
func NewRepositoryRenderer(styles *Styles, showForkCount bool) *RepositoryRenderer {
	return &RepositoryRenderer{
		styles:        styles,
		showForkCount: showForkCount,
	}
}

// RenderRow describes the row for repo. The star label is taken from the
// repository's current viewerHasStarred flag.
func (r *RepositoryRenderer) RenderRow(repo domain.Repository, isSelected bool) Row {
	selectLabel := "Select"
	if isSelected {
		selectLabel = "Unselect"
	}
	return Row{
		ID:          repo.ID,
		Name:        repo.Name,
		URL:         repo.URL,
		Selected:    isSelected,
		SelectLabel: selectLabel,
		StarLabel:   logic.StateOf(repo).Label(),
		Forks:       repo.ForkCount,
		Stars:       repo.StarCount,
	}
}

// RenderList describes one row per repository, in input order
func (r *RepositoryRenderer) RenderList(repos []domain.Repository, isSelected func(id string) bool) []Row {
	rows := make([]Row, 0, len(repos))
	for _, repo := range repos {
		rows = append(rows, r.RenderRow(repo, isSelected(repo.ID)))
	}
	return rows
}

// Render turns a row description into a styled line
func (r *RepositoryRenderer) Render(row Row, isCursor bool) string {
	bg := lipgloss.NewStyle()
	if row.Selected {
		bg = r.styles.RowSelected
	}

	cursor := "  "
	if isCursor {
		cursor = r.styles.Cursor.Render("› ")
	}

	starStyle := r.styles.StarButton
	if row.StarLabel == logic.LabelUnstar {
		starStyle = r.styles.UnstarButton
	}

	parts := []string{
		r.styles.SelectButton.Inherit(bg).Render(fmt.Sprintf("[%s]", row.SelectLabel)),
		Hyperlink(row.URL, r.styles.Link.Inherit(bg).Render(row.Name)),
		starStyle.Inherit(bg).Render(fmt.Sprintf("[%s]", row.StarLabel)),
	}
	if r.showForkCount {
		parts = append(parts, r.styles.Forks.Inherit(bg).Render(fmt.Sprintf("FORKED: %d", row.Forks)))
	}
	parts = append(parts, r.styles.Stars.Inherit(bg).Render(fmt.Sprintf("%d %s", row.Stars, StarIcon)))

	return cursor + strings.Join(parts, bg.Render("  "))
}

// Hyperlink wraps text in an OSC 8 terminal hyperlink to url.
// Terminals without OSC 8 support show the text only.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
