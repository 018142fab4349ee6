package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Filter       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Cursor       lipgloss.Style
	RowSelected  lipgloss.Style
	SelectButton lipgloss.Style
	StarButton   lipgloss.Style
	UnstarButton lipgloss.Style
	Link         lipgloss.Style
	Forks        lipgloss.Style
	Stars        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		RowSelected:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SelectButton: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		StarButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		UnstarButton: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Link:         lipgloss.NewStyle().Underline(true),
		Forks:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Stars:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}
