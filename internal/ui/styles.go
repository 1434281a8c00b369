package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Count     lipgloss.Style
	Cursor    lipgloss.Style
	Group     lipgloss.Style
	Item      lipgloss.Style
	Match     lipgloss.Style
	Dim       lipgloss.Style
	Search    lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Scroll    lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Count:     lipgloss.NewStyle().Faint(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Group:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Item:      lipgloss.NewStyle(),
		Match:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Search:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
