package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the TUI
type Styles struct {
	// Header styling
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Icon     lipgloss.Style

	// List styling
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	ItemDesc lipgloss.Style

	// Critique styling
	Question    lipgloss.Style
	StepCounter lipgloss.Style
	Feedback    lipgloss.Style
	Loading     lipgloss.Style

	// Accents
	Accent lipgloss.Style
	Error  lipgloss.Style

	// Footer styling
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Icon:     lipgloss.NewStyle().MarginRight(1),

		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Question:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		StepCounter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Feedback:    lipgloss.NewStyle().MarginTop(1),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// Icons used in the TUI
const (
	IconStar    = "⭐"
	IconSpark   = "✨"
	IconPointer = "›"
)
