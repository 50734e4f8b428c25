// Package tui implements the interactive practice wizard: a linear sequence
// of screens (landing, product/role selection, flow selection, critique,
// summary) rendered one at a time over a single session.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/prodsense/gym/internal/catalog"
	"github.com/prodsense/gym/internal/coach"
	"github.com/prodsense/gym/internal/session"
)

// summaryFailure is displayed when the summary call fails. No retry is
// offered; the user can still navigate away.
const summaryFailure = "Sorry, an error occurred while generating your performance summary."

// Model is the bubbletea model for the practice wizard
type Model struct {
	catalog *catalog.Catalog
	coach   *coach.Coach

	session *session.Session
	run     *session.CritiqueRun

	styles Styles
	width  int
	height int

	// Selection screen state
	productCursor int
	rolePicking   bool
	roleCursor    int

	// Flow selection screen state
	flowCursor int

	// Critique screen widgets
	input    textarea.Model
	spin     spinner.Model
	bar      progress.Model
	feedback viewport.Model
	renderer *glamour.TermRenderer

	// Summary screen state
	summary        string
	summaryLoading bool
	summaryRunID   string

	// Control
	Quitting bool
}

// NewModel creates a wizard model over the given catalog and coach.
func NewModel(cat *catalog.Catalog, ch *coach.Coach) *Model {
	ti := textarea.New()
	ti.ShowLineNumbers = false
	ti.SetHeight(6)
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return &Model{
		catalog:  cat,
		coach:    ch,
		session:  session.NewSession(cat),
		styles:   DefaultStyles(),
		input:    ti,
		spin:     sp,
		bar:      progress.New(progress.WithDefaultGradient()),
		feedback: viewport.New(0, 0),
	}
}

// Session exposes the wizard session for tests.
func (m *Model) Session() *session.Session { return m.session }

// Run exposes the active critique run for tests.
func (m *Model) Run() *session.CritiqueRun { return m.run }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// feedbackMsg carries the result of a feedback model call. RunID and Index
// identify the call so results arriving after the user navigated away or
// advanced are dropped.
type feedbackMsg struct {
	RunID string
	Index int
	Text  string
	Err   error
}

// summaryMsg carries the result of the summary model call, tagged with the
// critique run it summarizes.
type summaryMsg struct {
	RunID string
	Text  string
	Err   error
}

// fetchFeedbackCmd requests coaching feedback for the just-submitted answer.
func (m *Model) fetchFeedbackCmd(answer string) tea.Cmd {
	runID := m.run.ID()
	index := m.run.Index()
	product := m.session.Product()
	flow := m.session.Flow()
	question := m.run.Question().Text
	c := m.coach

	return func() tea.Msg {
		text, err := c.Feedback(context.Background(), product, flow, question, answer)
		return feedbackMsg{RunID: runID, Index: index, Text: text, Err: err}
	}
}

// fetchSummaryCmd requests the final performance summary.
func (m *Model) fetchSummaryCmd(runID string, answers []string) tea.Cmd {
	product := m.session.Product()
	flow := m.session.Flow()
	role := m.session.Role()
	c := m.coach

	return func() tea.Msg {
		text, err := c.Summary(context.Background(), product, flow, role, answers)
		return summaryMsg{RunID: runID, Text: text, Err: err}
	}
}
