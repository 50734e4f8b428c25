package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/prodsense/gym/internal/catalog"
	"github.com/prodsense/gym/internal/session"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.awaitingModel() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case feedbackMsg:
		return m.applyFeedback(msg)

	case summaryMsg:
		return m.applySummary(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.session.Screen() {
		case session.ScreenLanding:
			return m.updateLanding(msg)
		case session.ScreenSelection:
			return m.updateSelection(msg)
		case session.ScreenFlowSelection:
			return m.updateFlowSelection(msg)
		case session.ScreenCritique:
			return m.updateCritique(msg)
		case session.ScreenSummary:
			return m.updateSummary(msg)
		}
	}

	return m, nil
}

// awaitingModel reports whether a model call is in flight.
func (m *Model) awaitingModel() bool {
	if m.summaryLoading {
		return true
	}
	return m.run != nil && m.run.State() == session.StepAwaitingFeedback
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	m.input.SetWidth(contentWidth)

	barWidth := contentWidth
	if barWidth > 50 {
		barWidth = 50
	}
	m.bar.Width = barWidth

	feedbackHeight := height - 16
	if feedbackHeight < 5 {
		feedbackHeight = 5
	}
	m.feedback.Width = contentWidth
	m.feedback.Height = feedbackHeight

	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(contentWidth),
	)
	if m.run != nil && m.run.State() == session.StepFeedbackShown {
		m.setFeedbackContent(m.run.Feedback())
	}
}

func (m *Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "enter", " ":
		if err := m.session.Start(); err != nil {
			slog.Error("failed to start session", "error", err)
		}
	}
	return m, nil
}

func (m *Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.catalog.Products()
	roles := m.availableRoles()

	switch msg.String() {
	case "esc":
		if m.rolePicking {
			m.rolePicking = false
			return m, nil
		}
		if err := m.session.Back(); err != nil {
			slog.Error("failed to go back", "error", err)
		}
		return m, nil

	case "up", "k":
		if m.rolePicking {
			if m.roleCursor > 0 {
				m.roleCursor--
			}
		} else if m.productCursor > 0 {
			m.productCursor--
		}

	case "down", "j":
		if m.rolePicking {
			if m.roleCursor < len(roles)-1 {
				m.roleCursor++
			}
		} else if m.productCursor < len(products)-1 {
			m.productCursor++
		}

	case "enter":
		if !m.rolePicking {
			m.rolePicking = true
			m.roleCursor = 0
			return m, nil
		}
		product := products[m.productCursor].Name
		role := roles[m.roleCursor]
		if err := m.session.SelectProductAndRole(product, role); err != nil {
			slog.Error("product/role selection rejected", "error", err)
			return m, nil
		}
		m.flowCursor = 0
	}
	return m, nil
}

func (m *Model) updateFlowSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flows, err := m.catalog.Flows(m.session.Product())
	if err != nil {
		slog.Error("flow listing failed", "error", err)
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if err := m.session.Back(); err != nil {
			slog.Error("failed to go back", "error", err)
			return m, nil
		}
		m.rolePicking = false
		m.productCursor = 0
		m.roleCursor = 0

	case "up", "k":
		if m.flowCursor > 0 {
			m.flowCursor--
		}

	case "down", "j":
		if m.flowCursor < len(flows)-1 {
			m.flowCursor++
		}

	case "enter":
		flow := flows[m.flowCursor]
		if err := m.session.SelectFlow(flow); err != nil {
			slog.Error("flow selection rejected", "error", err)
			return m, nil
		}
		return m, m.enterCritique()
	}
	return m, nil
}

// enterCritique creates a fresh run for the selected flow and prepares the
// answer editor for the first question.
func (m *Model) enterCritique() tea.Cmd {
	questions, err := m.session.Questions()
	if err != nil {
		slog.Error("question lookup failed", "error", err)
		return nil
	}
	run, err := session.NewCritiqueRun(questions)
	if err != nil {
		slog.Error("failed to create critique run", "error", err)
		return nil
	}
	m.run = run
	m.prepareAnswerInput()
	return textarea.Blink
}

func (m *Model) prepareAnswerInput() {
	m.input.Reset()
	m.input.Placeholder = m.run.Question().Placeholder
	m.input.Focus()
	m.feedback.SetContent("")
}

func (m *Model) updateCritique(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.run.State() {
	case session.StepAnswering:
		switch msg.String() {
		case "esc":
			return m.leaveCritique()
		case "ctrl+s":
			text := m.input.Value()
			if err := m.run.SubmitAnswer(text); err != nil {
				// Blank answers are rejected silently; the control is inert.
				return m, nil
			}
			m.input.Blur()
			return m, tea.Batch(m.spin.Tick, m.fetchFeedbackCmd(text))
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case session.StepAwaitingFeedback:
		// Submit stays inert while the call is in flight. Navigating away is
		// allowed; the in-flight result is discarded by the relevance check.
		if msg.String() == "esc" {
			return m.leaveCritique()
		}
		return m, nil

	case session.StepFeedbackShown:
		switch msg.String() {
		case "esc":
			return m.leaveCritique()
		case "enter":
			return m.advance()
		}
		var cmd tea.Cmd
		m.feedback, cmd = m.feedback.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) leaveCritique() (tea.Model, tea.Cmd) {
	if err := m.session.Back(); err != nil {
		slog.Error("failed to leave critique", "error", err)
		return m, nil
	}
	m.run = nil
	m.flowCursor = 0
	return m, nil
}

func (m *Model) advance() (tea.Model, tea.Cmd) {
	done, err := m.run.Advance()
	if err != nil {
		return m, nil
	}
	if !done {
		m.prepareAnswerInput()
		return m, textarea.Blink
	}

	answers := m.run.Answers()
	runID := m.run.ID()
	if err := m.session.CompleteCritique(answers); err != nil {
		slog.Error("critique completion rejected", "error", err)
		return m, nil
	}
	summaryCmd := m.fetchSummaryCmd(runID, answers)
	m.run = nil
	m.summary = ""
	m.summaryLoading = true
	m.summaryRunID = runID
	return m, tea.Batch(m.spin.Tick, summaryCmd)
}

func (m *Model) applyFeedback(msg feedbackMsg) (tea.Model, tea.Cmd) {
	if m.run == nil {
		return m, nil
	}
	var applied bool
	if msg.Err != nil {
		slog.Error("feedback call failed", "error", msg.Err)
		applied = m.run.ResolveFailure(msg.RunID, msg.Index)
	} else {
		applied = m.run.ResolveFeedback(msg.RunID, msg.Index, msg.Text)
	}
	if applied {
		m.setFeedbackContent(m.run.Feedback())
	}
	return m, nil
}

func (m *Model) applySummary(msg summaryMsg) (tea.Model, tea.Cmd) {
	if m.session.Screen() != session.ScreenSummary || msg.RunID != m.summaryRunID {
		return m, nil
	}
	m.summaryLoading = false
	if msg.Err != nil {
		slog.Error("summary call failed", "error", msg.Err)
		m.summary = summaryFailure
	} else {
		m.summary = msg.Text
	}
	return m, nil
}

func (m *Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "f":
		if err := m.session.BackToFlows(); err != nil {
			slog.Error("back to flows rejected", "error", err)
			return m, nil
		}
		m.clearSummary()
		m.flowCursor = 0
	case "r":
		if err := m.session.Reset(); err != nil {
			slog.Error("reset rejected", "error", err)
			return m, nil
		}
		m.clearSummary()
		m.rolePicking = false
		m.productCursor = 0
		m.roleCursor = 0
	}
	return m, nil
}

func (m *Model) clearSummary() {
	m.summary = ""
	m.summaryLoading = false
	m.summaryRunID = ""
}

// setFeedbackContent renders markdown feedback into the viewport, falling
// back to the raw text when no renderer is available yet.
func (m *Model) setFeedbackContent(text string) {
	rendered := text
	if m.renderer != nil {
		if out, err := m.renderer.Render(text); err == nil {
			rendered = strings.TrimRight(out, "\n")
		}
	}
	m.feedback.SetContent(rendered)
	m.feedback.GotoTop()
}

// availableRoles returns the roles offered on the selection screen.
func (m *Model) availableRoles() []catalog.Role {
	return catalog.Roles()
}
