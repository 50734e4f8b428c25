package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Landing(t *testing.T) {
	m := newTestModel()
	out := m.View()

	assert.Contains(t, out, "Welcome to the Product Sense Gym")
	assert.Contains(t, out, "How It Works")
	assert.Contains(t, out, "start practicing")
}

func TestView_Selection(t *testing.T) {
	m := newTestModel()
	press(m, key(tea.KeyEnter))
	out := m.View()

	assert.Contains(t, out, "Let's Get Started")
	assert.Contains(t, out, "Swiggy")
	assert.Contains(t, out, "Spotify")
	assert.NotContains(t, out, "Which role are you targeting?")

	press(m, key(tea.KeyEnter))
	out = m.View()
	assert.Contains(t, out, "Which role are you targeting?")
	assert.Contains(t, out, "Entry Level PM")
	assert.Contains(t, out, "Senior PM")
}

func TestView_FlowSelection(t *testing.T) {
	m := newTestModel()
	press(m, key(tea.KeyEnter))
	press(m, key(tea.KeyEnter))
	press(m, key(tea.KeyEnter))
	out := m.View()

	assert.Contains(t, out, "Deconstruct Swiggy")
	assert.Contains(t, out, "Entry Level PM")
	assert.Contains(t, out, "Searching for a Restaurant")
}

func TestView_CritiqueStates(t *testing.T) {
	m := newTestModel()
	startCritique(t, m)

	out := m.View()
	assert.Contains(t, out, "Step 1 of 4")
	assert.Contains(t, out, m.run.Question().Text)
	assert.Contains(t, out, "submit for feedback")

	submitAnswer(m, "there is a search bar")
	out = m.View()
	assert.Contains(t, out, "Getting feedback...")

	press(m, feedbackMsg{RunID: m.run.ID(), Index: 0, Text: "nicely observed"})
	out = m.View()
	assert.Contains(t, out, "AI Feedback")
	assert.Contains(t, out, "next question")
	assert.NotContains(t, out, "finish & get summary")
}

func TestView_LastQuestionFooter(t *testing.T) {
	m := newTestModel()
	startCritique(t, m)

	for i := 0; i < m.run.Len()-1; i++ {
		submitAnswer(m, "answer")
		press(m, feedbackMsg{RunID: m.run.ID(), Index: i, Text: "good"})
		press(m, key(tea.KeyEnter))
	}
	submitAnswer(m, "final answer")
	press(m, feedbackMsg{RunID: m.run.ID(), Index: m.run.Len() - 1, Text: "good"})

	out := m.View()
	assert.Contains(t, out, "finish & get summary")
}

func TestView_Summary(t *testing.T) {
	m := newTestModel()
	startCritique(t, m)
	completeRun(t, m)

	out := m.View()
	assert.Contains(t, out, "Flow Complete! Here's Your Summary")
	assert.Contains(t, out, "Generating your summary...")

	press(m, summaryMsg{RunID: m.summaryRunID, Text: "You show strong instincts."})
	out = m.View()
	assert.Contains(t, out, "You show strong instincts.")
	assert.NotContains(t, out, "Generating your summary...")
	assert.Contains(t, out, "practice another flow")
	assert.Contains(t, out, "start over")
}

func TestView_QuittingIsBlank(t *testing.T) {
	m := newTestModel()
	press(m, key(tea.KeyCtrlC))
	require.True(t, m.Quitting)
	assert.Empty(t, m.View())
}
