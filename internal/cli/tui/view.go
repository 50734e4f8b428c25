package tui

import (
	"fmt"
	"strings"

	"github.com/prodsense/gym/internal/session"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Quitting {
		return ""
	}

	var body string
	switch m.session.Screen() {
	case session.ScreenLanding:
		body = m.viewLanding()
	case session.ScreenSelection:
		body = m.viewSelection()
	case session.ScreenFlowSelection:
		body = m.viewFlowSelection()
	case session.ScreenCritique:
		body = m.viewCritique()
	case session.ScreenSummary:
		body = m.viewSummary()
	}

	return "\n" + body
}

func (m *Model) viewLanding() string {
	var b strings.Builder

	b.WriteString("  " + m.styles.Title.Render("Welcome to the Product Sense Gym") + "\n\n")
	b.WriteString("  " + m.styles.Subtitle.Render("Deconstruct real-world apps, answer targeted questions, and get") + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render("AI-powered feedback to sharpen your product thinking.") + "\n\n")

	b.WriteString("  " + m.styles.Accent.Render("How It Works") + "\n")
	steps := []string{
		"1. Select Your Focus — choose a product and the PM role you're targeting",
		"2. Deconstruct a Flow — analyze a user journey with role-based questions",
		"3. Get AI Feedback — receive instant, expert feedback on each answer",
		"4. Review Your Summary — identify your strengths and weaknesses",
	}
	for _, step := range steps {
		b.WriteString("    " + m.styles.Item.Render(step) + "\n")
	}

	b.WriteString(m.footer("enter", "start practicing", "q", "quit"))
	return b.String()
}

func (m *Model) viewSelection() string {
	var b strings.Builder

	b.WriteString("  " + m.styles.Title.Render("Let's Get Started") + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render("First, choose a product to analyze.") + "\n\n")

	for i, p := range m.catalog.Products() {
		cursor := "  "
		style := m.styles.Item
		if !m.rolePicking && i == m.productCursor {
			cursor = m.styles.Cursor.Render(IconPointer) + " "
			style = m.styles.Selected
		} else if m.rolePicking && i == m.productCursor {
			style = m.styles.Selected
		}
		line := fmt.Sprintf("%s %s  %s", p.Icon, style.Render(p.Name), m.styles.ItemDesc.Render(p.Description))
		b.WriteString("  " + cursor + line + "\n")
	}

	if m.rolePicking {
		b.WriteString("\n  " + m.styles.Accent.Render("Which role are you targeting?") + "\n")
		b.WriteString("  " + m.styles.Subtitle.Render("This tailors the questions to the right level of strategic depth.") + "\n\n")
		for i, r := range m.availableRoles() {
			cursor := "  "
			style := m.styles.Item
			if i == m.roleCursor {
				cursor = m.styles.Cursor.Render(IconPointer) + " "
				style = m.styles.Selected
			}
			b.WriteString("  " + cursor + style.Render(r.String()) + "\n")
		}
		b.WriteString(m.footer("enter", "confirm role", "esc", "back to products"))
	} else {
		b.WriteString(m.footer("enter", "choose product", "esc", "back to home"))
	}
	return b.String()
}

func (m *Model) viewFlowSelection() string {
	var b strings.Builder

	product, _ := m.catalog.Product(m.session.Product())

	b.WriteString("  " + product.Icon + " " + m.styles.Title.Render("Deconstruct "+product.Name) + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render("You're practicing as a ") +
		m.styles.Accent.Render(m.session.Role().String()) +
		m.styles.Subtitle.Render(". Select a user flow.") + "\n\n")

	for i, name := range product.FlowNames() {
		cursor := "  "
		style := m.styles.Item
		if i == m.flowCursor {
			cursor = m.styles.Cursor.Render(IconPointer) + " "
			style = m.styles.Selected
		}
		b.WriteString("  " + cursor + style.Render(name) + "\n")
	}

	b.WriteString(m.footer("enter", "start critique", "esc", "back to product & role"))
	return b.String()
}

func (m *Model) viewCritique() string {
	var b strings.Builder

	product, _ := m.catalog.Product(m.session.Product())

	b.WriteString("  " + product.Icon + " " + m.styles.Title.Render(m.session.Flow()) + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render("Role: ") + m.styles.Accent.Render(m.session.Role().String()) + "\n\n")

	step := m.run.Index() + 1
	total := m.run.Len()
	b.WriteString("  " + m.bar.ViewAs(float64(step)/float64(total)) + "\n")
	b.WriteString("  " + m.styles.StepCounter.Render(fmt.Sprintf("Step %d of %d", step, total)) + "\n\n")

	b.WriteString("  " + m.styles.Question.Render(m.run.Question().Text) + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render("Hold your phone, use the real app, and type your observations here.") + "\n\n")

	switch m.run.State() {
	case session.StepAnswering:
		b.WriteString(m.input.View() + "\n")
		b.WriteString(m.footer("ctrl+s", "submit for feedback", "esc", "back to flows"))

	case session.StepAwaitingFeedback:
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString("  " + m.spin.View() + m.styles.Loading.Render("Getting feedback...") + "\n")

	case session.StepFeedbackShown:
		b.WriteString("  " + IconSpark + " " + m.styles.Accent.Render("AI Feedback") + "\n")
		b.WriteString(m.styles.Feedback.Render(m.feedback.View()) + "\n")
		next := "next question"
		if m.run.Index() == m.run.Len()-1 {
			next = "finish & get summary"
		}
		b.WriteString(m.footer("enter", next, "↑/↓", "scroll"))
	}
	return b.String()
}

func (m *Model) viewSummary() string {
	var b strings.Builder

	b.WriteString("  " + IconStar + " " + m.styles.Title.Render("Flow Complete! Here's Your Summary") + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render(fmt.Sprintf("An AI-powered evaluation of your product sense for the %s role.", m.session.Role())) + "\n\n")

	if m.summaryLoading {
		b.WriteString("  " + m.spin.View() + m.styles.Loading.Render("Generating your summary...") + "\n")
	} else {
		for _, line := range strings.Split(m.summary, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString(m.footer("f", "practice another flow", "r", "start over"))
	return b.String()
}

// footer renders a two-binding key hint line.
func (m *Model) footer(key1, desc1, key2, desc2 string) string {
	return m.styles.Footer.Render(fmt.Sprintf("  %s %s  %s %s",
		m.styles.FooterKey.Render(key1), desc1,
		m.styles.FooterKey.Render(key2), desc2,
	))
}
