// Package coach turns user answers into coaching feedback and a final
// performance summary by prompting the language-model boundary.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/prodsense/gym/internal/catalog"
	"github.com/prodsense/gym/internal/gemini"
)

// Coach builds prompts and shapes model responses for the practice wizard.
type Coach struct {
	client  gemini.Client
	catalog *catalog.Catalog
}

// New creates a Coach backed by the given model client and catalog.
func New(client gemini.Client, cat *catalog.Catalog) *Coach {
	return &Coach{
		client:  client,
		catalog: cat,
	}
}

// Feedback asks the model to critique a single answer and returns the
// response formatted for display. The caller guarantees a non-empty answer.
// Boundary failures propagate to the caller.
func (c *Coach) Feedback(ctx context.Context, product, flow, question, answer string) (string, error) {
	prompt := buildFeedbackPrompt(product, flow, question, answer)
	text, err := c.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	return FormatFeedback(text), nil
}

// Summary asks the model to evaluate the whole critique run. Answers pair
// positionally with the question list for (product, flow, role); a length
// mismatch is a programming error. The model's text is returned unmodified.
func (c *Coach) Summary(ctx context.Context, product, flow string, role catalog.Role, answers []string) (string, error) {
	questions, err := c.catalog.Lookup(product, flow, role)
	if err != nil {
		return "", err
	}
	if len(answers) != len(questions) {
		return "", fmt.Errorf("coach: got %d answers for %d questions", len(answers), len(questions))
	}
	prompt := buildSummaryPrompt(product, flow, role, questions, answers)
	return c.client.GenerateContent(ctx, prompt)
}

func buildFeedbackPrompt(product, flow, question, answer string) string {
	return fmt.Sprintf(
		"You are an experienced Senior Product Manager coaching an aspiring PM. "+
			"The user is deconstructing the '%s' app's '%s' flow. "+
			"The question was: \"%s\". The user's answer: \"%s\". "+
			"Provide concise, constructive feedback. Start by acknowledging a good point. "+
			"Then, ask a follow-up question to push them deeper on trade-offs, business goals, or user segments. "+
			"Finally, offer a 'Pro Tip' linking to a PM concept. "+
			"Use this structure: %s [Acknowledge] %s [Question] %s [Concept]",
		product, flow, question, answer,
		MarkerObservation, MarkerDeepDive, MarkerProTip,
	)
}

func buildSummaryPrompt(product, flow string, role catalog.Role, questions []catalog.Question, answers []string) string {
	var qa strings.Builder
	for i, q := range questions {
		if i > 0 {
			qa.WriteString("\n\n")
		}
		fmt.Fprintf(&qa, "Q%d: %s\nA%d: %s", i+1, q.Text, i+1, answers[i])
	}

	return fmt.Sprintf(
		"You are a Senior PM evaluating a candidate's product sense based on their answers "+
			"during a product critique exercise. The candidate is targeting a '%s' position. "+
			"They analyzed the '%s' app's '%s' flow. Here are their answers:\n\n%s\n\n"+
			"Provide a summary of their performance. Start with an overall assessment "+
			"(e.g., \"Shows strong potential,\" \"Good foundational thinking\"). "+
			"Then, list one specific strength they demonstrated and one area for improvement "+
			"with a concrete suggestion. Keep it encouraging and constructive.",
		role, product, flow, qa.String(),
	)
}
