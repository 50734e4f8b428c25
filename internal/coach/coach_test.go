package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prodsense/gym/internal/catalog"
	"github.com/prodsense/gym/internal/gemini"
)

func TestFeedback_PromptContents(t *testing.T) {
	var gotPrompt string
	client := &gemini.MockClient{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "Good Observation! Nice.", nil
		},
	}
	c := New(client, catalog.Default())

	_, err := c.Feedback(context.Background(), "Swiggy", "Searching for a Restaurant",
		"What do you see first?", "A big search bar.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"'Swiggy'",
		"'Searching for a Restaurant'",
		`"What do you see first?"`,
		`"A big search bar."`,
		MarkerObservation,
		MarkerDeepDive,
		MarkerProTip,
	} {
		if !strings.Contains(gotPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFeedback_FormatsResponse(t *testing.T) {
	client := &gemini.MockClient{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "Good Observation! Solid. Pro Tip 💡 Read about jobs-to-be-done.", nil
		},
	}
	c := New(client, catalog.Default())

	got, err := c.Feedback(context.Background(), "Swiggy", "Searching for a Restaurant", "q", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "✅ **Good Observation!**") {
		t.Errorf("expected formatted heading, got %q", got)
	}
}

func TestFeedback_PropagatesError(t *testing.T) {
	boundaryErr := errors.New("boom")
	client := &gemini.MockClient{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", boundaryErr
		},
	}
	c := New(client, catalog.Default())

	_, err := c.Feedback(context.Background(), "Swiggy", "Searching for a Restaurant", "q", "a")
	if !errors.Is(err, boundaryErr) {
		t.Fatalf("expected boundary error to propagate, got %v", err)
	}
}

func TestSummary_Verbatim(t *testing.T) {
	raw := "Shows strong potential.\n\nStrength: hierarchy analysis.\nImprove: metrics thinking."
	client := &gemini.MockClient{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return raw, nil
		},
	}
	c := New(client, catalog.Default())

	answers := []string{"a1", "a2", "a3", "a4"}
	got, err := c.Summary(context.Background(), "Swiggy", "Searching for a Restaurant",
		catalog.RoleEntryLevel, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != raw {
		t.Errorf("summary must be returned unmodified:\nwant %q\ngot  %q", raw, got)
	}
}

func TestSummary_PromptPairsQuestionsWithAnswers(t *testing.T) {
	var gotPrompt string
	client := &gemini.MockClient{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "ok", nil
		},
	}
	cat := catalog.Default()
	c := New(client, cat)

	answers := []string{"first answer", "second answer", "third answer"}
	_, err := c.Summary(context.Background(), "Spotify", "Discovering New Music",
		catalog.RoleMidLevel, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	questions, _ := cat.Lookup("Spotify", "Discovering New Music", catalog.RoleMidLevel)
	lastIdx := -1
	for i := range questions {
		qIdx := strings.Index(gotPrompt, questions[i].Text)
		aIdx := strings.Index(gotPrompt, answers[i])
		if qIdx < 0 || aIdx < 0 {
			t.Fatalf("prompt missing Q/A pair %d", i+1)
		}
		if qIdx <= lastIdx || aIdx <= qIdx {
			t.Errorf("Q/A pair %d out of order", i+1)
		}
		lastIdx = aIdx
	}
	if !strings.Contains(gotPrompt, "'Mid-Level PM'") {
		t.Error("prompt missing target role")
	}
}

func TestSummary_AnswerCountMismatch(t *testing.T) {
	client := &gemini.MockClient{}
	c := New(client, catalog.Default())

	_, err := c.Summary(context.Background(), "Swiggy", "Searching for a Restaurant",
		catalog.RoleEntryLevel, []string{"only one"})
	if err == nil {
		t.Fatal("expected error for answer count mismatch")
	}
}

func TestSummary_PropagatesError(t *testing.T) {
	boundaryErr := errors.New("boom")
	client := &gemini.MockClient{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", boundaryErr
		},
	}
	c := New(client, catalog.Default())

	_, err := c.Summary(context.Background(), "Spotify", "Discovering New Music",
		catalog.RoleSenior, []string{"a", "b", "c"})
	if !errors.Is(err, boundaryErr) {
		t.Fatalf("expected boundary error to propagate, got %v", err)
	}
}
