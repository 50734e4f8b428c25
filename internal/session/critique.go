package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prodsense/gym/internal/catalog"
)

// StepState tracks where a critique run is within the current question.
type StepState string

const (
	// StepAnswering accepts answer edits and a single submit
	StepAnswering StepState = "answering"

	// StepAwaitingFeedback has a model call in flight; submit is inert
	StepAwaitingFeedback StepState = "awaiting_feedback"

	// StepFeedbackShown displays feedback; the only forward action is Advance
	StepFeedbackShown StepState = "feedback_shown"
)

var (
	// ErrEmptyAnswer indicates a blank or whitespace-only submission
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrNotAnswering indicates a submit outside the answering state
	ErrNotAnswering = errors.New("not accepting an answer in the current state")

	// ErrNoFeedback indicates Advance was called before feedback was shown
	ErrNoFeedback = errors.New("cannot advance before feedback is shown")
)

// FailureFeedback is displayed in place of coaching when the model call
// fails. The user can still advance: the required output of a step is the
// answer, not the commentary.
const FailureFeedback = "Sorry, an error occurred while getting feedback."

// CritiqueRun drives one pass through the questions of a chosen flow, one
// question at a time. It is created fresh each time the critique screen is
// entered and discarded when it is left.
type CritiqueRun struct {
	id        string
	questions []catalog.Question

	index    int
	state    StepState
	draft    string
	answers  []string
	feedback string
}

// NewCritiqueRun creates a run over the given non-empty question list.
func NewCritiqueRun(questions []catalog.Question) (*CritiqueRun, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("session: critique run requires at least one question")
	}
	return &CritiqueRun{
		id:        uuid.NewString(),
		questions: questions,
		state:     StepAnswering,
	}, nil
}

// ID uniquely identifies this run; model-call results are tagged with it so
// results that arrive after the run ended can be discarded.
func (r *CritiqueRun) ID() string { return r.id }

// Index returns the 0-based index of the current question.
func (r *CritiqueRun) Index() int { return r.index }

// Len returns the number of questions in the run.
func (r *CritiqueRun) Len() int { return len(r.questions) }

// Question returns the current question.
func (r *CritiqueRun) Question() catalog.Question { return r.questions[r.index] }

// State returns the current step state.
func (r *CritiqueRun) State() StepState { return r.state }

// Feedback returns the feedback for the current question, or "" before it
// arrives.
func (r *CritiqueRun) Feedback() string { return r.feedback }

// Answers returns the answers recorded so far, in asked order.
func (r *CritiqueRun) Answers() []string { return r.answers }

// SubmitAnswer records the draft answer and moves the step into the
// awaiting-feedback state. Blank submissions and submissions outside the
// answering state are rejected without changing state; re-submission for a
// question that already has feedback is not permitted.
func (r *CritiqueRun) SubmitAnswer(text string) error {
	if r.state != StepAnswering {
		return ErrNotAnswering
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyAnswer
	}
	r.draft = text
	r.state = StepAwaitingFeedback
	return nil
}

// ResolveFeedback applies a successful model result to the run. The result
// is dropped (returns false) unless runID and index still identify the
// in-flight call, which guards against updates arriving after the user
// navigated away or advanced.
func (r *CritiqueRun) ResolveFeedback(runID string, index int, feedback string) bool {
	if !r.resultRelevant(runID, index) {
		return false
	}
	r.answers = append(r.answers, r.draft)
	r.feedback = feedback
	r.state = StepFeedbackShown
	return true
}

// ResolveFailure applies a failed model call: the answer still counts and a
// generic failure message stands in for the feedback, so the user can keep
// progressing.
func (r *CritiqueRun) ResolveFailure(runID string, index int) bool {
	return r.ResolveFeedback(runID, index, FailureFeedback)
}

func (r *CritiqueRun) resultRelevant(runID string, index int) bool {
	return runID == r.id && index == r.index && r.state == StepAwaitingFeedback
}

// Advance moves to the next question, or reports done on the last one.
// Calling it before feedback exists is a no-op error; the caller reads the
// final answers via Answers() when done.
func (r *CritiqueRun) Advance() (done bool, err error) {
	if r.state != StepFeedbackShown {
		return false, ErrNoFeedback
	}
	if r.index == len(r.questions)-1 {
		return true, nil
	}
	r.index++
	r.draft = ""
	r.feedback = ""
	r.state = StepAnswering
	return false, nil
}
