// Package session implements the wizard state machine that drives one user's
// run through the practice tool.
package session

import (
	"fmt"

	"github.com/prodsense/gym/internal/catalog"
)

// Screen identifies which wizard screen is active.
type Screen string

const (
	ScreenLanding       Screen = "landing"
	ScreenSelection     Screen = "selection"
	ScreenFlowSelection Screen = "flow_selection"
	ScreenCritique      Screen = "critique"
	ScreenSummary       Screen = "summary"
)

// ValidTransitions defines allowed screen transitions.
var ValidTransitions = map[Screen][]Screen{
	ScreenLanding:       {ScreenSelection},
	ScreenSelection:     {ScreenFlowSelection, ScreenLanding},
	ScreenFlowSelection: {ScreenCritique, ScreenSelection},
	ScreenCritique:      {ScreenSummary, ScreenFlowSelection},
	ScreenSummary:       {ScreenSelection, ScreenFlowSelection},
}

// CanTransition checks if a screen transition is valid.
func CanTransition(from, to Screen) bool {
	for _, valid := range ValidTransitions[from] {
		if valid == to {
			return true
		}
	}
	return false
}

// TransitionError reports an attempted invalid screen transition.
type TransitionError struct {
	From Screen
	To   Screen
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("session: invalid transition %s -> %s", e.From, e.To)
}

// Session holds the mutable state of one run through the wizard. Screens
// never mutate it directly: all changes go through the operations below, and
// fields for screens ahead of the current one are always empty.
type Session struct {
	catalog *catalog.Catalog

	screen  Screen
	product string
	role    catalog.Role
	flow    string
	answers []string
}

// NewSession creates a Session on the landing screen with all selections empty.
func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		catalog: cat,
		screen:  ScreenLanding,
	}
}

// Screen returns the active screen.
func (s *Session) Screen() Screen { return s.screen }

// Product returns the selected product key, or "" before selection.
func (s *Session) Product() string { return s.product }

// Role returns the selected role, or "" before selection.
func (s *Session) Role() catalog.Role { return s.role }

// Flow returns the selected flow key, or "" before selection.
func (s *Session) Flow() string { return s.flow }

// Answers returns the answers recorded at critique completion.
func (s *Session) Answers() []string { return s.answers }

// Questions returns the question list for the current selections.
func (s *Session) Questions() ([]catalog.Question, error) {
	return s.catalog.Lookup(s.product, s.flow, s.role)
}

func (s *Session) transition(to Screen) error {
	if !CanTransition(s.screen, to) {
		return &TransitionError{From: s.screen, To: to}
	}
	s.screen = to
	return nil
}

// Start moves from the landing screen to product/role selection.
func (s *Session) Start() error {
	return s.transition(ScreenSelection)
}

// SelectProductAndRole stores the choices and advances to flow selection.
// Both must be present and valid against the catalog.
func (s *Session) SelectProductAndRole(product string, role catalog.Role) error {
	if product == "" {
		return fmt.Errorf("session: product must be selected")
	}
	if _, err := catalog.ParseRole(string(role)); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if _, ok := s.catalog.Product(product); !ok {
		return &catalog.LookupError{Product: product}
	}
	if err := s.transition(ScreenFlowSelection); err != nil {
		return err
	}
	s.product = product
	s.role = role
	return nil
}

// SelectFlow stores the flow and advances to the critique screen. The flow
// must resolve to questions for the already-selected product and role; the
// caller then creates a fresh CritiqueRun from Questions().
func (s *Session) SelectFlow(flow string) error {
	if _, err := s.catalog.Lookup(s.product, flow, s.role); err != nil {
		return err
	}
	if err := s.transition(ScreenCritique); err != nil {
		return err
	}
	s.flow = flow
	return nil
}

// CompleteCritique stores the collected answers and advances to the summary
// screen. There must be exactly one answer per question, in asked order.
func (s *Session) CompleteCritique(answers []string) error {
	questions, err := s.Questions()
	if err != nil {
		return err
	}
	if len(answers) != len(questions) {
		return fmt.Errorf("session: got %d answers for %d questions", len(answers), len(questions))
	}
	if err := s.transition(ScreenSummary); err != nil {
		return err
	}
	s.answers = answers
	return nil
}

// Back returns to the previous screen in wizard order, clearing exactly the
// state owned by the screen being left. From the summary screen it behaves
// like BackToFlows.
func (s *Session) Back() error {
	switch s.screen {
	case ScreenSelection:
		return s.transition(ScreenLanding)
	case ScreenFlowSelection:
		if err := s.transition(ScreenSelection); err != nil {
			return err
		}
		s.product = ""
		s.role = ""
		s.flow = ""
		return nil
	case ScreenCritique:
		if err := s.transition(ScreenFlowSelection); err != nil {
			return err
		}
		s.flow = ""
		return nil
	case ScreenSummary:
		return s.BackToFlows()
	}
	return &TransitionError{From: s.screen, To: s.screen}
}

// Reset returns from the summary screen to product/role selection with the
// whole session cleared.
func (s *Session) Reset() error {
	if err := s.transition(ScreenSelection); err != nil {
		return err
	}
	s.product = ""
	s.role = ""
	s.flow = ""
	s.answers = nil
	return nil
}

// BackToFlows returns from the summary screen to flow selection, preserving
// product and role but clearing flow and answers.
func (s *Session) BackToFlows() error {
	if err := s.transition(ScreenFlowSelection); err != nil {
		return err
	}
	s.flow = ""
	s.answers = nil
	return nil
}
