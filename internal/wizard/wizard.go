// Package wizard models the question flows behind `lens recommend` as
// small linear state machines. The quick flow asks two questions, the
// guided flow asks five; both end in a terminal results state and only
// a full reset returns to the start.
package wizard

import "fmt"

// Step identifies a wizard state.
type Step int

const (
	// StepOrgType asks who the recommendations are for.
	StepOrgType Step = iota
	// StepIndustry asks which industry the user works in.
	StepIndustry
	// StepNeeds asks what the user needs help with (multi-select).
	StepNeeds
	// StepBudget asks the monthly budget band.
	StepBudget
	// StepAILevel asks the user's AI experience level.
	StepAILevel
	// StepResults is terminal; answers are complete.
	StepResults
)

// String returns the step name for logging.
func (s Step) String() string {
	switch s {
	case StepOrgType:
		return "org_type"
	case StepIndustry:
		return "industry"
	case StepNeeds:
		return "needs"
	case StepBudget:
		return "budget"
	case StepAILevel:
		return "ai_level"
	case StepResults:
		return "results"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// GuidedAnswers holds the five guided-flow answers. Budget and AILevel
// fall back to defaults when left empty.
type GuidedAnswers struct {
	OrgType  string
	Industry string
	Needs    []string
	Budget   string
	AILevel  string
}

// Guided is the five-step flow state machine.
type Guided struct {
	step    Step
	answers GuidedAnswers
}

// NewGuided returns a guided flow positioned at its first question.
func NewGuided() *Guided {
	return &Guided{step: StepOrgType}
}

// Step returns the current state.
func (g *Guided) Step() Step { return g.step }

// Answers returns the answers collected so far.
func (g *Guided) Answers() GuidedAnswers { return g.answers }

// Done reports whether the flow has reached its terminal state.
func (g *Guided) Done() bool { return g.step == StepResults }

// Answer records the answer for the current step and advances. A
// single-select step rejects empty answers; the needs step rejects an
// empty selection. Answering a finished flow is an error.
func (g *Guided) Answer(values ...string) error {
	switch g.step {
	case StepOrgType:
		if err := one(values); err != nil {
			return err
		}
		g.answers.OrgType = values[0]
		g.step = StepIndustry
	case StepIndustry:
		if err := one(values); err != nil {
			return err
		}
		g.answers.Industry = values[0]
		g.step = StepNeeds
	case StepNeeds:
		if len(values) == 0 {
			return fmt.Errorf("needs: select at least one option")
		}
		g.answers.Needs = append([]string(nil), values...)
		g.step = StepBudget
	case StepBudget:
		if err := one(values); err != nil {
			return err
		}
		g.answers.Budget = values[0]
		g.step = StepAILevel
	case StepAILevel:
		if err := one(values); err != nil {
			return err
		}
		g.answers.AILevel = values[0]
		g.step = StepResults
	case StepResults:
		return fmt.Errorf("flow already complete")
	}
	return nil
}

// Reset returns the flow to its first question and clears all answers.
func (g *Guided) Reset() {
	*g = Guided{step: StepOrgType}
}

// QuickAnswers holds the two quick-flow answers.
type QuickAnswers struct {
	UserType string
	UseCases []string
}

// QuickStep identifies a quick-flow state.
type QuickStep int

const (
	// QuickStepUserType asks who the user is.
	QuickStepUserType QuickStep = iota
	// QuickStepUseCases asks what the user wants to do (multi-select).
	QuickStepUseCases
	// QuickStepResults is terminal.
	QuickStepResults
)

// Quick is the two-step flow state machine.
type Quick struct {
	step    QuickStep
	answers QuickAnswers
}

// NewQuick returns a quick flow positioned at its first question.
func NewQuick() *Quick {
	return &Quick{step: QuickStepUserType}
}

// Step returns the current state.
func (q *Quick) Step() QuickStep { return q.step }

// Answers returns the answers collected so far.
func (q *Quick) Answers() QuickAnswers { return q.answers }

// Done reports whether the flow has reached its terminal state.
func (q *Quick) Done() bool { return q.step == QuickStepResults }

// Answer records the answer for the current step and advances.
func (q *Quick) Answer(values ...string) error {
	switch q.step {
	case QuickStepUserType:
		if err := one(values); err != nil {
			return err
		}
		q.answers.UserType = values[0]
		q.step = QuickStepUseCases
	case QuickStepUseCases:
		if len(values) == 0 {
			return fmt.Errorf("use cases: select at least one option")
		}
		q.answers.UseCases = append([]string(nil), values...)
		q.step = QuickStepResults
	case QuickStepResults:
		return fmt.Errorf("flow already complete")
	}
	return nil
}

// Reset returns the flow to its first question and clears all answers.
func (q *Quick) Reset() {
	*q = Quick{step: QuickStepUserType}
}

func one(values []string) error {
	if len(values) != 1 || values[0] == "" {
		return fmt.Errorf("exactly one non-empty answer required")
	}
	return nil
}
