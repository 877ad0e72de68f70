// Package tui implements the interactive recommendation wizard on top
// of bubbletea. The quick flow asks two questions, the guided flow five;
// both end on a results screen that can be restarted with a single key.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
	"github.com/gubicoo/lens/internal/recommend"
	"github.com/gubicoo/lens/internal/wizard"
)

type option struct {
	Value  string
	Label  string
	Helper string
}

type question struct {
	Title   string
	Multi   bool
	Options []option
}

var modeQuestion = question{
	Title: "How would you like to get recommendations?",
	Options: []option{
		{Value: "quick", Label: "Quick picks", Helper: "Two questions, instant results"},
		{Value: "guided", Label: "Guided setup", Helper: "Five questions, tailored results"},
	},
}

var quickQuestions = []question{
	{
		Title: "Who are the tools for?",
		Options: []option{
			{Value: "personal", Label: "Personal use"},
			{Value: "startup", Label: "Startup"},
			{Value: "enterprise", Label: "Enterprise"},
			{Value: "developer", Label: "Developer"},
			{Value: "creator", Label: "Creator"},
			{Value: "analyst", Label: "Analyst"},
		},
	},
	{
		Title: "What do you want to do? (pick any)",
		Multi: true,
		Options: []option{
			{Value: "writing", Label: "Writing"},
			{Value: "coding", Label: "Coding"},
			{Value: "design", Label: "Design"},
			{Value: "video", Label: "Video"},
			{Value: "automation", Label: "Automation"},
			{Value: "research", Label: "Research"},
			{Value: "marketing", Label: "Marketing"},
			{Value: "support", Label: "Customer support"},
		},
	},
}

var guidedQuestions = []question{
	{
		Title: "How big is your organisation?",
		Options: []option{
			{Value: "individual", Label: "Just me"},
			{Value: "startup-0-10", Label: "Startup (1-10 people)"},
			{Value: "startup-10-50", Label: "Startup (10-50 people)"},
			{Value: "sme-50-200", Label: "SME (50-200 people)"},
			{Value: "enterprise-200", Label: "Enterprise (200+)"},
		},
	},
	{
		Title: "Which industry are you in?",
		Options: []option{
			{Value: "technology", Label: "Technology"},
			{Value: "healthcare", Label: "Healthcare"},
			{Value: "education", Label: "Education"},
			{Value: "finance", Label: "Finance"},
			{Value: "ecommerce", Label: "E-commerce"},
			{Value: "marketing", Label: "Marketing"},
			{Value: "other", Label: "Other"},
		},
	},
	{
		Title: "What do you need help with? (pick any)",
		Multi: true,
		Options: []option{
			{Value: "coding", Label: "Coding"},
			{Value: "writing", Label: "Writing"},
			{Value: "design", Label: "Design"},
			{Value: "support", Label: "Customer support"},
			{Value: "documentation", Label: "Documentation"},
			{Value: "sales", Label: "Sales"},
			{Value: "automation", Label: "Automation"},
			{Value: "analysis", Label: "Data analysis"},
			{Value: "video", Label: "Video"},
		},
	},
	{
		Title: "What is your monthly budget?",
		Options: []option{
			{Value: "free", Label: "Free only"},
			{Value: "low", Label: "Low ($0-$20/mo)"},
			{Value: "medium", Label: "Medium ($20-$100/mo)"},
			{Value: "high", Label: "High ($100+/mo)"},
		},
	},
	{
		Title: "How experienced are you with AI tools?",
		Options: []option{
			{Value: "beginner", Label: "Beginner"},
			{Value: "intermediate", Label: "Intermediate"},
			{Value: "advanced", Label: "Advanced"},
		},
	},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(cli.PrimaryColor).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(cli.SuccessColor)
	helperStyle   = lipgloss.NewStyle().Foreground(cli.SubtleColor)
	footerStyle   = lipgloss.NewStyle().Foreground(cli.SubtleColor).MarginTop(1)
)

// Model is the wizard's bubbletea model.
type Model struct {
	catalog *model.Catalog
	keys    keyMap

	mode    string // "", "quick", "guided"
	quick   *wizard.Quick
	guided  *wizard.Guided
	current question
	cursor  int
	picked  map[int]bool

	result   *recommend.Result
	quitting bool
	err      error
}

// New returns a wizard positioned at mode selection.
func New(c *model.Catalog) Model {
	return Model{
		catalog: c,
		keys:    defaultKeyMap(),
		current: modeQuestion,
		picked:  map[int]bool{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Restart):
		if m.result != nil {
			return New(m.catalog), nil
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.result == nil && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.result == nil && m.cursor < len(m.current.Options)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.result == nil && m.current.Multi {
			m.picked[m.cursor] = !m.picked[m.cursor]
		}

	case key.Matches(keyMsg, m.keys.Confirm):
		if m.result == nil {
			return m.confirm()
		}
	}
	return m, nil
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	values := m.selectedValues()
	if len(values) == 0 {
		return m, nil
	}

	switch {
	case m.mode == "":
		m.mode = values[0]
		if m.mode == "quick" {
			m.quick = wizard.NewQuick()
		} else {
			m.guided = wizard.NewGuided()
		}

	case m.mode == "quick":
		if err := m.quick.Answer(values...); err != nil {
			m.err = err
			return m, nil
		}
		if m.quick.Done() {
			r := recommend.Quick(m.catalog, m.quick.Answers())
			m.result = &r
			return m, nil
		}

	default:
		if err := m.guided.Answer(values...); err != nil {
			m.err = err
			return m, nil
		}
		if m.guided.Done() {
			r := recommend.Guided(m.catalog, m.guided.Answers())
			m.result = &r
			return m, nil
		}
	}

	m.current = m.nextQuestion()
	m.cursor = 0
	m.picked = map[int]bool{}
	m.err = nil
	return m, nil
}

func (m Model) nextQuestion() question {
	if m.mode == "quick" {
		return quickQuestions[int(m.quick.Step())]
	}
	return guidedQuestions[int(m.guided.Step())]
}

func (m Model) selectedValues() []string {
	if !m.current.Multi {
		if m.cursor < len(m.current.Options) {
			return []string{m.current.Options[m.cursor].Value}
		}
		return nil
	}
	var values []string
	for i, opt := range m.current.Options {
		if m.picked[i] {
			values = append(values, opt.Value)
		}
	}
	return values
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.result != nil {
		return m.resultsView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.current.Title))
	b.WriteString("\n")

	for i, opt := range m.current.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		label := opt.Label
		if m.current.Multi {
			mark := "[ ]"
			if m.picked[i] {
				mark = selectedStyle.Render("[x]")
			}
			label = mark + " " + label
		}
		if opt.Helper != "" {
			label += "  " + helperStyle.Render(opt.Helper)
		}
		b.WriteString(cursor + label + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + cli.ErrorStyle.Render(m.err.Error()) + "\n")
	}

	footer := "↑/↓ move · enter confirm · q quit"
	if m.current.Multi {
		footer = "↑/↓ move · space toggle · enter confirm · q quit"
	}
	b.WriteString(footerStyle.Render(footer))
	return b.String()
}

func (m Model) resultsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your recommendations"))
	b.WriteString("\n")

	write := func(heading string, tools []model.Tool) {
		if len(tools) == 0 {
			return
		}
		b.WriteString(cursorStyle.Render(heading) + "\n")
		for i, t := range tools {
			v := normalize.NewView(t, m.catalog)
			b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1, t.Name,
				helperStyle.Render(fmt.Sprintf("%s %s · %s", cli.StarIcon, cli.RatingText(t.Rating), v.PricingType))))
		}
		b.WriteString("\n")
	}
	write("Top picks", m.result.Recommendation.Primary)
	write("Also worth a look", m.result.Recommendation.Optional)

	b.WriteString(cursorStyle.Render("Should you pay?") + "\n")
	b.WriteString(m.result.Verdict + "\n")
	b.WriteString(footerStyle.Render("r start over · q quit"))
	return b.String()
}

// Result returns the completed recommendation, if the wizard reached
// the results screen.
func (m Model) Result() *recommend.Result { return m.result }
