// Package input provides the query input component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// QueryInput wraps a bubbles textinput and shows the active case policy
// next to the query.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	policy    domain.CasePolicy
	width     int
}

// NewQueryInput creates a focused query input.
func NewQueryInput(s *styles.Styles, policy domain.CasePolicy) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type to filter lines..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &QueryInput{
		textinput: ti,
		styles:    s,
		policy:    policy,
		width:     60,
	}
}

// Init starts the cursor blinking.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the label, the input box and the case indicator.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Query: ")
	field := q.styles.InputField.Render(q.textinput.View())
	policy := q.styles.Subtitle.Render(" " + caseTag(q.policy))
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field, policy)
}

func caseTag(policy domain.CasePolicy) string {
	if policy.IgnoresCase() {
		return "[ignore case]"
	}
	return "[match case]"
}

// Value returns the current query.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue replaces the query.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Policy returns the displayed case policy.
func (q *QueryInput) Policy() domain.CasePolicy {
	return q.policy
}

// SetPolicy changes the displayed case policy.
func (q *QueryInput) SetPolicy(policy domain.CasePolicy) {
	q.policy = policy
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the width of the input.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	// label, border, padding and case tag
	inputWidth := width - 30
	if inputWidth < 20 {
		inputWidth = 20
	}
	q.textinput.Width = inputWidth
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}
