// Package list provides the scrolling match list for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/matcher"
)

// MatchList shows matching lines with their line numbers and the matched
// text highlighted. It scrolls but has no selection.
type MatchList struct {
	matches []domain.Match
	query   string
	policy  domain.CasePolicy
	offset  int
	styles  *styles.Styles
	width   int
	height  int
}

// NewMatchList creates an empty match list.
func NewMatchList(s *styles.Styles) *MatchList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MatchList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (m *MatchList) Init() tea.Cmd {
	return nil
}

// Update handles scrolling keys.
func (m *MatchList) Update(msg tea.Msg) (*MatchList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only scrolling keys
		switch msg.Type {
		case tea.KeyUp:
			m.ScrollBy(-1)
		case tea.KeyDown:
			m.ScrollBy(1)
		case tea.KeyPgUp:
			m.ScrollBy(-m.height)
		case tea.KeyPgDown:
			m.ScrollBy(m.height)
		default:
		}
	}
	return m, nil
}

// View renders the visible window of matches.
func (m *MatchList) View() string {
	if len(m.matches) == 0 {
		return m.styles.Muted.Render("No matching lines")
	}

	end := m.offset + m.height
	if end > len(m.matches) {
		end = len(m.matches)
	}

	gutter := len(fmt.Sprint(m.matches[len(m.matches)-1].LineNumber))
	rows := make([]string, 0, end-m.offset)
	for _, match := range m.matches[m.offset:end] {
		number := m.styles.LineNumber.Render(fmt.Sprintf("%*d:", gutter, match.LineNumber))
		rows = append(rows, number+" "+m.renderLine(truncate(match.Line, m.width-gutter-2)))
	}
	return strings.Join(rows, "\n")
}

// renderLine styles the matched spans of line. Spans are recomputed on the
// displayed text so truncation never splits a highlight.
func (m *MatchList) renderLine(line string) string {
	spans := matcher.Highlight(line, m.query, m.policy)
	if len(spans) == 0 {
		return m.styles.Normal.Render(line)
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		if sp.Start > last {
			b.WriteString(m.styles.Normal.Render(line[last:sp.Start]))
		}
		b.WriteString(m.styles.Match.Render(line[sp.Start:sp.End]))
		last = sp.End
	}
	if last < len(line) {
		b.WriteString(m.styles.Normal.Render(line[last:]))
	}
	return b.String()
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// SetMatches replaces the list contents and resets scrolling.
func (m *MatchList) SetMatches(matches []domain.Match, query string, policy domain.CasePolicy) {
	m.matches = matches
	m.query = query
	m.policy = policy
	m.offset = 0
}

// Matches returns the current matches.
func (m *MatchList) Matches() []domain.Match {
	return m.matches
}

// ScrollBy moves the window by delta rows, clamped to the list.
func (m *MatchList) ScrollBy(delta int) {
	m.offset += delta
	maxOffset := len(m.matches) - m.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Offset returns the index of the first visible match.
func (m *MatchList) Offset() int {
	return m.offset
}

// SetDimensions sets the component dimensions.
func (m *MatchList) SetDimensions(width, height int) {
	m.width = width
	if height < 1 {
		height = 1
	}
	m.height = height
	m.ScrollBy(0)
}

// Height returns the number of visible rows.
func (m *MatchList) Height() int {
	return m.height
}

// Count returns the number of matches.
func (m *MatchList) Count() int {
	return len(m.matches)
}
