// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateResults State = "results"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// Bar displays the match count and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	matches int
	scanned int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateEmpty:
		return s.styles.Warning.Render(fmt.Sprintf("no matches in %d lines", s.scanned))
	case StateResults:
		return s.styles.Normal.Render(fmt.Sprintf("%d of %d lines", s.matches, s.scanned))
	case StateReady:
	}
	return s.styles.Muted.Render(fmt.Sprintf("%d lines", s.scanned))
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetCounts records the result of a search and derives the state from it.
func (s *Bar) SetCounts(matches, scanned int) {
	s.matches = matches
	s.scanned = scanned
	s.message = ""
	if matches == 0 {
		s.state = StateEmpty
	} else {
		s.state = StateResults
	}
}

// SetError switches the bar to the error state.
func (s *Bar) SetError(message string) {
	s.state = StateError
	s.message = message
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current error message.
func (s *Bar) Message() string {
	return s.message
}

// Matches returns the number of matching lines.
func (s *Bar) Matches() int {
	return s.matches
}

// Scanned returns the number of lines searched.
func (s *Bar) Scanned() int {
	return s.scanned
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
