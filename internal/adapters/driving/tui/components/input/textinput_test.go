package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minigrep/internal/core/domain"
)

func TestNewQueryInput(t *testing.T) {
	q := NewQueryInput(styles.DefaultStyles(), domain.CaseSensitive)

	require.NotNil(t, q)
	assert.Equal(t, "", q.Value())
	assert.True(t, q.Focused())
	assert.Equal(t, domain.CaseSensitive, q.Policy())
}

func TestNewQueryInput_NilStyles(t *testing.T) {
	q := NewQueryInput(nil, domain.CaseInsensitive)

	require.NotNil(t, q)
	assert.NotNil(t, q.styles)
}

func TestQueryInput_Init(t *testing.T) {
	q := NewQueryInput(nil, domain.CaseSensitive)

	assert.NotNil(t, q.Init())
}

func TestQueryInput_Update(t *testing.T) {
	q := NewQueryInput(nil, domain.CaseSensitive)

	for _, r := range "duct" {
		q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "duct", q.Value())

	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "duc", q.Value())
}

func TestQueryInput_SetValue(t *testing.T) {
	q := NewQueryInput(nil, domain.CaseSensitive)

	q.SetValue("rUsT")

	assert.Equal(t, "rUsT", q.Value())
}

func TestQueryInput_ViewShowsPolicy(t *testing.T) {
	q := NewQueryInput(nil, domain.CaseSensitive)

	view := q.View()
	assert.Contains(t, view, "Query")
	assert.Contains(t, view, "[match case]")

	q.SetPolicy(domain.CaseInsensitive)
	assert.Contains(t, q.View(), "[ignore case]")
	assert.Equal(t, domain.CaseInsensitive, q.Policy())
}

func TestQueryInput_SetWidth(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		wantInput int
	}{
		{"wide", 100, 70},
		{"narrow clamps", 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueryInput(nil, domain.CaseSensitive)

			q.SetWidth(tt.width)

			assert.Equal(t, tt.width, q.Width())
			assert.Equal(t, tt.wantInput, q.textinput.Width)
		})
	}
}
