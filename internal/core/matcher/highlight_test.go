package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

func TestHighlight_Sensitive(t *testing.T) {
	spans := Highlight("duct and duct", "duct", domain.CaseSensitive)

	assert.Equal(t, []domain.Span{{Start: 0, End: 4}, {Start: 9, End: 13}}, spans)
}

func TestHighlight_NonOverlapping(t *testing.T) {
	spans := Highlight("aaaa", "aa", domain.CaseSensitive)

	assert.Equal(t, []domain.Span{{Start: 0, End: 2}, {Start: 2, End: 4}}, spans)
}

func TestHighlight_EmptyQuery(t *testing.T) {
	assert.Nil(t, Highlight("anything", "", domain.CaseSensitive))
	assert.Nil(t, Highlight("anything", "", domain.CaseInsensitive))
}

func TestHighlight_NoMatch(t *testing.T) {
	assert.Empty(t, Highlight("Duct tape", "duct", domain.CaseSensitive))
}

func TestHighlight_Insensitive(t *testing.T) {
	line := "Duct tape, DUCT"

	spans := Highlight(line, "duct", domain.CaseInsensitive)

	require.Len(t, spans, 2)
	assert.Equal(t, "Duct", line[spans[0].Start:spans[0].End])
	assert.Equal(t, "DUCT", line[spans[1].Start:spans[1].End])
}

func TestHighlight_InsensitiveMultibyte(t *testing.T) {
	line := "Voilà l'ÉCOLE"

	spans := Highlight(line, "école", domain.CaseInsensitive)

	require.Len(t, spans, 1)
	assert.Equal(t, "ÉCOLE", line[spans[0].Start:spans[0].End])
}

func TestHighlight_InsensitiveLengthChangingFold(t *testing.T) {
	// U+212A KELVIN SIGN is three bytes and lowercases to the one-byte "k".
	line := "Kelvin"

	spans := Highlight(line, "kel", domain.CaseInsensitive)

	require.Len(t, spans, 1)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, "Kel", line[spans[0].Start:spans[0].End])
}
