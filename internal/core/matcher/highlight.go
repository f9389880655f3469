package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// Highlight returns the byte spans of every non-overlapping occurrence
// of query in line, left to right. Spans index the original line even
// when folding changes byte lengths. An empty query has no spans.
func Highlight(line, query string, policy domain.CasePolicy) []domain.Span {
	if query == "" {
		return nil
	}
	if !policy.IgnoresCase() {
		return exactSpans(line, query)
	}
	return foldedSpans(line, Fold(query))
}

func exactSpans(line, query string) []domain.Span {
	var spans []domain.Span
	for offset := 0; offset <= len(line); {
		i := strings.Index(line[offset:], query)
		if i < 0 {
			break
		}
		start := offset + i
		spans = append(spans, domain.Span{Start: start, End: start + len(query)})
		offset = start + len(query)
	}
	return spans
}

// foldedSpans folds line rune by rune, recording for every folded byte
// the original rune it came from, then maps matches back.
func foldedSpans(line, query string) []domain.Span {
	var (
		folded    []byte
		runeStart []int
		runeEnd   []int
		buf       [utf8.UTFMax]byte
	)
	for i, r := range line {
		size := utf8.RuneLen(r)
		if r == utf8.RuneError {
			_, size = utf8.DecodeRuneInString(line[i:])
		}
		n := utf8.EncodeRune(buf[:], unicode.ToLower(r))
		for j := 0; j < n; j++ {
			folded = append(folded, buf[j])
			runeStart = append(runeStart, i)
			runeEnd = append(runeEnd, i+size)
		}
	}

	var spans []domain.Span
	for _, s := range exactSpans(string(folded), query) {
		spans = append(spans, domain.Span{
			Start: runeStart[s.Start],
			End:   runeEnd[s.End-1],
		})
	}
	return spans
}
