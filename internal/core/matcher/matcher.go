package matcher

import (
	"strings"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// Search returns every line of body that contains query, compared
// byte for byte. An empty query matches every line.
func Search(query, body string) []string {
	lines := []string{}
	scan(query, body, domain.CaseSensitive, func(_ int, line string) {
		lines = append(lines, line)
	})
	return lines
}

// SearchCaseInsensitive returns every line of body that contains query
// when both are folded with Fold. The returned lines keep their
// original case.
func SearchCaseInsensitive(query, body string) []string {
	lines := []string{}
	scan(query, body, domain.CaseInsensitive, func(_ int, line string) {
		lines = append(lines, line)
	})
	return lines
}

// Find is Search or SearchCaseInsensitive, selected by policy, with the
// 1-based line number of each match.
func Find(query, body string, policy domain.CasePolicy) []domain.Match {
	matches, _ := FindCounted(query, body, policy)
	return matches
}

// FindCounted is Find that also reports how many lines body holds,
// counted in the same pass.
func FindCounted(query, body string, policy domain.CasePolicy) ([]domain.Match, int) {
	matches := []domain.Match{}
	total := scan(query, body, policy, func(n int, line string) {
		matches = append(matches, domain.Match{LineNumber: n, Line: line})
	})
	return matches, total
}

// Count returns how many lines of body match query under policy.
func Count(query, body string, policy domain.CasePolicy) int {
	count := 0
	scan(query, body, policy, func(int, string) {
		count++
	})
	return count
}

// Fold maps s to the form used for case-insensitive comparison: a
// simple, locale-independent lowercase mapping.
func Fold(s string) string {
	return strings.ToLower(s)
}

// scan calls keep for each matching line, in body order, and returns
// the number of lines in body.
// The query is folded once up front and each line once.
func scan(query, body string, policy domain.CasePolicy, keep func(n int, line string)) int {
	if policy.IgnoresCase() {
		query = Fold(query)
	}
	return eachLine(body, func(n int, line string) {
		candidate := line
		if policy.IgnoresCase() {
			candidate = Fold(line)
		}
		if strings.Contains(candidate, query) {
			keep(n, line)
		}
	})
}
