package matcher

import "strings"

// Lines splits body into lines. Each line is a view into body.
func Lines(body string) []string {
	lines := make([]string, 0, strings.Count(body, "\n")+1)
	eachLine(body, func(_ int, line string) {
		lines = append(lines, line)
	})
	return lines
}

// eachLine calls fn for every line of body in order, with its 1-based
// number, and returns the number of lines seen.
func eachLine(body string, fn func(n int, line string)) int {
	n := 0
	for len(body) > 0 {
		n++
		i := strings.IndexByte(body, '\n')
		if i < 0 {
			fn(n, body)
			return n
		}
		fn(n, strings.TrimSuffix(body[:i], "\r"))
		body = body[i+1:]
	}
	return n
}
