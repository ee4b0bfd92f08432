package domain

import (
	"strings"
	"unicode"
)

// Default costs applied when quick-add input carries no number.
const (
	HomeDefaultCost    = 5
	LibraryDefaultCost = 10
)

// QuickAdd describes how one entry point interprets "title cost" input.
type QuickAdd struct {
	DefaultCost int
	// FallbackNeedsTitle requires at least two space-separated tokens
	// before the last token is taken as the cost.
	FallbackNeedsTitle bool
}

// HomeQuickAdd is the parser for today's task input.
func HomeQuickAdd(defaultCost int) QuickAdd {
	return QuickAdd{DefaultCost: defaultCost}
}

// LibraryQuickAdd is the parser for template and backlog input.
func LibraryQuickAdd(defaultCost int) QuickAdd {
	return QuickAdd{DefaultCost: defaultCost, FallbackNeedsTitle: true}
}

// Parse splits input into a title and a cost.
//
// A trailing run of digits is the cost and the text before it is the
// title ("跑步30" and "跑步 30" both cost 30). Otherwise the last
// space-separated token is the cost when it starts with an integer
// ("run 5km" costs 5). Otherwise the whole input is the title.
// An empty title means the input should be ignored.
func (q QuickAdd) Parse(input string) (string, int) {
	input = strings.TrimSpace(input)

	if j := trailingDigits(input); j < len(input) {
		return strings.TrimSpace(input[:j]), atoiSaturating(input[j:])
	}

	parts := strings.Split(input, " ")
	if len(parts) > 1 || !q.FallbackNeedsTitle {
		if n, ok := parseLeadingInt(parts[len(parts)-1]); ok {
			return strings.TrimSpace(strings.Join(parts[:len(parts)-1], " ")), n
		}
	}
	return input, q.DefaultCost
}

// trailingDigits returns the index where the trailing digit run starts,
// or len(s) when s does not end in a digit.
func trailingDigits(s string) int {
	j := len(s)
	for j > 0 && isDigit(s[j-1]) {
		j--
	}
	return j
}

func atoiSaturating(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = mulAddSaturating(n, int(digits[i]-'0'))
	}
	return n
}

// parseLeadingInt reads an optionally signed integer at the start of s,
// ignoring leading whitespace and anything after the digits.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n := atoiSaturating(s[:end])
	if neg {
		n = -n
	}
	return n, true
}
