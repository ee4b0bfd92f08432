package domain

import "math"

// ParseDiary returns the sum of every signed integer written in text.
// A token is an optional '-' immediately followed by one or more ASCII
// digits; a '+' is ordinary text. Text without numbers yields 0.
func ParseDiary(text string) int {
	sum := 0
	for _, n := range scanIntegers(text) {
		sum = addSaturating(sum, n)
	}
	return sum
}

// scanIntegers returns every maximal signed-integer token in s, in order.
func scanIntegers(s string) []int {
	var out []int
	for i := 0; i < len(s); {
		start := i
		neg := false
		if s[i] == '-' && i+1 < len(s) && isDigit(s[i+1]) {
			neg = true
			i++
		}
		if !isDigit(s[i]) {
			i = start + 1
			continue
		}
		n := 0
		for i < len(s) && isDigit(s[i]) {
			n = mulAddSaturating(n, int(s[i]-'0'))
			i++
		}
		if neg {
			n = -n
		}
		out = append(out, n)
	}
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// mulAddSaturating returns n*10+d, clamped at math.MaxInt.
func mulAddSaturating(n, d int) int {
	if n > (math.MaxInt-d)/10 {
		return math.MaxInt
	}
	return n*10 + d
}

func addSaturating(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	default:
		return a + b
	}
}

// WriteDiary replaces the diary text and recomputes the adjustment.
func WriteDiary(text string) StatePatch {
	return StatePatch{
		DiaryContent:    ptr(text),
		DiaryAdjustment: ptr(ParseDiary(text)),
	}
}
