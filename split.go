package ratcomplex

import "strings"

// SplitComplexString splits a complex literal into the strings of its real and
// imaginary parts, e.g. "-1/3*1j+1.2" -> ("1.2", "-1/3").
//
// The imaginary term is the run of characters ending at the last 'j', reaching back
// to the nearest '+' or '-' (kept as its sign) or to the start of the string. It may
// come before or after the real term and may be written with a "*1j" marker.
// "1/3j" is (1/3)*j. A bare "j" has coefficient 1. Missing parts are "0".
//
// Whitespace at either end and around '+' and '-' is ignored, so " 1/2 - 3/4j "
// splits as "1/2-3/4j". Whitespace inside a number is kept and makes that part
// invalid. The function never fails; whether the parts are valid numbers is
// decided by whoever parses them.
func SplitComplexString(s string) (re, im string) {
	s = compact(s)
	end := strings.LastIndexByte(s, 'j')
	if end < 0 {
		return trimPlus(s), "0"
	}
	start := end
	for start > 0 {
		start--
		if isSign(s[start]) {
			break
		}
	}
	term := s[start : end+1]

	re = trimPlus(s[:start] + s[end+1:])
	if re == "" {
		re = "0"
	}

	if t, ok := strings.CutSuffix(term, "*1j"); ok {
		term = t
	} else {
		term = strings.TrimSuffix(term, "j")
	}
	im = trimPlus(term)
	switch im {
	case "":
		im = "1"
	case "-":
		im = "-1"
	}
	return re, im
}

// compact trims s and drops whitespace runs that touch a '+' or '-'.
func compact(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !isSpace(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		// s is trimmed, so the run has a neighbour on both sides
		if !isSign(s[i-1]) && !isSign(s[j]) {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' }

func isSign(c byte) bool { return c == '+' || c == '-' }

// trimPlus drops one leading '+'.
func trimPlus(s string) string { return strings.TrimPrefix(s, "+") }
