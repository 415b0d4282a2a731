package cli

import "math"

// Atoi parses s the way C atoi does: leading whitespace, an optional sign,
// then as many decimal digits as follow. Anything after the digits is
// ignored and no digits at all gives 0. Results saturate to the int32 range.
//
// clean reports whether s was exactly an optionally signed run of digits.
func Atoi(s string) (n int, clean bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	leading := i

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	var acc int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if acc <= math.MaxInt32+1 {
			acc = acc*10 + int64(s[i]-'0')
		}
		i++
	}
	digits := i - start

	if neg {
		acc = -acc
	}
	saturated := false
	switch {
	case acc > math.MaxInt32:
		acc, saturated = math.MaxInt32, true
	case acc < math.MinInt32:
		acc, saturated = math.MinInt32, true
	}

	clean = leading == 0 && digits > 0 && i == len(s) && !saturated
	return int(acc), clean
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
