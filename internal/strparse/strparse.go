// Package strparse implements the small tolerant scanner used to parse
// objective configuration strings of the form name[:param=value[,param=value]*].
//
// Names and parameter keys are matched case-insensitively and surrounding
// whitespace is skipped; numeric values are parsed by a permissive float
// scanner. The package is only consumed by the loss registry.
package strparse

import "strconv"

func isSpace(c byte) bool {
	// space plus the \t..\r control range
	return c == 0x20 || (0x9 <= c && c <= 0xd)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

// SkipSpace returns the index of the first non-whitespace byte at or after i.
func SkipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

// TrimFold lower-cases ASCII letters and strips leading and trailing
// whitespace. It is the canonical form for registry keys.
func TrimFold(s string) string {
	begin := SkipSpace(s, 0)
	end := len(s)
	for end > begin && isSpace(s[end-1]) {
		end--
	}

	b := make([]byte, end-begin)
	for i := begin; i < end; i++ {
		b[i-begin] = lower(s[i])
	}

	return string(b)
}

// ScanFloat parses a floating-point value starting at index i, skipping
// leading whitespace. It accepts an optional sign, decimal digits with an
// optional fraction, and an optional exponent. On success it returns the
// value and the index just past the number and any trailing whitespace.
func ScanFloat(s string, i int) (float64, int, bool) {
	i = SkipSpace(s, i)
	begin := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, begin, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && '0' <= s[j] && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[begin:i], 64)
	if err != nil {
		return 0, begin, false
	}

	return v, SkipSpace(s, i), true
}
