// Package geo carries the country side of contact normalization: ISO
// 3166-1 alpha-2 code handling, the dial-code registry and the
// country-selection source contract consumed by the form adapter.
package geo

import "strings"

// NormalizeISO2 trims and uppercases an ASCII ISO2-like code.
//
// The check is format-only (two ASCII letters); whether the code is an
// officially assigned ISO 3166-1 alpha-2 value is the registry's
// business, not this function's.
func NormalizeISO2(code string) (string, bool) {
	c := strings.TrimSpace(code)
	if len(c) != 2 {
		return "", false
	}

	out := [2]byte{}
	for i := 0; i < 2; i++ {
		b := c[i]
		switch {
		case b >= 'A' && b <= 'Z':
			out[i] = b
		case b >= 'a' && b <= 'z':
			out[i] = b - ('a' - 'A')
		default:
			return "", false
		}
	}
	return string(out[:]), true
}

// IsValidISO2 reports whether a value normalizes as a two-letter ASCII
// ISO2-like code.
func IsValidISO2(code string) bool {
	_, ok := NormalizeISO2(code)
	return ok
}
