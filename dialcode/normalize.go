// Package dialcode reduces user-entered phone numbers to the
// national-significant digit string for a known country dial code.
//
// It deliberately stops short of full numbering-plan validation: the
// only transform is dropping non-digits and stripping one occurrence
// of the dial-code prefix in any of its common encodings ("+49",
// "0049", "49"). Anything smarter belongs to a libphonenumber-class
// dependency, which this package intentionally avoids.
package dialcode

import "strings"

// Digits removes every rune outside '0'..'9' from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Normalize reduces raw to digits and strips one leading occurrence of
// dialCode from the result.
//
// The prefix is recognized in any of the encodings users actually type:
// "+<code>", "00<code>" and a bare "<code>". Since comparison happens
// after digit reduction, "+<code>" collapses to "<code>", leaving two
// distinct candidates which are tested in order: "00<code>" first
// (the longer IDD form must win over a bare code that happens to start
// with zeros), then "<code>".
//
// Degenerate input never fails: an empty raw, an absent dial code or a
// raw equal to the bare dial code all produce a valid result. An empty
// return value means "no number entered" and must not be re-fed into
// another extraction attempt.
//
// Known limitation: a subscriber number that itself begins with the
// dial code's digits is indistinguishable from a prefixed one, so a
// second Normalize pass over an already-normalized value can strip
// again. Normalize itself removes at most one prefix per call; callers
// that re-normalize accept the ambiguity.
func Normalize(raw, dialCode string) string {
	digits := Digits(raw)

	code := Digits(dialCode)
	if code == "" {
		return digits
	}

	for _, prefix := range [...]string{"00" + code, code} {
		if strings.HasPrefix(digits, prefix) {
			return digits[len(prefix):]
		}
	}
	return digits
}
