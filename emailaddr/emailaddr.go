// Package emailaddr classifies e-mail addresses against a pragmatic
// ASCII pattern. It never corrects or rewrites the address.
package emailaddr

import (
	"regexp"
	"strings"
)

// syntaxRE is the accepted address shape: ASCII local part, '@', a
// domain with at least one dot, and an alphabetic TLD of two or more
// letters. Internationalized addresses are out of scope.
var syntaxRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidSyntax reports whether input, after trimming surrounding
// whitespace, matches the accepted address shape in full.
//
// An empty or all-whitespace input reports false; callers that want to
// treat "nothing entered yet" as neither valid nor invalid must check
// for emptiness themselves before asking (see formfield.ClassifyEmail).
func IsValidSyntax(input string) bool {
	return syntaxRE.MatchString(strings.TrimSpace(input))
}

// Normalize lowercases and trims an address for storage or comparison.
// It does not validate; pair it with IsValidSyntax.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
