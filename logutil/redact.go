// Package logutil prepares field maps for logging: contact values are
// masked, credential-like values are dropped entirely.
package logutil

import (
	"strings"
	"unicode"

	"github.com/formbridge/go-contact/piiutil"
)

const redacted = "[REDACTED]"

// Keys that tokenize to one of these never reach logs, even masked.
var secretTokens = map[string]struct{}{
	"password": {},
	"pass":     {},
	"secret":   {},
	"token":    {},
	"otp":      {},
	"pin":      {},
}

var phoneTokens = map[string]struct{}{
	"phone":  {},
	"tel":    {},
	"mobile": {},
	"msisdn": {},
}

var emailTokens = map[string]struct{}{
	"email": {},
	"mail":  {},
}

// MaskContactFields returns a copy of fields safe to log: phone-like
// values go through piiutil.MaskPhone, email-like values through
// piiutil.MaskEmail, credential-like values are replaced wholesale.
// Unrecognized keys pass through untouched — the caller decides what
// else belongs in a log line.
func MaskContactFields(fields map[string]string) map[string]string {
	if fields == nil {
		return nil
	}

	out := make(map[string]string, len(fields))
	for key, val := range fields {
		switch classifyKey(key) {
		case keySecret:
			out[key] = redacted
		case keyPhone:
			out[key] = piiutil.MaskPhone(val)
		case keyEmail:
			out[key] = piiutil.MaskEmail(val)
		default:
			out[key] = val
		}
	}
	return out
}

type keyKind int

const (
	keyOther keyKind = iota
	keySecret
	keyPhone
	keyEmail
)

func classifyKey(key string) keyKind {
	for _, tok := range tokenize(key) {
		if _, ok := secretTokens[tok]; ok {
			return keySecret
		}
		if _, ok := phoneTokens[tok]; ok {
			return keyPhone
		}
		if _, ok := emailTokens[tok]; ok {
			return keyEmail
		}
	}
	return keyOther
}

// tokenize splits snake_case, kebab-case, dotted and camelCase keys
// into lowercase words.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(s) + 4)

	prevLowerOrDigit := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if unicode.IsUpper(r) && prevLowerOrDigit {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLowerOrDigit = unicode.IsLower(r) || unicode.IsDigit(r)
		default:
			b.WriteByte(' ')
			prevLowerOrDigit = false
		}
	}
	return strings.Fields(b.String())
}
