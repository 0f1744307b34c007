// Package piiutil masks contact data before it reaches logs. Phone
// numbers and e-mail addresses are PII; nothing in this module logs
// either one unmasked.
package piiutil

import (
	"strings"
	"unicode"
)

// MaskPhone masks the digits of a phone value while preserving
// formatting symbols. The last four digits stay visible when the value
// has more than four digits, otherwise only the last one.
//
//	"+420123456789" -> "+********6789"
//	"1234"          -> "***4"
//	""              -> ""
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return maskToken(phone)
	}

	keep := 4
	if total <= 4 {
		keep = 1
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}

// MaskEmail masks the local part of an address, keeping its first and
// last character. Values without a usable '@' are masked as opaque
// tokens.
//
//	"user@example.com" -> "u**r@example.com"
//	"ab@example.com"   -> "a*@example.com"
//	"weird"            -> "w***d"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskToken(email)
	}

	local := []rune(email[:at])
	domain := email[at:]
	switch len(local) {
	case 1:
		return string(local) + domain
	case 2:
		return string(local[0]) + "*" + domain
	}

	var b strings.Builder
	b.Grow(len(email))
	b.WriteRune(local[0])
	for i := 1; i < len(local)-1; i++ {
		b.WriteByte('*')
	}
	b.WriteRune(local[len(local)-1])
	b.WriteString(domain)
	return b.String()
}

// maskToken keeps the first and last rune of an opaque value.
func maskToken(s string) string {
	runes := []rune(s)
	n := len(runes)
	switch n {
	case 0:
		return ""
	case 1:
		return string(runes)
	case 2:
		return string(runes[0]) + "*"
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(runes[0])
	for i := 1; i < n-1; i++ {
		b.WriteByte('*')
	}
	b.WriteRune(runes[n-1])
	return b.String()
}
