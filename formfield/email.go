package formfield

import (
	"strings"

	"github.com/formbridge/go-contact/emailaddr"
)

// EmailStatus is a three-valued classification: an empty field is
// "absent", not invalid, so a form can skip the validity flag until
// something was actually entered.
type EmailStatus int

const (
	EmailAbsent EmailStatus = iota
	EmailValid
	EmailInvalid
)

func (s EmailStatus) String() string {
	switch s {
	case EmailValid:
		return "valid"
	case EmailInvalid:
		return "invalid"
	default:
		return "absent"
	}
}

// ClassifyEmail trims the input and classifies it. Only a non-empty
// trimmed value is ever reported invalid.
func ClassifyEmail(input string) EmailStatus {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return EmailAbsent
	}
	if emailaddr.IsValidSyntax(trimmed) {
		return EmailValid
	}
	return EmailInvalid
}
