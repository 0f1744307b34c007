// Package formfield is the adapter between the pure normalization
// cores and an actual form: it tracks field state, pulls the current
// country selection from a geo.Source at submit time, and reports
// outcomes through the logger and metrics it is wired with.
package formfield

import (
	"strings"

	"github.com/formbridge/go-contact/dialcode"
	"github.com/formbridge/go-contact/geo"
	"github.com/formbridge/go-contact/metrics"
)

// PhoneResult is the canonical view of one phone field after
// normalization. National is digits-only and may be empty ("no number
// entered"); ISO2 and DialCode echo the selection used, empty when no
// country was selected.
type PhoneResult struct {
	National string
	ISO2     string
	DialCode string
	Outcome  string
}

// NormalizePhone reduces raw against the selection. selected=false
// (no country chosen yet, or the source failed) degrades to a
// digits-only passthrough, never an error.
func NormalizePhone(raw string, sel geo.Selection, selected bool) PhoneResult {
	digits := dialcode.Digits(raw)

	if !selected || dialcode.Digits(sel.DialCode) == "" {
		out := metrics.PhoneOutcomeNoCountry
		if digits == "" {
			out = metrics.PhoneOutcomeEmpty
		}
		return PhoneResult{National: digits, Outcome: out}
	}

	national := dialcode.Normalize(raw, sel.DialCode)
	return PhoneResult{
		National: national,
		ISO2:     sel.ISO2,
		DialCode: sel.DialCode,
		Outcome:  phoneOutcome(digits, dialcode.Digits(sel.DialCode)),
	}
}

// phoneOutcome labels which branch of the prefix strip fired, mirroring
// the candidate order in dialcode.Normalize.
func phoneOutcome(digits, code string) string {
	switch {
	case digits == "":
		return metrics.PhoneOutcomeEmpty
	case strings.HasPrefix(digits, "00"+code):
		return metrics.PhoneOutcomeIDDStripped
	case strings.HasPrefix(digits, code):
		return metrics.PhoneOutcomeCodeStripped
	default:
		return metrics.PhoneOutcomePassthrough
	}
}
