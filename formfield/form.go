package formfield

import (
	"context"

	"github.com/formbridge/go-contact/emailaddr"
	"github.com/formbridge/go-contact/errors"
	"github.com/formbridge/go-contact/geo"
	"github.com/formbridge/go-contact/logger"
	"github.com/formbridge/go-contact/logutil"
	"github.com/formbridge/go-contact/metrics"
)

// Form processes one submission: phone normalization synchronized with
// the country selection, plus email classification.
type Form struct {
	source geo.Source
	log    logger.Interface
	met    *metrics.FormMetrics
}

type Option func(*Form)

func WithLogger(l logger.Interface) Option {
	return func(f *Form) { f.log = l }
}

func WithMetrics(m *metrics.FormMetrics) Option {
	return func(f *Form) { f.met = m }
}

// NewForm wires a form to its country-selection source. A nil source
// is allowed and behaves like "no country selected".
func NewForm(source geo.Source, opts ...Option) *Form {
	f := &Form{source: source, log: logger.Nop()}
	for _, o := range opts {
		o(f)
	}
	return f
}

type Input struct {
	Phone string
	Email string
}

// Output carries the values a caller writes back into its fields: the
// visible national number, the hidden country code pair, and the email
// classification driving the validity flag.
type Output struct {
	NationalNumber string
	ISO2           string
	DialCode       string
	Email          string // normalized, empty when absent
	EmailStatus    EmailStatus
}

// Submit normalizes both fields. A failing country source is logged
// and degraded to digits-only passthrough; the only error Submit
// returns is a validation error for a syntactically invalid email,
// and Output is fully populated even then.
func (f *Form) Submit(ctx context.Context, in Input) (Output, error) {
	f.met.SubmitProcessed()

	sel, selected, err := f.currentSelection(ctx)
	if err != nil {
		f.log.Warnw("country source failed; falling back to digits-only",
			"err", err)
		selected = false
	}

	phone := NormalizePhone(in.Phone, sel, selected)
	f.met.PhoneNormalized(phone.Outcome)

	status := ClassifyEmail(in.Email)
	f.met.EmailChecked(status.String())

	out := Output{
		NationalNumber: phone.National,
		ISO2:           phone.ISO2,
		DialCode:       phone.DialCode,
		EmailStatus:    status,
	}
	if status != EmailAbsent {
		out.Email = emailaddr.Normalize(in.Email)
	}

	f.log.Debugw("form submission processed",
		"fields", logutil.MaskContactFields(map[string]string{
			"phone": phone.National,
			"email": out.Email,
		}),
		"iso2", phone.ISO2,
		"phone_outcome", phone.Outcome,
		"email_status", status.String(),
	)

	if status == EmailInvalid {
		return out, errors.ValidationFields(map[string]string{"Email": "invalid_email"})
	}
	return out, nil
}

func (f *Form) currentSelection(ctx context.Context) (geo.Selection, bool, error) {
	if f.source == nil {
		return geo.Selection{}, false, nil
	}
	return f.source.Current(ctx)
}
