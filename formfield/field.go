package formfield

import (
	"strings"

	"github.com/formbridge/go-contact/geo"
)

// State is the lifecycle of a phone field: Empty → Typing →
// Normalized. There are no other states; every transition is
// idempotent.
type State int

const (
	StateEmpty State = iota
	StateTyping
	StateNormalized
)

func (s State) String() string {
	switch s {
	case StateTyping:
		return "typing"
	case StateNormalized:
		return "normalized"
	default:
		return "empty"
	}
}

// PhoneField tracks one phone input between events. It owns no I/O:
// the surrounding application feeds it input/country-change events and
// asks for normalization on blur or submit.
type PhoneField struct {
	raw      string
	sel      geo.Selection
	selected bool
	state    State
	result   PhoneResult
}

func NewPhoneField() *PhoneField {
	return &PhoneField{}
}

func (f *PhoneField) State() State { return f.state }

// Value is the text the visible field should show: the raw input while
// typing, the national number once normalized.
func (f *PhoneField) Value() string {
	if f.state == StateNormalized {
		return f.result.National
	}
	return f.raw
}

// OnInput records a keystroke's worth of new raw text.
func (f *PhoneField) OnInput(raw string) {
	f.raw = raw
	if strings.TrimSpace(raw) == "" {
		f.state = StateEmpty
		return
	}
	f.state = StateTyping
}

// OnCountryChange swaps the selection. An already-normalized field is
// re-normalized from the last raw input so the visible value follows
// the new dial code.
func (f *PhoneField) OnCountryChange(sel geo.Selection, selected bool) {
	f.sel = sel
	f.selected = selected
	if f.state == StateNormalized {
		f.normalize()
	}
}

// OnBlur normalizes the field. Calling it again without new input is a
// no-op returning the same result, which keeps the transition
// idempotent even for numbers that begin with their own dial code.
func (f *PhoneField) OnBlur() PhoneResult {
	if f.state == StateNormalized {
		return f.result
	}
	return f.normalize()
}

// OnSubmit behaves like OnBlur; submit just forces the same
// transition.
func (f *PhoneField) OnSubmit() PhoneResult {
	return f.OnBlur()
}

func (f *PhoneField) normalize() PhoneResult {
	f.result = NormalizePhone(f.raw, f.sel, f.selected)
	if f.result.National == "" {
		f.state = StateEmpty
	} else {
		f.state = StateNormalized
	}
	return f.result
}
