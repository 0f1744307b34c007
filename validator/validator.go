// Package validator wraps go-playground/validator with the custom tags
// this library's form structs use and a tag→reason translation shared
// with the errors package.
package validator

import (
	play "github.com/go-playground/validator/v10"

	"github.com/formbridge/go-contact/dialcode"
	"github.com/formbridge/go-contact/emailaddr"
	"github.com/formbridge/go-contact/geo"
)

var v *play.Validate

func init() {
	v = play.New()

	// Custom tags skip empty values: "nothing entered yet" is the
	// caller's absent case, presence is enforced with `required`.
	mustRegister("email_syntax", func(fl play.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || emailaddr.IsValidSyntax(s)
	})
	mustRegister("national_number", func(fl play.FieldLevel) bool {
		s := fl.Field().String()
		return s == dialcode.Digits(s)
	})
	mustRegister("iso2", func(fl play.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || geo.IsValidISO2(s)
	})
}

func mustRegister(tag string, fn play.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Instance exposes the underlying validator for callers that need
// struct-level rules of their own.
func Instance() *play.Validate {
	return v
}

// Validate checks a struct and returns field→reason, or nil when the
// value passes.
func Validate(i any) map[string]string {
	err := v.Struct(i)
	if err == nil {
		return nil
	}

	errs, ok := err.(play.ValidationErrors)
	if !ok {
		return map[string]string{"_error": "validation_failed"}
	}

	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = mapTagToReason(e.Tag())
	}
	return out
}
