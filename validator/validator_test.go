package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formbridge/go-contact/validator"
)

type contactForm struct {
	Email    string `validate:"required,email_syntax"`
	Phone    string `validate:"national_number"`
	Country  string `validate:"iso2"`
	Nickname string `validate:"omitempty,max=32"`
}

func TestValidate_Valid(t *testing.T) {
	f := contactForm{Email: "jmeno@example.com", Phone: "123456789", Country: "CZ"}
	assert.Nil(t, validator.Validate(f))
}

func TestValidate_EmailSyntax(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"standard", "user@example.com", true},
		{"with plus tag", "user+tag@example.com", true},
		{"short tld", "a@b.co", true},
		{"no dot after domain", "bad@com", false},
		{"missing local", "@example.com", false},
		{"unicode local", "юзер@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := contactForm{Email: tt.email, Phone: "123", Country: "CZ"}
			res := validator.Validate(f)
			if tt.valid {
				assert.Nil(t, res, "expected valid for %q", tt.email)
			} else {
				assert.Equal(t, "invalid_email", res["Email"])
			}
		})
	}
}

func TestValidate_EmptyEmailFailsRequiredNotSyntax(t *testing.T) {
	f := contactForm{Email: "", Phone: "123", Country: "CZ"}
	res := validator.Validate(f)
	assert.Equal(t, "required", res["Email"])
}

func TestValidate_NationalNumber(t *testing.T) {
	ok := contactForm{Email: "a@b.co", Phone: "420123456789"}
	assert.Nil(t, validator.Validate(ok))

	empty := contactForm{Email: "a@b.co", Phone: ""}
	assert.Nil(t, validator.Validate(empty), "empty national number means no number entered")

	bad := contactForm{Email: "a@b.co", Phone: "+420 123"}
	res := validator.Validate(bad)
	assert.Equal(t, "invalid_national_number", res["Phone"])
}

func TestValidate_ISO2(t *testing.T) {
	bad := contactForm{Email: "a@b.co", Country: "CZE"}
	res := validator.Validate(bad)
	assert.Equal(t, "invalid_country", res["Country"])

	lower := contactForm{Email: "a@b.co", Country: "cz"}
	assert.Nil(t, validator.Validate(lower), "format-only check accepts lowercase")
}

func TestValidate_NonStruct(t *testing.T) {
	res := validator.Validate(42)
	assert.Equal(t, "validation_failed", res["_error"])
}

func TestInstance(t *testing.T) {
	assert.NotNil(t, validator.Instance())
}

func TestTagMapIsACopy(t *testing.T) {
	m := validator.TagMap()
	m["required"] = "tampered"
	assert.Equal(t, "required", validator.TagMap()["required"])
}
