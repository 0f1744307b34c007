package dialcode

import "testing"

func TestDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain digits", in: "123456", want: "123456"},
		{name: "spaces and plus", in: "+420 123 456 789", want: "420123456789"},
		{name: "parentheses and dashes", in: "(089) 12-34", want: "0891234"},
		{name: "letters dropped", in: "1a2b3c", want: "123"},
		{name: "only garbage", in: "abc +-()", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "unicode digits not accepted", in: "١٢٣", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Digits(tt.in); got != tt.want {
				t.Fatalf("Digits(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		code string
		want string
	}{
		{name: "plus prefix", raw: "+420123456789", code: "420", want: "123456789"},
		{name: "plus prefix with spaces", raw: "+420 123 456 789", code: "420", want: "123456789"},
		{name: "idd prefix", raw: "0049 1701234567", code: "49", want: "1701234567"},
		{name: "bare code prefix", raw: "420123456789", code: "420", want: "123456789"},
		{name: "no prefix passes through", raw: "777123456", code: "420", want: "777123456"},
		{name: "no dial code", raw: "123 456", code: "", want: "123456"},
		{name: "dial code with decoration", raw: "+420123", code: "+420", want: "123"},
		{name: "bare dial code strips to empty", raw: "420", code: "420", want: ""},
		{name: "idd dial code strips to empty", raw: "00420", code: "420", want: ""},
		{name: "empty raw", raw: "", code: "420", want: ""},
		{name: "raw shorter than prefix", raw: "42", code: "420", want: "42"},
		{name: "idd tested before bare code", raw: "0049123", code: "49", want: "123"},
		{name: "single digit code", raw: "+1 415 555 0100", code: "1", want: "4155550100"},
		{name: "three digit code", raw: "00998901234567", code: "998", want: "901234567"},
		{name: "letters in raw", raw: "+420abc123", code: "420", want: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw, tt.code); got != tt.want {
				t.Fatalf("Normalize(%q, %q) = %q, want %q", tt.raw, tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalizeNoDialCodeEqualsDigits(t *testing.T) {
	inputs := []string{"", "123 456", "+420 777", "abc", "(089) 12-34"}
	for _, s := range inputs {
		if got, want := Normalize(s, ""), Digits(s); got != want {
			t.Fatalf("Normalize(%q, \"\") = %q, want Digits = %q", s, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// Holds whenever the once-normalized value does not itself begin
	// with the dial code's digits.
	tests := []struct {
		raw  string
		code string
	}{
		{raw: "+420 123 456 789", code: "420"},
		{raw: "0049 1701234567", code: "49"},
		{raw: "777123456", code: "420"},
		{raw: "", code: "420"},
	}
	for _, tt := range tests {
		once := Normalize(tt.raw, tt.code)
		if twice := Normalize(once, tt.code); twice != once {
			t.Fatalf("Normalize not idempotent for (%q, %q): %q -> %q", tt.raw, tt.code, once, twice)
		}
	}
}

func TestNormalizeDoubleStripAmbiguity(t *testing.T) {
	// A subscriber number starting with the dial code's own digits is
	// stripped again on a second pass. Documented limitation, pinned
	// here so a behavior change is a conscious one.
	once := Normalize("+49491234", "49")
	if once != "491234" {
		t.Fatalf("first pass = %q, want %q", once, "491234")
	}
	if twice := Normalize(once, "49"); twice != "1234" {
		t.Fatalf("second pass = %q, want %q (known double-strip)", twice, "1234")
	}
}
