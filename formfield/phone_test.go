package formfield

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formbridge/go-contact/geo"
	"github.com/formbridge/go-contact/metrics"
)

func selection(iso2, code string) geo.Selection {
	return geo.Selection{ISO2: iso2, DialCode: code}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		sel      geo.Selection
		selected bool
		want     PhoneResult
	}{
		{
			name: "czech plus prefix", raw: "+420 123 456 789",
			sel: selection("CZ", "420"), selected: true,
			want: PhoneResult{National: "123456789", ISO2: "CZ", DialCode: "420", Outcome: metrics.PhoneOutcomeCodeStripped},
		},
		{
			name: "german idd prefix", raw: "0049 1701234567",
			sel: selection("DE", "49"), selected: true,
			want: PhoneResult{National: "1701234567", ISO2: "DE", DialCode: "49", Outcome: metrics.PhoneOutcomeIDDStripped},
		},
		{
			name: "no country selected", raw: "123 456",
			selected: false,
			want:     PhoneResult{National: "123456", Outcome: metrics.PhoneOutcomeNoCountry},
		},
		{
			name: "no prefix passthrough", raw: "777 123 456",
			sel: selection("CZ", "420"), selected: true,
			want: PhoneResult{National: "777123456", ISO2: "CZ", DialCode: "420", Outcome: metrics.PhoneOutcomePassthrough},
		},
		{
			name: "bare dial code", raw: "420",
			sel: selection("CZ", "420"), selected: true,
			want: PhoneResult{National: "", ISO2: "CZ", DialCode: "420", Outcome: metrics.PhoneOutcomeCodeStripped},
		},
		{
			name: "empty raw with country", raw: "",
			sel: selection("CZ", "420"), selected: true,
			want: PhoneResult{National: "", ISO2: "CZ", DialCode: "420", Outcome: metrics.PhoneOutcomeEmpty},
		},
		{
			name: "empty raw without country", raw: "  ",
			selected: false,
			want:     PhoneResult{National: "", Outcome: metrics.PhoneOutcomeEmpty},
		},
		{
			name: "selection with empty dial code degrades", raw: "123",
			sel: selection("CZ", ""), selected: true,
			want: PhoneResult{National: "123", Outcome: metrics.PhoneOutcomeNoCountry},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.raw, tt.sel, tt.selected)
			assert.Equal(t, tt.want, got)
		})
	}
}
