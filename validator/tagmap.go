package validator

var tagMap = map[string]string{
	"required":        "required",
	"omitempty":       "optional",
	"email":           "invalid_email",
	"email_syntax":    "invalid_email",
	"e164":            "invalid_phone",
	"national_number": "invalid_national_number",
	"iso2":            "invalid_country",
	"max":             "too_long",
	"min":             "too_short",
	"len":             "invalid_length",
	"numeric":         "only_numbers_allowed",
	"oneof":           "invalid_choice",
}

// TagMap returns the shared tag→reason table, for use with
// errors.FromPlayground.
func TagMap() map[string]string {
	out := make(map[string]string, len(tagMap))
	for k, v := range tagMap {
		out[k] = v
	}
	return out
}

func mapTagToReason(tag string) string {
	if reason, ok := tagMap[tag]; ok {
		return reason
	}
	return "invalid"
}
