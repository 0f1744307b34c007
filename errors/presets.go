package errors

import "google.golang.org/grpc/codes"

// Immutable factory presets for the codes this library emits.

func Unknown() ErrorResponse {
	return New("Unknown error occurred", codes.Unknown).WithReason("unknown")
}

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument).WithReason("invalid_argument")
}

func NotFound() ErrorResponse {
	return New("Resource not found", codes.NotFound).WithReason("not_found")
}

func Internal() ErrorResponse {
	return New("Internal error", codes.Internal).WithReason("internal")
}

func Unavailable() ErrorResponse {
	return New("Service unavailable", codes.Unavailable).WithReason("unavailable")
}

// ValidationFields builds the error returned for bad form input.
func ValidationFields(fields map[string]string) ErrorResponse {
	return InvalidArgument().
		WithReason("validation_failed").
		WithViolations(ViolationsFromMap(fields))
}

func ValidationViolations(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithViolations(v)
}

// CountryUnknown reports an ISO2 code the registry has no dial code
// for.
func CountryUnknown(iso2 string) ErrorResponse {
	return NotFound().WithReason("country_unknown").WithDetail("iso2", iso2)
}

// SourceUnavailable reports a country-source backend failure.
func SourceUnavailable(backend string) ErrorResponse {
	return Unavailable().WithReason("country_source_unavailable").WithDetail("backend", backend)
}
