// Package errors models the failures this library surfaces at its
// adapter boundary: almost always a set of per-field validation
// violations, occasionally an unavailable country-source backend. The
// core normalization packages never produce errors; see the dialcode
// and emailaddr contracts.
package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
)

// Reason is a stable machine-readable code.
type Reason string

type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func New(message string, code codes.Code) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

func (e ErrorResponse) WithReason(r string) ErrorResponse { e.Reason = Reason(r); return e }
func (e ErrorResponse) WithDomain(d string) ErrorResponse { e.Domain = d; return e }

// WithDetail copies on write so builder chains stay value-semantic.
func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for dk, dv := range e.Details {
		details[dk] = dv
	}
	details[k] = v
	e.Details = details
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = append([]FieldViolation(nil), v...)
	return e
}

func (e ErrorResponse) Error() string {
	b, _ := json.Marshal(struct {
		Code       string            `json:"code"`
		Reason     Reason            `json:"reason,omitempty"`
		Domain     string            `json:"domain,omitempty"`
		Message    string            `json:"message"`
		Details    map[string]string `json:"details,omitempty"`
		Violations []FieldViolation  `json:"violations,omitempty"`
	}{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Domain:     e.Domain,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	})
	return string(b)
}

// ViolationsFromMap turns a field→reason map into violations. Order is
// unspecified, matching map iteration.
func ViolationsFromMap(m map[string]string) []FieldViolation {
	if len(m) == 0 {
		return nil
	}
	out := make([]FieldViolation, 0, len(m))
	for f, r := range m {
		out = append(out, FieldViolation{Field: f, Reason: r})
	}
	return out
}
