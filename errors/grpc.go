package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// ToGRPC converts the error into a gRPC status with ErrorInfo and,
// for invalid-argument errors, BadRequest field violations.
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	if e.Reason != "" || e.Domain != "" || len(e.Details) > 0 {
		ei := &errdetails.ErrorInfo{
			Reason:   string(e.Reason),
			Domain:   e.Domain,
			Metadata: e.Details,
		}
		if st2, err := st.WithDetails(ei); err == nil {
			st = st2
		}
	}

	if len(e.Violations) > 0 && e.Code == codes.InvalidArgument {
		br := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
		}
		for _, v := range e.Violations {
			desc := v.Description
			if desc == "" {
				desc = v.Reason
			}
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: desc,
			})
		}
		if st2, err := st.WithDetails(br); err == nil {
			st = st2
		}
	}

	return st.Err()
}

// FromGRPC rebuilds an ErrorResponse from a gRPC status error.
// Violation reasons are not round-tripped; BadRequest carries field
// and description only.
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}

	out := New(st.Message(), st.Code())
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			if r := x.GetReason(); r != "" {
				out.Reason = Reason(r)
			}
			if dom := x.GetDomain(); dom != "" {
				out.Domain = dom
			}
			if md := x.GetMetadata(); len(md) > 0 {
				details := make(map[string]string, len(md))
				for k, v := range md {
					details[k] = v
				}
				out.Details = details
			}
		case *errdetails.BadRequest:
			vs := make([]FieldViolation, 0, len(x.FieldViolations))
			for _, fv := range x.FieldViolations {
				vs = append(vs, FieldViolation{
					Field:       fv.GetField(),
					Description: fv.GetDescription(),
				})
			}
			if len(vs) > 0 {
				out.Violations = vs
			}
		}
	}
	return out
}
