// Package metrics instruments form-field normalization with prometheus
// counters and serves them together with a health endpoint.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Phone normalization outcomes.
const (
	PhoneOutcomeIDDStripped  = "idd_stripped"  // "00<code>" prefix removed
	PhoneOutcomeCodeStripped = "code_stripped" // "<code>" prefix removed
	PhoneOutcomePassthrough  = "passthrough"   // digits kept as-is
	PhoneOutcomeEmpty        = "empty"         // nothing left after sanitizing
	PhoneOutcomeNoCountry    = "no_country"    // no selection, digits-only result
)

// Email classification results.
const (
	EmailResultValid   = "valid"
	EmailResultInvalid = "invalid"
	EmailResultAbsent  = "absent"
)

// FormMetrics counts normalization and validation outcomes.
type FormMetrics struct {
	phoneNormalized *prometheus.CounterVec
	emailChecked    *prometheus.CounterVec
	submits         prometheus.Counter
}

// NewFormMetrics builds the collectors and registers them when reg is
// not nil.
func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		phoneNormalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact",
			Subsystem: "form",
			Name:      "phone_normalized_total",
			Help:      "Phone normalizations by outcome.",
		}, []string{"outcome"}),
		emailChecked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact",
			Subsystem: "form",
			Name:      "email_checked_total",
			Help:      "Email syntax checks by result.",
		}, []string{"result"}),
		submits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "contact",
			Subsystem: "form",
			Name:      "submits_total",
			Help:      "Form submissions processed.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.phoneNormalized, m.emailChecked, m.submits)
	}
	return m
}

func (m *FormMetrics) PhoneNormalized(outcome string) {
	if m == nil {
		return
	}
	m.phoneNormalized.WithLabelValues(outcome).Inc()
}

func (m *FormMetrics) EmailChecked(result string) {
	if m == nil {
		return
	}
	m.emailChecked.WithLabelValues(result).Inc()
}

func (m *FormMetrics) SubmitProcessed() {
	if m == nil {
		return
	}
	m.submits.Inc()
}
