package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pbsgifts/promoweb/internal/api/dto/common"
)

// Form label values for submission metrics.
const (
	FormContact = "contact"
	FormQuote   = "quote"
)

// Metrics owns the process registry and the submission outcome counters.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "promoweb",
		Name:      "submissions_total",
		Help:      "Form submissions by form and outcome.",
	}, []string{"form", "outcome"})
	registry.MustRegister(submissions)

	return &Metrics{
		registry:    registry,
		submissions: submissions,
	}
}

// RecordSubmission increments the outcome counter for a form.
func (m *Metrics) RecordSubmission(form string, outcome common.Outcome) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(form, string(outcome)).Inc()
}

// Handler exposes the registry for the /metrics route.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return gin.WrapH(h)
}
