// Package metrics defines the Prometheus instruments exported by the web service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskflow"

// Metrics holds the counters recorded by the navigation shell and HTTP stack.
type Metrics struct {
	ShellToggles     *prometheus.CounterVec
	FeedbackPlayback *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
}

// NewRegistry returns a registry preloaded with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New creates and registers all instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ShellToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shell_toggles_total",
			Help:      "Navigation shell display mode toggles, by resulting mode.",
		}, []string{"mode"}),
		FeedbackPlayback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_playback_total",
			Help:      "Audio feedback playback attempts, by event and outcome.",
		}, []string{"event", "outcome"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method and status code.",
		}, []string{"method", "status"}),
	}
}

// ObserveShellToggle counts a toggle that left the shell in mode.
func (m *Metrics) ObserveShellToggle(mode string) {
	if m == nil {
		return
	}
	m.ShellToggles.WithLabelValues(mode).Inc()
}

// ObserveFeedback counts one feedback playback outcome.
func (m *Metrics) ObserveFeedback(event, outcome string) {
	if m == nil {
		return
	}
	m.FeedbackPlayback.WithLabelValues(event, outcome).Inc()
}

// ObserveHTTPRequest counts one served request.
func (m *Metrics) ObserveHTTPRequest(method string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
