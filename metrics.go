package smpp

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/smppcore/smpp/pdu"
)

// MetricsCollector records session-level counters. The core never depends
// on a running registry directly — only on this interface — so tests and
// callers that don't care about metrics can pass NopMetrics.
type MetricsCollector interface {
	PDUSent(command pdu.CommandID)
	PDUReceived(command pdu.CommandID)
	KeepAliveFailure()
	SetPendingRequests(n int)
}

type nopMetrics struct{}

func (nopMetrics) PDUSent(pdu.CommandID)     {}
func (nopMetrics) PDUReceived(pdu.CommandID) {}
func (nopMetrics) KeepAliveFailure()         {}
func (nopMetrics) SetPendingRequests(int)    {}

// NopMetrics is a MetricsCollector that discards everything. It's the
// default when SessionConf.Metrics is left unset.
func NopMetrics() MetricsCollector {
	return nopMetrics{}
}

// PrometheusMetrics is a MetricsCollector backed by
// github.com/prometheus/client_golang. Construct one with
// NewPrometheusMetrics, which registers it against the given registry (for
// example prometheus.DefaultRegisterer).
type PrometheusMetrics struct {
	sent              *prometheus.CounterVec
	received          *prometheus.CounterVec
	keepAliveFailures prometheus.Counter
	pending           prometheus.Gauge
}

// NewPrometheusMetrics creates and registers the smpp_* metric family
// against reg. Panics if registration fails, matching client_golang's own
// MustRegister convention for process-lifetime metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		sent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smpp_pdus_sent_total",
				Help: "Total PDUs sent, by command_id.",
			},
			[]string{"command"},
		),
		received: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smpp_pdus_received_total",
				Help: "Total PDUs received, by command_id.",
			},
			[]string{"command"},
		),
		keepAliveFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "smpp_keepalive_failures_total",
				Help: "Total consecutive enquire_link keep-alive failures observed across all sessions.",
			},
		),
		pending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "smpp_pending_requests",
				Help: "Current number of in-flight requests awaiting a response.",
			},
		),
	}
	reg.MustRegister(m.sent, m.received, m.keepAliveFailures, m.pending)
	return m
}

// PDUSent implements MetricsCollector.
func (m *PrometheusMetrics) PDUSent(command pdu.CommandID) {
	m.sent.WithLabelValues(commandLabel(command)).Inc()
}

// PDUReceived implements MetricsCollector.
func (m *PrometheusMetrics) PDUReceived(command pdu.CommandID) {
	m.received.WithLabelValues(commandLabel(command)).Inc()
}

// KeepAliveFailure implements MetricsCollector.
func (m *PrometheusMetrics) KeepAliveFailure() {
	m.keepAliveFailures.Inc()
}

// SetPendingRequests implements MetricsCollector.
func (m *PrometheusMetrics) SetPendingRequests(n int) {
	m.pending.Set(float64(n))
}

func commandLabel(command pdu.CommandID) string {
	return fmt.Sprintf("0x%08x", uint32(command))
}
