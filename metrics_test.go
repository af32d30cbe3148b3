package smpp_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/smppcore/smpp"
	"github.com/smppcore/smpp/pdu"
)

func TestPrometheusMetricsRecordsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := smpp.NewPrometheusMetrics(reg)

	m.PDUSent(pdu.SubmitSmID)
	m.PDUSent(pdu.SubmitSmID)
	m.PDUReceived(pdu.SubmitSmRespID)
	m.KeepAliveFailure()
	m.SetPendingRequests(3)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := map[string]float64{}
	for _, mf := range families {
		switch mf.GetName() {
		case "smpp_pdus_sent_total":
			for _, metric := range mf.GetMetric() {
				found["sent"] += metric.GetCounter().GetValue()
			}
		case "smpp_pdus_received_total":
			for _, metric := range mf.GetMetric() {
				found["received"] += metric.GetCounter().GetValue()
			}
		case "smpp_keepalive_failures_total":
			for _, metric := range mf.GetMetric() {
				found["keepalive"] += metric.GetCounter().GetValue()
			}
		case "smpp_pending_requests":
			for _, metric := range mf.GetMetric() {
				found["pending"] = metric.GetGauge().GetValue()
			}
		}
	}

	require.Equal(t, float64(2), found["sent"])
	require.Equal(t, float64(1), found["received"])
	require.Equal(t, float64(1), found["keepalive"])
	require.Equal(t, float64(3), found["pending"])
}
