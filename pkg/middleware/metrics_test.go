package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/flashbar-dev/flashbar/pkg/banner"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(WithRegistry(prometheus.NewRegistry()))
}

func TestMetricsBannerObserver(t *testing.T) {
	m := newTestMetrics(t)

	m.BannerShown(status.SeverityError)
	m.BannerShown(status.SeverityError)
	m.BannerShown(status.SeveritySuccess)
	m.BannerDismissed(banner.ReasonTimeout)

	errShown := m.notificationsShown.WithLabelValues("error")
	if got := counterValue(t, errShown); got != 2 {
		t.Errorf("expected 2 error banners shown, got %g", got)
	}

	dismissed := m.dismissalsTotal.WithLabelValues("timeout")
	if got := counterValue(t, dismissed); got != 1 {
		t.Errorf("expected 1 timeout dismissal, got %g", got)
	}
}

func TestMetricsClientGauge(t *testing.T) {
	m := newTestMetrics(t)

	m.ClientConnected()
	m.ClientConnected()
	m.ClientDisconnected()

	if got := gaugeValue(t, m.connectedClients); got != 1 {
		t.Errorf("expected 1 connected client, got %g", got)
	}
}

func TestMetricsToastCounter(t *testing.T) {
	m := newTestMetrics(t)

	m.ToastEmitted()
	m.ToastEmitted()

	if got := counterValue(t, m.toastsEmitted); got != 2 {
		t.Errorf("expected 2 toasts, got %g", got)
	}
}

func TestMetricsHandlerRecordsRequests(t *testing.T) {
	m := newTestMetrics(t)

	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("handler swallowed status, got %d", rec.Code)
	}

	c := m.requestsTotal.WithLabelValues("/healthz", "418")
	if got := counterValue(t, c); got != 1 {
		t.Errorf("expected 1 recorded request, got %g", got)
	}
}

func TestMetricsCustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("custom"))

	m.BannerShown(status.SeverityInfo)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := false
	for _, f := range families {
		if f.GetName() == "custom_notifications_shown_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected namespaced metric name in registry")
	}
}

func TestMetricsImplementsObserver(t *testing.T) {
	var _ banner.Observer = newTestMetrics(t)
}
