package http

import (
	"time"

	"github.com/fwojciec/readlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render paths reported in metric labels.
const (
	renderPathPreview = "preview"
	renderPathReview  = "review"
)

type metrics struct {
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	wsClients      prometheus.Gauge
	requests       *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "readlog",
			Name:      "renders_total",
			Help:      "Total number of review renders by path",
		}, []string{"path"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "readlog",
			Name:      "render_duration_seconds",
			Help:      "Review render duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"path"}),
		wsClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "readlog",
			Name:      "ws_clients",
			Help:      "Number of connected WebSocket clients",
		}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "readlog",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}
}

// observeRender runs render on source and records it under path.
func (m *metrics) observeRender(path string, render readlog.RenderFunc, source string) string {
	start := time.Now()
	html := render(source)
	m.renderDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	m.renders.WithLabelValues(path).Inc()
	return html
}
