package daemon

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/charlie0129/battreport/pkg/report"
)

const (
	resultOK         = "ok"
	resultUnreadable = "unreadable"

	sectionMetrics         = "metrics"
	sectionCapacityHistory = "capacity_history"
)

var (
	registry = prometheus.NewRegistry()

	parsesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "battreport",
		Name:      "parses_total",
		Help:      "Battery reports parsed, by result.",
	}, []string{"result"})

	syntheticSectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "battreport",
		Name:      "synthetic_sections_total",
		Help:      "Report sections that fell back to placeholder data, by section.",
	}, []string{"section"})

	batteryHealthPercent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "battreport",
		Name:      "last_battery_health_percent",
		Help:      "Battery health of the last report parsed from observed data.",
	})
)

func init() {
	registry.MustRegister(parsesTotal, syntheticSectionsTotal, batteryHealthPercent)
}

func metricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func observeReport(r *report.ParsedReport) {
	parsesTotal.WithLabelValues(resultOK).Inc()
	if r.MetricsOrigin.Synthetic() {
		syntheticSectionsTotal.WithLabelValues(sectionMetrics).Inc()
	} else {
		batteryHealthPercent.Set(report.Health(r.Metrics[report.FullChargeCapacity], r.Metrics[report.DesignCapacity]))
	}
	if r.CapacityHistory.Origin.Synthetic() {
		syntheticSectionsTotal.WithLabelValues(sectionCapacityHistory).Inc()
	}
}
