// Package metrics exposes reload and render counters for the template
// store.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the store's instrumentation. Each instance carries its
// own registry so tests do not collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	ReloadsTotal     *prometheus.CounterVec
	RendersTotal     *prometheus.CounterVec
	CatalogTemplates prometheus.Gauge
}

// New creates and registers the metric set.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ReloadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docsrv_template_reloads_total",
			Help: "Catalog rebuild attempts triggered by filesystem changes.",
		}, []string{"result"}),
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "docsrv_page_renders_total",
			Help: "Page renders served, by result.",
		}, []string{"result"}),
		CatalogTemplates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "docsrv_catalog_templates",
			Help: "Number of templates in the active catalog.",
		}),
	}

	registry.MustRegister(m.ReloadsTotal, m.RendersTotal, m.CatalogTemplates)
	return m
}

// ReloadSucceeded records a successful rebuild-and-swap.
func (m *Metrics) ReloadSucceeded(templateCount int) {
	m.ReloadsTotal.WithLabelValues("success").Inc()
	m.CatalogTemplates.Set(float64(templateCount))
}

// ReloadFailed records a rebuild that left the previous catalog in
// place.
func (m *Metrics) ReloadFailed() {
	m.ReloadsTotal.WithLabelValues("failure").Inc()
}

// Handler serves the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
