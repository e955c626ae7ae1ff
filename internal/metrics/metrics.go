// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RedirectsTotal counts legacy hierarchical URLs sent to their
	// single-category equivalent, by request kind and crawler flag.
	RedirectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "singlecat_redirects_total",
			Help: "Redirects from hierarchical category URLs, by kind and bot.",
		}, []string{"kind", "bot"})

	// LinkRewritesTotal counts links collapsed to a single category segment.
	LinkRewritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "singlecat_link_rewrites_total",
			Help: "Permalinks reduced to the lowest-level category, by link type.",
		}, []string{"link"})

	// LinkFallbacksTotal counts post links left untouched, by reason.
	LinkFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "singlecat_link_fallbacks_total",
			Help: "Post permalinks returned unchanged, by reason.",
		}, []string{"reason"})

	SettingsLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_settings_load_total",
			Help: "Cumulative number of successful site_config loads.",
		})

	SettingsLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_settings_load_errors_total",
			Help: "Cumulative number of site_config load errors.",
		})
)

func init() {
	prometheus.MustRegister(
		RedirectsTotal,
		LinkRewritesTotal,
		LinkFallbacksTotal,
		SettingsLoadTotal,
		SettingsLoadErrorsTotal,
	)
}
