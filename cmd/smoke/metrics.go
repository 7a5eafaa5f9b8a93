package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Login probe latency metrics
	loginProbeLatency     *prometheus.HistogramVec
	loginProbeStatusCodes *prometheus.CounterVec
	loginProbeErrors      *prometheus.CounterVec

	// Token presence per recognized response field
	loginTokenPresent *prometheus.GaugeVec
)

func init() {
	// Login latency histogram with buckets sized for a local backend
	loginProbeLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "login_probe_latency_milliseconds",
			Help:    "Login endpoint response latency in milliseconds",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 500, 1000, 2000, 5000},
		},
		[]string{"outcome"},
	)
	prometheus.MustRegister(loginProbeLatency)

	// Status code counter
	loginProbeStatusCodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_probe_status_codes_total",
			Help: "Total count of login probe responses by status code",
		},
		[]string{"status_code"},
	)
	prometheus.MustRegister(loginProbeStatusCodes)

	// Probe errors counter
	loginProbeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_probe_errors_total",
			Help: "Total number of login probe errors",
		},
		[]string{"error_type"},
	)
	prometheus.MustRegister(loginProbeErrors)

	// Token presence gauge (1 = field present and truthy in last response)
	loginTokenPresent = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "login_probe_token_present",
			Help: "Whether the last login response carried a truthy token field",
		},
		[]string{"field"},
	)
	prometheus.MustRegister(loginTokenPresent)
}

// RecordLoginLatency records the latency and status code of a login probe
func RecordLoginLatency(outcome string, latencyMs float64, statusCode int) {
	loginProbeLatency.WithLabelValues(outcome).Observe(latencyMs)
	loginProbeStatusCodes.WithLabelValues(fmt.Sprintf("%d", statusCode)).Inc()
}

// RecordLoginError records a login probe error
func RecordLoginError(errorType string) {
	loginProbeErrors.WithLabelValues(errorType).Inc()
}

// RecordTokenPresence records whether a recognized token field was returned
func RecordTokenPresence(field string, present bool) {
	value := 0.0
	if present {
		value = 1.0
	}
	loginTokenPresent.WithLabelValues(field).Set(value)
}

func StartMetricsServer(addr string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, nil)
}
