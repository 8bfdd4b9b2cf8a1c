package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultClosed   = "closed"
	ResultError    = "error"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	FormSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recruitment_form_saves_total",
			Help: "Total number of recruitment form saves by result",
		},
		[]string{"result"},
	)

	Applications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_applications_total",
			Help: "Total number of project application submissions by result",
		},
		[]string{"result"},
	)

	SessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_events_total",
			Help: "Total number of session changes by kind",
		},
		[]string{"kind"},
	)

	AuditLogsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_logs_purged_total",
			Help: "Total number of audit log rows removed by retention cleanup",
		},
	)
)
