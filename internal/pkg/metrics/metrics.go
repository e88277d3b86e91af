package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Admission outcomes.
const (
	OutcomeAdmitted          = "admitted"
	OutcomeDuplicate         = "duplicate"
	OutcomeFull              = "full"
	OutcomeWorkspaceNotFound = "workspace_not_found"
	OutcomeRejected          = "rejected"
	OutcomeError             = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cleanspace_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cleanspace_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationAdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cleanspace_reservation_admissions_total",
			Help: "Reservation admission decisions by outcome",
		},
		[]string{"outcome"},
	)

	WorkspacesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cleanspace_workspaces_created_total",
			Help: "Total number of workspaces created",
		},
	)

	AvailabilityQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cleanspace_availability_queries_total",
			Help: "Total number of availability searches",
		},
	)

	AvailableWorkspaces = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cleanspace_available_workspaces",
			Help:    "Number of workspaces returned per availability search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	TransactionRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cleanspace_transaction_retries_total",
			Help: "Transactions retried after a serialization failure or deadlock",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cleanspace_logins_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cleanspace_events_published_total",
			Help: "Reservation events handed to the publisher by result",
		},
		[]string{"driver", "result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAdmission(outcome string) {
	ReservationAdmissionsTotal.WithLabelValues(outcome).Inc()
}

func RecordWorkspaceCreated() {
	WorkspacesCreatedTotal.Inc()
}

func RecordAvailabilityQuery(found int) {
	AvailabilityQueriesTotal.Inc()
	AvailableWorkspaces.Observe(float64(found))
}

func RecordTransactionRetry() {
	TransactionRetriesTotal.Inc()
}

func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginsTotal.WithLabelValues(result).Inc()
}

func RecordEventPublished(driver string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsPublishedTotal.WithLabelValues(driver, result).Inc()
}
