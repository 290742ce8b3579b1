package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter metrics
var (
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_login_total",
			Help: "Total number of login attempts",
		},
	)

	SignupCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_signup_total",
			Help: "Total number of user registrations",
		},
	)

	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // "invalid_request", "email_already_exists", "invalid_password", ...
	)

	PropertyOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_property_operations_total",
			Help: "Total number of property operations",
		},
		[]string{"operation"}, // "create", "update", "delete", "search"
	)

	OwnershipDeniedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_ownership_denied_total",
			Help: "Total number of requests rejected because the caller does not own the resource",
		},
		[]string{"resource"},
	)

	EnquiryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_enquiries_total",
			Help: "Total number of enquiry state changes",
		},
		[]string{"event"}, // "created", "read"
	)

	GeocodeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_geocode_requests_total",
			Help: "Total number of geocoding lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)
)

// Histogram metrics
var (
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	SearchResultsHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "listing_search_results",
			Help:    "Number of properties returned by a search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(SignupCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(PropertyOperationCounter)
	prometheus.MustRegister(OwnershipDeniedCounter)
	prometheus.MustRegister(EnquiryCounter)
	prometheus.MustRegister(GeocodeCounter)

	prometheus.MustRegister(DBOperationDuration)
	prometheus.MustRegister(SearchResultsHistogram)
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(time.Since(startTime).Seconds())
	}
}

// RecordAuthError counts an authentication failure
func RecordAuthError(errorType string) {
	AuthErrorCounter.WithLabelValues(errorType).Inc()
}

// RecordOwnershipDenied counts a rejected mutation on someone else's resource
func RecordOwnershipDenied(resource string) {
	OwnershipDeniedCounter.WithLabelValues(resource).Inc()
}
