package metrics

import "github.com/prometheus/client_golang/prometheus"

// HTTP traffic, observed by the router middleware.
var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"route", "method", "status"},
	)
	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request duration seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	InFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "http_in_flight_requests", Help: "In-flight HTTP requests"},
	)
)

// Business counters, observed by the handlers.
var (
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "users_registered_total", Help: "Users created on first sign-in"},
	)
	BookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "bookings_created_total", Help: "Booking requests accepted for storage"},
	)
	BookingsDecided = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bookings_decided_total", Help: "Guide decisions on bookings"},
		[]string{"status"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		RequestsTotal, ReqDuration, InFlight,
		UsersRegistered, BookingsCreated, BookingsDecided,
	)
}
