package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingInquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_inquiries_total",
			Help: "Booking inquiry submissions by category and outcome",
		},
		[]string{"type", "outcome"},
	)

	BookingIntakeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_intake_duration_seconds",
			Help:    "Time spent handling a booking inquiry submission",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_notifications_sent_total",
			Help: "Booking notification emails delivered to the mail transport",
		},
		[]string{"kind"},
	)

	NotificationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_notification_failures_total",
			Help: "Booking notification emails that failed to render or send",
		},
		[]string{"kind"},
	)
)
