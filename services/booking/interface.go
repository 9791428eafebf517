package booking

import (
	"context"

	"pioneertravel/models"
)

// IntakeService runs the booking-inquiry workflow for one submission.
type IntakeService interface {
	// SubmitInquiry validates body, stores it and triggers notifications.
	// Errors are *ConfigError, *ConnectionError, *ValidationError,
	// *PersistenceError or unclassified.
	SubmitInquiry(ctx context.Context, body []byte) (*models.BookingInquiry, error)
}

// Notifier delivers the emails for a stored inquiry. It blocks until every
// send finished or timed out; the returned error is informational only.
type Notifier interface {
	NotifyInquiry(ctx context.Context, inquiry *models.BookingInquiry) error
}
