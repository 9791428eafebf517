package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"pioneertravel/config"
	bookingRepo "pioneertravel/database/repository/booking"
	"pioneertravel/models"
	"pioneertravel/utils"

	"go.uber.org/zap"
)

// DefaultIntakeService is the production IntakeService.
type DefaultIntakeService struct {
	Config   config.Config
	DB       bookingRepo.ClientSource
	Repo     bookingRepo.BookingRepository
	Notifier Notifier
	Logger   *zap.Logger
}

// NewIntakeService wires the intake workflow.
func NewIntakeService(cfg config.Config, db bookingRepo.ClientSource, repo bookingRepo.BookingRepository, notifier Notifier, logger *zap.Logger) *DefaultIntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultIntakeService{
		Config:   cfg,
		DB:       db,
		Repo:     repo,
		Notifier: notifier,
		Logger:   logger,
	}
}

func (s *DefaultIntakeService) SubmitInquiry(ctx context.Context, body []byte) (inquiry *models.BookingInquiry, err error) {
	start := time.Now()
	bookingType := "unknown"
	defer func() {
		outcome := outcomeOf(err)
		utils.BookingInquiriesTotal.WithLabelValues(bookingType, outcome).Inc()
		utils.BookingIntakeDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	if missing := s.Config.MissingRequired(); len(missing) > 0 {
		s.Logger.Error("Missing environment variables",
			zap.Bool("MONGODB_URI", s.Config.MongoDBURI != ""),
			zap.Bool("SMTP_MAIL", s.Config.SMTPMail != ""),
			zap.Bool("SMTP_PASS", s.Config.SMTPPass != ""),
		)
		return nil, &ConfigError{Missing: missing}
	}

	if _, err := s.DB.Client(ctx); err != nil {
		return nil, &ConnectionError{Err: err}
	}

	payload, err := decodePayload(body)
	if err != nil {
		return nil, err
	}

	category := resolveCategory(payload["type"])
	bookingType = string(category.Type)

	inquiry, verr := category.Build(payload)
	if verr != nil {
		s.Logger.Info("Validation error",
			zap.String("type", bookingType),
			zap.String("field", verr.Field),
			zap.String("message", verr.Message),
		)
		return nil, verr
	}

	id, err := s.Repo.Create(ctx, category.Collection, inquiry)
	if err != nil {
		s.Logger.Error("Saving booking inquiry failed",
			zap.String("type", bookingType),
			zap.String("collection", category.Collection),
			zap.Error(err),
		)
		return nil, &PersistenceError{Collection: category.Collection, Err: err}
	}
	if id == "" {
		return nil, &PersistenceError{Collection: category.Collection, Err: bookingRepo.ErrNotSaved}
	}
	s.Logger.Info("Booking inquiry saved",
		zap.String("id", id),
		zap.String("type", bookingType),
	)

	// The inquiry is durable at this point; mail problems are only logged.
	if s.Notifier != nil {
		if err := s.Notifier.NotifyInquiry(ctx, inquiry); err != nil {
			s.Logger.Warn("Error sending emails", zap.String("id", id), zap.Error(err))
		} else {
			s.Logger.Info("Emails sent successfully", zap.String("id", id))
		}
	}
	return inquiry, nil
}

func decodePayload(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil || payload == nil {
		return nil, &ValidationError{Message: "Invalid request body"}
	}
	return payload, nil
}

func outcomeOf(err error) string {
	var (
		verr *ValidationError
		cerr *ConfigError
		nerr *ConnectionError
		perr *PersistenceError
	)
	switch {
	case err == nil:
		return "created"
	case errors.As(err, &verr):
		return "invalid"
	case errors.As(err, &cerr):
		return "misconfigured"
	case errors.As(err, &nerr):
		return "unavailable"
	case errors.As(err, &perr):
		return "not_saved"
	}
	return "error"
}
