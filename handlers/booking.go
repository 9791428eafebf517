package handlers

import (
	"errors"
	"io"
	"net/http"

	"pioneertravel/models"
	"pioneertravel/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// BookingHandler exposes the booking-inquiry intake endpoint.
type BookingHandler struct {
	Service booking.IntakeService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.IntakeService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{Service: svc, Logger: logger}
}

// SubmitInquiry handles every method on the intake path; only POST is served.
func (h *BookingHandler) SubmitInquiry(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, models.Failure("Only Post Method Is Allowed"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		logger.Info("Failed to read request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.Failure("Invalid request body"))
		return
	}

	inquiry, err := h.Service.SubmitInquiry(c.Request.Context(), body)
	if err != nil {
		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Booking inquiry failed", zap.Int("status", status), zap.Error(err))
		}
		c.JSON(status, models.Failure(message))
		return
	}

	logger.Info("Booking inquiry submitted",
		zap.String("id", inquiry.ID),
		zap.String("type", string(inquiry.Type)),
	)
	c.JSON(http.StatusCreated, models.Success("Booking Inquiry Submitted Successfully"))
}

// classify maps an intake error to its HTTP status and client message.
func classify(err error) (int, string) {
	var (
		verr *booking.ValidationError
		cerr *booking.ConfigError
		perr *booking.PersistenceError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.As(err, &cerr):
		return http.StatusInternalServerError, "Server configuration error - Missing environment variables"
	case errors.As(err, &perr):
		return http.StatusInternalServerError, "Error While Submitting Booking Inquiry"
	}
	if msg := err.Error(); msg != "" {
		return http.StatusInternalServerError, msg
	}
	return http.StatusInternalServerError, "Internal Server Error"
}
