package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pioneertravel/models"

	"github.com/google/uuid"
)

// ErrNotSaved is returned when the store acknowledged the write without an id.
var ErrNotSaved = errors.New("booking inquiry was not saved")

// Create inserts a new booking inquiry and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, collection string, inquiry *models.BookingInquiry) (string, error) {
	if inquiry == nil {
		return "", errors.New("nil booking inquiry")
	}
	coll, err := r.collection(ctx, collection)
	if err != nil {
		return "", err
	}

	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	res, err := coll.InsertOne(ctx, inquiry)
	if err != nil {
		return "", fmt.Errorf("failed to insert booking inquiry into %s: %w", collection, err)
	}
	if res == nil || res.InsertedID == nil {
		return "", ErrNotSaved
	}
	return inquiry.ID, nil
}
