package bookingRepo

import (
	"context"

	"pioneertravel/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists booking inquiries. Stored inquiries are never
// updated or deleted through this interface.
type BookingRepository interface {
	// Create inserts inquiry into collection and returns its generated id.
	Create(ctx context.Context, collection string, inquiry *models.BookingInquiry) (string, error)
	// EnsureIndexes creates the lookup indexes on each collection.
	EnsureIndexes(ctx context.Context, collections ...string) error
}

// ClientSource hands out a live MongoDB client. database.Manager satisfies it.
type ClientSource interface {
	Client(ctx context.Context) (*mongo.Client, error)
}

type mongoBookingRepo struct {
	clients  ClientSource
	database string
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo(clients ClientSource, database string) BookingRepository {
	return &mongoBookingRepo{
		clients:  clients,
		database: database,
	}
}

func (r *mongoBookingRepo) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := r.clients.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(r.database).Collection(name), nil
}
