package ledgerRepo

import (
	"context"

	"storabook/database"
	"storabook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingLedgerRepository is the ledger port for booking records, keyed to
// a customer and a calendar event.
type BookingLedgerRepository interface {
	// Create persists a booking record and returns its ID. The record must
	// reference an existing calendar event.
	Create(ctx context.Context, rec models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetByCustomer(ctx context.Context, customerID string) ([]models.BookingRecord, error)
}

type mongoLedgerRepo struct {
	coll *mongo.Collection
}

// NewMongoLedgerRepo returns a new BookingLedgerRepository instance using MongoDB.
func NewMongoLedgerRepo() BookingLedgerRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoLedgerRepo{
		coll: db.Collection("bookings"),
	}
}
