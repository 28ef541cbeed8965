package ledgerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storabook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking record and returns its ID. A record without
// a backing calendar event is rejected before touching storage.
func (r *mongoLedgerRepo) Create(ctx context.Context, rec models.BookingRecord) (string, error) {
	if rec.CalendarEventID == "" {
		return "", errors.New("booking record requires a calendar event id")
	}
	if rec.CustomerID == "" {
		return "", errors.New("booking record requires a customer id")
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Status == "" {
		rec.Status = models.BookingStatusScheduled
	}
	rec.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to insert booking record: %w", err)
	}
	return rec.ID, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoLedgerRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var rec models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByCustomer fetches all booking records for a customer.
func (r *mongoLedgerRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.BookingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
