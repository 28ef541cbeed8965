package inquiryRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"storabook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new inquiry and returns its ID.
func (r *mongoInquiryRepo) Create(ctx context.Context, inq models.Inquiry) (string, error) {
	if inq.ID == "" {
		inq.ID = uuid.New().String()
	}
	if inq.Status == "" {
		inq.Status = models.InquiryStatusNew
	}
	now := time.Now()
	inq.CreatedAt = now
	inq.UpdatedAt = now

	if _, err := r.inquiries.InsertOne(ctx, inq); err != nil {
		return "", fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return inq.ID, nil
}

// GetByID returns an inquiry by its ID.
func (r *mongoInquiryRepo) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	var inq models.Inquiry
	err := r.inquiries.FindOne(ctx, bson.M{"id": id}).Decode(&inq)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

// UpdateStatus sets an inquiry's status and returns the updated document.
func (r *mongoInquiryRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	res := r.inquiries.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var inq models.Inquiry
	if err := res.Decode(&inq); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("inquiry not found")
		}
		return nil, err
	}
	return &inq, nil
}

// GetByCustomer fetches all inquiries for a customer, optionally filtered
// by status.
func (r *mongoInquiryRepo) GetByCustomer(ctx context.Context, customerID, status string) ([]models.Inquiry, error) {
	filter := bson.M{"customerId": customerID}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.inquiries.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// Search matches inquiries whose subject or message contains the query,
// case-insensitively.
func (r *mongoInquiryRepo) Search(ctx context.Context, query string) ([]models.Inquiry, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"subject": pattern},
		{"message": pattern},
	}}
	cursor, err := r.inquiries.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// AddEvent appends an entry to an inquiry's history trail.
func (r *mongoInquiryRepo) AddEvent(ctx context.Context, ev models.InquiryEvent) (string, error) {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	ev.CreatedAt = time.Now()

	if _, err := r.events.InsertOne(ctx, ev); err != nil {
		return "", fmt.Errorf("failed to insert inquiry event: %w", err)
	}
	return ev.ID, nil
}

// GetHistory returns an inquiry's history in chronological order.
func (r *mongoInquiryRepo) GetHistory(ctx context.Context, inquiryID string) ([]models.InquiryEvent, error) {
	cursor, err := r.events.Find(ctx,
		bson.M{"inquiryId": inquiryID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.InquiryEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
