package inquiryRepo

import (
	"context"

	"storabook/database"
	"storabook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InquiryRepository stores inquiries and their history trail.
type InquiryRepository interface {
	Create(ctx context.Context, inq models.Inquiry) (string, error)
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error)
	GetByCustomer(ctx context.Context, customerID, status string) ([]models.Inquiry, error)
	Search(ctx context.Context, query string) ([]models.Inquiry, error)

	AddEvent(ctx context.Context, ev models.InquiryEvent) (string, error)
	GetHistory(ctx context.Context, inquiryID string) ([]models.InquiryEvent, error)
}

type mongoInquiryRepo struct {
	inquiries *mongo.Collection
	events    *mongo.Collection
}

// NewMongoInquiryRepo returns a new InquiryRepository instance using MongoDB.
func NewMongoInquiryRepo() InquiryRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoInquiryRepo{
		inquiries: db.Collection("inquiries"),
		events:    db.Collection("inquiry_events"),
	}
}
