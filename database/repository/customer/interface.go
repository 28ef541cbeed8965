package customerRepo

import (
	"context"

	"storabook/database"
	"storabook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository is the directory port for customer find-or-create and
// update-on-repeat-contact semantics.
type CustomerRepository interface {
	// FindByContact looks a customer up by email or phone. Returns
	// (nil, nil) when no customer matches.
	FindByContact(ctx context.Context, contact string) (*models.Customer, error)
	// Upsert finds the customer by the input's contact and updates it, or
	// creates a new Active customer. Existing email/phone values are never
	// cleared. This is a check-then-act sequence and is not atomic.
	Upsert(ctx context.Context, in models.CustomerInput) (*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a new CustomerRepository instance using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoCustomerRepo{
		coll: db.Collection("customers"),
	}
}
