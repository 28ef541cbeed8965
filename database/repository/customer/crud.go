package customerRepo

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

// FindByContact looks a customer up by email (case-insensitive) or phone
// (trimmed exact match).
func (r *mongoCustomerRepo) FindByContact(ctx context.Context, contact string) (*models.Customer, error) {
	email, phone := models.ClassifyContact(contact)

	var filter bson.M
	if email != "" {
		filter = bson.M{"email": email}
	} else if phone != "" {
		filter = bson.M{"phone": phone}
	} else {
		return nil, errors.New("empty contact")
	}

	var customer models.Customer
	err := r.coll.FindOne(ctx, filter).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}
	return &customer, nil
}

// Upsert resolves a customer by contact, updating the existing record or
// creating a new one.
func (r *mongoCustomerRepo) Upsert(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	contact := in.Contact()
	if contact == "" {
		return nil, errors.New("either email or phone must be provided")
	}

	existing, err := r.FindByContact(ctx, contact)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		merged := MergeCustomer(*existing, in, now)
		if _, err := r.coll.UpdateOne(ctx,
			bson.M{"id": existing.ID},
			bson.M{"$set": merged},
		); err != nil {
			return nil, fmt.Errorf("failed to update customer %s: %w", existing.ID, err)
		}
		return &merged, nil
	}

	email, phone := models.ClassifyContact(contact)
	if in.Email != "" {
		email, _ = models.ClassifyContact(in.Email)
	}
	if in.Phone != "" {
		_, phone = models.ClassifyContact(in.Phone)
	}
	customer := models.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       email,
		Phone:       phone,
		Address:     in.Address,
		Status:      models.CustomerStatusActive,
		LastContact: now.Format("2006-01-02"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// GetByID returns a customer by its ID.
func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// MergeCustomer applies repeat-contact update semantics: name and address
// are refreshed when supplied, last contact advances to now, and email or
// phone is set only when newly provided. Existing values are never cleared.
func MergeCustomer(existing models.Customer, in models.CustomerInput, now time.Time) models.Customer {
	merged := existing
	if in.Name != "" {
		merged.Name = in.Name
	}
	if in.Address != "" {
		merged.Address = in.Address
	}
	if in.Email != "" {
		email, _ := models.ClassifyContact(in.Email)
		merged.Email = email
	}
	if in.Phone != "" {
		_, phone := models.ClassifyContact(in.Phone)
		merged.Phone = phone
	}
	merged.LastContact = now.Format("2006-01-02")
	merged.UpdatedAt = now
	return merged
}
