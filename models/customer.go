package models

import (
	"strings"
	"time"
)

// Customer status options.
const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"
)

// Customer is a record-store customer row. Identity key is the normalized
// email when present, otherwise the normalized phone string.
type Customer struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Status      string    `bson:"status" json:"status"`
	LastContact string    `bson:"lastContact,omitempty" json:"lastContact,omitempty"` // YYYY-MM-DD
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CustomerInput carries the fields supplied on a customer contact. At least
// one of Email or Phone must be set.
type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Contact returns the input's primary contact string, preferring email.
func (in CustomerInput) Contact() string {
	if in.Email != "" {
		return in.Email
	}
	return in.Phone
}

// ClassifyContact splits a raw contact string into email or phone. A string
// containing '@' is an email (lowercased for matching), anything else is a
// phone number compared as a trimmed exact string.
func ClassifyContact(contact string) (email, phone string) {
	contact = strings.TrimSpace(contact)
	if strings.Contains(contact, "@") {
		return strings.ToLower(contact), ""
	}
	return "", contact
}
