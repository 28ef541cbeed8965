package inquiry

import (
	"context"
	"errors"

	customerRepo "storabook/database/repository/customer"
	inquiryRepo "storabook/database/repository/inquiry"
	"storabook/models"
)

// Sentinel errors callers branch on.
var (
	ErrInvalidInput = errors.New("invalid inquiry input")
	ErrNotFound     = errors.New("inquiry not found")
)

// CreateInquiryInput is the inbound payload for a new inquiry.
type CreateInquiryInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Type     string `json:"type"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Priority string `json:"priority,omitempty"`
}

// InquiryService manages customer inquiries and their history trail.
type InquiryService interface {
	Create(ctx context.Context, in CreateInquiryInput) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id, status, message string) (*models.Inquiry, error)
	AddResponse(ctx context.Context, id, message, responder string) (*models.InquiryEvent, error)
	GetCustomerInquiries(ctx context.Context, customerID, status string) ([]models.Inquiry, error)
	GetHistory(ctx context.Context, id string) ([]models.InquiryEvent, error)
	Search(ctx context.Context, query string) ([]models.Inquiry, error)
}

// DefaultInquiryService implements InquiryService.
type DefaultInquiryService struct {
	Repo      inquiryRepo.InquiryRepository
	Customers customerRepo.CustomerRepository
}
