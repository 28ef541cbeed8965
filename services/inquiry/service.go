package inquiry

import (
	"context"
	"fmt"
	"strings"

	"storabook/models"
	"storabook/utils"

	"go.uber.org/zap"
)

const defaultResponder = "AI Assistant"

// Create resolves the customer, persists the inquiry, and records the
// opening history entry.
func (s *DefaultInquiryService) Create(ctx context.Context, in CreateInquiryInput) (*models.Inquiry, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, fmt.Errorf("%w: name, subject and message are required", ErrInvalidInput)
	}
	if in.Email == "" && in.Phone == "" {
		return nil, fmt.Errorf("%w: either email or phone must be provided", ErrInvalidInput)
	}
	if !models.ValidInquiryType(in.Type) {
		return nil, fmt.Errorf("%w: invalid inquiry type %q", ErrInvalidInput, in.Type)
	}
	priority := in.Priority
	if priority == "" {
		priority = "Medium"
	}
	if !models.ValidInquiryPriority(priority) {
		return nil, fmt.Errorf("%w: invalid priority %q", ErrInvalidInput, priority)
	}

	customer, err := s.Customers.Upsert(ctx, models.CustomerInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	inq := models.Inquiry{
		CustomerID: customer.ID,
		Type:       in.Type,
		Subject:    in.Subject,
		Message:    in.Message,
		Status:     models.InquiryStatusNew,
		Priority:   priority,
	}
	id, err := s.Repo.Create(ctx, inq)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	inq.ID = id

	if _, err := s.Repo.AddEvent(ctx, models.InquiryEvent{
		InquiryID: id,
		Action:    "Created",
		Message:   in.Message,
		CreatedBy: "System",
	}); err != nil {
		logger.Warn("inquiry: failed to record creation event",
			zap.String("inquiryId", id), zap.Error(err))
	}

	created, err := s.Repo.GetByID(ctx, id)
	if err != nil || created == nil {
		return &inq, nil
	}
	return created, nil
}

// UpdateStatus transitions an inquiry and records the change in history.
func (s *DefaultInquiryService) UpdateStatus(ctx context.Context, id, status, message string) (*models.Inquiry, error) {
	if !models.ValidInquiryStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}

	inq, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	if _, err := s.Repo.AddEvent(ctx, models.InquiryEvent{
		InquiryID: id,
		Action:    fmt.Sprintf("Status Updated to %s", status),
		Message:   message,
		CreatedBy: "System",
	}); err != nil {
		utils.GetLogger().Warn("inquiry: failed to record status event",
			zap.String("inquiryId", id), zap.Error(err))
	}
	return inq, nil
}

// AddResponse records a reply on an inquiry and moves it to In Progress.
func (s *DefaultInquiryService) AddResponse(ctx context.Context, id, message, responder string) (*models.InquiryEvent, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if responder == "" {
		responder = defaultResponder
	}

	if _, err := s.Repo.UpdateStatus(ctx, id, models.InquiryStatusInProgress); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	ev := models.InquiryEvent{
		InquiryID: id,
		Action:    "Responded",
		Message:   message,
		CreatedBy: responder,
	}
	evID, err := s.Repo.AddEvent(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("failed to record response: %w", err)
	}
	ev.ID = evID
	return &ev, nil
}

// GetCustomerInquiries lists a customer's inquiries, optionally filtered
// by status.
func (s *DefaultInquiryService) GetCustomerInquiries(ctx context.Context, customerID, status string) ([]models.Inquiry, error) {
	if status != "" && !models.ValidInquiryStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}
	return s.Repo.GetByCustomer(ctx, customerID, status)
}

// GetHistory returns an inquiry's history trail in chronological order.
func (s *DefaultInquiryService) GetHistory(ctx context.Context, id string) ([]models.InquiryEvent, error) {
	return s.Repo.GetHistory(ctx, id)
}

// Search matches inquiries by subject or message substring.
func (s *DefaultInquiryService) Search(ctx context.Context, query string) ([]models.Inquiry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	return s.Repo.Search(ctx, query)
}
