package models

import "time"

// Inquiry status options.
const (
	InquiryStatusNew        = "New"
	InquiryStatusInProgress = "In Progress"
	InquiryStatusWaiting    = "Waiting for Customer"
	InquiryStatusResolved   = "Resolved"
	InquiryStatusClosed     = "Closed"
)

// InquiryStatusOptions lists the valid inquiry statuses.
var InquiryStatusOptions = []string{
	InquiryStatusNew,
	InquiryStatusInProgress,
	InquiryStatusWaiting,
	InquiryStatusResolved,
	InquiryStatusClosed,
}

// InquiryTypeOptions lists the valid inquiry types.
var InquiryTypeOptions = []string{
	"Storage Size Question",
	"Pricing Inquiry",
	"Availability Check",
	"Booking Request",
	"Technical Support",
	"Complaint",
	"Feedback",
	"Other",
}

// InquiryPriorityOptions lists the valid priorities.
var InquiryPriorityOptions = []string{"Low", "Medium", "High", "Urgent"}

// Inquiry is a customer inquiry row in the record store.
type Inquiry struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	Type       string    `bson:"type" json:"type"`
	Subject    string    `bson:"subject" json:"subject"`
	Message    string    `bson:"message" json:"message"`
	Status     string    `bson:"status" json:"status"`
	Priority   string    `bson:"priority" json:"priority"`
	AssignedTo string    `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InquiryEvent is one entry in an inquiry's history trail.
type InquiryEvent struct {
	ID        string    `bson:"id" json:"id"`
	InquiryID string    `bson:"inquiryId" json:"inquiryId"`
	Action    string    `bson:"action" json:"action"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ValidInquiryType reports whether t is an accepted inquiry type.
func ValidInquiryType(t string) bool { return contains(InquiryTypeOptions, t) }

// ValidInquiryStatus reports whether s is an accepted inquiry status.
func ValidInquiryStatus(s string) bool { return contains(InquiryStatusOptions, s) }

// ValidInquiryPriority reports whether p is an accepted priority.
func ValidInquiryPriority(p string) bool { return contains(InquiryPriorityOptions, p) }

func contains(opts []string, v string) bool {
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
