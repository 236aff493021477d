package domain

import "time"

const (
	InquiryKindWholesale = "wholesale"
	InquiryKindContact   = "contact"
)

// Inquiry is a wholesale or contact form submission.
type Inquiry struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"businessName,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	BusinessType string    `json:"businessType,omitempty"`
	Volume       string    `json:"volume,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}
