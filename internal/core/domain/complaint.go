package domain

import "github.com/google/uuid"

// ComplaintStatus represents the handling state of a customer complaint.
type ComplaintStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "open"
	ComplaintStatusResolved ComplaintStatus = "resolved"
)

// Complaint is a customer complaint awaiting resolution by a manager.
type Complaint struct {
	ID        uuid.UUID       `json:"id"`
	AccountID string          `json:"account_id"`
	Status    ComplaintStatus `json:"status"`
	Text      string          `json:"text"`
}

// IsOpen returns true if the complaint has not been resolved.
func (c *Complaint) IsOpen() bool {
	return c.Status == ComplaintStatusOpen
}
