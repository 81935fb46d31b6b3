package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents the decision state of a loan application.
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "Pending"
	LoanStatusApproved LoanStatus = "Approved"
	LoanStatusRejected LoanStatus = "Rejected"
)

// Loan is a customer loan application. Decisions are one-way: a loan leaves
// Pending exactly once.
type Loan struct {
	ID        uuid.UUID       `json:"id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    LoanStatus      `json:"status"`
}

// IsPending returns true if the loan still awaits a decision.
func (l *Loan) IsPending() bool {
	return l.Status == LoanStatusPending
}
