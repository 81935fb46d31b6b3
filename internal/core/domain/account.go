package domain

import "github.com/shopspring/decimal"

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusClosed AccountStatus = "closed"
)

// Account represents one customer account in the active ledger.
// Balance is a fixed-point decimal and must never go negative.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Contact string          `json:"contact"`
	Status  AccountStatus   `json:"status"`
}

// IsActive returns true if the account is in the active ledger.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// ClosedAccount is the archival record written when an account is closed.
// Closure is one-way; only identity survives, history stays in the
// transaction log.
type ClosedAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
