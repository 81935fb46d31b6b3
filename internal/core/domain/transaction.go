package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRecord is one immutable entry in the append-only transaction
// log. Amount is signed: credits are positive, debits negative. The
// description keeps the human-readable "$<amount>" narrative so textual
// reports stay compatible, but the structured Amount field is authoritative.
type TransactionRecord struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
}

// IsCredit returns true if the record increased the account balance.
func (r *TransactionRecord) IsCredit() bool {
	return r.Amount.IsPositive()
}
