package domain

import (
	"time"

	"github.com/google/uuid"
)

// DebitCard records a card issued against an account.
type DebitCard struct {
	CardNumber uuid.UUID `json:"card_number"`
	AccountID  string    `json:"account_id"`
	IssuedAt   time.Time `json:"issued_at"`
}
