package flatfile

import (
	"context"
	"fmt"
	"time"

	"branch-ledger/internal/core/domain"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
)

const cardFields = 3 // card_number,account_id,issued_at

// CardStore is the append-only register of issued debit cards.
type CardStore struct {
	store *Store
}

// NewCardStore creates a card store over the given file.
func NewCardStore(path string) *CardStore {
	return &CardStore{store: NewStore(path, cardFields)}
}

// Append records one issued card.
func (s *CardStore) Append(_ context.Context, card domain.DebitCard) error {
	return s.store.Append([]string{
		card.CardNumber.String(),
		card.AccountID,
		card.IssuedAt.UTC().Format(time.RFC3339),
	})
}

// ListFor returns every card issued against the account, in issue order.
func (s *CardStore) ListFor(_ context.Context, accountID string) ([]domain.DebitCard, error) {
	rows, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	var cards []domain.DebitCard
	for i, row := range rows {
		if row[1] != accountID {
			continue
		}
		number, err := uuid.Parse(row[0])
		if err != nil {
			return nil, apperror.ErrMalformedRecord(s.store.Path(), i+1, fmt.Errorf("card number %q: %w", row[0], err))
		}
		issuedAt, err := time.Parse(time.RFC3339, row[2])
		if err != nil {
			return nil, apperror.ErrMalformedRecord(s.store.Path(), i+1, fmt.Errorf("issued_at %q: %w", row[2], err))
		}
		cards = append(cards, domain.DebitCard{CardNumber: number, AccountID: row[1], IssuedAt: issuedAt})
	}
	return cards, nil
}
