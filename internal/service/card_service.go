package service

import (
	"context"
	"time"

	"branch-ledger/internal/core/domain"
	"branch-ledger/internal/core/ports"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cardService implements ports.CardService.
type cardService struct {
	cards    ports.DebitCardRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

// NewCardService creates a new card service.
func NewCardService(cards ports.DebitCardRepository, accounts ports.AccountRepository, log zerolog.Logger) ports.CardService {
	return &cardService{cards: cards, accounts: accounts, log: log}
}

// Issue records a new debit card against an active account.
func (s *cardService) Issue(ctx context.Context, accountID string) (*domain.DebitCard, error) {
	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := ledger.Get(accountID); !ok {
		return nil, apperror.ErrNotFound(accountID)
	}

	card := domain.DebitCard{
		CardNumber: uuid.New(),
		AccountID:  accountID,
		IssuedAt:   time.Now().UTC(),
	}
	if err := s.cards.Append(ctx, card); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("card_number", card.CardNumber.String()).
		Str("account_id", accountID).
		Msg("debit card issued")
	return &card, nil
}

// ListFor returns every card issued against the account.
func (s *cardService) ListFor(ctx context.Context, accountID string) ([]domain.DebitCard, error) {
	return s.cards.ListFor(ctx, accountID)
}
