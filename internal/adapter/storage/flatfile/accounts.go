package flatfile

import (
	"context"
	"fmt"

	"branch-ledger/internal/core/domain"
	"branch-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

const (
	accountFields = 5 // id,name,balance,contact,status
	archiveFields = 2 // id,name
)

// AccountStore persists the active ledger, one row per account, plus the
// append-only closed-account archive.
type AccountStore struct {
	store   *Store
	archive *Store
}

// NewAccountStore creates an account store over the given ledger file and
// closed-account archive file.
func NewAccountStore(path, archivePath string) *AccountStore {
	return &AccountStore{
		store:   NewStore(path, accountFields),
		archive: NewStore(archivePath, archiveFields),
	}
}

// Load parses every account row into a ledger. A row with a non-numeric
// balance or unknown status is a malformed record.
func (s *AccountStore) Load(_ context.Context) (*domain.Ledger, error) {
	rows, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	ledger := domain.NewLedger()
	for i, row := range rows {
		balance, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, apperror.ErrMalformedRecord(s.store.Path(), i+1,
				fmt.Errorf("balance %q: %w", row[2], err))
		}
		status := domain.AccountStatus(row[4])
		if status != domain.AccountStatusActive && status != domain.AccountStatusClosed {
			return nil, apperror.ErrMalformedRecord(s.store.Path(), i+1,
				fmt.Errorf("unknown status %q", row[4]))
		}
		ledger.Put(&domain.Account{
			ID:      row[0],
			Name:    row[1],
			Balance: balance,
			Contact: row[3],
			Status:  status,
		})
	}
	return ledger, nil
}

// Save rewrites the ledger store, preserving the ledger's iteration order.
func (s *AccountStore) Save(_ context.Context, ledger *domain.Ledger) error {
	accounts := ledger.Accounts()
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{
			a.ID,
			a.Name,
			a.Balance.StringFixed(2),
			a.Contact,
			string(a.Status),
		})
	}
	return s.store.Save(rows)
}

// Archive appends one closed-account record. The archive is never rewritten.
func (s *AccountStore) Archive(_ context.Context, rec domain.ClosedAccount) error {
	return s.archive.Append([]string{rec.ID, rec.Name})
}

// Archived returns every closed-account record in closure order.
func (s *AccountStore) Archived(_ context.Context) ([]domain.ClosedAccount, error) {
	rows, err := s.archive.Load()
	if err != nil {
		return nil, err
	}
	recs := make([]domain.ClosedAccount, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, domain.ClosedAccount{ID: row[0], Name: row[1]})
	}
	return recs, nil
}
