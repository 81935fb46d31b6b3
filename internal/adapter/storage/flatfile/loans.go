package flatfile

import (
	"context"
	"fmt"

	"branch-ledger/internal/core/domain"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const loanFields = 4 // id,account_id,amount,status

// LoanStore persists loan applications. Applications are appended; the
// approval workflow rewrites the store when decisions land.
type LoanStore struct {
	store *Store
}

// NewLoanStore creates a loan store over the given file.
func NewLoanStore(path string) *LoanStore {
	return &LoanStore{store: NewStore(path, loanFields)}
}

// Append adds one new application.
func (s *LoanStore) Append(_ context.Context, loan domain.Loan) error {
	return s.store.Append(encodeLoan(loan))
}

// LoadAll returns every application in submission order.
func (s *LoanStore) LoadAll(_ context.Context) ([]domain.Loan, error) {
	rows, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	loans := make([]domain.Loan, 0, len(rows))
	for i, row := range rows {
		loan, err := decodeLoan(row, s.store.Path(), i+1)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

// SaveAll rewrites the store after decisions.
func (s *LoanStore) SaveAll(_ context.Context, loans []domain.Loan) error {
	rows := make([][]string, 0, len(loans))
	for _, loan := range loans {
		rows = append(rows, encodeLoan(loan))
	}
	return s.store.Save(rows)
}

func encodeLoan(loan domain.Loan) []string {
	return []string{
		loan.ID.String(),
		loan.AccountID,
		loan.Amount.StringFixed(2),
		string(loan.Status),
	}
}

func decodeLoan(row []string, path string, n int) (domain.Loan, error) {
	id, err := uuid.Parse(row[0])
	if err != nil {
		return domain.Loan{}, apperror.ErrMalformedRecord(path, n, fmt.Errorf("id %q: %w", row[0], err))
	}
	amount, err := decimal.NewFromString(row[2])
	if err != nil {
		return domain.Loan{}, apperror.ErrMalformedRecord(path, n, fmt.Errorf("amount %q: %w", row[2], err))
	}
	status := domain.LoanStatus(row[3])
	switch status {
	case domain.LoanStatusPending, domain.LoanStatusApproved, domain.LoanStatusRejected:
	default:
		return domain.Loan{}, apperror.ErrMalformedRecord(path, n, fmt.Errorf("unknown status %q", row[3]))
	}
	return domain.Loan{ID: id, AccountID: row[1], Amount: amount, Status: status}, nil
}
