package service

import (
	"context"
	"sync"

	"branch-ledger/internal/core/domain"
	"branch-ledger/internal/core/ports"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// loanService implements ports.LoanService. Loans never touch the ledger:
// an approval records a decision, it does not disburse funds. Decide
// rewrites the store from a load, so all operations share one critical
// section; otherwise a decision racing an application could drop it.
type loanService struct {
	mu       sync.Mutex
	loans    ports.LoanRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

// NewLoanService creates a new loan service.
func NewLoanService(loans ports.LoanRepository, accounts ports.AccountRepository, log zerolog.Logger) ports.LoanService {
	return &loanService{loans: loans, accounts: accounts, log: log}
}

// Apply files a loan application for an existing account.
func (s *loanService) Apply(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Loan, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := ledger.Get(accountID); !ok {
		return nil, apperror.ErrNotFound(accountID)
	}

	loan := domain.Loan{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Status:    domain.LoanStatusPending,
	}
	if err := s.loans.Append(ctx, loan); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("loan_id", loan.ID.String()).
		Str("account_id", accountID).
		Str("amount", amount.StringFixed(2)).
		Msg("loan application submitted")
	return &loan, nil
}

// Decide approves or rejects a pending application. Decisions are one-way.
func (s *loanService) Decide(ctx context.Context, loanID uuid.UUID, approve bool) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.loans.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range loans {
		if loans[i].ID != loanID {
			continue
		}
		if !loans[i].IsPending() {
			return nil, apperror.ErrLoanNotPending(loanID.String())
		}
		if approve {
			loans[i].Status = domain.LoanStatusApproved
		} else {
			loans[i].Status = domain.LoanStatusRejected
		}
		if err := s.loans.SaveAll(ctx, loans); err != nil {
			return nil, err
		}

		s.log.Info().
			Str("loan_id", loanID.String()).
			Str("status", string(loans[i].Status)).
			Msg("loan decided")
		return &loans[i], nil
	}
	return nil, apperror.ErrLoanNotFound(loanID.String())
}

// ListPending returns applications still awaiting a decision.
func (s *loanService) ListPending(ctx context.Context) ([]domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.loans.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	var pending []domain.Loan
	for _, loan := range loans {
		if loan.IsPending() {
			pending = append(pending, loan)
		}
	}
	return pending, nil
}

// ListFor returns every application for one account, in submission order.
func (s *loanService) ListFor(ctx context.Context, accountID string) ([]domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.loans.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Loan
	for _, loan := range loans {
		if loan.AccountID == accountID {
			out = append(out, loan)
		}
	}
	return out, nil
}
