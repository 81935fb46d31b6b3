package ports

import (
	"context"

	"branch-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService is the operation engine: every balance-changing operation
// is a single validated, atomic-per-call action. A failed precondition
// leaves the ledger and the transaction log untouched.
type LedgerService interface {
	OpenAccount(ctx context.Context, id, name string, initialBalance decimal.Decimal, contact string) (*domain.Account, error)
	CloseAccount(ctx context.Context, id string) (domain.ClosedAccount, error)
	Deposit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error
	PayBill(ctx context.Context, id string, amount decimal.Decimal, biller string) error
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	GetBalance(ctx context.Context, id string) (decimal.Decimal, error)
	UpdateContact(ctx context.Context, id, contact string) error
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// FinancialReport aggregates the whole transaction log.
type FinancialReport struct {
	TotalTransactions int
	TotalAmount       decimal.Decimal // Sum of absolute transaction amounts
	SkippedRecords    int             // Rows that could not be parsed
}

// ReportingService provides read-only folds over the transaction log for
// statements, audits and fraud review. Folds tolerate unparsable rows.
type ReportingService interface {
	Statement(ctx context.Context, accountID string) ([]domain.TransactionRecord, error)
	FinancialReport(ctx context.Context) (*FinancialReport, error)
	FlagSuspicious(ctx context.Context, threshold decimal.Decimal) ([]domain.TransactionRecord, error)
	VerifyCompliance(ctx context.Context) ([]domain.TransactionRecord, error)
	AuditExport(ctx context.Context) (int, error)
}

// LoanService handles the loan application workflow.
type LoanService interface {
	Apply(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Loan, error)
	Decide(ctx context.Context, loanID uuid.UUID, approve bool) (*domain.Loan, error)
	ListPending(ctx context.Context) ([]domain.Loan, error)
	ListFor(ctx context.Context, accountID string) ([]domain.Loan, error)
}

// CardService issues debit cards against active accounts.
type CardService interface {
	Issue(ctx context.Context, accountID string) (*domain.DebitCard, error)
	ListFor(ctx context.Context, accountID string) ([]domain.DebitCard, error)
}

// ComplaintService records and resolves customer complaints.
type ComplaintService interface {
	File(ctx context.Context, accountID, text string) (*domain.Complaint, error)
	ListOpen(ctx context.Context) ([]domain.Complaint, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}
