package ports

import (
	"context"

	"branch-ledger/internal/core/domain"
)

// AccountRepository defines persistence for the active ledger and the
// closed-account archive. Load reads the whole store; Save rewrites it
// atomically from the reader's perspective.
type AccountRepository interface {
	Load(ctx context.Context) (*domain.Ledger, error)
	Save(ctx context.Context, ledger *domain.Ledger) error
	Archive(ctx context.Context, rec domain.ClosedAccount) error
	Archived(ctx context.Context) ([]domain.ClosedAccount, error)
}

// TransactionLogRepository defines the append-only transaction history.
// ReadAll and ReadFor are strict: a malformed row aborts the read. Scan is
// the lenient variant for bulk reporting; it skips malformed rows and
// reports how many were skipped.
type TransactionLogRepository interface {
	Append(ctx context.Context, rec domain.TransactionRecord) error
	ReadAll(ctx context.Context) ([]domain.TransactionRecord, error)
	ReadFor(ctx context.Context, accountID string) ([]domain.TransactionRecord, error)
	Scan(ctx context.Context) ([]domain.TransactionRecord, int, error)
}

// TransactionSnapshotRepository persists derived copies of the transaction
// log: flagged transactions and audit exports. Replace rewrites the whole
// snapshot.
type TransactionSnapshotRepository interface {
	Replace(ctx context.Context, recs []domain.TransactionRecord) error
	ReadAll(ctx context.Context) ([]domain.TransactionRecord, error)
}

// LoanRepository defines persistence for loan applications.
type LoanRepository interface {
	Append(ctx context.Context, loan domain.Loan) error
	LoadAll(ctx context.Context) ([]domain.Loan, error)
	SaveAll(ctx context.Context, loans []domain.Loan) error
}

// DebitCardRepository defines the append-only debit card register.
type DebitCardRepository interface {
	Append(ctx context.Context, card domain.DebitCard) error
	ListFor(ctx context.Context, accountID string) ([]domain.DebitCard, error)
}

// ComplaintRepository defines persistence for customer complaints.
type ComplaintRepository interface {
	Append(ctx context.Context, c domain.Complaint) error
	LoadAll(ctx context.Context) ([]domain.Complaint, error)
	SaveAll(ctx context.Context, complaints []domain.Complaint) error
}
