package flatfile

import (
	"context"
	"fmt"
	"time"

	"branch-ledger/internal/core/domain"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// id,account_id,amount,timestamp,description — description is the last
// field so embedded commas in the narrative survive.
const transactionFields = 5

// TransactionLog is the append-only history of balance-affecting events.
// Entries are never edited or deleted; derived stores hold filtered copies.
type TransactionLog struct {
	store *Store
}

// NewTransactionLog creates a transaction log over the given file.
func NewTransactionLog(path string) *TransactionLog {
	return &TransactionLog{store: NewStore(path, transactionFields)}
}

// Append writes one immutable entry. IO failures surface; they are never
// swallowed, since a lost entry breaks downstream reporting.
func (l *TransactionLog) Append(_ context.Context, rec domain.TransactionRecord) error {
	return l.store.Append(encodeTransaction(rec))
}

// ReadAll returns the full history in append order. A malformed row aborts
// the read.
func (l *TransactionLog) ReadAll(_ context.Context) ([]domain.TransactionRecord, error) {
	rows, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	recs := make([]domain.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := decodeTransaction(row, l.store.Path(), i+1)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadFor filters the full history down to one account. Records for closed
// accounts remain readable.
func (l *TransactionLog) ReadFor(ctx context.Context, accountID string) ([]domain.TransactionRecord, error) {
	all, err := l.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	var recs []domain.TransactionRecord
	for _, rec := range all {
		if rec.AccountID == accountID {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// Scan reads the history leniently for bulk reporting: malformed rows are
// skipped and counted instead of aborting the fold.
func (l *TransactionLog) Scan(_ context.Context) ([]domain.TransactionRecord, int, error) {
	rows, skipped, err := l.store.Scan()
	if err != nil {
		return nil, 0, err
	}
	recs := make([]domain.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeTransaction(row, l.store.Path(), 0)
		if err != nil {
			skipped++
			continue
		}
		recs = append(recs, rec)
	}
	return recs, skipped, nil
}

func encodeTransaction(rec domain.TransactionRecord) []string {
	return []string{
		rec.ID.String(),
		rec.AccountID,
		rec.Amount.StringFixed(2),
		rec.Timestamp.UTC().Format(time.RFC3339),
		rec.Description,
	}
}

func decodeTransaction(row []string, path string, n int) (domain.TransactionRecord, error) {
	id, err := uuid.Parse(row[0])
	if err != nil {
		return domain.TransactionRecord{}, apperror.ErrMalformedRecord(path, n,
			fmt.Errorf("id %q: %w", row[0], err))
	}
	amount, err := decimal.NewFromString(row[2])
	if err != nil {
		return domain.TransactionRecord{}, apperror.ErrMalformedRecord(path, n,
			fmt.Errorf("amount %q: %w", row[2], err))
	}
	ts, err := time.Parse(time.RFC3339, row[3])
	if err != nil {
		return domain.TransactionRecord{}, apperror.ErrMalformedRecord(path, n,
			fmt.Errorf("timestamp %q: %w", row[3], err))
	}
	return domain.TransactionRecord{
		ID:          id,
		AccountID:   row[1],
		Amount:      amount,
		Timestamp:   ts,
		Description: row[4],
	}, nil
}
