package flatfile

import (
	"context"

	"branch-ledger/internal/core/domain"
)

// TransactionSnapshot persists a derived copy of the transaction log, such
// as the flagged-transactions store or the audit report. It shares the
// transaction row codec so a snapshot is a verbatim subset of the log.
type TransactionSnapshot struct {
	store *Store
}

// NewTransactionSnapshot creates a snapshot store over the given file.
func NewTransactionSnapshot(path string) *TransactionSnapshot {
	return &TransactionSnapshot{store: NewStore(path, transactionFields)}
}

// Replace rewrites the snapshot with the given records.
func (s *TransactionSnapshot) Replace(_ context.Context, recs []domain.TransactionRecord) error {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, encodeTransaction(rec))
	}
	return s.store.Save(rows)
}

// ReadAll returns the snapshot contents in stored order.
func (s *TransactionSnapshot) ReadAll(_ context.Context) ([]domain.TransactionRecord, error) {
	rows, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	recs := make([]domain.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := decodeTransaction(row, s.store.Path(), i+1)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
