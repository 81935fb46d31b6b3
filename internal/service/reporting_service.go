package service

import (
	"context"

	"branch-ledger/internal/core/domain"
	"branch-ledger/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// reportingService implements ports.ReportingService. All operations are
// read-only folds over the transaction log; none of them mutate the ledger
// or the log itself. Derived stores (flagged, audit) only ever receive
// filtered copies.
type reportingService struct {
	txlog   ports.TransactionLogRepository
	flagged ports.TransactionSnapshotRepository
	audit   ports.TransactionSnapshotRepository
	log     zerolog.Logger
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	txlog ports.TransactionLogRepository,
	flagged ports.TransactionSnapshotRepository,
	audit ports.TransactionSnapshotRepository,
	log zerolog.Logger,
) ports.ReportingService {
	return &reportingService{
		txlog:   txlog,
		flagged: flagged,
		audit:   audit,
		log:     log,
	}
}

// Statement returns the full history for one account in append order.
// Closed accounts keep their history, so this works after closure too.
func (s *reportingService) Statement(ctx context.Context, accountID string) ([]domain.TransactionRecord, error) {
	return s.txlog.ReadFor(ctx, accountID)
}

// FinancialReport folds the whole log into a transaction count and the sum
// of absolute amounts. Rows that do not parse are skipped, not fatal.
func (s *reportingService) FinancialReport(ctx context.Context) (*ports.FinancialReport, error) {
	recs, skipped, err := s.txlog.Scan(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, rec := range recs {
		total = total.Add(rec.Amount.Abs())
	}
	if skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Msg("financial report skipped unparsable log rows")
	}
	return &ports.FinancialReport{
		TotalTransactions: len(recs),
		TotalAmount:       total,
		SkippedRecords:    skipped,
	}, nil
}

// FlagSuspicious returns every transaction whose magnitude exceeds the
// threshold, preserving log order, and persists the result to the
// flagged-transactions store for the compliance check.
func (s *reportingService) FlagSuspicious(ctx context.Context, threshold decimal.Decimal) ([]domain.TransactionRecord, error) {
	recs, skipped, err := s.txlog.Scan(ctx)
	if err != nil {
		return nil, err
	}

	var flagged []domain.TransactionRecord
	for _, rec := range recs {
		if rec.Amount.Abs().GreaterThan(threshold) {
			flagged = append(flagged, rec)
		}
	}
	if err := s.flagged.Replace(ctx, flagged); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("threshold", threshold.StringFixed(2)).
		Int("flagged", len(flagged)).
		Int("skipped", skipped).
		Msg("suspicious activity sweep complete")
	return flagged, nil
}

// VerifyCompliance returns the outstanding flagged transactions from the
// last sweep. An empty result means the check is clear.
func (s *reportingService) VerifyCompliance(ctx context.Context) ([]domain.TransactionRecord, error) {
	return s.flagged.ReadAll(ctx)
}

// AuditExport copies the transaction log verbatim into the audit report
// store and returns the number of exported records.
func (s *reportingService) AuditExport(ctx context.Context) (int, error) {
	recs, skipped, err := s.txlog.Scan(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.audit.Replace(ctx, recs); err != nil {
		return 0, err
	}

	s.log.Info().Int("records", len(recs)).Int("skipped", skipped).Msg("audit report generated")
	return len(recs), nil
}
