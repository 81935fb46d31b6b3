package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"branch-ledger/config"
	"branch-ledger/internal/adapter/cli"
	"branch-ledger/internal/adapter/storage/flatfile"
	"branch-ledger/internal/service"
	"branch-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("data_dir", cfg.Data.Dir).
		Msg("Starting branch ledger")

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Data.Dir).Msg("Failed to create data directory")
	}

	// Initialize flat-file stores
	accounts := flatfile.NewAccountStore(
		cfg.Data.Path(cfg.Data.AccountsFile),
		cfg.Data.Path(cfg.Data.ClosedAccountsFile),
	)
	txlog := flatfile.NewTransactionLog(cfg.Data.Path(cfg.Data.TransactionsFile))
	flagged := flatfile.NewTransactionSnapshot(cfg.Data.Path(cfg.Data.FlaggedFile))
	audit := flatfile.NewTransactionSnapshot(cfg.Data.Path(cfg.Data.AuditReportFile))
	loans := flatfile.NewLoanStore(cfg.Data.Path(cfg.Data.LoansFile))
	cards := flatfile.NewCardStore(cfg.Data.Path(cfg.Data.DebitCardsFile))
	complaints := flatfile.NewComplaintStore(cfg.Data.Path(cfg.Data.ComplaintsFile))

	threshold, err := cfg.Audit.Threshold()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid suspicious-activity threshold")
	}

	// Initialize business services
	ledgerSvc := service.NewLedgerService(accounts, txlog, log)
	reportingSvc := service.NewReportingService(txlog, flagged, audit, log)
	loanSvc := service.NewLoanService(loans, accounts, log)
	cardSvc := service.NewCardService(cards, accounts, log)
	complaintSvc := service.NewComplaintService(complaints, log)

	menu := cli.New(cli.Deps{
		Ledger:     ledgerSvc,
		Reporting:  reportingSvc,
		Loans:      loanSvc,
		Cards:      cardSvc,
		Complaints: complaintSvc,
		Logger:     log,

		SuspiciousThreshold: threshold,
	}, os.Stdin, os.Stdout)

	if err := menu.Run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal().Err(err).Msg("Session failed")
	}

	log.Info().Msg("Session ended")
}
