package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"branch-ledger/internal/adapter/storage/flatfile"
	"branch-ledger/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenu(t *testing.T, script string) (*Menu, *strings.Builder) {
	t.Helper()
	dir := t.TempDir()
	accounts := flatfile.NewAccountStore(filepath.Join(dir, "customers.txt"), filepath.Join(dir, "closed_accounts.txt"))
	txlog := flatfile.NewTransactionLog(filepath.Join(dir, "transactions.txt"))
	flagged := flatfile.NewTransactionSnapshot(filepath.Join(dir, "flagged_transactions.txt"))
	audit := flatfile.NewTransactionSnapshot(filepath.Join(dir, "audit_report.txt"))
	loans := flatfile.NewLoanStore(filepath.Join(dir, "loan_applications.txt"))
	cards := flatfile.NewCardStore(filepath.Join(dir, "debit_cards.txt"))
	complaints := flatfile.NewComplaintStore(filepath.Join(dir, "complaints.txt"))

	log := zerolog.Nop()
	out := &strings.Builder{}
	menu := New(Deps{
		Ledger:     service.NewLedgerService(accounts, txlog, log),
		Reporting:  service.NewReportingService(txlog, flagged, audit, log),
		Loans:      service.NewLoanService(loans, accounts, log),
		Cards:      service.NewCardService(cards, accounts, log),
		Complaints: service.NewComplaintService(complaints, log),
		Logger:     log,

		SuspiciousThreshold: decimal.RequireFromString("100.00"),
	}, strings.NewReader(script), out)
	return menu, out
}

func TestMenu_TellerOpensAccountCustomerChecksBalance(t *testing.T) {
	script := strings.Join([]string{
		"2",          // teller menu
		"1",          // open account
		"A1",         // account number
		"Alice",      // name
		"500.00",     // initial deposit
		"alice@bank", // contact
		"7",          // back
		"1",          // customer menu
		"1",          // check balance
		"A1",
		"7", // back
		"5", // exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, script)
	require.NoError(t, menu.Run(context.Background()))

	assert.Contains(t, out.String(), "Account A1 opened for Alice with balance $500.00")
	assert.Contains(t, out.String(), "Current balance: $500.00")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenu_FailedOperationKeepsSessionAlive(t *testing.T) {
	script := strings.Join([]string{
		"1",      // customer menu
		"1",      // check balance
		"A9",     // unknown account
		"2",      // transfer
		"A9",     // from
		"A1",     // to
		"banana", // not a number
		"7",      // back
		"5",      // exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, script)
	require.NoError(t, menu.Run(context.Background()))

	assert.Contains(t, out.String(), "account A9 not found")
	assert.Contains(t, out.String(), "Invalid amount! Please enter a numeric value.")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenu_AuditorSweepUsesConfiguredDefault(t *testing.T) {
	script := strings.Join([]string{
		"2",      // teller menu
		"1",      // open account
		"A1",     // account number
		"Alice",  // name
		"250.00", // initial deposit, above the 100.00 default
		"",       // contact
		"7",      // back
		"4",      // auditor menu
		"2",      // flag suspicious activity
		"",       // accept configured default threshold
		"4",      // verify compliance
		"5",      // improvement suggestions
		"6",      // back
		"5",      // exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, script)
	require.NoError(t, menu.Run(context.Background()))

	assert.Contains(t, out.String(), "Flagged Suspicious Transactions:")
	assert.Contains(t, out.String(), "Compliance Issues Detected:")
	assert.Contains(t, out.String(), "Suggested Improvements:")
}

func TestMenu_EndOfInputEndsSession(t *testing.T) {
	menu, _ := newTestMenu(t, "1\n")
	err := menu.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)
}
