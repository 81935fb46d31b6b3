package service

import (
	"context"
	"path/filepath"
	"testing"

	"branch-ledger/internal/adapter/storage/flatfile"
	"branch-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardService_IssueAndList(t *testing.T) {
	dir := t.TempDir()
	accounts := flatfile.NewAccountStore(filepath.Join(dir, "customers.txt"), filepath.Join(dir, "closed_accounts.txt"))
	txlog := flatfile.NewTransactionLog(filepath.Join(dir, "transactions.txt"))
	cards := flatfile.NewCardStore(filepath.Join(dir, "debit_cards.txt"))
	ledger := NewLedgerService(accounts, txlog, zerolog.Nop())
	svc := NewCardService(cards, accounts, zerolog.Nop())
	ctx := context.Background()

	_, err := ledger.OpenAccount(ctx, "A1", "Alice", decimal.RequireFromString("100.00"), "")
	require.NoError(t, err)

	card, err := svc.Issue(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "A1", card.AccountID)
	assert.False(t, card.IssuedAt.IsZero())

	listed, err := svc.ListFor(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, card.CardNumber, listed[0].CardNumber)

	// Unknown accounts cannot receive cards.
	_, err = svc.Issue(ctx, "A9")
	require.Error(t, err)
	assert.Equal(t, "ACCT_001", apperror.CodeOf(err))
}
