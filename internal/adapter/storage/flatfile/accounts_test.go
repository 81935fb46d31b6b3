package flatfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"branch-ledger/internal/core/domain"
	"branch-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountStore(t *testing.T) *AccountStore {
	t.Helper()
	dir := t.TempDir()
	return NewAccountStore(filepath.Join(dir, "customers.txt"), filepath.Join(dir, "closed_accounts.txt"))
}

func TestAccountStore_RoundTrip(t *testing.T) {
	s := newTestAccountStore(t)
	ctx := context.Background()

	ledger := domain.NewLedger()
	ledger.Put(&domain.Account{
		ID: "A1", Name: "Alice", Balance: decimal.RequireFromString("100.50"),
		Contact: "alice@example.com", Status: domain.AccountStatusActive,
	})
	ledger.Put(&domain.Account{
		ID: "A2", Name: "Bob", Balance: decimal.Zero,
		Contact: "555-0101", Status: domain.AccountStatusActive,
	})
	require.NoError(t, s.Save(ctx, ledger))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	a1, ok := loaded.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "Alice", a1.Name)
	assert.True(t, a1.Balance.Equal(decimal.RequireFromString("100.50")))
	assert.Equal(t, "alice@example.com", a1.Contact)
	assert.Equal(t, domain.AccountStatusActive, a1.Status)

	// Row order survives the round trip.
	accounts := loaded.Accounts()
	assert.Equal(t, "A1", accounts[0].ID)
	assert.Equal(t, "A2", accounts[1].ID)
}

func TestAccountStore_LoadEmpty(t *testing.T) {
	s := newTestAccountStore(t)

	ledger, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Len())
}

func TestAccountStore_LoadNonNumericBalanceFails(t *testing.T) {
	s := newTestAccountStore(t)
	require.NoError(t, os.WriteFile(s.store.Path(), []byte("A1,Alice,lots,contact,active\n"), 0644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "STORE_001", apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "balance")
}

func TestAccountStore_LoadUnknownStatusFails(t *testing.T) {
	s := newTestAccountStore(t)
	require.NoError(t, os.WriteFile(s.store.Path(), []byte("A1,Alice,100.00,contact,frozen\n"), 0644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "STORE_001", apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "status")
}

func TestAccountStore_ArchiveAppends(t *testing.T) {
	s := newTestAccountStore(t)
	ctx := context.Background()

	require.NoError(t, s.Archive(ctx, domain.ClosedAccount{ID: "A1", Name: "Alice"}))
	require.NoError(t, s.Archive(ctx, domain.ClosedAccount{ID: "A2", Name: "Bob"}))

	recs, err := s.Archived(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ClosedAccount{{ID: "A1", Name: "Alice"}, {ID: "A2", Name: "Bob"}}, recs)
}
