package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"branch-ledger/internal/adapter/storage/flatfile"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupComplaintService(t *testing.T) *complaintService {
	t.Helper()
	store := flatfile.NewComplaintStore(filepath.Join(t.TempDir(), "complaints.txt"))
	return NewComplaintService(store, zerolog.Nop()).(*complaintService)
}

func TestComplaintService_FileListResolve(t *testing.T) {
	svc := setupComplaintService(t)
	ctx := context.Background()

	c1, err := svc.File(ctx, "A1", "statement never arrived")
	require.NoError(t, err)
	c2, err := svc.File(ctx, "A2", "teller was rude, allegedly")
	require.NoError(t, err)

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 2)

	require.NoError(t, svc.Resolve(ctx, c1.ID))

	open, err = svc.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, c2.ID, open[0].ID)
}

func TestComplaintService_ResolveUnknown(t *testing.T) {
	svc := setupComplaintService(t)

	err := svc.Resolve(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, "CMPL_001", apperror.CodeOf(err))
}

func TestComplaintService_File_RejectsUnstorableText(t *testing.T) {
	svc := setupComplaintService(t)
	ctx := context.Background()

	// The account id sits mid-row; a separator in it would shift every
	// following field on reload.
	_, err := svc.File(ctx, "A,1", "card swallowed by ATM")
	require.Error(t, err)
	assert.Equal(t, "LEDG_004", apperror.CodeOf(err))

	// A line break in the text would split the row in two.
	_, err = svc.File(ctx, "A1", "first line\nsecond line")
	require.Error(t, err)
	assert.Equal(t, "LEDG_004", apperror.CodeOf(err))

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestComplaintService_ConcurrentResolves(t *testing.T) {
	svc := setupComplaintService(t)
	ctx := context.Background()

	ids := make([]uuid.UUID, 8)
	for i := range ids {
		c, err := svc.File(ctx, "A1", "statement never arrived")
		require.NoError(t, err)
		ids[i] = c.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			assert.NoError(t, svc.Resolve(ctx, id))
		}(id)
	}
	wg.Wait()

	// No resolution may overwrite another.
	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}
