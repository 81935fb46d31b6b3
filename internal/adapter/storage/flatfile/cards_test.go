package flatfile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"branch-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardStore_AppendListFor(t *testing.T) {
	s := NewCardStore(filepath.Join(t.TempDir(), "debit_cards.txt"))
	ctx := context.Background()
	issued := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)

	c1 := domain.DebitCard{CardNumber: uuid.New(), AccountID: "A1", IssuedAt: issued}
	c2 := domain.DebitCard{CardNumber: uuid.New(), AccountID: "A2", IssuedAt: issued}
	c3 := domain.DebitCard{CardNumber: uuid.New(), AccountID: "A1", IssuedAt: issued.Add(time.Hour)}
	for _, c := range []domain.DebitCard{c1, c2, c3} {
		require.NoError(t, s.Append(ctx, c))
	}

	cards, err := s.ListFor(ctx, "A1")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, c1.CardNumber, cards[0].CardNumber)
	assert.Equal(t, c3.CardNumber, cards[1].CardNumber)
	assert.True(t, cards[0].IssuedAt.Equal(issued))

	none, err := s.ListFor(ctx, "A9")
	require.NoError(t, err)
	assert.Empty(t, none)
}
