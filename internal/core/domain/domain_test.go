package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acct(id string, balance int64) *Account {
	return &Account{
		ID:      id,
		Name:    "Customer " + id,
		Balance: decimal.NewFromInt(balance),
		Status:  AccountStatusActive,
	}
}

func TestLedger_PutGetRemove(t *testing.T) {
	l := NewLedger()
	l.Put(acct("A1", 100))
	l.Put(acct("A2", 200))

	got, ok := l.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "A1", got.ID)
	assert.Equal(t, 2, l.Len())

	l.Remove("A1")
	_, ok = l.Get("A1")
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())

	// Removing a missing id is a no-op.
	l.Remove("A9")
	assert.Equal(t, 1, l.Len())
}

func TestLedger_InsertionOrderStable(t *testing.T) {
	l := NewLedger()
	l.Put(acct("A3", 1))
	l.Put(acct("A1", 2))
	l.Put(acct("A2", 3))

	// Replacing keeps the original position.
	l.Put(acct("A1", 20))

	var ids []string
	for _, a := range l.Accounts() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"A3", "A1", "A2"}, ids)

	a1, _ := l.Get("A1")
	assert.True(t, a1.Balance.Equal(decimal.NewFromInt(20)))
}

func TestLedger_TotalBalance(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.TotalBalance().IsZero())

	l.Put(acct("A1", 150))
	l.Put(acct("A2", 50))
	assert.True(t, l.TotalBalance().Equal(decimal.NewFromInt(200)))
}

func TestAccount_IsActive(t *testing.T) {
	a := acct("A1", 0)
	assert.True(t, a.IsActive())

	a.Status = AccountStatusClosed
	assert.False(t, a.IsActive())
}

func TestTransactionRecord_IsCredit(t *testing.T) {
	r := TransactionRecord{ID: uuid.New(), AccountID: "A1", Amount: decimal.NewFromInt(50)}
	assert.True(t, r.IsCredit())

	r.Amount = decimal.NewFromInt(-50)
	assert.False(t, r.IsCredit())
}

func TestLoan_IsPending(t *testing.T) {
	l := Loan{ID: uuid.New(), AccountID: "A1", Amount: decimal.NewFromInt(5000), Status: LoanStatusPending}
	assert.True(t, l.IsPending())

	l.Status = LoanStatusApproved
	assert.False(t, l.IsPending())
}

func TestComplaint_IsOpen(t *testing.T) {
	c := Complaint{ID: uuid.New(), AccountID: "A1", Status: ComplaintStatusOpen, Text: "card swallowed"}
	assert.True(t, c.IsOpen())

	c.Status = ComplaintStatusResolved
	assert.False(t, c.IsOpen())
}
