package domain

import "github.com/shopspring/decimal"

// Ledger is the authoritative mapping of account id to account state.
// It preserves insertion order so that saving rewrites the store row-for-row
// in a stable order.
type Ledger struct {
	ids      []string
	accounts map[string]*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Get returns the account for id, or false if it is not in the active set.
func (l *Ledger) Get(id string) (*Account, bool) {
	a, ok := l.accounts[id]
	return a, ok
}

// Put inserts or replaces an account. A new id is appended to the iteration
// order; replacing keeps the original position.
func (l *Ledger) Put(a *Account) {
	if _, ok := l.accounts[a.ID]; !ok {
		l.ids = append(l.ids, a.ID)
	}
	l.accounts[a.ID] = a
}

// Remove deletes an account from the active set.
func (l *Ledger) Remove(id string) {
	if _, ok := l.accounts[id]; !ok {
		return
	}
	delete(l.accounts, id)
	for i, existing := range l.ids {
		if existing == id {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			break
		}
	}
}

// Accounts returns all accounts in insertion order.
func (l *Ledger) Accounts() []*Account {
	out := make([]*Account, 0, len(l.ids))
	for _, id := range l.ids {
		out = append(out, l.accounts[id])
	}
	return out
}

// Len returns the number of active accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// TotalBalance sums the balances of all active accounts. Internal transfers
// must leave this total unchanged.
func (l *Ledger) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}
