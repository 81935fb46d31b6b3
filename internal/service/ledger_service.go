package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"branch-ledger/internal/core/domain"
	"branch-ledger/internal/core/ports"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.LedgerService.
//
// Every operation is one critical section over the whole ledger store:
// load, validate, mutate in memory, save, then append log entries.
// Validation strictly precedes mutation, and the ledger is only saved once
// every mutation for the call has succeeded in memory, so a failed
// precondition leaves both stores byte-for-byte unchanged.
type LedgerServiceImpl struct {
	mu       sync.Mutex
	accounts ports.AccountRepository
	txlog    ports.TransactionLogRepository
	log      zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(accounts ports.AccountRepository, txlog ports.TransactionLogRepository, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts: accounts,
		txlog:    txlog,
		log:      log,
	}
}

// adjustBalance is the single chokepoint through which every balance change
// passes. It enforces account existence and the non-negative balance
// invariant; no operation touches Balance directly.
func adjustBalance(ledger *domain.Ledger, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	acct, ok := ledger.Get(id)
	if !ok {
		return decimal.Zero, apperror.ErrNotFound(id)
	}
	next := acct.Balance.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, apperror.ErrInsufficientFunds()
	}
	acct.Balance = next
	return next, nil
}

func newRecord(accountID string, amount decimal.Decimal, description string) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:          uuid.New(),
		AccountID:   accountID,
		Amount:      amount,
		Timestamp:   time.Now().UTC(),
		Description: description,
	}
}

// OpenAccount creates an account with an initial deposit. Duplicate ids are
// rejected rather than silently shadowing the existing account.
func (s *LedgerServiceImpl) OpenAccount(ctx context.Context, id, name string, initialBalance decimal.Decimal, contact string) (*domain.Account, error) {
	if initialBalance.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := validateRowField("account number", id); err != nil {
		return nil, err
	}
	if err := validateRowField("name", name); err != nil {
		return nil, err
	}
	if err := validateRowField("contact", contact); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := ledger.Get(id); exists {
		return nil, apperror.ErrDuplicateAccount(id)
	}

	acct := &domain.Account{
		ID:      id,
		Name:    name,
		Balance: initialBalance,
		Contact: contact,
		Status:  domain.AccountStatusActive,
	}
	ledger.Put(acct)
	if err := s.accounts.Save(ctx, ledger); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("Opened account with initial deposit $%s", initialBalance.StringFixed(2))
	if err := s.txlog.Append(ctx, newRecord(id, initialBalance, desc)); err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", id).Str("balance", initialBalance.StringFixed(2)).Msg("account opened")
	return acct, nil
}

// CloseAccount removes the account from the active ledger and archives its
// identity. Closure is one-way; transaction history stays queryable.
func (s *LedgerServiceImpl) CloseAccount(ctx context.Context, id string) (domain.ClosedAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return domain.ClosedAccount{}, err
	}
	acct, ok := ledger.Get(id)
	if !ok {
		return domain.ClosedAccount{}, apperror.ErrNotFound(id)
	}

	rec := domain.ClosedAccount{ID: acct.ID, Name: acct.Name}
	if err := s.accounts.Archive(ctx, rec); err != nil {
		return domain.ClosedAccount{}, err
	}
	ledger.Remove(id)
	if err := s.accounts.Save(ctx, ledger); err != nil {
		return domain.ClosedAccount{}, err
	}

	s.log.Info().Str("account_id", id).Msg("account closed")
	return rec, nil
}

// Deposit credits the account and returns the new balance.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	newBalance, err := adjustBalance(ledger, id, amount)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.accounts.Save(ctx, ledger); err != nil {
		return decimal.Zero, err
	}

	desc := fmt.Sprintf("Deposited $%s", amount.StringFixed(2))
	if err := s.txlog.Append(ctx, newRecord(id, amount, desc)); err != nil {
		return decimal.Zero, err
	}

	s.log.Info().Str("account_id", id).Str("amount", amount.StringFixed(2)).Msg("deposit processed")
	return newBalance, nil
}

// Withdraw debits the account and returns the new balance.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	newBalance, err := adjustBalance(ledger, id, amount.Neg())
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.accounts.Save(ctx, ledger); err != nil {
		return decimal.Zero, err
	}

	desc := fmt.Sprintf("Withdrew $%s", amount.StringFixed(2))
	if err := s.txlog.Append(ctx, newRecord(id, amount.Neg(), desc)); err != nil {
		return decimal.Zero, err
	}

	s.log.Info().Str("account_id", id).Str("amount", amount.StringFixed(2)).Msg("withdrawal processed")
	return newBalance, nil
}

// Transfer moves funds between two active accounts. The paired debit and
// credit happen in one critical section, so the total balance across the
// ledger is conserved. Two log entries cross-reference the counterparty.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if fromID == toID {
		return apperror.ErrSameAccount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := ledger.Get(fromID); !ok {
		return apperror.ErrNotFound(fromID)
	}
	if _, ok := ledger.Get(toID); !ok {
		return apperror.ErrNotFound(toID)
	}

	if _, err := adjustBalance(ledger, fromID, amount.Neg()); err != nil {
		return err
	}
	if _, err := adjustBalance(ledger, toID, amount); err != nil {
		return err
	}
	if err := s.accounts.Save(ctx, ledger); err != nil {
		return err
	}

	sent := fmt.Sprintf("Transferred $%s to %s", amount.StringFixed(2), toID)
	if err := s.txlog.Append(ctx, newRecord(fromID, amount.Neg(), sent)); err != nil {
		return err
	}
	received := fmt.Sprintf("Received $%s from %s", amount.StringFixed(2), fromID)
	if err := s.txlog.Append(ctx, newRecord(toID, amount, received)); err != nil {
		return err
	}

	s.log.Info().
		Str("from", fromID).
		Str("to", toID).
		Str("amount", amount.StringFixed(2)).
		Msg("transfer processed")
	return nil
}

// PayBill debits the account in favor of an external biller. The paid-out
// amount leaves the ledger entirely.
func (s *LedgerServiceImpl) PayBill(ctx context.Context, id string, amount decimal.Decimal, biller string) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if err := validateFreeText("biller", biller); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return err
	}
	if _, err := adjustBalance(ledger, id, amount.Neg()); err != nil {
		return err
	}
	if err := s.accounts.Save(ctx, ledger); err != nil {
		return err
	}

	desc := fmt.Sprintf("Paid $%s to %s", amount.StringFixed(2), biller)
	if err := s.txlog.Append(ctx, newRecord(id, amount.Neg(), desc)); err != nil {
		return err
	}

	s.log.Info().Str("account_id", id).Str("biller", biller).Str("amount", amount.StringFixed(2)).Msg("bill paid")
	return nil
}

// GetAccount returns the current state of one active account.
func (s *LedgerServiceImpl) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	acct, ok := ledger.Get(id)
	if !ok {
		return nil, apperror.ErrNotFound(id)
	}
	return acct, nil
}

// GetBalance returns the current balance of one active account.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	acct, err := s.GetAccount(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return acct.Balance, nil
}

// UpdateContact changes the account's contact details. No log entry: the
// transaction log records balance-affecting events only.
func (s *LedgerServiceImpl) UpdateContact(ctx context.Context, id, contact string) error {
	if err := validateRowField("contact", contact); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return err
	}
	acct, ok := ledger.Get(id)
	if !ok {
		return apperror.ErrNotFound(id)
	}
	acct.Contact = contact
	if err := s.accounts.Save(ctx, ledger); err != nil {
		return err
	}

	s.log.Info().Str("account_id", id).Msg("contact updated")
	return nil
}

// ListAccounts returns every active account in ledger order.
func (s *LedgerServiceImpl) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Accounts(), nil
}
