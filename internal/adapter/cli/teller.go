package cli

import (
	"context"
	"fmt"
)

func (m *Menu) tellerMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nBank Teller Menu")
		fmt.Fprintln(m.out, "1. Open New Account")
		fmt.Fprintln(m.out, "2. Process Deposit")
		fmt.Fprintln(m.out, "3. Process Withdrawal")
		fmt.Fprintln(m.out, "4. Issue Debit Card")
		fmt.Fprintln(m.out, "5. Submit Loan Application")
		fmt.Fprintln(m.out, "6. Close Account")
		fmt.Fprintln(m.out, "7. Back")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := m.openAccount(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.processDeposit(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.processWithdrawal(ctx); err != nil {
				return err
			}
		case "4":
			if err := m.issueDebitCard(ctx); err != nil {
				return err
			}
		case "5":
			if err := m.submitLoanApplication(ctx); err != nil {
				return err
			}
		case "6":
			if err := m.closeAccount(ctx); err != nil {
				return err
			}
		case "7":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		}
	}
}

func (m *Menu) openAccount(ctx context.Context) error {
	id, err := m.prompt("Enter new account number: ")
	if err != nil {
		return err
	}
	name, err := m.prompt("Enter customer name: ")
	if err != nil {
		return err
	}
	amount, ok, err := m.promptAmount("Enter initial deposit: ")
	if err != nil || !ok {
		return err
	}
	contact, err := m.prompt("Enter contact details: ")
	if err != nil {
		return err
	}
	account, err := m.deps.Ledger.OpenAccount(ctx, id, name, amount, contact)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Account %s opened for %s with balance $%s\n",
		account.ID, account.Name, account.Balance.StringFixed(2))
	return nil
}

func (m *Menu) processDeposit(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := m.promptAmount("Enter deposit amount: ")
	if err != nil || !ok {
		return err
	}
	balance, err := m.deps.Ledger.Deposit(ctx, id, amount)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Deposit successful! New balance: $%s\n", balance.StringFixed(2))
	return nil
}

func (m *Menu) processWithdrawal(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := m.promptAmount("Enter withdrawal amount: ")
	if err != nil || !ok {
		return err
	}
	balance, err := m.deps.Ledger.Withdraw(ctx, id, amount)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Withdrawal successful! New balance: $%s\n", balance.StringFixed(2))
	return nil
}

func (m *Menu) issueDebitCard(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	card, err := m.deps.Cards.Issue(ctx, id)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Debit card %s issued for account %s\n", card.CardNumber, card.AccountID)
	return nil
}

func (m *Menu) submitLoanApplication(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := m.promptAmount("Enter loan amount: ")
	if err != nil || !ok {
		return err
	}
	if _, err := m.deps.Loans.Apply(ctx, id, amount); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, "Loan application submitted!")
	return nil
}

func (m *Menu) closeAccount(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	closed, err := m.deps.Ledger.CloseAccount(ctx, id)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Account %s (%s) closed successfully!\n", closed.ID, closed.Name)
	return nil
}
