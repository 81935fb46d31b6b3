package cli

import (
	"context"
	"fmt"
)

func (m *Menu) customerMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nCustomer Menu")
		fmt.Fprintln(m.out, "1. Check Balance")
		fmt.Fprintln(m.out, "2. Transfer Funds")
		fmt.Fprintln(m.out, "3. Pay Bills")
		fmt.Fprintln(m.out, "4. Request Account Statement")
		fmt.Fprintln(m.out, "5. Update Contact Details")
		fmt.Fprintln(m.out, "6. File Complaint")
		fmt.Fprintln(m.out, "7. Back")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := m.checkBalance(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.transferFunds(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.payBill(ctx); err != nil {
				return err
			}
		case "4":
			if err := m.accountStatement(ctx); err != nil {
				return err
			}
		case "5":
			if err := m.updateContact(ctx); err != nil {
				return err
			}
		case "6":
			if err := m.fileComplaint(ctx); err != nil {
				return err
			}
		case "7":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		}
	}
}

func (m *Menu) checkBalance(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	balance, err := m.deps.Ledger.GetBalance(ctx, id)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Current balance: $%s\n", balance.StringFixed(2))
	return nil
}

func (m *Menu) transferFunds(ctx context.Context) error {
	from, err := m.prompt("Enter your account number: ")
	if err != nil {
		return err
	}
	to, err := m.prompt("Enter recipient account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := m.promptAmount("Enter amount to transfer: ")
	if err != nil || !ok {
		return err
	}
	if err := m.deps.Ledger.Transfer(ctx, from, to, amount); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, "Transfer successful!")
	return nil
}

func (m *Menu) payBill(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	biller, err := m.prompt("Enter biller name: ")
	if err != nil {
		return err
	}
	amount, ok, err := m.promptAmount("Enter amount to pay: ")
	if err != nil || !ok {
		return err
	}
	if err := m.deps.Ledger.PayBill(ctx, id, amount, biller); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, "Bill paid successfully!")
	return nil
}

func (m *Menu) accountStatement(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	records, err := m.deps.Reporting.Statement(ctx, id)
	if err != nil {
		m.report(err)
		return nil
	}
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No transactions found for this account.")
		return nil
	}
	fmt.Fprintln(m.out, "\nAccount Statement:")
	for _, rec := range records {
		fmt.Fprintf(m.out, "%s  %s\n", rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Description)
	}
	return nil
}

func (m *Menu) updateContact(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	contact, err := m.prompt("Enter new contact details: ")
	if err != nil {
		return err
	}
	if err := m.deps.Ledger.UpdateContact(ctx, id, contact); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, "Contact details updated!")
	return nil
}

func (m *Menu) fileComplaint(ctx context.Context) error {
	id, err := m.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	text, err := m.prompt("Describe your complaint: ")
	if err != nil {
		return err
	}
	if _, err := m.deps.Complaints.File(ctx, id, text); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintln(m.out, "Complaint filed. We will get back to you.")
	return nil
}
