package cli

import (
	"context"
	"fmt"
	"strings"
)

func (m *Menu) managerMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nManager Menu")
		fmt.Fprintln(m.out, "1. Review Loan Applications")
		fmt.Fprintln(m.out, "2. Generate Financial Report")
		fmt.Fprintln(m.out, "3. Handle Customer Complaints")
		fmt.Fprintln(m.out, "4. Monitor Branch Performance")
		fmt.Fprintln(m.out, "5. Back")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := m.reviewLoans(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.financialReport(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.handleComplaints(ctx); err != nil {
				return err
			}
		case "4":
			if err := m.branchPerformance(ctx); err != nil {
				return err
			}
		case "5":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		}
	}
}

func (m *Menu) reviewLoans(ctx context.Context) error {
	pending, err := m.deps.Loans.ListPending(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	if len(pending) == 0 {
		fmt.Fprintln(m.out, "No pending loan applications.")
		return nil
	}
	for _, loan := range pending {
		answer, err := m.prompt(fmt.Sprintf("Approve loan of $%s for account %s? (Y/N/skip): ",
			loan.Amount.StringFixed(2), loan.AccountID))
		if err != nil {
			return err
		}
		switch strings.ToUpper(answer) {
		case "Y":
			if _, err := m.deps.Loans.Decide(ctx, loan.ID, true); err != nil {
				m.report(err)
				continue
			}
			fmt.Fprintln(m.out, "Loan approved.")
		case "N":
			if _, err := m.deps.Loans.Decide(ctx, loan.ID, false); err != nil {
				m.report(err)
				continue
			}
			fmt.Fprintln(m.out, "Loan rejected.")
		default:
			fmt.Fprintln(m.out, "Skipped.")
		}
	}
	return nil
}

func (m *Menu) financialReport(ctx context.Context) error {
	report, err := m.deps.Reporting.FinancialReport(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Total Transactions: %d, Total Amount: $%s\n",
		report.TotalTransactions, report.TotalAmount.StringFixed(2))
	if report.SkippedRecords > 0 {
		fmt.Fprintf(m.out, "Skipped %d unparsable record(s).\n", report.SkippedRecords)
	}
	return nil
}

func (m *Menu) handleComplaints(ctx context.Context) error {
	open, err := m.deps.Complaints.ListOpen(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	if len(open) == 0 {
		fmt.Fprintln(m.out, "No complaints found!")
		return nil
	}
	for _, c := range open {
		answer, err := m.prompt(fmt.Sprintf("Resolve complaint from %s: %s (Y/N)? ", c.AccountID, c.Text))
		if err != nil {
			return err
		}
		if strings.ToUpper(answer) != "Y" {
			continue
		}
		if err := m.deps.Complaints.Resolve(ctx, c.ID); err != nil {
			m.report(err)
			continue
		}
		fmt.Fprintf(m.out, "Complaint from %s resolved.\n", c.AccountID)
	}
	return nil
}

// branchPerformance summarizes the branch from the live ledger and the
// transaction log.
func (m *Menu) branchPerformance(ctx context.Context) error {
	accounts, err := m.deps.Ledger.ListAccounts(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	report, err := m.deps.Reporting.FinancialReport(ctx)
	if err != nil {
		m.report(err)
		return nil
	}

	total := "0.00"
	if len(accounts) > 0 {
		sum := accounts[0].Balance
		for _, acct := range accounts[1:] {
			sum = sum.Add(acct.Balance)
		}
		total = sum.StringFixed(2)
	}
	fmt.Fprintln(m.out, "\nBranch Performance:")
	fmt.Fprintf(m.out, "Active accounts: %d\n", len(accounts))
	fmt.Fprintf(m.out, "Total deposits held: $%s\n", total)
	fmt.Fprintf(m.out, "Transactions processed: %d\n", report.TotalTransactions)
	return nil
}
