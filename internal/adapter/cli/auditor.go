package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

func (m *Menu) auditorMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nAuditor Menu")
		fmt.Fprintln(m.out, "1. Review Account Transactions")
		fmt.Fprintln(m.out, "2. Flag Suspicious Activity")
		fmt.Fprintln(m.out, "3. Generate Audit Report")
		fmt.Fprintln(m.out, "4. Verify Compliance with Policies")
		fmt.Fprintln(m.out, "5. Provide Improvement Suggestions")
		fmt.Fprintln(m.out, "6. Back")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := m.accountStatement(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.flagSuspicious(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.auditExport(ctx); err != nil {
				return err
			}
		case "4":
			if err := m.verifyCompliance(ctx); err != nil {
				return err
			}
		case "5":
			m.improvementSuggestions()
		case "6":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		}
	}
}

func (m *Menu) flagSuspicious(ctx context.Context) error {
	label := fmt.Sprintf("Enter suspicious transaction amount threshold [%s]: ",
		m.deps.SuspiciousThreshold.StringFixed(2))
	raw, err := m.prompt(label)
	if err != nil {
		return err
	}
	threshold := m.deps.SuspiciousThreshold
	if raw != "" {
		parsed, perr := decimal.NewFromString(raw)
		if perr != nil {
			fmt.Fprintln(m.out, "Invalid amount! Please enter a numeric value.")
			return nil
		}
		threshold = parsed
	}
	flagged, err := m.deps.Reporting.FlagSuspicious(ctx, threshold)
	if err != nil {
		m.report(err)
		return nil
	}
	if len(flagged) == 0 {
		fmt.Fprintln(m.out, "No suspicious transactions detected.")
		return nil
	}
	fmt.Fprintln(m.out, "\nFlagged Suspicious Transactions:")
	for _, rec := range flagged {
		fmt.Fprintf(m.out, "%s  %s\n", rec.AccountID, rec.Description)
	}
	fmt.Fprintln(m.out, "Flagged transactions saved to file.")
	return nil
}

func (m *Menu) auditExport(ctx context.Context) error {
	n, err := m.deps.Reporting.AuditExport(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Audit report generated successfully! (%d records)\n", n)
	return nil
}

func (m *Menu) improvementSuggestions() {
	fmt.Fprintln(m.out, "\nSuggested Improvements:")
	fmt.Fprintln(m.out, "1. Implement stricter transaction limits.")
	fmt.Fprintln(m.out, "2. Enhance fraud detection mechanisms.")
	fmt.Fprintln(m.out, "3. Conduct regular account reviews.")
	fmt.Fprintln(m.out, "4. Improve customer verification methods.")
}

func (m *Menu) verifyCompliance(ctx context.Context) error {
	issues, err := m.deps.Reporting.VerifyCompliance(ctx)
	if err != nil {
		m.report(err)
		return nil
	}
	if len(issues) == 0 {
		fmt.Fprintln(m.out, "No compliance issues found.")
		return nil
	}
	fmt.Fprintln(m.out, "\nCompliance Issues Detected:")
	for _, rec := range issues {
		fmt.Fprintf(m.out, "%s  %s\n", rec.AccountID, rec.Description)
	}
	return nil
}
