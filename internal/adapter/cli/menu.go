// Package cli renders the branch role menus. It is a thin presentation
// layer: all prompting and formatting happens here, every action is a
// single call into a service port.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"branch-ledger/internal/core/ports"
	"branch-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Deps carries the service ports the menus drive.
type Deps struct {
	Ledger     ports.LedgerService
	Reporting  ports.ReportingService
	Loans      ports.LoanService
	Cards      ports.CardService
	Complaints ports.ComplaintService
	Logger     zerolog.Logger

	// SuspiciousThreshold is the configured default for the
	// flag-suspicious-activity sweep.
	SuspiciousThreshold decimal.Decimal
}

// Menu is an interactive session over one input/output pair.
type Menu struct {
	deps Deps
	in   *bufio.Scanner
	out  io.Writer
}

func New(deps Deps, in io.Reader, out io.Writer) *Menu {
	return &Menu{deps: deps, in: bufio.NewScanner(in), out: out}
}

// Run drives the role selection loop until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nBranch Ledger")
		fmt.Fprintln(m.out, "1. Customer Menu")
		fmt.Fprintln(m.out, "2. Bank Teller Menu")
		fmt.Fprintln(m.out, "3. Manager Menu")
		fmt.Fprintln(m.out, "4. Auditor Menu")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = m.customerMenu(ctx)
		case "2":
			err = m.tellerMenu(ctx)
		case "3":
			err = m.managerMenu(ctx)
		case "4":
			err = m.auditorMenu(ctx)
		case "5":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// prompt prints a label and reads one trimmed line. io.EOF unwinds the
// whole session when input runs out.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, bool, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return decimal.Zero, false, err
	}
	amount, perr := decimal.NewFromString(raw)
	if perr != nil {
		fmt.Fprintln(m.out, "Invalid amount! Please enter a numeric value.")
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}

// report prints a service failure without aborting the session.
func (m *Menu) report(err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintln(m.out, appErr.Message)
		return
	}
	fmt.Fprintf(m.out, "Operation failed: %v\n", err)
	m.deps.Logger.Error().Err(err).Msg("menu action failed")
}
