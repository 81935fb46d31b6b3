package service

import (
	"strings"

	"branch-ledger/pkg/apperror"
)

// Persisted rows are comma-delimited lines, so user-supplied text must be
// checked before it reaches a store. A value that lands mid-row may not
// contain the separator; a value in a trailing free-text position only needs
// to stay on one line. Services validate before mutating, in the same spot
// amounts are checked, so bad input never corrupts a store.

// validateRowField guards values stored in a non-terminal field.
func validateRowField(field, value string) error {
	if strings.ContainsAny(value, ",\n\r") {
		return apperror.ErrInvalidField(field)
	}
	return nil
}

// validateFreeText guards values stored in a trailing free-text field,
// where embedded commas are fine but a line break would split the row.
func validateFreeText(field, value string) error {
	if strings.ContainsAny(value, "\n\r") {
		return apperror.ErrInvalidField(field)
	}
	return nil
}
