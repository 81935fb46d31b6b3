package apperror

import "fmt"

// AppError is a structured error carrying a stable machine-readable code.
// Callers branch on the code; the wrapped error is for logs only.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped internal error (not exposed to callers)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code of err if it is an *AppError, or "" otherwise.
func CodeOf(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ""
}

// ---- Accounts (ACCT) ----

func ErrNotFound(id string) *AppError {
	return New("ACCT_001", fmt.Sprintf("account %s not found", id))
}

func ErrDuplicateAccount(id string) *AppError {
	return New("ACCT_002", fmt.Sprintf("account %s already exists", id))
}

// ---- Ledger operations (LEDG) ----

func ErrInvalidAmount() *AppError {
	return New("LEDG_001", "Invalid amount")
}

func ErrInsufficientFunds() *AppError {
	return New("LEDG_002", "Insufficient funds")
}

func ErrSameAccount() *AppError {
	return New("LEDG_003", "Sender and receiver are the same account")
}

// ErrInvalidField rejects free-text input that cannot survive a round trip
// through the delimited record stores.
func ErrInvalidField(field string) *AppError {
	return New("LEDG_004", fmt.Sprintf("%s must not contain commas or line breaks", field))
}

// ---- Loans (LOAN) ----

func ErrLoanNotFound(id string) *AppError {
	return New("LOAN_001", fmt.Sprintf("loan %s not found", id))
}

func ErrLoanNotPending(id string) *AppError {
	return New("LOAN_002", fmt.Sprintf("loan %s has already been decided", id))
}

// ---- Complaints (CMPL) ----

func ErrComplaintNotFound(id string) *AppError {
	return New("CMPL_001", fmt.Sprintf("complaint %s not found", id))
}

// ---- Record store (STORE) ----

// ErrMalformedRecord reports a persisted row that does not parse into the
// expected shape. Row numbers are 1-based.
func ErrMalformedRecord(path string, row int, err error) *AppError {
	return Wrap("STORE_001", fmt.Sprintf("malformed record in %s at row %d", path, row), err)
}

// ErrStoreIO reports an underlying read or write failure on a store file.
func ErrStoreIO(op string, path string, err error) *AppError {
	return Wrap("STORE_002", fmt.Sprintf("store %s failed for %s", op, path), err)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal error", err)
}
