package ledger

import "errors"

// Domain errors returned by account and registry operations. Every failure
// is reported as a value; nothing in this package panics. The HTTP layer
// maps these to status codes.
var (
	ErrInvalidAmount                 = errors.New("amount must be greater than zero")
	ErrInsufficientBalance           = errors.New("insufficient balance")
	ErrWithdrawalLimitExceeded       = errors.New("amount exceeds the withdrawal limit")
	ErrDailyWithdrawalLimitExceeded  = errors.New("daily withdrawal limit reached")
	ErrDailyTransactionLimitExceeded = errors.New("daily transaction limit reached")

	ErrCustomerNotFound   = errors.New("customer not found")
	ErrDuplicateCustomer  = errors.New("a customer with this tax id already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrCustomerHasAccount = errors.New("customer already has an account")

	ErrInvalidKind = errors.New("unknown transaction kind")
)
