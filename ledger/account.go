package ledger

import "github.com/shopspring/decimal"

// Account is the base account: a balance, an owner and an owned history.
// Balance only changes through a successful Deposit or Withdraw and never
// goes negative.
type Account struct {
	number  int
	branch  string
	owner   *Customer
	balance decimal.Decimal
	history *History
}

func (a *Account) Number() int              { return a.number }
func (a *Account) Branch() string           { return a.branch }
func (a *Account) Owner() *Customer         { return a.owner }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) History() *History        { return a.history }

// Deposit credits amount after validating it is strictly positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits amount after validating it is strictly positive and does
// not exceed the balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Limits is the checking-account policy, constant per account.
type Limits struct {
	WithdrawalLimit      decimal.Decimal
	MaxDailyWithdrawals  int
	MaxDailyTransactions int
}

// DefaultLimits mirrors the branch defaults: 500.00 per withdrawal,
// 3 withdrawals and 10 total transactions per calendar day.
func DefaultLimits() Limits {
	return Limits{
		WithdrawalLimit:      decimal.NewFromInt(500),
		MaxDailyWithdrawals:  3,
		MaxDailyTransactions: 10,
	}
}

// CheckingAccount layers daily ceilings and a per-withdrawal ceiling on top
// of the base validation chain. All daily counts are derived from the
// history, so they reset at calendar-day boundaries.
type CheckingAccount struct {
	Account
	limits Limits
}

func NewCheckingAccount(number int, branch string, owner *Customer, limits Limits) *CheckingAccount {
	return newCheckingAccount(number, branch, owner, limits, SystemClock)
}

func newCheckingAccount(number int, branch string, owner *Customer, limits Limits, clock Clock) *CheckingAccount {
	return &CheckingAccount{
		Account: Account{
			number:  number,
			branch:  branch,
			owner:   owner,
			history: NewHistoryWithClock(clock),
		},
		limits: limits,
	}
}

func (c *CheckingAccount) Limits() Limits { return c.limits }

// WithdrawalsToday reports today's successful withdrawals.
func (c *CheckingAccount) WithdrawalsToday() int {
	return c.history.CountTodayOf(KindWithdrawal)
}

// TransactionsToday reports today's successful transactions of any kind.
func (c *CheckingAccount) TransactionsToday() int {
	return c.history.CountToday()
}

// Withdraw checks, in order: the daily total-transaction ceiling, the daily
// withdrawal-count ceiling, the per-withdrawal ceiling, then the base chain.
// The first failing check wins; a failure leaves all state untouched.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if c.history.CountToday() >= c.limits.MaxDailyTransactions {
		return ErrDailyTransactionLimitExceeded
	}
	if c.history.CountTodayOf(KindWithdrawal) >= c.limits.MaxDailyWithdrawals {
		return ErrDailyWithdrawalLimitExceeded
	}
	if amount.GreaterThan(c.limits.WithdrawalLimit) {
		return ErrWithdrawalLimitExceeded
	}
	return c.Account.Withdraw(amount)
}

// Deposit checks the daily total-transaction ceiling, then the base chain.
func (c *CheckingAccount) Deposit(amount decimal.Decimal) error {
	if c.history.CountToday() >= c.limits.MaxDailyTransactions {
		return ErrDailyTransactionLimitExceeded
	}
	return c.Account.Deposit(amount)
}
