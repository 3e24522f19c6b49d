package ledger

import "github.com/shopspring/decimal"

// Target is the account surface a transaction applies itself to. Both the
// base Account and CheckingAccount satisfy it, so new transaction kinds can
// be added without touching account validation.
type Target interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	History() *History
}

// Transaction is an immutable intent to move a fixed amount. Apply performs
// the mutation and, only on success, records the transaction in the target's
// history; a failed mutation is never recorded.
type Transaction interface {
	Kind() Kind
	Amount() decimal.Decimal
	Apply(target Target) error
}

// Deposit credits its amount to an account.
type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() Kind              { return KindDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.amount }

func (d Deposit) Apply(target Target) error {
	if err := target.Deposit(d.amount); err != nil {
		return err
	}
	target.History().Append(KindDeposit, d.amount)
	return nil
}

// Withdrawal debits its amount from an account.
type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() Kind              { return KindWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

func (w Withdrawal) Apply(target Target) error {
	if err := target.Withdraw(w.amount); err != nil {
		return err
	}
	target.History().Append(KindWithdrawal, w.amount)
	return nil
}
