// Package ledger implements the in-memory account and transaction engine:
// customers, checking accounts with daily limit policies, the append-only
// per-account transaction history and the audited transaction dispatch.
package ledger

import (
	"iter"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Ledger is the registry of customers and accounts for one branch. It is
// constructed once per process (or per test) and owns the account numbering.
// A single mutex serializes mutation: the engine itself has no internal
// ordering guarantees, so exposure to concurrent callers requires exactly
// this kind of external synchronization.
type Ledger struct {
	mu         sync.Mutex
	branch     string
	limits     Limits
	clock      Clock
	customers  map[string]*Customer
	accounts   map[int]*CheckingAccount
	nextNumber int
}

func New(branch string, limits Limits) *Ledger {
	return NewWithClock(branch, limits, SystemClock)
}

func NewWithClock(branch string, limits Limits, clock Clock) *Ledger {
	return &Ledger{
		branch:     branch,
		limits:     limits,
		clock:      clock,
		customers:  make(map[string]*Customer),
		accounts:   make(map[int]*CheckingAccount),
		nextNumber: 1,
	}
}

// RegisterCustomer adds a customer to the registry. Tax ids are unique.
func (l *Ledger) RegisterCustomer(identity PersonalIdentity) (*Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var customer *Customer
	err := audited("register_customer", logrus.Fields{"tax_id": identity.TaxID}, func() error {
		if _, exists := l.customers[identity.TaxID]; exists {
			return ErrDuplicateCustomer
		}
		customer = NewCustomer(identity)
		l.customers[identity.TaxID] = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// OpenAccount opens a checking account for the customer with the given tax
// id. Account numbers are assigned sequentially starting at 1. A customer
// holds at most one account.
func (l *Ledger) OpenAccount(taxID string) (*CheckingAccount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var account *CheckingAccount
	err := audited("open_account", logrus.Fields{"tax_id": taxID}, func() error {
		customer, ok := l.customers[taxID]
		if !ok {
			return ErrCustomerNotFound
		}
		if len(customer.Accounts()) > 0 {
			return ErrCustomerHasAccount
		}
		account = newCheckingAccount(l.nextNumber, l.branch, customer, l.limits, l.clock)
		l.accounts[account.Number()] = account
		customer.addAccount(account)
		l.nextNumber++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Apply dispatches a transaction to an account through its owner. This is
// the only path that mutates balances and histories, and the only place the
// audit wrapper runs, so every mutation is audited exactly once.
func (l *Ledger) Apply(accountNumber int, tx Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := logrus.Fields{
		"account_number": accountNumber,
		"kind":           tx.Kind(),
		"amount":         tx.Amount(),
	}
	return audited("apply_transaction", fields, func() error {
		account, ok := l.accounts[accountNumber]
		if !ok {
			return ErrAccountNotFound
		}
		return account.Owner().ApplyTransaction(account, tx)
	})
}

// AccountSummary is the listing view of one account.
type AccountSummary struct {
	Branch  string
	Number  int
	Holder  string
	Balance decimal.Decimal
}

// Accounts yields a summary per account in numbering order. The snapshot is
// taken under the lock; iteration itself is lazy.
func (l *Ledger) Accounts() iter.Seq[AccountSummary] {
	l.mu.Lock()
	summaries := make([]AccountSummary, 0, len(l.accounts))
	for number := 1; number < l.nextNumber; number++ {
		if account, ok := l.accounts[number]; ok {
			summaries = append(summaries, AccountSummary{
				Branch:  account.Branch(),
				Number:  account.Number(),
				Holder:  account.Owner().Identity().Name,
				Balance: account.Balance(),
			})
		}
	}
	l.mu.Unlock()

	return func(yield func(AccountSummary) bool) {
		for _, s := range summaries {
			if !yield(s) {
				return
			}
		}
	}
}

// Statement is the full reporting view of one account.
type Statement struct {
	Branch            string
	Number            int
	Holder            string
	Balance           decimal.Decimal
	Records           []Record
	WithdrawalsToday  int
	TransactionsToday int
	Limits            Limits
}

// Statement returns the account's balance, history and daily counters.
func (l *Ledger) Statement(accountNumber int) (Statement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[accountNumber]
	if !ok {
		return Statement{}, ErrAccountNotFound
	}
	return Statement{
		Branch:            account.Branch(),
		Number:            account.Number(),
		Holder:            account.Owner().Identity().Name,
		Balance:           account.Balance(),
		Records:           collect(account.History().Report()),
		WithdrawalsToday:  account.WithdrawalsToday(),
		TransactionsToday: account.TransactionsToday(),
		Limits:            account.Limits(),
	}, nil
}

// Report returns the account's history filtered to the given kinds (all
// records when none are given), materialized under the lock.
func (l *Ledger) Report(accountNumber int, kinds ...Kind) ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[accountNumber]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return collect(account.History().Report(kinds...)), nil
}

// DailyWithdrawalCount reports today's successful withdrawals for an account.
func (l *Ledger) DailyWithdrawalCount(accountNumber int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[accountNumber]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return account.WithdrawalsToday(), nil
}

// DailyTransactionCount reports today's successful transactions for an account.
func (l *Ledger) DailyTransactionCount(accountNumber int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[accountNumber]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return account.TransactionsToday(), nil
}

func collect(seq iter.Seq[Record]) []Record {
	records := []Record{}
	for r := range seq {
		records = append(records, r)
	}
	return records
}
