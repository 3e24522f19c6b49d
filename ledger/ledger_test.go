package ledger

import (
	"go-ledger-api/logger"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	// The audit wrapper logs through the shared logger.
	logger.Init()
	os.Exit(m.Run())
}

func maria() PersonalIdentity {
	return PersonalIdentity{
		Name:      "Maria Silva",
		BirthDate: "01/02/1990",
		TaxID:     "12345678901",
		Address:   "Rua A, 10 - Centro - Sao Paulo/SP",
	}
}

func joao() PersonalIdentity {
	return PersonalIdentity{
		Name:      "Joao Souza",
		BirthDate: "15/07/1985",
		TaxID:     "98765432100",
		Address:   "Rua B, 22 - Jardim - Campinas/SP",
	}
}

func newTestLedger() *Ledger {
	clock := &fakeClock{now: time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)}
	return NewWithClock("0001", DefaultLimits(), clock)
}

func TestLedger_RegisterCustomer(t *testing.T) {
	l := newTestLedger()

	customer, err := l.RegisterCustomer(maria())
	assert.NoError(t, err)
	assert.Equal(t, "12345678901", customer.Identity().TaxID)

	_, err = l.RegisterCustomer(maria())
	assert.ErrorIs(t, err, ErrDuplicateCustomer)
}

func TestLedger_OpenAccount(t *testing.T) {
	l := newTestLedger()
	_, err := l.RegisterCustomer(maria())
	assert.NoError(t, err)
	_, err = l.RegisterCustomer(joao())
	assert.NoError(t, err)

	first, err := l.OpenAccount("12345678901")
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Number())
	assert.Equal(t, "0001", first.Branch())
	assert.True(t, first.Balance().IsZero())
	assert.Zero(t, first.History().Len())

	second, err := l.OpenAccount("98765432100")
	assert.NoError(t, err)
	assert.Equal(t, 2, second.Number())

	_, err = l.OpenAccount("12345678901")
	assert.ErrorIs(t, err, ErrCustomerHasAccount)

	_, err = l.OpenAccount("00000000000")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestLedger_Apply(t *testing.T) {
	l := newTestLedger()
	_, err := l.RegisterCustomer(maria())
	assert.NoError(t, err)
	account, err := l.OpenAccount("12345678901")
	assert.NoError(t, err)

	assert.NoError(t, l.Apply(account.Number(), NewDeposit(dec(200))))
	assert.NoError(t, l.Apply(account.Number(), NewWithdrawal(dec(50))))
	assert.True(t, account.Balance().Equal(dec(150)))

	// Failures surface unchanged through the dispatcher.
	assert.ErrorIs(t, l.Apply(account.Number(), NewWithdrawal(dec(1000))), ErrWithdrawalLimitExceeded)
	assert.ErrorIs(t, l.Apply(99, NewDeposit(dec(10))), ErrAccountNotFound)
}

func TestLedger_Accounts(t *testing.T) {
	l := newTestLedger()
	_, err := l.RegisterCustomer(maria())
	assert.NoError(t, err)
	_, err = l.RegisterCustomer(joao())
	assert.NoError(t, err)
	_, err = l.OpenAccount("12345678901")
	assert.NoError(t, err)
	_, err = l.OpenAccount("98765432100")
	assert.NoError(t, err)

	assert.NoError(t, l.Apply(1, NewDeposit(dec(300))))

	var summaries []AccountSummary
	for s := range l.Accounts() {
		summaries = append(summaries, s)
	}

	assert.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Number)
	assert.Equal(t, "Maria Silva", summaries[0].Holder)
	assert.True(t, summaries[0].Balance.Equal(dec(300)))
	assert.Equal(t, 2, summaries[1].Number)
	assert.Equal(t, "Joao Souza", summaries[1].Holder)
}

func TestLedger_Statement(t *testing.T) {
	l := newTestLedger()
	_, err := l.RegisterCustomer(maria())
	assert.NoError(t, err)
	account, err := l.OpenAccount("12345678901")
	assert.NoError(t, err)

	assert.NoError(t, l.Apply(account.Number(), NewDeposit(dec(200))))
	assert.NoError(t, l.Apply(account.Number(), NewWithdrawal(dec(80))))

	statement, err := l.Statement(account.Number())
	assert.NoError(t, err)
	assert.Equal(t, "Maria Silva", statement.Holder)
	assert.True(t, statement.Balance.Equal(dec(120)))
	assert.Len(t, statement.Records, 2)
	assert.Equal(t, 1, statement.WithdrawalsToday)
	assert.Equal(t, 2, statement.TransactionsToday)
	assert.Equal(t, 3, statement.Limits.MaxDailyWithdrawals)

	_, err = l.Statement(42)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLedger_Report(t *testing.T) {
	l := newTestLedger()
	_, err := l.RegisterCustomer(maria())
	assert.NoError(t, err)
	account, err := l.OpenAccount("12345678901")
	assert.NoError(t, err)

	assert.NoError(t, l.Apply(account.Number(), NewDeposit(dec(100))))
	assert.NoError(t, l.Apply(account.Number(), NewWithdrawal(dec(25))))
	assert.NoError(t, l.Apply(account.Number(), NewDeposit(dec(10))))

	all, err := l.Report(account.Number())
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	deposits, err := l.Report(account.Number(), KindDeposit)
	assert.NoError(t, err)
	assert.Len(t, deposits, 2)

	withdrawals, err := l.Report(account.Number(), KindWithdrawal)
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 1)

	_, err = l.Report(42)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLedger_DailyCounts(t *testing.T) {
	l := newTestLedger()
	_, err := l.RegisterCustomer(maria())
	assert.NoError(t, err)
	account, err := l.OpenAccount("12345678901")
	assert.NoError(t, err)

	assert.NoError(t, l.Apply(account.Number(), NewDeposit(dec(100))))
	assert.NoError(t, l.Apply(account.Number(), NewWithdrawal(dec(25))))

	withdrawals, err := l.DailyWithdrawalCount(account.Number())
	assert.NoError(t, err)
	assert.Equal(t, 1, withdrawals)

	transactions, err := l.DailyTransactionCount(account.Number())
	assert.NoError(t, err)
	assert.Equal(t, 2, transactions)

	_, err = l.DailyWithdrawalCount(42)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	_, err = l.DailyTransactionCount(42)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("deposit")
	assert.NoError(t, err)
	assert.Equal(t, KindDeposit, kind)

	kind, err = ParseKind("withdrawal")
	assert.NoError(t, err)
	assert.Equal(t, KindWithdrawal, kind)

	_, err = ParseKind("transfer")
	assert.ErrorIs(t, err, ErrInvalidKind)
}
