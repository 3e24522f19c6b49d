// service/transaction_service_test.go
package service

import (
	"go-ledger-api/ledger"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	// Initialize the logger for the test environment.
	logger.Init()
	os.Exit(m.Run())
}

func newLedgerWithAccount(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New("0001", ledger.DefaultLimits())
	_, err := l.RegisterCustomer(ledger.PersonalIdentity{
		Name:      "Maria Silva",
		BirthDate: "01/02/1990",
		TaxID:     "12345678901",
		Address:   "Rua A, 10 - Centro - Sao Paulo/SP",
	})
	assert.NoError(t, err)
	_, err = l.OpenAccount("12345678901")
	assert.NoError(t, err)
	return l
}

func TestTransactionService_Deposit(t *testing.T) {
	l := newLedgerWithAccount(t)
	transactionService := NewTransactionService(l)

	account, err := transactionService.Deposit(1, 200.0)

	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromFloat(200.0)))
	assert.Equal(t, "0001", account.Branch)
	assert.Equal(t, "Maria Silva", account.Holder)
}

func TestTransactionService_Withdraw(t *testing.T) {
	l := newLedgerWithAccount(t)
	transactionService := NewTransactionService(l)

	_, err := transactionService.Deposit(1, 200.0)
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		account, err := transactionService.Withdraw(1, 50.0)
		assert.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(150.0)))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		_, err := transactionService.Withdraw(1, 500.0)
		assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := transactionService.Withdraw(42, 10.0)
		assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	})
}

func TestTransactionService_Report(t *testing.T) {
	l := newLedgerWithAccount(t)
	transactionService := NewTransactionService(l)

	_, err := transactionService.Deposit(1, 100.0)
	assert.NoError(t, err)
	_, err = transactionService.Withdraw(1, 30.0)
	assert.NoError(t, err)
	_, err = transactionService.Deposit(1, 20.0)
	assert.NoError(t, err)

	t.Run("unfiltered", func(t *testing.T) {
		report, err := transactionService.Report(1, "")
		assert.NoError(t, err)
		assert.Equal(t, 3, report.Total)
		assert.Len(t, report.Transactions, 3)
	})

	t.Run("deposits only", func(t *testing.T) {
		report, err := transactionService.Report(1, "deposit")
		assert.NoError(t, err)
		assert.Equal(t, 2, report.Total)
		for _, tx := range report.Transactions {
			assert.Equal(t, "deposit", tx.Kind)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := transactionService.Report(1, "transfer")
		assert.ErrorIs(t, err, ledger.ErrInvalidKind)
	})
}

func TestAccountService_GetStatement(t *testing.T) {
	l := newLedgerWithAccount(t)
	accountService := NewAccountService(l)
	transactionService := NewTransactionService(l)

	_, err := transactionService.Deposit(1, 200.0)
	assert.NoError(t, err)
	_, err = transactionService.Withdraw(1, 80.0)
	assert.NoError(t, err)

	statement, err := accountService.GetStatement(1)
	assert.NoError(t, err)
	assert.True(t, statement.Account.Balance.Equal(decimal.NewFromFloat(120.0)))
	assert.Len(t, statement.Transactions, 2)
	assert.Equal(t, 1, statement.WithdrawalsToday)
	assert.Equal(t, 3, statement.MaxWithdrawals)
	assert.Equal(t, 2, statement.TransactionsToday)
	assert.Equal(t, 10, statement.MaxTransactions)
}

func registerRequest() model.RegisterCustomerRequest {
	return model.RegisterCustomerRequest{
		Name:      "Joao Souza",
		BirthDate: "15/07/1985",
		TaxID:     "98765432100",
		Address:   "Rua B, 22 - Jardim - Campinas/SP",
	}
}

func TestCustomerService_RegisterCustomer(t *testing.T) {
	l := ledger.New("0001", ledger.DefaultLimits())
	customerService := NewCustomerService(l)

	customer, err := customerService.RegisterCustomer(registerRequest())
	assert.NoError(t, err)
	assert.Equal(t, "Joao Souza", customer.Name)
	assert.Equal(t, "98765432100", customer.TaxID)

	_, err = customerService.RegisterCustomer(registerRequest())
	assert.ErrorIs(t, err, ledger.ErrDuplicateCustomer)
}
