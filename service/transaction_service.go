package service

import (
	"go-ledger-api/ledger"
	"go-ledger-api/logger"
	"go-ledger-api/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// timestampFormat is the branch's rendering convention for history entries.
const timestampFormat = "02/01/2006 15:04:05"

// TransactionService constructs transaction values and dispatches them to
// accounts through the ledger, the single mutating entry point.
type TransactionService struct {
	ledger *ledger.Ledger
}

func NewTransactionService(l *ledger.Ledger) *TransactionService {
	return &TransactionService{ledger: l}
}

// Deposit applies a deposit to the account and returns its new snapshot.
func (s *TransactionService) Deposit(accountNumber int, amount float64) (*model.AccountResponse, error) {
	return s.apply(accountNumber, ledger.NewDeposit(decimal.NewFromFloat(amount)))
}

// Withdraw applies a withdrawal to the account and returns its new snapshot.
func (s *TransactionService) Withdraw(accountNumber int, amount float64) (*model.AccountResponse, error) {
	return s.apply(accountNumber, ledger.NewWithdrawal(decimal.NewFromFloat(amount)))
}

func (s *TransactionService) apply(accountNumber int, tx ledger.Transaction) (*model.AccountResponse, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"kind":           tx.Kind(),
		"amount":         tx.Amount(),
	})
	log.Info("Dispatching transaction")

	if err := s.ledger.Apply(accountNumber, tx); err != nil {
		return nil, err
	}

	statement, err := s.ledger.Statement(accountNumber)
	if err != nil {
		return nil, err
	}
	return &model.AccountResponse{
		Branch:  statement.Branch,
		Number:  statement.Number,
		Holder:  statement.Holder,
		Balance: statement.Balance,
	}, nil
}

// Report returns the account's transaction history, optionally filtered to
// one kind ("deposit" or "withdrawal"); an empty kind means no filter.
func (s *TransactionService) Report(accountNumber int, kind string) (*model.ReportResponse, error) {
	var kinds []ledger.Kind
	if kind != "" {
		k, err := ledger.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}

	records, err := s.ledger.Report(accountNumber, kinds...)
	if err != nil {
		return nil, err
	}

	transactions := toTransactionRecords(records)
	return &model.ReportResponse{
		AccountNumber: accountNumber,
		Kind:          kind,
		Total:         len(transactions),
		Transactions:  transactions,
	}, nil
}

func toTransactionRecords(records []ledger.Record) []model.TransactionRecord {
	transactions := make([]model.TransactionRecord, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, model.TransactionRecord{
			Kind:      string(r.Kind),
			Amount:    r.Amount,
			Timestamp: r.Timestamp.Format(timestampFormat),
		})
	}
	return transactions
}
