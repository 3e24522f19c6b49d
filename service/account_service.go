// file: service/account_service.go

package service

import (
	"go-ledger-api/ledger"
	"go-ledger-api/logger"
	"go-ledger-api/model"
)

// AccountService handles account opening and reporting queries.
type AccountService struct {
	ledger *ledger.Ledger
}

func NewAccountService(l *ledger.Ledger) *AccountService {
	return &AccountService{ledger: l}
}

// OpenAccount opens a checking account for an existing customer.
func (s *AccountService) OpenAccount(taxID string) (*model.AccountResponse, error) {
	log := logger.Log.WithField("tax_id", taxID)
	log.Info("Opening new checking account")

	account, err := s.ledger.OpenAccount(taxID)
	if err != nil {
		return nil, err
	}

	return &model.AccountResponse{
		Branch:  account.Branch(),
		Number:  account.Number(),
		Holder:  account.Owner().Identity().Name,
		Balance: account.Balance(),
	}, nil
}

// ListAccounts returns a summary of every account in numbering order.
func (s *AccountService) ListAccounts() []model.AccountResponse {
	accounts := []model.AccountResponse{}
	for summary := range s.ledger.Accounts() {
		accounts = append(accounts, model.AccountResponse{
			Branch:  summary.Branch,
			Number:  summary.Number,
			Holder:  summary.Holder,
			Balance: summary.Balance,
		})
	}
	return accounts
}

// GetAccount returns the current snapshot of one account.
func (s *AccountService) GetAccount(accountNumber int) (*model.AccountResponse, error) {
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

// GetStatement returns balance, history and daily counters for one account.
func (s *AccountService) GetStatement(accountNumber int) (*model.StatementResponse, error) {
	statement, err := s.ledger.Statement(accountNumber)
	if err != nil {
		return nil, err
	}

	return &model.StatementResponse{
		Account: model.AccountResponse{
			Branch:  statement.Branch,
			Number:  statement.Number,
			Holder:  statement.Holder,
			Balance: statement.Balance,
		},
		Transactions:      toTransactionRecords(statement.Records),
		WithdrawalsToday:  statement.WithdrawalsToday,
		MaxWithdrawals:    statement.Limits.MaxDailyWithdrawals,
		TransactionsToday: statement.TransactionsToday,
		MaxTransactions:   statement.Limits.MaxDailyTransactions,
		WithdrawalLimit:   statement.Limits.WithdrawalLimit,
	}, nil
}
