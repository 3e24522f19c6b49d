// file: model/response.go

package model

import "github.com/shopspring/decimal"

type CustomerResponse struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
}

type AccountResponse struct {
	Branch  string          `json:"branch"`
	Number  int             `json:"number"`
	Holder  string          `json:"holder"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionRecord is one history entry as rendered to clients. Timestamps
// use the branch's DD/MM/YYYY HH:MM:SS convention.
type TransactionRecord struct {
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp"`
}

type StatementResponse struct {
	Account           AccountResponse     `json:"account"`
	Transactions      []TransactionRecord `json:"transactions"`
	WithdrawalsToday  int                 `json:"withdrawals_today"`
	MaxWithdrawals    int                 `json:"max_daily_withdrawals"`
	TransactionsToday int                 `json:"transactions_today"`
	MaxTransactions   int                 `json:"max_daily_transactions"`
	WithdrawalLimit   decimal.Decimal     `json:"withdrawal_limit"`
}

type ReportResponse struct {
	AccountNumber int                 `json:"account_number"`
	Kind          string              `json:"kind,omitempty"`
	Total         int                 `json:"total"`
	Transactions  []TransactionRecord `json:"transactions"`
}
