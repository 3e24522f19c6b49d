package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/ledger"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateDeposit godoc
// @Summary      Deposit into an account
// @Description  Applies a deposit transaction to the account. Fails when the daily transaction ceiling is reached or the amount is not positive.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        accountNumber path int true "Account number"
// @Param        deposit body model.AmountRequest true "Amount to deposit"
// @Success      201  {object}  model.AccountResponse
// @Failure      400  {object}  common.AppError "Malformed body or failed validation"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      422  {object}  common.AppError "Rejected by the account's validation chain"
// @Router       /api/accounts/{accountNumber}/deposits [post]
func (h *TransactionHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.createTransaction(w, r, h.service.Deposit)
}

// CreateWithdrawal godoc
// @Summary      Withdraw from an account
// @Description  Applies a withdrawal transaction to the account. Fails on the daily transaction ceiling, the daily withdrawal ceiling, the per-withdrawal ceiling, a non-positive amount or insufficient balance, in that order.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        accountNumber path int true "Account number"
// @Param        withdrawal body model.AmountRequest true "Amount to withdraw"
// @Success      201  {object}  model.AccountResponse
// @Failure      400  {object}  common.AppError "Malformed body or failed validation"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      422  {object}  common.AppError "Rejected by the account's validation chain"
// @Router       /api/accounts/{accountNumber}/withdrawals [post]
func (h *TransactionHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.createTransaction(w, r, h.service.Withdraw)
}

func (h *TransactionHandler) createTransaction(w http.ResponseWriter, r *http.Request, apply func(int, float64) (*model.AccountResponse, error)) *common.AppError {
	accountNumber, appErr := accountNumberFromPath(r)
	if appErr != nil {
		return appErr
	}

	var req model.AmountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	account, err := apply(accountNumber, req.Amount)
	if err != nil {
		// Map domain errors to appropriate HTTP status codes.
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case ledger.ErrInvalidAmount, ledger.ErrInsufficientBalance,
			ledger.ErrWithdrawalLimitExceeded, ledger.ErrDailyWithdrawalLimitExceeded,
			ledger.ErrDailyTransactionLimitExceeded:
			return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
	return nil
}

// ListTransactions godoc
// @Summary      List account transaction history
// @Description  Returns the account's transaction history in insertion order, optionally filtered by kind.
// @Tags         transactions
// @Produce      json
// @Param        accountNumber path int true "Account number"
// @Param        kind query string false "Filter by kind" Enums(deposit, withdrawal)
// @Success      200  {object}  model.ReportResponse
// @Failure      400  {object}  common.AppError "Invalid account number or unknown kind"
// @Failure      404  {object}  common.AppError "Account not found"
// @Router       /api/accounts/{accountNumber}/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber, appErr := accountNumberFromPath(r)
	if appErr != nil {
		return appErr
	}

	report, err := h.service.Report(accountNumber, r.URL.Query().Get("kind"))
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case ledger.ErrInvalidKind:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
	return nil
}
