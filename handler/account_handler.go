package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/ledger"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(s *service.AccountService) *AccountHandler {
	return &AccountHandler{service: s}
}

// accountNumberFromPath parses the {accountNumber} path segment.
func accountNumberFromPath(r *http.Request) (int, *common.AppError) {
	accountNumber, err := strconv.Atoi(r.PathValue("accountNumber"))
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid account number in URL path", err)
	}
	return accountNumber, nil
}

// OpenAccount godoc
// @Summary      Open a checking account
// @Description  Opens a checking account for an existing customer. Account numbers are assigned sequentially starting at 1. A customer holds at most one account.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account body model.OpenAccountRequest true "Owner's tax id"
// @Success      201  {object}  model.AccountResponse
// @Failure      400  {object}  common.AppError "Malformed body or failed validation"
// @Failure      404  {object}  common.AppError "Customer not found"
// @Failure      409  {object}  common.AppError "Customer already has an account"
// @Router       /api/accounts [post]
func (h *AccountHandler) OpenAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.OpenAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithField("tax_id", req.TaxID).Info("Open account request received")

	account, err := h.service.OpenAccount(req.TaxID)
	if err != nil {
		switch err {
		case ledger.ErrCustomerNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case ledger.ErrCustomerHasAccount:
			return common.NewAppError(http.StatusConflict, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not open account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
	return nil
}

// ListAccounts godoc
// @Summary      List accounts
// @Description  Lists every account with branch, number, holder and balance.
// @Tags         accounts
// @Produce      json
// @Success      200  {array}   model.AccountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	accounts := h.service.ListAccounts()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(accounts)
	return nil
}

// GetAccount godoc
// @Summary      Get one account
// @Description  Returns the current snapshot of a single account.
// @Tags         accounts
// @Produce      json
// @Param        accountNumber path int true "Account number"
// @Success      200  {object}  model.AccountResponse
// @Failure      400  {object}  common.AppError "Invalid account number in URL path"
// @Failure      404  {object}  common.AppError "Account not found"
// @Router       /api/accounts/{accountNumber} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber, appErr := accountNumberFromPath(r)
	if appErr != nil {
		return appErr
	}

	account, err := h.service.GetAccount(accountNumber)
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// GetStatement godoc
// @Summary      Get an account statement
// @Description  Returns the balance, the full transaction history and today's withdrawal and transaction counts against their ceilings.
// @Tags         accounts
// @Produce      json
// @Param        accountNumber path int true "Account number"
// @Success      200  {object}  model.StatementResponse
// @Failure      400  {object}  common.AppError "Invalid account number in URL path"
// @Failure      404  {object}  common.AppError "Account not found"
// @Router       /api/accounts/{accountNumber}/statement [get]
func (h *AccountHandler) GetStatement(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber, appErr := accountNumberFromPath(r)
	if appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{"account_number": accountNumber})
	log.Info("Statement request received")

	statement, err := h.service.GetStatement(accountNumber)
	if err != nil {
		switch err {
		case ledger.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve statement", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(statement)
	return nil
}
