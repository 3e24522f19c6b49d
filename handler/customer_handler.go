package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/ledger"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
)

type CustomerHandler struct {
	service *service.CustomerService
}

func NewCustomerHandler(s *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// RegisterCustomer godoc
// @Summary      Register a new customer
// @Description  Registers a customer with name, birth date (DD/MM/YYYY), 11-digit tax id and address. Tax ids are unique.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer body model.RegisterCustomerRequest true "Customer details"
// @Success      201  {object}  model.CustomerResponse
// @Failure      400  {object}  common.AppError "Malformed body or failed validation"
// @Failure      409  {object}  common.AppError "A customer with this tax id already exists"
// @Router       /api/customers [post]
func (h *CustomerHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterCustomerRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithField("tax_id", req.TaxID).Info("Register customer request received")

	customer, err := h.service.RegisterCustomer(req)
	if err != nil {
		switch err {
		case ledger.ErrDuplicateCustomer:
			return common.NewAppError(http.StatusConflict, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not register customer", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(customer)
	return nil
}
