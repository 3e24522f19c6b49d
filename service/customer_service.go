package service

import (
	"go-ledger-api/ledger"
	"go-ledger-api/logger"
	"go-ledger-api/model"
)

// CustomerService handles customer registration bookkeeping.
type CustomerService struct {
	ledger *ledger.Ledger
}

func NewCustomerService(l *ledger.Ledger) *CustomerService {
	return &CustomerService{ledger: l}
}

// RegisterCustomer adds a customer to the ledger registry.
func (s *CustomerService) RegisterCustomer(req model.RegisterCustomerRequest) (*model.CustomerResponse, error) {
	log := logger.Log.WithField("tax_id", req.TaxID)
	log.Info("Registering new customer")

	customer, err := s.ledger.RegisterCustomer(ledger.PersonalIdentity{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		TaxID:     req.TaxID,
		Address:   req.Address,
	})
	if err != nil {
		return nil, err
	}

	identity := customer.Identity()
	return &model.CustomerResponse{
		Name:      identity.Name,
		BirthDate: identity.BirthDate,
		TaxID:     identity.TaxID,
		Address:   identity.Address,
	}, nil
}
