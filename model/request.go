// file: model/request.go

package model

// RegisterCustomerRequest defines the payload for registering a customer.
// The tax id follows the branch's rule: exactly 11 digits, no punctuation.
type RegisterCustomerRequest struct {
	Name      string `json:"name" validate:"required,min=3,max=100"`
	BirthDate string `json:"birth_date" validate:"required,datetime=02/01/2006"`
	TaxID     string `json:"tax_id" validate:"required,len=11,numeric"`
	Address   string `json:"address" validate:"required"`
}

// OpenAccountRequest defines the payload for opening a checking account.
type OpenAccountRequest struct {
	TaxID string `json:"tax_id" validate:"required,len=11,numeric"`
}

// AmountRequest defines the payload for deposits and withdrawals. The core
// engine re-checks positivity; the tag rejects the obvious cases early.
type AmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
