package ledger

// PersonalIdentity is the identifying data of a customer, held by value.
// TaxID is an 11-digit numeric string, unique across customers; BirthDate is
// kept in DD/MM/YYYY form, as the boundary validates and renders it.
type PersonalIdentity struct {
	Name      string
	BirthDate string
	TaxID     string
	Address   string
}

// Customer binds an identity to the accounts it owns.
type Customer struct {
	identity PersonalIdentity
	accounts []*CheckingAccount
}

func NewCustomer(identity PersonalIdentity) *Customer {
	return &Customer{identity: identity}
}

func (c *Customer) Identity() PersonalIdentity   { return c.identity }
func (c *Customer) Accounts() []*CheckingAccount { return c.accounts }

func (c *Customer) addAccount(account *CheckingAccount) {
	c.accounts = append(c.accounts, account)
}

// ApplyTransaction forwards a transaction to one of the customer's accounts.
// This is the sole dispatch point between a transaction value and an account.
func (c *Customer) ApplyTransaction(target Target, tx Transaction) error {
	return tx.Apply(target)
}
