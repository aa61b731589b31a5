package customer

type Address struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

func NewCustomer(id, name string) *Customer {
	return &Customer{
		ID:   id,
		Name: name,
	}
}

// ChangeAddress sets the new address and returns the event describing the
// change. The caller hands the event to the dispatcher.
func (c *Customer) ChangeAddress(address Address) CustomerAddressChangedEvent {
	c.Address = address

	return NewCustomerAddressChangedEvent(*c)
}
