package customer

import "time"

const CustomerAddressChangedEventName = "CustomerAddressChangedEvent"

// CustomerAddressChangedEvent carries a snapshot of the customer taken when
// the address changed.
type CustomerAddressChangedEvent struct {
	customer   Customer
	occurredAt time.Time
}

func NewCustomerAddressChangedEvent(customer Customer) CustomerAddressChangedEvent {
	return CustomerAddressChangedEvent{
		customer:   customer,
		occurredAt: time.Now(),
	}
}

func (e CustomerAddressChangedEvent) EventName() string {
	return CustomerAddressChangedEventName
}

func (e CustomerAddressChangedEvent) EventData() any {
	return e.customer
}

func (e CustomerAddressChangedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e CustomerAddressChangedEvent) Customer() Customer {
	return e.customer
}
