package customer

import "time"

const CustomerCreatedEventName = "CustomerCreatedEvent"

type CustomerCreatedEvent struct {
	data       any
	occurredAt time.Time
}

func NewCustomerCreatedEvent(data any) CustomerCreatedEvent {
	return CustomerCreatedEvent{
		data:       data,
		occurredAt: time.Now(),
	}
}

func (e CustomerCreatedEvent) EventName() string {
	return CustomerCreatedEventName
}

func (e CustomerCreatedEvent) EventData() any {
	return e.data
}

func (e CustomerCreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}
