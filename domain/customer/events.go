package customer

import (
	"time"
)

// Event names double as dispatcher routing keys.
const (
	CustomerCreatedEventName        = "customer.created"
	CustomerAddressChangedEventName = "customer.address_changed"
)

type CustomerCreatedEvent struct {
	customerID string
	name       string
	occurredOn time.Time
}

func NewCustomerCreatedEvent(customerID, name string) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		customerID: customerID,
		name:       name,
		occurredOn: time.Now(),
	}
}

func (e *CustomerCreatedEvent) EventName() string     { return CustomerCreatedEventName }
func (e *CustomerCreatedEvent) OccurredOn() time.Time { return e.occurredOn }
func (e *CustomerCreatedEvent) AggregateID() string   { return e.customerID }
func (e *CustomerCreatedEvent) CustomerID() string    { return e.customerID }
func (e *CustomerCreatedEvent) CustomerName() string  { return e.name }

// CustomerAddressChangedEvent carries the {id, name, address} payload
// that notification handlers format. The payload is delivered to
// handlers exactly as recorded here.
type CustomerAddressChangedEvent struct {
	customerID string
	name       string
	address    Address
	occurredOn time.Time
}

func NewCustomerAddressChangedEvent(customerID, name string, address Address) *CustomerAddressChangedEvent {
	return &CustomerAddressChangedEvent{
		customerID: customerID,
		name:       name,
		address:    address,
		occurredOn: time.Now(),
	}
}

func (e *CustomerAddressChangedEvent) EventName() string     { return CustomerAddressChangedEventName }
func (e *CustomerAddressChangedEvent) OccurredOn() time.Time { return e.occurredOn }
func (e *CustomerAddressChangedEvent) AggregateID() string   { return e.customerID }
func (e *CustomerAddressChangedEvent) CustomerID() string    { return e.customerID }
func (e *CustomerAddressChangedEvent) CustomerName() string  { return e.name }
func (e *CustomerAddressChangedEvent) Address() Address      { return e.address }
