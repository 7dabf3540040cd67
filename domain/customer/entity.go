/*
Package customer contains the Customer aggregate and the notification
handlers that react to its events.

The aggregate buffers the events it raises; the application layer pulls
them after a successful persistence call and hands them to the
dispatcher. Handlers never feed back into the aggregate.
*/
package customer

import (
	"storefront/domain/shared"
)

// Customer aggregate root. A customer must have an address before it can
// be activated; orders reference it by id only.
type Customer struct {
	id           string
	name         string
	address      Address
	hasAddress   bool
	active       bool
	rewardPoints int

	events []shared.DomainEvent
}

// NewCustomer validates identity and name and records the creation
// event. The address is set separately through ChangeAddress.
func NewCustomer(id, name string) (*Customer, error) {
	if id == "" {
		return nil, NewInvalidCustomerError("customer id is required")
	}
	if name == "" {
		return nil, NewInvalidCustomerError("customer name is required")
	}

	c := &Customer{
		id:   id,
		name: name,
	}
	c.events = append(c.events, NewCustomerCreatedEvent(c.id, c.name))
	return c, nil
}

// ReconstructionDTO carries the flat persisted state of a customer.
// For repository use only: rebuilding from rows must not re-raise the
// creation event the way NewCustomer does.
type ReconstructionDTO struct {
	ID           string
	Name         string
	Address      Address
	HasAddress   bool
	Active       bool
	RewardPoints int
}

// RebuildFromDTO reconstructs a Customer from its persisted state with
// an empty event buffer.
func RebuildFromDTO(dto ReconstructionDTO) *Customer {
	return &Customer{
		id:           dto.ID,
		name:         dto.Name,
		address:      dto.Address,
		hasAddress:   dto.HasAddress,
		active:       dto.Active,
		rewardPoints: dto.RewardPoints,
	}
}

// ChangeName keeps the non-empty invariant of the name.
func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return NewInvalidCustomerError("customer name is required")
	}
	c.name = name
	return nil
}

// ChangeAddress replaces the customer's address and records an
// AddressChanged event carrying the id, name and new address.
func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	c.hasAddress = true
	c.events = append(c.events, NewCustomerAddressChangedEvent(c.id, c.name, address))
	return nil
}

// Activate requires an address on file.
func (c *Customer) Activate() error {
	if !c.hasAddress {
		return NewInvalidCustomerError("address is mandatory to activate a customer")
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

// AddRewardPoints accumulates loyalty points; negative deltas are input
// errors, not refunds.
func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return NewInvalidCustomerError("reward points must not be negative")
	}
	c.rewardPoints += points
	return nil
}

// PullEvents returns the buffered events and clears the buffer, so each
// event is dispatched at most once.
func (c *Customer) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(c.events))
	copy(events, c.events)
	c.events = nil
	return events
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) Address() Address  { return c.address }
func (c *Customer) HasAddress() bool  { return c.hasAddress }
func (c *Customer) IsActive() bool    { return c.active }
func (c *Customer) RewardPoints() int { return c.rewardPoints }
