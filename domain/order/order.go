/*
Package order contains the Order aggregate, the only consistency boundary
in this module with more than one entity inside it.

Rules the aggregate enforces:
1. An order holds at least one item from construction on.
2. Items are immutable; the only mutation is appending a whole item
   through the root.
3. The total is derived from the items on every call, never stored.
*/
package order

// Order is the aggregate root. It exclusively owns its item collection
// and holds a non-owning reference to its customer by id.
type Order struct {
	id         string
	customerID string
	items      []OrderItem
}

// NewOrder is the only way to build an Order. It rejects an empty item
// list and any item that does not satisfy the item invariants, so a
// constructed Order is always in a valid state.
func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	if id == "" {
		return nil, NewInvalidOrderError("order id is required")
	}
	if customerID == "" {
		return nil, NewInvalidOrderError("customer id is required")
	}
	if len(items) == 0 {
		return nil, NewEmptyItemsError()
	}
	for _, item := range items {
		if err := item.validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:         id,
		customerID: customerID,
		items:      make([]OrderItem, len(items)),
	}
	copy(o.items, items)
	return o, nil
}

// AddItem appends item to the order. A well-formed OrderItem (anything
// built by NewOrderItem) never fails to append; the total needs no
// bookkeeping because it is recomputed on demand.
func (o *Order) AddItem(item OrderItem) {
	o.items = append(o.items, item)
}

// ChangeCustomer reassigns the order to another customer. The customer's
// existence is the storage layer's concern, not the aggregate's.
func (o *Order) ChangeCustomer(customerID string) error {
	if customerID == "" {
		return NewInvalidOrderError("customer id is required")
	}
	o.customerID = customerID
	return nil
}

// Total sums price * quantity over all items. Pure, O(n), recomputed on
// every call so it can never go stale after AddItem.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.LineTotal()
	}
	return total
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

// Items returns a copy; callers cannot reach into the collection to
// mutate an item in place.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}
