package order

// OrderItem is one line of an order. It belongs to exactly one Order and
// is immutable once constructed; corrections happen by appending a new
// item through the aggregate root, never by mutating an existing one.
type OrderItem struct {
	id        string
	name      string
	price     float64
	productID string
	quantity  int
}

// NewOrderItem validates the item invariants: positive quantity,
// non-negative price.
func NewOrderItem(id, name string, price float64, productID string, quantity int) (OrderItem, error) {
	item := OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
	}
	if err := item.validate(); err != nil {
		return OrderItem{}, err
	}
	return item, nil
}

func (i OrderItem) validate() error {
	if i.id == "" {
		return NewInvalidOrderError("item id is required")
	}
	if i.quantity <= 0 {
		return NewInvalidQuantityError(i.quantity)
	}
	if i.price < 0 {
		return NewInvalidPriceError(i.price)
	}
	return nil
}

// LineTotal derives the item's contribution to the order total.
func (i OrderItem) LineTotal() float64 {
	return i.price * float64(i.quantity)
}

func (i OrderItem) ID() string        { return i.id }
func (i OrderItem) Name() string      { return i.name }
func (i OrderItem) Price() float64    { return i.price }
func (i OrderItem) ProductID() string { return i.productID }
func (i OrderItem) Quantity() int     { return i.quantity }
