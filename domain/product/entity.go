// Package product contains the Product entity and the pricing domain
// service. Products are referenced from orders by id only; the order
// aggregate never owns them.
package product

// Product is a standalone entity: id, display name and a unit price that
// must never go negative.
type Product struct {
	id    string
	name  string
	price float64
}

func NewProduct(id, name string, price float64) (*Product, error) {
	if id == "" {
		return nil, NewInvalidProductError("product id is required")
	}
	if name == "" {
		return nil, NewInvalidProductError("product name is required")
	}
	if price < 0 {
		return nil, NewInvalidProductError("product price must not be negative")
	}
	return &Product{id: id, name: name, price: price}, nil
}

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return NewInvalidProductError("product name is required")
	}
	p.name = name
	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return NewInvalidProductError("product price must not be negative")
	}
	p.price = price
	return nil
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }
