// Package po holds the persistence objects: flat row shapes for database
// mapping only, with pure conversion functions to and from the domain
// model. No business logic and no GORM associations live here; aggregate
// boundaries are kept by loading related rows explicitly.
package po

import (
	"storefront/domain/order"
)

// OrderPO is the persisted order row. Total is a denormalized snapshot
// taken when the order is created; it is not rewritten afterwards.
type OrderPO struct {
	ID         string  `gorm:"primaryKey;size:64"`
	CustomerID string  `gorm:"column:customer_id;size:64;index;not null"`
	Total      float64 `gorm:"not null"`
}

func (OrderPO) TableName() string {
	return "orders"
}

// OrderItemPO is one persisted order line, tied to its order by a plain
// foreign key column.
type OrderItemPO struct {
	ID        string  `gorm:"primaryKey;size:64"`
	OrderID   string  `gorm:"size:64;index;not null"`
	ProductID string  `gorm:"size:64;not null"`
	Name      string  `gorm:"size:255;not null"`
	Price     float64 `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
}

func (OrderItemPO) TableName() string {
	return "order_items"
}

// FromOrderDomain flattens the aggregate into its rows. The total
// snapshot is computed here, at write time.
func FromOrderDomain(o *order.Order) (*OrderPO, []OrderItemPO) {
	orderPO := &OrderPO{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, item := range items {
		itemPOs[i] = OrderItemPO{
			ID:        item.ID(),
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		}
	}

	return orderPO, itemPOs
}

// ToDomain reconstructs the aggregate from its rows through the
// validating constructors, so a corrupt row set (no items, bad quantity)
// cannot produce an invalid aggregate. Pure: no store access, no side
// effects.
func (p *OrderPO) ToDomain(itemPOs []OrderItemPO) (*order.Order, error) {
	items := make([]order.OrderItem, len(itemPOs))
	for i, itemPO := range itemPOs {
		item, err := order.NewOrderItem(itemPO.ID, itemPO.Name, itemPO.Price, itemPO.ProductID, itemPO.Quantity)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return order.NewOrder(p.ID, p.CustomerID, items)
}
