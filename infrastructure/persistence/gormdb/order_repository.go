// Package gormdb implements the domain repositories on GORM. Each
// repository translates between aggregates and the flat rows of the po
// package; connection and schema lifecycle live in db.go.
package gormdb

import (
	"context"

	"storefront/domain/order"
	"storefront/infrastructure/persistence/gormdb/po"

	"gorm.io/gorm"
)

// OrderRepository persists Order aggregates. GORM association features
// are not used: order rows and item rows are written and read
// explicitly so the aggregate boundary stays visible.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create writes the order row and all item rows in one transaction; on
// any failure nothing persists. The order row carries the total snapshot
// computed at this moment. Unknown customer or product ids surface here
// as constraint violations from the store, wrapped as persistence
// errors; this repository does not validate their existence itself.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	orderPO, itemPOs := po.FromOrderDomain(o)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(orderPO).Error; err != nil {
			return err
		}
		return tx.Create(&itemPOs).Error
	})
	if err != nil {
		return order.NewPersistenceError("create order", err)
	}
	return nil
}

// Find loads the order row plus its item rows and reconstructs the
// aggregate. Every failure on this path is collapsed into the single
// order-not-found condition; callers cannot and must not distinguish a
// missing row from a failed read or reconstruction.
func (r *OrderRepository) Find(ctx context.Context, id string) (*order.Order, error) {
	db := r.db.WithContext(ctx)

	var orderPO po.OrderPO
	if err := db.First(&orderPO, "id = ?", id).Error; err != nil {
		return nil, order.NewOrderNotFoundError(id)
	}

	var itemPOs []po.OrderItemPO
	if err := db.Where("order_id = ?", id).Find(&itemPOs).Error; err != nil {
		return nil, order.NewOrderNotFoundError(id)
	}

	o, err := orderPO.ToDomain(itemPOs)
	if err != nil {
		return nil, order.NewOrderNotFoundError(id)
	}
	return o, nil
}

// FindAll reconstructs every persisted order. An empty store yields an
// empty slice; storage failures are persistence errors, not not-found.
func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	db := r.db.WithContext(ctx)

	var orderPOs []po.OrderPO
	if err := db.Find(&orderPOs).Error; err != nil {
		return nil, order.NewPersistenceError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(orderPOs))
	for _, orderPO := range orderPOs {
		var itemPOs []po.OrderItemPO
		if err := db.Where("order_id = ?", orderPO.ID).Find(&itemPOs).Error; err != nil {
			return nil, order.NewPersistenceError("list order items", err)
		}
		o, err := orderPO.ToDomain(itemPOs)
		if err != nil {
			return nil, order.NewPersistenceError("rebuild order "+orderPO.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Update persists the customer reassignment for the matching row by id.
// It writes ONLY the customer_id column: item rows and the total
// snapshot from Create are deliberately left untouched, so an aggregate
// that grew items in memory will read back without them. This asymmetry
// is part of the operation's contract.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&po.OrderPO{}).
		Where("id = ?", o.ID()).
		Update("customer_id", o.CustomerID())

	if result.Error != nil {
		return order.NewPersistenceError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.NewOrderNotFoundError(o.ID())
	}
	return nil
}

var _ order.Repository = (*OrderRepository)(nil)
