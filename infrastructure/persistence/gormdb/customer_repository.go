package gormdb

import (
	"context"
	"errors"

	"storefront/domain/customer"
	"storefront/infrastructure/persistence/gormdb/po"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if err := r.db.WithContext(ctx).Create(po.FromCustomerDomain(c)).Error; err != nil {
		return customer.NewPersistenceError("create customer", err)
	}
	return nil
}

// Update rewrites the whole customer row; unlike orders, a customer has
// no owned child rows to keep in step.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	// Select("*") forces zero-valued fields (a deactivated flag, spent
	// reward points) to be written as well.
	result := r.db.WithContext(ctx).
		Model(&po.CustomerPO{}).
		Where("id = ?", c.ID()).
		Select("*").
		Updates(po.FromCustomerDomain(c))

	if result.Error != nil {
		return customer.NewPersistenceError("update customer", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.NewCustomerNotFoundError(c.ID())
	}
	return nil
}

func (r *CustomerRepository) Find(ctx context.Context, id string) (*customer.Customer, error) {
	var customerPO po.CustomerPO
	if err := r.db.WithContext(ctx).First(&customerPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.NewCustomerNotFoundError(id)
		}
		return nil, customer.NewPersistenceError("find customer", err)
	}
	return customerPO.ToDomain()
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerPOs []po.CustomerPO
	if err := r.db.WithContext(ctx).Find(&customerPOs).Error; err != nil {
		return nil, customer.NewPersistenceError("list customers", err)
	}

	customers := make([]*customer.Customer, 0, len(customerPOs))
	for _, customerPO := range customerPOs {
		c, err := customerPO.ToDomain()
		if err != nil {
			return nil, customer.NewPersistenceError("rebuild customer "+customerPO.ID, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
