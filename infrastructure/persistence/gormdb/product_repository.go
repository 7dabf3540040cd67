package gormdb

import (
	"context"
	"errors"

	"storefront/domain/product"
	"storefront/infrastructure/persistence/gormdb/po"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if err := r.db.WithContext(ctx).Create(po.FromProductDomain(p)).Error; err != nil {
		return product.NewPersistenceError("create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result := r.db.WithContext(ctx).
		Model(&po.ProductPO{}).
		Where("id = ?", p.ID()).
		Select("*").
		Updates(po.FromProductDomain(p))

	if result.Error != nil {
		return product.NewPersistenceError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.NewProductNotFoundError(p.ID())
	}
	return nil
}

func (r *ProductRepository) Find(ctx context.Context, id string) (*product.Product, error) {
	var productPO po.ProductPO
	if err := r.db.WithContext(ctx).First(&productPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.NewProductNotFoundError(id)
		}
		return nil, product.NewPersistenceError("find product", err)
	}
	return productPO.ToDomain()
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	var productPOs []po.ProductPO
	if err := r.db.WithContext(ctx).Find(&productPOs).Error; err != nil {
		return nil, product.NewPersistenceError("list products", err)
	}

	products := make([]*product.Product, 0, len(productPOs))
	for _, productPO := range productPOs {
		p, err := productPO.ToDomain()
		if err != nil {
			return nil, product.NewPersistenceError("rebuild product "+productPO.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

var _ product.Repository = (*ProductRepository)(nil)
