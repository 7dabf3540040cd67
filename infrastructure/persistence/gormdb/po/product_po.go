package po

import (
	"storefront/domain/product"
)

type ProductPO struct {
	ID    string  `gorm:"primaryKey;size:64"`
	Name  string  `gorm:"size:255;not null"`
	Price float64 `gorm:"not null"`
}

func (ProductPO) TableName() string {
	return "products"
}

func FromProductDomain(p *product.Product) *ProductPO {
	return &ProductPO{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func (p *ProductPO) ToDomain() (*product.Product, error) {
	return product.NewProduct(p.ID, p.Name, p.Price)
}
