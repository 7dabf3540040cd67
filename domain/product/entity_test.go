package product_test

import (
	"testing"

	"storefront/domain/product"
	"storefront/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Validation(t *testing.T) {
	_, err := product.NewProduct("", "Product 1", 10)
	assert.ErrorIs(t, err, product.ErrInvalidProduct)
	assert.ErrorIs(t, err, shared.ErrInvalidAggregateState)

	_, err = product.NewProduct("123", "", 10)
	assert.ErrorIs(t, err, product.ErrInvalidProduct)

	_, err = product.NewProduct("123", "Product 1", -1)
	assert.ErrorIs(t, err, product.ErrInvalidProduct)
}

func TestProduct_ChangePrice(t *testing.T) {
	p, err := product.NewProduct("123", "Product 1", 10)
	require.NoError(t, err)

	require.NoError(t, p.ChangePrice(15))
	assert.Equal(t, 15.0, p.Price())

	assert.ErrorIs(t, p.ChangePrice(-5), product.ErrInvalidProduct)
	assert.Equal(t, 15.0, p.Price())
}

func TestDomainService_IncreasePrice(t *testing.T) {
	p1, err := product.NewProduct("1", "Product 1", 100)
	require.NoError(t, err)
	p2, err := product.NewProduct("2", "Product 2", 50)
	require.NoError(t, err)

	svc := product.NewDomainService()
	require.NoError(t, svc.IncreasePrice([]*product.Product{p1, p2}, 10))

	assert.InDelta(t, 110, p1.Price(), 1e-9)
	assert.InDelta(t, 55, p2.Price(), 1e-9)

	assert.ErrorIs(t, svc.IncreasePrice([]*product.Product{p1}, -1), product.ErrInvalidProduct)
}
