package order_test

import (
	"errors"
	"testing"

	"storefront/domain/order"
	"storefront/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id, name string, price float64, productID string, quantity int) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(id, name, price, productID, quantity)
	require.NoError(t, err)
	return item
}

func TestNewOrderItem_Validation(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		price    float64
		quantity int
		sentinel error
	}{
		{"zero quantity", "1", 10, 0, order.ErrInvalidQuantity},
		{"negative quantity", "1", 10, -2, order.ErrInvalidQuantity},
		{"negative price", "1", -0.01, 1, order.ErrInvalidPrice},
		{"missing id", "", 10, 1, order.ErrInvalidOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrderItem(tt.id, "Product 1", tt.price, "123", tt.quantity)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, shared.ErrInvalidAggregateState)
		})
	}
}

func TestNewOrderItem_ZeroPriceIsValid(t *testing.T) {
	item, err := order.NewOrderItem("1", "Freebie", 0, "123", 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, item.LineTotal())
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := mustItem(t, "1", "Product 1", 10, "123", 2)
	assert.Equal(t, 20.0, item.LineTotal())
}

func TestNewOrder_EmptyItems(t *testing.T) {
	_, err := order.NewOrder("123", "123", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrEmptyOrderItems)
	assert.ErrorIs(t, err, shared.ErrInvalidAggregateState)

	_, err = order.NewOrder("123", "123", []order.OrderItem{})
	assert.ErrorIs(t, err, order.ErrEmptyOrderItems)
}

func TestNewOrder_RejectsInvalidItem(t *testing.T) {
	// A zero-value item bypasses NewOrderItem; the order constructor
	// must still refuse it.
	_, err := order.NewOrder("123", "123", []order.OrderItem{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidAggregateState)
}

func TestNewOrder_RequiresIdentity(t *testing.T) {
	item := mustItem(t, "1", "Product 1", 10, "123", 2)

	_, err := order.NewOrder("", "123", []order.OrderItem{item})
	assert.ErrorIs(t, err, order.ErrInvalidOrder)

	_, err = order.NewOrder("123", "", []order.OrderItem{item})
	assert.ErrorIs(t, err, order.ErrInvalidOrder)
}

func TestOrder_TotalIsRecomputedAfterAddItem(t *testing.T) {
	item := mustItem(t, "1", "Product 1", 10, "123", 2)
	o, err := order.NewOrder("123", "123", []order.OrderItem{item})
	require.NoError(t, err)
	assert.Equal(t, 20.0, o.Total())

	o.AddItem(mustItem(t, "2", "Product 2", 20, "234", 1))
	assert.Equal(t, 40.0, o.Total())
	assert.Len(t, o.Items(), 2)

	o.AddItem(mustItem(t, "3", "Product 3", 5, "345", 4))
	assert.Equal(t, 60.0, o.Total())
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	item := mustItem(t, "1", "Product 1", 10, "123", 2)
	o, err := order.NewOrder("123", "123", []order.OrderItem{item})
	require.NoError(t, err)

	items := o.Items()
	items[0] = mustItem(t, "9", "Intruder", 999, "999", 9)

	assert.Equal(t, 20.0, o.Total())
	assert.Equal(t, "1", o.Items()[0].ID())
}

func TestOrder_ChangeCustomer(t *testing.T) {
	item := mustItem(t, "1", "Product 1", 10, "123", 2)
	o, err := order.NewOrder("123", "123", []order.OrderItem{item})
	require.NoError(t, err)

	require.NoError(t, o.ChangeCustomer("456"))
	assert.Equal(t, "456", o.CustomerID())

	err = o.ChangeCustomer("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, order.ErrInvalidOrder))
	assert.Equal(t, "456", o.CustomerID())
}
