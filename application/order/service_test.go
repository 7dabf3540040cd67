package order_test

import (
	"context"
	"testing"

	apporder "storefront/application/order"
	"storefront/domain/customer"
	"storefront/domain/order"
	"storefront/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepository struct {
	orders map[string]*order.Order
}

func (r *fakeOrderRepository) Create(_ context.Context, o *order.Order) error {
	r.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepository) Find(_ context.Context, id string) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.NewOrderNotFoundError(id)
	}
	return o, nil
}

func (r *fakeOrderRepository) FindAll(_ context.Context) ([]*order.Order, error) {
	all := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, o)
	}
	return all, nil
}

func (r *fakeOrderRepository) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.orders[o.ID()]; !ok {
		return order.NewOrderNotFoundError(o.ID())
	}
	return nil
}

type fakeCustomerRepository struct {
	customers map[string]*customer.Customer
}

func (r *fakeCustomerRepository) Create(_ context.Context, c *customer.Customer) error {
	r.customers[c.ID()] = c
	return nil
}

func (r *fakeCustomerRepository) Update(_ context.Context, c *customer.Customer) error {
	return nil
}

func (r *fakeCustomerRepository) Find(_ context.Context, id string) (*customer.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customer.NewCustomerNotFoundError(id)
	}
	return c, nil
}

func (r *fakeCustomerRepository) FindAll(_ context.Context) ([]*customer.Customer, error) {
	return nil, nil
}

type fakeProductRepository struct {
	products map[string]*product.Product
}

func (r *fakeProductRepository) Create(_ context.Context, p *product.Product) error {
	r.products[p.ID()] = p
	return nil
}

func (r *fakeProductRepository) Update(_ context.Context, p *product.Product) error {
	return nil
}

func (r *fakeProductRepository) Find(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, product.NewProductNotFoundError(id)
	}
	return p, nil
}

func (r *fakeProductRepository) FindAll(_ context.Context) ([]*product.Product, error) {
	return nil, nil
}

func newFixture(t *testing.T) (*apporder.ApplicationService, *fakeOrderRepository) {
	t.Helper()

	c, err := customer.NewCustomer("c1", "Customer 1")
	require.NoError(t, err)
	c2, err := customer.NewCustomer("c2", "Customer 2")
	require.NoError(t, err)
	p1, err := product.NewProduct("p1", "Product 1", 10)
	require.NoError(t, err)
	p2, err := product.NewProduct("p2", "Product 2", 20)
	require.NoError(t, err)

	orderRepo := &fakeOrderRepository{orders: map[string]*order.Order{}}
	svc := apporder.NewApplicationService(
		orderRepo,
		&fakeCustomerRepository{customers: map[string]*customer.Customer{"c1": c, "c2": c2}},
		&fakeProductRepository{products: map[string]*product.Product{"p1": p1, "p2": p2}},
	)
	return svc, orderRepo
}

func TestCreateOrder_SnapshotsProductPrices(t *testing.T) {
	svc, repo := newFixture(t)

	resp, err := svc.CreateOrder(context.Background(), apporder.CreateOrderRequest{
		CustomerID: "c1",
		Items: []apporder.OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "c1", resp.CustomerID)
	assert.Equal(t, 40.0, resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Product 1", resp.Items[0].Name)
	assert.Equal(t, 10.0, resp.Items[0].Price)
	assert.Equal(t, 20.0, resp.Items[0].LineTotal)

	assert.Len(t, repo.orders, 1)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	svc, repo := newFixture(t)

	_, err := svc.CreateOrder(context.Background(), apporder.CreateOrderRequest{
		CustomerID: "ghost",
		Items:      []apporder.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	assert.Empty(t, repo.orders)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	svc, repo := newFixture(t)

	_, err := svc.CreateOrder(context.Background(), apporder.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []apporder.OrderItemRequest{{ProductID: "ghost", Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
	assert.Empty(t, repo.orders)
}

func TestChangeOrderCustomer(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, apporder.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []apporder.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := svc.ChangeOrderCustomer(ctx, created.ID, apporder.ChangeCustomerRequest{CustomerID: "c2"})
	require.NoError(t, err)
	assert.Equal(t, "c2", resp.CustomerID)

	_, err = svc.ChangeOrderCustomer(ctx, created.ID, apporder.ChangeCustomerRequest{CustomerID: "ghost"})
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)

	_, err = svc.ChangeOrderCustomer(ctx, "ghost", apporder.ChangeCustomerRequest{CustomerID: "c2"})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetOrder_Missing(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.GetOrder(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
